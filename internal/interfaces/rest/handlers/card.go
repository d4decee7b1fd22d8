package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/payform/billing-service/internal/application/services"
)

type cardPayload struct {
	profilePayload
	Token *tokenPayload `json:"token"`
}

// tokenPayload is the processor's client-side token object; only the
// identifier matters here.
type tokenPayload struct {
	ID string `json:"id"`
}

// CreateCardCustomer handles POST /api/cc.
func (h *Handlers) CreateCardCustomer(w http.ResponseWriter, r *http.Request) {
	var payload cardPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteText(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	cmd := services.CardEnrollCommand{
		Profile: payload.toProfile(),
	}
	if payload.Token != nil {
		cmd.TokenID = payload.Token.ID
	}

	if _, err := h.cardService.Enroll(r.Context(), cmd); err != nil {
		WriteError(w, err, h.logger)
		return
	}

	WriteText(w, http.StatusOK, "Ok")
}
