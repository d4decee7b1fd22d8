package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/payform/billing-service/internal/application/services"
)

type achPayload struct {
	profilePayload
	PlaidToken    string       `json:"plaid_token"`
	PlaidMetadata *achMetadata `json:"plaid_metadata"`
}

// achMetadata is the slice of the link session's metadata this service reads:
// the account the customer selected.
type achMetadata struct {
	Account struct {
		ID string `json:"id"`
	} `json:"account"`
}

// CreateACHCustomer handles POST /api/ach.
func (h *Handlers) CreateACHCustomer(w http.ResponseWriter, r *http.Request) {
	var payload achPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteText(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	cmd := services.ACHEnrollCommand{
		Profile:     payload.toProfile(),
		PublicToken: payload.PlaidToken,
	}
	if payload.PlaidMetadata != nil {
		cmd.AccountID = payload.PlaidMetadata.Account.ID
	}

	if _, err := h.achService.Enroll(r.Context(), cmd); err != nil {
		WriteError(w, err, h.logger)
		return
	}

	WriteText(w, http.StatusOK, "Ok")
}
