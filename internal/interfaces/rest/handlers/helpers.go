package handlers

import (
	"log/slog"
	"net/http"

	"github.com/payform/billing-service/internal/application"
)

// WriteText writes one of the fixed plaintext bodies the API answers with.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// WriteError maps a service error onto the plaintext contract and logs the
// provider detail that never reaches the caller.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	if svcErr, ok := application.IsServiceError(err); ok {
		if svcErr.Err != nil {
			logger.Error("onboarding stage failed",
				"stage", svcErr.Stage,
				"error", svcErr.Err,
			)
		}
		WriteText(w, svcErr.HTTPStatus, svcErr.Message)
		return
	}

	logger.Error("unexpected error", "error", err)
	WriteText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
