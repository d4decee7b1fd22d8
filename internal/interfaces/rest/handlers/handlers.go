package handlers

import (
	"context"
	"log/slog"

	"github.com/payform/billing-service/internal/application"
	"github.com/payform/billing-service/internal/application/services"
)

// CardEnroller and ACHEnroller are what the handlers need from the service
// layer; the concrete services satisfy them.
type CardEnroller interface {
	Enroll(ctx context.Context, cmd services.CardEnrollCommand) (*application.Customer, error)
}

type ACHEnroller interface {
	Enroll(ctx context.Context, cmd services.ACHEnrollCommand) (*application.Customer, error)
}

type Handlers struct {
	cardService CardEnroller
	achService  ACHEnroller
	logger      *slog.Logger
}

func NewHandlers(cardService CardEnroller, achService ACHEnroller, logger *slog.Logger) *Handlers {
	return &Handlers{
		cardService: cardService,
		achService:  achService,
		logger:      logger,
	}
}

// profilePayload is the customer block shared by both form submissions.
type profilePayload struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func (p profilePayload) toProfile() services.Profile {
	return services.Profile{
		Name:    p.Name,
		Company: p.Company,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Zip:     p.Zip,
	}
}
