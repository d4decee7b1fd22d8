package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/payform/billing-service/internal/application"
)

type CardService struct {
	processor application.ProcessorClient
}

func NewCardService(processor application.ProcessorClient) *CardService {
	return &CardService{processor: processor}
}

// Enroll creates a processor customer backed by a tokenized card. The token
// must carry a non-empty identifier; nothing leaves the process otherwise.
func (s *CardService) Enroll(ctx context.Context, cmd CardEnrollCommand) (*application.Customer, error) {
	if cmd.TokenID == "" {
		return nil, application.NewMissingTokenError()
	}

	idempotencyKey := uuid.New().String()

	customer, err := s.processor.CreateCustomer(ctx, customerRequest(cmd.Profile, cmd.TokenID), idempotencyKey)
	if err != nil {
		return nil, application.NewProcessorError(err)
	}

	return customer, nil
}
