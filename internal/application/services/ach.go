package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/payform/billing-service/internal/application"
)

type ACHService struct {
	bankLink  application.BankLinkClient
	processor application.ProcessorClient
}

func NewACHService(bankLink application.BankLinkClient, processor application.ProcessorClient) *ACHService {
	return &ACHService{
		bankLink:  bankLink,
		processor: processor,
	}
}

// Enroll runs the three-step ACH onboarding pipeline: exchange the public
// link token for an access token, mint a processor-compatible bank-account
// token from it, then create the processor customer with that token as the
// payment source. Each step is gated on the previous one; the first failure
// ends the request.
func (s *ACHService) Enroll(ctx context.Context, cmd ACHEnrollCommand) (*application.Customer, error) {
	if cmd.PublicToken == "" {
		return nil, application.NewMissingTokenError()
	}

	exchange, err := s.bankLink.ExchangePublicToken(ctx, cmd.PublicToken)
	if err != nil {
		return nil, application.NewBankLinkError(err)
	}

	// A failure past this point leaves the exchanged access token live at
	// the provider; no revoke call is issued.
	minted, err := s.bankLink.CreateProcessorToken(ctx, exchange.AccessToken, cmd.AccountID)
	if err != nil {
		return nil, application.NewBankLinkError(err)
	}

	idempotencyKey := uuid.New().String()

	customer, err := s.processor.CreateCustomer(ctx, customerRequest(cmd.Profile, minted.BankAccountToken), idempotencyKey)
	if err != nil {
		return nil, application.NewProcessorError(err)
	}

	return customer, nil
}
