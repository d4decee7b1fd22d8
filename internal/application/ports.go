package application

import "context"

// ProcessorClient is the port for the card-payment processor. Both onboarding
// paths terminate in a single customer-creation call against it.
type ProcessorClient interface {
	CreateCustomer(ctx context.Context, req CustomerRequest, idempotencyKey string) (*Customer, error)
}

// BankLinkClient is the port for the bank-account-linking provider.
type BankLinkClient interface {
	// ExchangePublicToken trades a short-lived public link token for a
	// durable access token.
	ExchangePublicToken(ctx context.Context, publicToken string) (*TokenExchange, error)

	// CreateProcessorToken mints a processor-compatible bank-account token
	// from an access token and a selected account.
	CreateProcessorToken(ctx context.Context, accessToken, accountID string) (*ProcessorToken, error)
}

// CustomerRequest is the processor's expected customer-creation shape: email
// top-level, everything else nested under a shipping group.
type CustomerRequest struct {
	Email    string
	Source   string
	Shipping Shipping
}

type Shipping struct {
	Name    string
	Phone   string
	Address Address
}

type Address struct {
	Line1      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Customer is the processor's created-customer record.
type Customer struct {
	ID string
}

type TokenExchange struct {
	AccessToken string
	ItemID      string
	RequestID   string
}

type ProcessorToken struct {
	BankAccountToken string
	RequestID        string
}
