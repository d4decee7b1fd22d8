package services_test

import (
	"context"

	"github.com/payform/billing-service/internal/application"
)

// MockProcessorClient records customer-creation calls and delegates to
// CreateCustomerFn when set.
type MockProcessorClient struct {
	CreateCustomerFn func(ctx context.Context, req application.CustomerRequest, idempotencyKey string) (*application.Customer, error)

	Requests []application.CustomerRequest
	Keys     []string
}

func (m *MockProcessorClient) CreateCustomer(ctx context.Context, req application.CustomerRequest, idempotencyKey string) (*application.Customer, error) {
	m.Requests = append(m.Requests, req)
	m.Keys = append(m.Keys, idempotencyKey)
	if m.CreateCustomerFn != nil {
		return m.CreateCustomerFn(ctx, req, idempotencyKey)
	}
	return &application.Customer{ID: "cus_test"}, nil
}

// MockBankLinkClient records both bank-link operations.
type MockBankLinkClient struct {
	ExchangePublicTokenFn  func(ctx context.Context, publicToken string) (*application.TokenExchange, error)
	CreateProcessorTokenFn func(ctx context.Context, accessToken, accountID string) (*application.ProcessorToken, error)

	ExchangeCalls []string
	MintCalls     []MintCall
}

type MintCall struct {
	AccessToken string
	AccountID   string
}

func (m *MockBankLinkClient) ExchangePublicToken(ctx context.Context, publicToken string) (*application.TokenExchange, error) {
	m.ExchangeCalls = append(m.ExchangeCalls, publicToken)
	if m.ExchangePublicTokenFn != nil {
		return m.ExchangePublicTokenFn(ctx, publicToken)
	}
	return &application.TokenExchange{AccessToken: "access-test", ItemID: "item-test", RequestID: "req-test"}, nil
}

func (m *MockBankLinkClient) CreateProcessorToken(ctx context.Context, accessToken, accountID string) (*application.ProcessorToken, error) {
	m.MintCalls = append(m.MintCalls, MintCall{AccessToken: accessToken, AccountID: accountID})
	if m.CreateProcessorTokenFn != nil {
		return m.CreateProcessorTokenFn(ctx, accessToken, accountID)
	}
	return &application.ProcessorToken{BankAccountToken: "btok_test", RequestID: "req-test"}, nil
}
