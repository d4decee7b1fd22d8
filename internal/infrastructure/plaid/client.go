package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/payform/billing-service/internal/application"
	"github.com/payform/billing-service/internal/config"
)

// Client talks to the bank-link provider's REST API. Every endpoint is a JSON
// POST carrying the client credentials in the body.
type Client struct {
	baseURL    string
	clientID   string
	secretKey  string
	httpClient *http.Client
}

func NewClient(cfg config.PlaidConfig) application.BankLinkClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.plaid.com", cfg.Environment)
	}

	// The public key never appears in server-to-server calls; it stays a
	// config concern for the Link front end.
	return &Client{
		baseURL:   baseURL,
		clientID:  cfg.ClientID,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type exchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

type exchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*application.TokenExchange, error) {
	req := exchangeRequest{
		ClientID:    c.clientID,
		Secret:      c.secretKey,
		PublicToken: publicToken,
	}

	resp, err := post[exchangeRequest, exchangeResponse](c, ctx, "/item/public_token/exchange", req)
	if err != nil {
		return nil, err
	}

	return &application.TokenExchange{
		AccessToken: resp.AccessToken,
		ItemID:      resp.ItemID,
		RequestID:   resp.RequestID,
	}, nil
}

type processorTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
}

type processorTokenResponse struct {
	StripeBankAccountToken string `json:"stripe_bank_account_token"`
	RequestID              string `json:"request_id"`
}

func (c *Client) CreateProcessorToken(ctx context.Context, accessToken, accountID string) (*application.ProcessorToken, error) {
	req := processorTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secretKey,
		AccessToken: accessToken,
		AccountID:   accountID,
	}

	resp, err := post[processorTokenRequest, processorTokenResponse](c, ctx, "/processor/stripe/bank_account_token/create", req)
	if err != nil {
		return nil, err
	}

	return &application.ProcessorToken{
		BankAccountToken: resp.StripeBankAccountToken,
		RequestID:        resp.RequestID,
	}, nil
}

func post[Req any, Resp any](c *Client, ctx context.Context, path string, reqBody Req) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr Error
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.ErrorType == "" {
			return nil, fmt.Errorf("bank-link provider returned status %d: %s", resp.StatusCode, string(body))
		}
		apiErr.StatusCode = resp.StatusCode
		return nil, &apiErr
	}

	var apiResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &apiResp, nil
}
