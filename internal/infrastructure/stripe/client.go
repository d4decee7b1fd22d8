package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/payform/billing-service/internal/application"
	"github.com/payform/billing-service/internal/config"
)

// Client talks to the card-payment processor's REST API. The customer
// endpoint takes form-encoded params with bracketed nesting.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(cfg config.StripeConfig) application.ProcessorClient {
	return &Client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) CreateCustomer(ctx context.Context, req application.CustomerRequest, idempotencyKey string) (*application.Customer, error) {
	form := url.Values{}
	form.Set("email", req.Email)
	form.Set("source", req.Source)
	form.Set("shipping[name]", req.Shipping.Name)
	form.Set("shipping[phone]", req.Shipping.Phone)
	form.Set("shipping[address][line1]", req.Shipping.Address.Line1)
	form.Set("shipping[address][city]", req.Shipping.Address.City)
	form.Set("shipping[address][state]", req.Shipping.Address.State)
	form.Set("shipping[address][postal_code]", req.Shipping.Address.PostalCode)
	form.Set("shipping[address][country]", req.Shipping.Address.Country)

	endpoint := fmt.Sprintf("%s/v1/customers", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Err.Message == "" {
			return nil, fmt.Errorf("processor returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, &Error{
			Type:       errResp.Err.Type,
			Code:       errResp.Err.Code,
			Message:    errResp.Err.Message,
			StatusCode: resp.StatusCode,
		}
	}

	var customer customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &application.Customer{ID: customer.ID}, nil
}

type customerResponse struct {
	ID string `json:"id"`
}
