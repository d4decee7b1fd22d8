package rest_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/payform/billing-service/internal/application"
	"github.com/payform/billing-service/internal/application/services"
	"github.com/payform/billing-service/internal/config"
	"github.com/payform/billing-service/internal/interfaces/rest"
	"github.com/payform/billing-service/internal/interfaces/rest/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	err      error
	requests []application.CustomerRequest
}

func (f *fakeProcessor) CreateCustomer(_ context.Context, req application.CustomerRequest, _ string) (*application.Customer, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &application.Customer{ID: "cus_1"}, nil
}

type fakeBankLink struct {
	exchangeErr   error
	mintErr       error
	exchangeCalls int
	mintCalls     int
}

func (f *fakeBankLink) ExchangePublicToken(context.Context, string) (*application.TokenExchange, error) {
	f.exchangeCalls++
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return &application.TokenExchange{AccessToken: "access-1"}, nil
}

func (f *fakeBankLink) CreateProcessorToken(context.Context, string, string) (*application.ProcessorToken, error) {
	f.mintCalls++
	if f.mintErr != nil {
		return nil, f.mintErr
	}
	return &application.ProcessorToken{BankAccountToken: "btok_1"}, nil
}

func newTestServer(t *testing.T, processor *fakeProcessor, bankLink *fakeBankLink) *httptest.Server {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "bundle.js"), []byte("// bundle"), 0o644))
	indexFile := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(indexFile, []byte("<html>form</html>"), 0o644))

	h := handlers.NewHandlers(
		services.NewCardService(processor),
		services.NewACHService(bankLink, processor),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	router := rest.NewRouter(h, config.ServerConfig{
		Port:         "0",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
		StaticDir:    staticDir,
		IndexFile:    indexFile,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

const cardBody = `{
	"name": "A", "company": "", "email": "a@x.com", "phone": "555",
	"address": "1 St", "city": "NY", "state": "NY", "zip": "10001",
	"token": {"id": "tok_123"}
}`

func TestCardEndpoint_Success(t *testing.T) {
	processor := &fakeProcessor{}
	srv := newTestServer(t, processor, &fakeBankLink{})

	status, body := postJSON(t, srv, "/api/cc", cardBody)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ok", body)

	require.Len(t, processor.requests, 1)
	assert.Equal(t, "tok_123", processor.requests[0].Source)
	assert.Equal(t, "US", processor.requests[0].Shipping.Address.Country)
}

func TestCardEndpoint_MissingToken(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no token field", `{"name": "A", "email": "a@x.com"}`},
		{"token without id", `{"name": "A", "email": "a@x.com", "token": {}}`},
		{"empty token id", `{"name": "A", "email": "a@x.com", "token": {"id": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := &fakeProcessor{}
			srv := newTestServer(t, processor, &fakeBankLink{})

			status, body := postJSON(t, srv, "/api/cc", tt.body)

			assert.Equal(t, http.StatusInternalServerError, status)
			assert.Equal(t, "Missing token", body)
			assert.Empty(t, processor.requests)
		})
	}
}

func TestCardEndpoint_ProcessorFailure(t *testing.T) {
	processor := &fakeProcessor{err: errors.New("declined")}
	srv := newTestServer(t, processor, &fakeBankLink{})

	status, body := postJSON(t, srv, "/api/cc", cardBody)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Unable to create customer.", body)
}

func TestCardEndpoint_MalformedBody(t *testing.T) {
	srv := newTestServer(t, &fakeProcessor{}, &fakeBankLink{})

	status, _ := postJSON(t, srv, "/api/cc", `{"name": `)

	assert.Equal(t, http.StatusBadRequest, status)
}

const achBody = `{
	"name": "A", "company": "", "email": "a@x.com", "phone": "555",
	"address": "1 St", "city": "NY", "state": "NY", "zip": "10001",
	"plaid_token": "ptok",
	"plaid_metadata": {"account": {"id": "acct-1"}}
}`

func TestACHEndpoint_Success(t *testing.T) {
	processor := &fakeProcessor{}
	bankLink := &fakeBankLink{}
	srv := newTestServer(t, processor, bankLink)

	status, body := postJSON(t, srv, "/api/ach", achBody)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ok", body)

	assert.Equal(t, 1, bankLink.exchangeCalls)
	assert.Equal(t, 1, bankLink.mintCalls)
	require.Len(t, processor.requests, 1)
	assert.Equal(t, "btok_1", processor.requests[0].Source)
}

func TestACHEndpoint_MissingPublicToken(t *testing.T) {
	processor := &fakeProcessor{}
	bankLink := &fakeBankLink{}
	srv := newTestServer(t, processor, bankLink)

	status, body := postJSON(t, srv, "/api/ach", `{"name": "A", "email": "a@x.com"}`)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Missing token", body)
	assert.Zero(t, bankLink.exchangeCalls)
	assert.Zero(t, bankLink.mintCalls)
	assert.Empty(t, processor.requests)
}

func TestACHEndpoint_ExchangeFailure(t *testing.T) {
	processor := &fakeProcessor{}
	bankLink := &fakeBankLink{exchangeErr: errors.New("INVALID_PUBLIC_TOKEN")}
	srv := newTestServer(t, processor, bankLink)

	status, body := postJSON(t, srv, "/api/ach", achBody)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error negotiating with provider", body)
	assert.Zero(t, bankLink.mintCalls)
	assert.Empty(t, processor.requests)
}

func TestACHEndpoint_MintFailure(t *testing.T) {
	processor := &fakeProcessor{}
	bankLink := &fakeBankLink{mintErr: errors.New("INVALID_ACCOUNT_ID")}
	srv := newTestServer(t, processor, bankLink)

	status, body := postJSON(t, srv, "/api/ach", achBody)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error negotiating with provider", body)
	assert.Empty(t, processor.requests)
}

func TestACHEndpoint_ProcessorFailure(t *testing.T) {
	processor := &fakeProcessor{err: errors.New("rate limited")}
	srv := newTestServer(t, processor, &fakeBankLink{})

	status, body := postJSON(t, srv, "/api/ach", achBody)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Unable to create customer.", body)
}

func TestCORS_Unconditional(t *testing.T) {
	srv := newTestServer(t, &fakeProcessor{}, &fakeBankLink{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/cc", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://elsewhere.example")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStaticRoutes(t *testing.T) {
	srv := newTestServer(t, &fakeProcessor{}, &fakeBankLink{})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	index, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(index), "form")

	resp, err = http.Get(srv.URL + "/dist/bundle.js")
	require.NoError(t, err)
	bundle, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(bundle), "bundle")
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeProcessor{}, &fakeBankLink{})

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
