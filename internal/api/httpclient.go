package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"paygate/internal/logging"
	"paygate/internal/models"
)

const (
	headerAPIKey    = "X-API-Key"
	headerRequestID = "X-Request-Id"
)

// HTTPClient talks to the gateway REST API over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger

	mu         sync.RWMutex
	credential string
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

// WithLogger sets the logger used for request/response diagnostics.
func WithLogger(log logging.Logger) Option {
	return func(c *HTTPClient) { c.log = log }
}

// NewHTTPClient constructs an adapter bound to the given base URL,
// e.g. "http://localhost:8080".
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
		log:     logging.NewNopLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetCredential stores the API key for subsequent calls. Empty clears it.
func (c *HTTPClient) SetCredential(key string) {
	c.mu.Lock()
	c.credential = key
	c.mu.Unlock()
}

func (c *HTTPClient) getCredential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credential
}

// request performs one HTTP call and decodes the JSON response into out.
// Caller headers win over the defaults, except the credential which is
// always taken from the adapter unless explicitly overridden.
func (c *HTTPClient) request(ctx context.Context, method, endpoint string, headers map[string]string, body any, out any) error {
	fullURL := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if key := c.getCredential(); key != "" {
		req.Header.Set(headerAPIKey, key)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.log.Debug(ctx, "gateway request", "method", method, "url", fullURL, "has_credential", c.getCredential() != "")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "gateway request failed", "url", fullURL, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "gateway response", "url", fullURL, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// GetAccount looks up the account for the given API key. The key is sent as
// an explicit header so a login candidate can be validated without touching
// the stored credential.
func (c *HTTPClient) GetAccount(ctx context.Context, key string) (*models.Account, error) {
	var acc models.Account
	headers := map[string]string{headerAPIKey: key}
	if err := c.request(ctx, http.MethodGet, "/accounts", headers, nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateAccount registers a new merchant account.
func (c *HTTPClient) CreateAccount(ctx context.Context, in models.CreateAccountInput) (*models.Account, error) {
	var acc models.Account
	if err := c.request(ctx, http.MethodPost, "/accounts", nil, in, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateInvoice submits a new invoice.
func (c *HTTPClient) CreateInvoice(ctx context.Context, in models.CreateInvoiceInput) (*models.Invoice, error) {
	var inv models.Invoice
	if err := c.request(ctx, http.MethodPost, "/invoices", nil, in, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// encodeFilters serializes filters into query parameters. A status of "all"
// (or empty) is omitted entirely; dates and search go through verbatim;
// page is included only when set.
func encodeFilters(f models.InvoiceFilters) string {
	params := url.Values{}
	if f.Status != "" && f.Status != models.StatusAll {
		params.Set("status", f.Status)
	}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	return params.Encode()
}

// ListInvoices lists invoices for the authenticated account.
func (c *HTTPClient) ListInvoices(ctx context.Context, filters models.InvoiceFilters) ([]models.Invoice, error) {
	endpoint := "/invoices"
	if qs := encodeFilters(filters); qs != "" {
		endpoint += "?" + qs
	}

	var invoices []models.Invoice
	if err := c.request(ctx, http.MethodGet, endpoint, nil, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice fetches a single invoice by id.
func (c *HTTPClient) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := c.request(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id), nil, nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
