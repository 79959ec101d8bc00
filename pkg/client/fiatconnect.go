package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fiatconnect-widget/pkg/fiatconnect"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "fiatconnect-widget/0.1.0"

	// maxErrorBody caps how much of a failed response is kept in the error
	maxErrorBody = 4 << 10
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=client_test -destination=mock_http_client_test.go -source=fiatconnect.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// FiatConnectClient talks to a single FiatConnect provider
type FiatConnectClient struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	header     http.Header
}

// Option configures a FiatConnectClient
type Option func(*FiatConnectClient)

// WithBaseURL sets the provider's base URL
func WithBaseURL(baseURL string) Option {
	return func(c *FiatConnectClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *FiatConnectClient) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// after WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *FiatConnectClient) {
		if hc, ok := c.httpClient.(*http.Client); ok {
			hc.Timeout = d
		}
	}
}

// WithHeader adds headers sent with every request
func WithHeader(header http.Header) Option {
	return func(c *FiatConnectClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewFiatConnectClient creates a client authenticating with apiKey as a bearer token
func NewFiatConnectClient(apiKey string, opts ...Option) *FiatConnectClient {
	c := &FiatConnectClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		header:     http.Header{},
	}
	c.header.Set("User-Agent", defaultUserAgent)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetQuote requests a quote for the given transfer direction.
// A non-2xx status returns a *fiatconnect.NetworkError; a body that does not
// match the quote response shape returns a *fiatconnect.SchemaValidationError.
func (c *FiatConnectClient) GetQuote(ctx context.Context, transferType fiatconnect.TransferType, quoteReq *fiatconnect.QuoteRequest) (*fiatconnect.QuoteResponse, error) {
	body, err := json.Marshal(quoteReq)
	if err != nil {
		return nil, fmt.Errorf("encoding quote request: %w", err)
	}

	url := fmt.Sprintf("%s/quote/%s", c.baseURL, transferType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &fiatconnect.NetworkError{Cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &fiatconnect.NetworkError{
			StatusCode: res.StatusCode,
			Body:       errorMessage(b),
		}
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &fiatconnect.NetworkError{StatusCode: res.StatusCode, Cause: fmt.Errorf("reading response: %w", err)}
	}

	return fiatconnect.ParseQuoteResponse(b)
}

// errorMessage extracts the FiatConnect error field when present, e.g.
// {"error":"CryptoAmountTooHigh"}, and falls back to the raw body
func errorMessage(body []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return strings.TrimSpace(string(body))
}
