// Package pricing wraps the downstream income-equivalence service.
//
// The client makes a single GET attempt per query: no retry, no backoff, no
// caching. Timeouts and cancellation are the caller's concern via context.
package pricing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the default income-equivalence service address.
const DefaultBaseURL = "http://localhost:5000"

// equivalentIncomePath is the query endpoint on the pricing service.
const equivalentIncomePath = "/api/equivalent-income"

// Query holds the parameters of one income-equivalence computation.
type Query struct {
	TargetCity       string
	TargetCurrency   string
	BaseCity         string
	BaseIncomeAmount int
	BaseCurrency     string
}

// Opts holds configuration options for the pricing client.
type Opts struct {
	BaseURL    string       // pricing service base URL
	HTTPClient *http.Client // shared outbound HTTP client
}

// Option defines a configuration option for the pricing client.
type Option func(*Opts)

// WithBaseURL sets the pricing service base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *Opts) {
		o.BaseURL = baseURL
	}
}

// WithHTTPClient sets the outbound HTTP client. The client is shared and
// long-lived; it must be safe for concurrent use.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Opts) {
		o.HTTPClient = client
	}
}

// Client queries the income-equivalence service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a pricing client, applying any provided options.
func NewClient(opts ...Option) *Client {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
		slog.Debug("pricing.NewClient: no base URL provided, using default", "base_url", cfg.BaseURL)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(cfg.BaseURL, "/"), http: cfg.HTTPClient}
}

// EquivalentIncome computes the income needed in the target city to maintain
// a lifestyle comparable to the base income in the base city. The result is
// rounded to the nearest 100 currency units.
func (c *Client) EquivalentIncome(ctx context.Context, q Query) (float64, error) {
	params := url.Values{}
	params.Set("targetCity", q.TargetCity)
	params.Set("targetCurrency", q.TargetCurrency)
	params.Set("baseCity", q.BaseCity)
	params.Set("baseIncomeAmount", strconv.Itoa(q.BaseIncomeAmount))
	params.Set("baseCurrency", q.BaseCurrency)
	reqURL := c.baseURL + equivalentIncomePath + "?" + params.Encode()

	slog.Debug("Client.EquivalentIncome: querying pricing service",
		"target_city", q.TargetCity, "base_city", q.BaseCity, "base_currency", q.BaseCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build pricing request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call pricing service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read pricing response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("pricing service returned status %d", resp.StatusCode)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse pricing response %q: %w", string(body), err)
	}

	rounded := math.Round(amount/100) * 100
	slog.Debug("Client.EquivalentIncome: computed equivalent income", "raw", amount, "rounded", rounded)
	return rounded, nil
}
