package fdc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/hako/durafmt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/usda-mcp/nutrition-api/env"
)

// DefaultBaseURL is the public FoodData Central API root
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

// MaxBatchSize is the upstream limit on ids per batch food fetch
const MaxBatchSize = 20

// MaxPageSize is the upstream limit on search results per page
const MaxPageSize = 200

const userAgent = "usda-nutrition-api/1.0.0"

// Format values accepted by the food detail endpoints
const (
	FormatAbridged = "abridged"
	FormatFull     = "full"
)

// Provider is the contract consumed by the tool layer,
// implemented by Client and by test fakes
type Provider interface {
	IsConfigured() bool
	HealthCheck(ctx context.Context) bool
	SearchFoods(ctx context.Context, query string, dataTypes []string, pageSize int, pageNumber int) (*SearchResult, error)
	GetFood(ctx context.Context, fdcID int, format string) (*Food, error)
	GetFoods(ctx context.Context, fdcIDs []int, format string) ([]Food, error)
}

// Client is a stateless handle on the FoodData Central API:
// a single API key, fixed base URL and headers, and a shared
// http.Client. Safe for concurrent use once constructed;
// nothing is mutated after Connect
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	retry      RetryPolicy
	logger     zerolog.Logger
}

// NewClient loads configuration from the environment and creates
// the client (doesn't involve any network calls).
// A missing API key is not an error here; every operation will
// fail fast with NotConfiguredError until one is provided
func NewClient(logger zerolog.Logger) (*Client, error) {
	baseURL := env.GetEnvDefault("FDC_BASE_URL", DefaultBaseURL)
	apiKey := env.GetEnvDefault("FDC_API_KEY", "")

	timeout, err := env.GetDurationEnvDefault("FoodData Central request timeout", "FDC_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retry:  DefaultRetryPolicy(logger),
		logger: logger,
	}, nil
}

// IsConfigured reports whether the client has an API key
// and can attempt upstream calls
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// Connect logs the configuration state and probes the upstream API.
// A degraded upstream is logged but does not fail startup;
// requests will surface their own errors
func (c *Client) Connect(ctx context.Context) error {
	if !c.IsConfigured() {
		c.logger.Warn().Msg("FoodData Central API key missing; tool calls will fail until FDC_API_KEY is set")
		return nil
	}

	c.logger.Info().
		Str("base_url", c.baseURL).
		Str("timeout", durafmt.Parse(c.timeout).LimitFirstN(2).String()).
		Msg("FoodData Central client configured")

	if !c.HealthCheck(ctx) {
		c.logger.Warn().Msg("FoodData Central API is not reachable; continuing in degraded state")
	}

	return nil
}

// Disconnect releases any idle upstream connections
func (c *Client) Disconnect(ctx context.Context) error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// HealthCheck issues a minimal single-attempt search probe
// and reports whether the upstream responded successfully
func (c *Client) HealthCheck(ctx context.Context) bool {
	if !c.IsConfigured() {
		return false
	}

	query := url.Values{}
	query.Set("query", "apple")
	query.Set("pageSize", "1")

	req, err := c.newRequest(ctx, http.MethodGet, "/foods/search", query, nil)
	if err != nil {
		return false
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	return res.StatusCode == http.StatusOK
}

// SearchFoods searches the upstream database by query text.
// The page size is clamped to the upstream maximum of 200
// and the page number defaults to the first page
func (c *Client) SearchFoods(ctx context.Context, query string, dataTypes []string,
	pageSize int, pageNumber int) (*SearchResult, error) {

	if pageSize < 1 {
		pageSize = 25
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	body := searchRequest{
		Query:      query,
		PageSize:   pageSize,
		PageNumber: pageNumber,
		DataType:   dataTypes,
	}

	c.logger.Info().
		Str("query", query).
		Int("page_size", pageSize).
		Msg("searching FoodData Central")

	payload, err := c.do(ctx, http.MethodPost, "/foods/search", nil, body)
	if err != nil {
		return nil, err
	}

	result := SearchResult{}
	err = json.Unmarshal(payload, &result)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode FoodData Central search payload")
	}

	return &result, nil
}

// GetFood fetches a single food record by its FDC ID.
// The format defaults to abridged when empty
func (c *Client) GetFood(ctx context.Context, fdcID int, format string) (*Food, error) {
	if format == "" {
		format = FormatAbridged
	}

	query := url.Values{}
	query.Set("format", format)

	c.logger.Info().
		Int("fdc_id", fdcID).
		Str("format", format).
		Msg("fetching food from FoodData Central")

	payload, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/food/%d", fdcID), query, nil)
	if err != nil {
		return nil, err
	}

	food := Food{}
	err = json.Unmarshal(payload, &food)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode FoodData Central food payload")
	}

	return &food, nil
}

// GetFoods fetches up to 20 food records in a single batch call.
// Results are returned in the upstream's order for the given ids
func (c *Client) GetFoods(ctx context.Context, fdcIDs []int, format string) ([]Food, error) {
	if len(fdcIDs) > MaxBatchSize {
		return nil, NewInvalidInputError(
			fmt.Sprintf("maximum %d foods can be requested at once (got %d)", MaxBatchSize, len(fdcIDs)))
	}

	if format == "" {
		format = FormatAbridged
	}

	body := foodsRequest{
		FDCIDs: fdcIDs,
		Format: format,
	}

	c.logger.Info().
		Int("count", len(fdcIDs)).
		Str("format", format).
		Msg("fetching food batch from FoodData Central")

	payload, err := c.do(ctx, http.MethodPost, "/foods", nil, body)
	if err != nil {
		return nil, err
	}

	foods := []Food{}
	err = json.Unmarshal(payload, &foods)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode FoodData Central batch payload")
	}

	return foods, nil
}

// newRequest builds an upstream request with the fixed headers attached
func (c *Client) newRequest(ctx context.Context, method string, endpoint string,
	query url.Values, body []byte) (*http.Request, error) {

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return req, nil
}

// do issues a single upstream call under the retry policy and
// returns the raw response body.
// Transport failures and 5xx/429 responses are retried up to the
// policy's budget; other non-2xx responses are permanent.
// Fails fast with NotConfiguredError when no API key is present
func (c *Client) do(ctx context.Context, method string, endpoint string,
	query url.Values, body interface{}) ([]byte, error) {

	if !c.IsConfigured() {
		return nil, NewNotConfiguredError(fmt.Sprintf("call %s", endpoint))
	}

	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "could not encode request body")
		}
	}

	operation := func() ([]byte, error) {
		req, err := c.newRequest(ctx, method, endpoint, query, encoded)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			// Network failure or timeout: retryable
			return nil, NewUpstreamError(endpoint, 0, err)
		}
		defer res.Body.Close()

		payload, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, NewUpstreamError(endpoint, 0, err)
		}

		if res.StatusCode >= 200 && res.StatusCode < 300 {
			return payload, nil
		}

		upstreamErr := NewUpstreamError(endpoint, res.StatusCode, nil)
		if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500 {
			return nil, upstreamErr
		}

		// Client errors won't get better on retry
		return nil, backoff.Permanent(upstreamErr)
	}

	payload, err := c.retry.Execute(ctx, operation)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("endpoint", endpoint).
			Msg("FoodData Central request failed")

		if _, ok := err.(*UpstreamError); !ok {
			err = NewUpstreamError(endpoint, 0, err)
		}
		return nil, err
	}

	return payload, nil
}
