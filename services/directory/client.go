// File: services/directory/client.go
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"servicedirectory/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	// ProvidersPath is the collection endpoint of the directory API.
	ProvidersPath = "/service-providers"

	// DefaultFetchTimeout is the ceiling applied to every call when none is configured.
	DefaultFetchTimeout = 10 * time.Second

	maxErrorBody = 4 << 10
)

// Client talks to the directory REST API. It never retries.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// NewClient creates a Client whose outbound requests are traced with otelhttp.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Timeout: timeout,
		Logger:  logger,
	}
}

// ListProviders performs GET /service-providers.
func (c *Client) ListProviders(ctx context.Context) Result[[]models.ServiceProvider] {
	const op = "list providers"
	var providers []models.ServiceProvider
	if err := c.do(ctx, op, http.MethodGet, ProvidersPath, nil, &providers); err != nil {
		return Result[[]models.ServiceProvider]{Outcome: err.Kind, Err: err}
	}
	if len(providers) == 0 {
		return Result[[]models.ServiceProvider]{Value: []models.ServiceProvider{}, Outcome: OutcomeEmpty}
	}
	return Result[[]models.ServiceProvider]{Value: providers, Outcome: OutcomeSuccess}
}

// GetProvider performs GET /service-providers/{id}. A 404 or an empty record
// yields OutcomeNotFound.
func (c *Client) GetProvider(ctx context.Context, id string) Result[*models.ServiceProvider] {
	const op = "get provider"
	id = strings.TrimSpace(id)
	if id == "" {
		err := &FetchError{Op: op, Kind: OutcomeNotFound, Message: "empty provider id"}
		return Result[*models.ServiceProvider]{Outcome: err.Kind, Err: err}
	}

	var provider *models.ServiceProvider
	if err := c.do(ctx, op, http.MethodGet, ProvidersPath+"/"+url.PathEscape(id), nil, &provider); err != nil {
		return Result[*models.ServiceProvider]{Outcome: err.Kind, Err: err}
	}
	// A 2xx carrying null or {} names no record.
	if provider == nil || (provider.ID == "" && provider.Name == "") {
		err := &FetchError{Op: op, Kind: OutcomeNotFound, Message: "empty provider record"}
		c.Logger.Info("Directory returned no provider record", zap.String("id", id))
		return Result[*models.ServiceProvider]{Outcome: err.Kind, Err: err}
	}
	return Result[*models.ServiceProvider]{Value: provider, Outcome: OutcomeSuccess}
}

// CreateProvider performs POST /service-providers. A 4xx answer yields OutcomeRejected
// with the backend's message when it sent one. Value is nil when the backend
// acknowledged the creation without a body.
func (c *Client) CreateProvider(ctx context.Context, req models.NewProviderRequest) Result[*models.ServiceProvider] {
	const op = "create provider"
	body, err := json.Marshal(req)
	if err != nil {
		fe := &FetchError{Op: op, Kind: OutcomeParseError, Err: err}
		return Result[*models.ServiceProvider]{Outcome: fe.Kind, Err: fe}
	}

	var created *models.ServiceProvider
	if fe := c.do(ctx, op, http.MethodPost, ProvidersPath, body, &created); fe != nil {
		return Result[*models.ServiceProvider]{Outcome: fe.Kind, Err: fe}
	}
	return Result[*models.ServiceProvider]{Value: created, Outcome: OutcomeSuccess}
}

// Ping succeeds when the directory API returns any HTTP response.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("directory API unreachable: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// do issues one request and decodes a 2xx JSON body into out.
func (c *Client) do(parent context.Context, op, method, path string, body []byte, out interface{}) *FetchError {
	ctx, cancel := context.WithTimeout(parent, c.Timeout)
	defer cancel()

	logger := c.Logger.With(zap.String("op", op), zap.String("method", method), zap.String("path", path))

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		logger.Error("Failed to build directory request", zap.Error(err))
		return &FetchError{Op: op, Kind: OutcomeTransportError, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		fe := &FetchError{Op: op, Kind: classifyTransport(parent, ctx, err), Err: err}
		c.logFailure(logger, fe)
		return fe
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := &FetchError{Op: op, Kind: statusOutcome(method, resp.StatusCode), StatusCode: resp.StatusCode}
		fe.Message = backendMessage(resp.Body)
		c.logFailure(logger, fe)
		return fe
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		fe := &FetchError{Op: op, Kind: classifyTransport(parent, ctx, err), StatusCode: resp.StatusCode, Err: err}
		c.logFailure(logger, fe)
		return fe
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if method == http.MethodGet {
			fe := &FetchError{Op: op, Kind: OutcomeParseError, StatusCode: resp.StatusCode, Err: io.ErrUnexpectedEOF}
			c.logFailure(logger, fe)
			return fe
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		fe := &FetchError{Op: op, Kind: OutcomeParseError, StatusCode: resp.StatusCode, Err: err}
		c.logFailure(logger, fe)
		return fe
	}
	logger.Debug("Directory request succeeded", zap.Int("status", resp.StatusCode))
	return nil
}

func (c *Client) logFailure(logger *zap.Logger, fe *FetchError) {
	fields := []zap.Field{zap.String("kind", string(fe.Kind)), zap.Int("status", fe.StatusCode)}
	if fe.Err != nil {
		fields = append(fields, zap.Error(fe.Err))
	}
	if fe.Kind == OutcomeCanceled || fe.Kind == OutcomeNotFound {
		logger.Info("Directory request did not complete", fields...)
		return
	}
	logger.Warn("Directory request failed", fields...)
}

func statusOutcome(method string, status int) Outcome {
	switch {
	case status == http.StatusNotFound && method == http.MethodGet:
		return OutcomeNotFound
	case status >= 400 && status < 500 && method != http.MethodGet:
		return OutcomeRejected
	default:
		return OutcomeTransportError
	}
}

// backendMessage extracts {"message": ...} or {"error": ...} from an error body.
func backendMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
