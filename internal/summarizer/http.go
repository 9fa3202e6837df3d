package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/logger"
)

const (
	summarizePath = "/summarize"
	healthPath    = "/health"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 4 << 20

	userAgent = "medsum"
)

// HTTPClient talks to a summarization server over JSON/HTTP.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	log      *slog.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// NewHTTPClient creates a client for the server at endpoint
// (e.g. "http://localhost:8000"). There is no client-level timeout; callers
// bound each call through its context.
func NewHTTPClient(endpoint string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{},
		log:      logger.WithComponent("summarizer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the server base URL.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// Summarize posts text to /summarize and returns the summary exactly as the
// server sent it. Every failure is reported as a KindSummarization error.
func (c *HTTPClient) Summarize(ctx context.Context, text string) (string, error) {
	const op = errors.Op("summarizer.Summarize")

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := c.log.With("requestID", requestID)

	body, err := json.Marshal(SummarizeRequest{Text: text})
	if err != nil {
		return "", errors.SummarizationFailed(op, fmt.Errorf("marshal request: %w", err))
	}

	start := time.Now()
	log.Debug("requesting summary", "endpoint", c.endpoint, "chars", len(text))

	var out struct {
		Summary *string `json:"summary"`
	}
	if err := c.do(ctx, http.MethodPost, summarizePath, requestID, body, &out); err != nil {
		log.Warn("summary request failed", "error", err, "elapsed", time.Since(start))
		return "", errors.SummarizationFailed(op, err)
	}
	if out.Summary == nil {
		log.Warn("summary missing from response", "elapsed", time.Since(start))
		return "", errors.SummarizationFailed(op, fmt.Errorf("response has no summary field"))
	}

	log.Debug("summary received", "elapsed", time.Since(start), "chars", len(*out.Summary))
	return *out.Summary, nil
}

// Health queries /health.
func (c *HTTPClient) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, healthPath, uuid.NewString(), nil, &out); err != nil {
		return out, errors.E(errors.Op("summarizer.Health"), errors.KindNetwork, err)
	}
	return out, nil
}

// do performs a JSON round trip and decodes a 2xx body into out.
func (c *HTTPClient) do(ctx context.Context, method, path, requestID string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return errors.E(errors.KindInvalid, "build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.E(errors.KindIO, "read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er ErrorResponse
		if json.Unmarshal(data, &er) == nil && er.Detail != "" {
			return errors.E(errors.KindNetwork, fmt.Sprintf("status %d", resp.StatusCode), fmt.Errorf("%s", er.Detail))
		}
		return errors.E(errors.KindNetwork, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.E(errors.KindInvalid, "decode response", err)
	}
	return nil
}

func classifyTransportError(ctx context.Context, err error) error {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return errors.E(errors.KindTimeout, err)
	case context.Canceled:
		return errors.E(errors.KindCanceled, err)
	}
	return errors.E(errors.KindNetwork, err)
}
