// Package summarizer is the client side of the summarization service.
//
// The form treats summarization as an opaque asynchronous call: text in,
// summary or error out. Any transport that satisfies Client can be used.
package summarizer

import (
	"context"
)

// Client turns input text into a summary.
type Client interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Func adapts an ordinary function to the Client interface.
type Func func(ctx context.Context, text string) (string, error)

// Summarize calls f(ctx, text).
func (f Func) Summarize(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// SummarizeRequest is the JSON body of POST /summarize.
type SummarizeRequest struct {
	Text string `json:"text"`
}

// SummarizeResponse is the JSON body returned by POST /summarize.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// HealthResponse is the JSON body returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	ModelName string `json:"model_name"`
	Device    string `json:"device"`
}

// ErrorResponse is the JSON body of any non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RequestIDHeader carries the caller's request token to the server so both
// sides log the same id.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID returns a context carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
