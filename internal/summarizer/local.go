package summarizer

import (
	"context"
	"time"

	"github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/logger"
)

// Local runs summarization in-process, skipping HTTP entirely. It wraps any
// backend (normally *engine.Engine) so its failures surface with the same
// kind as HTTPClient failures.
type Local struct {
	backend Client
}

// NewLocal wraps backend as a Client.
func NewLocal(backend Client) *Local {
	return &Local{backend: backend}
}

// Summarize delegates to the backend.
func (l *Local) Summarize(ctx context.Context, text string) (string, error) {
	const op = errors.Op("summarizer.Local")

	log := logger.WithComponent("summarizer").With("requestID", RequestIDFromContext(ctx), "mode", "local")
	start := time.Now()

	summary, err := l.backend.Summarize(ctx, text)
	if err != nil {
		log.Warn("local summary failed", "error", err, "elapsed", time.Since(start))
		return "", errors.SummarizationFailed(op, err)
	}
	log.Debug("local summary done", "elapsed", time.Since(start))
	return summary, nil
}
