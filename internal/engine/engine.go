package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/medsum/medsum/internal/cache"
	"github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/logger"
)

// Defaults for Options fields left at zero.
const (
	DefaultMaxInputChars = 4000
	DefaultChunkOverlap  = 200
	DefaultConcurrency   = 4
	DefaultCacheTTL      = time.Hour
)

// Options tunes an Engine.
type Options struct {
	// MaxInputChars is the largest text summarized in a single pass.
	MaxInputChars int
	// ChunkOverlap is the number of characters shared by consecutive chunks.
	ChunkOverlap int
	// Concurrency bounds how many chunks are summarized at once.
	Concurrency int
	// Cache stores finished summaries. Nil disables caching.
	Cache    cache.Cache
	CacheTTL time.Duration
}

// Engine turns arbitrarily long text into one short summary.
type Engine struct {
	model   Model
	opts    Options
	variant string
	log     *slog.Logger
}

// New creates an engine around model.
func New(model Model, opts Options) *Engine {
	if opts.MaxInputChars <= 0 {
		opts.MaxInputChars = DefaultMaxInputChars
	}
	if opts.ChunkOverlap < 0 {
		opts.ChunkOverlap = 0
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Cache == nil {
		opts.Cache = cache.Nop{}
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Engine{
		model: model,
		opts:  opts,
		variant: fmt.Sprintf("%s|%d|%d|%d-%d|%d-%d",
			model.Info().Name, opts.MaxInputChars, opts.ChunkOverlap,
			DefaultLength.MinTokens, DefaultLength.MaxTokens,
			CondenseLength.MinTokens, CondenseLength.MaxTokens),
		log: logger.WithComponent("engine"),
	}
}

// Info reports the underlying model.
func (e *Engine) Info() Info {
	return e.model.Info()
}

// Summarize returns a summary of text. Text that fits in MaxInputChars is
// summarized in one pass. Longer text is chunked, each chunk summarized,
// and the joined chunk summaries condensed in a final pass.
func (e *Engine) Summarize(ctx context.Context, text string) (string, error) {
	const op = errors.Op("engine.Summarize")

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.EmptyInput(op)
	}

	key := cache.Key(e.variant, text)
	if summary, ok, err := e.opts.Cache.Get(ctx, key); err != nil {
		e.log.Warn("cache read failed", "error", err)
	} else if ok {
		e.log.Debug("cache hit", "key", key)
		return summary, nil
	}

	start := time.Now()
	summary, err := e.summarize(ctx, text)
	if err != nil {
		return "", errors.SummarizationFailed(op, err)
	}
	e.log.Info("summarized", "chars", utf8.RuneCountInString(text), "elapsed", time.Since(start))

	if err := e.opts.Cache.Set(ctx, key, summary, e.opts.CacheTTL); err != nil {
		e.log.Warn("cache write failed", "error", err)
	}
	return summary, nil
}

func (e *Engine) summarize(ctx context.Context, text string) (string, error) {
	if utf8.RuneCountInString(text) <= e.opts.MaxInputChars {
		return e.model.Summarize(ctx, text, DefaultLength)
	}

	chunks := Chunk(text, e.opts.MaxInputChars, e.opts.ChunkOverlap)
	e.log.Debug("chunked input", "chunks", len(chunks))

	partials := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			s, err := e.model.Summarize(gctx, chunk, DefaultLength)
			if err != nil {
				return err
			}
			partials[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return e.model.Summarize(ctx, strings.Join(partials, " "), CondenseLength)
}
