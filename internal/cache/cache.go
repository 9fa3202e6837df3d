// Package cache stores finished summaries keyed by the text they summarize,
// so resubmitting the same notes does not pay for another model call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a summary store. Implementations must be safe for concurrent use.
// A miss is ("", false, nil); an error means the backend itself failed.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, summary string, ttl time.Duration) error
	Close() error
}

// KeyPrefix namespaces summary keys in shared stores.
const KeyPrefix = "medsum:summary:"

// Key derives the cache key for text summarized under variant. The variant
// names whatever shapes the output (model, chunking, lengths), so a shared
// store never serves a summary made with different settings.
func Key(variant, text string) string {
	h := sha256.New()
	h.Write([]byte(variant))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return KeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (string, bool, error)        { return "", false, nil }
func (Nop) Set(context.Context, string, string, time.Duration) error { return nil }
func (Nop) Close() error                                             { return nil }
