// Package engine produces summaries: it splits long notes into overlapping
// chunks, summarizes them with a Model, and condenses the partial summaries
// into one.
package engine

import "context"

// Length bounds one inference pass, in model tokens.
type Length struct {
	MinTokens int64
	MaxTokens int64
}

var (
	// DefaultLength is used for text that fits in a single pass and for each chunk.
	DefaultLength = Length{MinTokens: 20, MaxTokens: 90}
	// CondenseLength is used for the final pass over joined chunk summaries.
	CondenseLength = Length{MinTokens: 30, MaxTokens: 120}
)

// Info describes the model behind an engine, as reported by /health.
type Info struct {
	Name   string
	Device string
}

// Model performs a single summarization pass.
type Model interface {
	Summarize(ctx context.Context, text string, length Length) (string, error)
	Info() Info
}
