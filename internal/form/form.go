// Package form holds the summarize form's state and its submission lifecycle.
//
// Every transition is a pure function from (State, event) to a new State, so
// the lifecycle can be exercised without a terminal or a network. The
// Bubble Tea model in internal/app owns one State value and feeds it events:
//
//	Idle --Submit--> Submitting --Succeed--> Idle (Result = Success)
//	                            --Fail-----> Idle (Result = Failure)
//	                            --Cancel---> Idle (Result = Empty)
//
// Completions carry the token handed to Submit. A completion whose token does
// not match the in-flight request is ignored, so a late response from an
// abandoned request can never overwrite newer state.
package form

import (
	"strings"

	"github.com/rivo/uniseg"
)

// ErrorMessage is the fixed text shown in place of a summary when the
// summarization call fails for any reason.
const ErrorMessage = "Error generating summary."

// ResultKind discriminates the result panel contents.
type ResultKind int

const (
	ResultEmpty ResultKind = iota
	ResultSuccess
	ResultFailure
)

// String returns a human-readable name for the kind
func (k ResultKind) String() string {
	switch k {
	case ResultEmpty:
		return "Empty"
	case ResultSuccess:
		return "Success"
	case ResultFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Result is the outcome of the most recent submission.
type Result struct {
	Kind ResultKind
	// Text is the summary verbatim for Success and ErrorMessage for Failure.
	Text string
	// Reason is the diagnostic detail of a failure. Never shown to the user.
	Reason string
}

// Display returns what the result panel shows. Empty results display "".
func (r Result) Display() string {
	if r.Kind == ResultEmpty {
		return ""
	}
	return r.Text
}

// IsEmpty reports whether there is nothing to show yet.
func (r Result) IsEmpty() bool {
	return r.Kind == ResultEmpty
}

// Success builds a successful result holding text exactly as received.
func Success(text string) Result {
	return Result{Kind: ResultSuccess, Text: text}
}

// Failure builds a failed result. reason is kept for diagnostics only.
func Failure(reason string) Result {
	return Result{Kind: ResultFailure, Text: ErrorMessage, Reason: reason}
}

// Phase is the lifecycle phase derived from a State.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
)

// String returns a human-readable name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSubmitting:
		return "Submitting"
	default:
		return "Unknown"
	}
}

// State is the form's entire mutable state.
type State struct {
	Input   string
	Result  Result
	Loading bool
	// Pending is the token of the in-flight submission, empty when idle.
	Pending string
}

// Phase returns the current lifecycle phase.
func (s State) Phase() Phase {
	if s.Loading {
		return PhaseSubmitting
	}
	return PhaseIdle
}

// CanSubmit reports whether the submit action is enabled: not loading and
// the input has non-whitespace content. This is the only input validation.
func CanSubmit(s State) bool {
	return !s.Loading && strings.TrimSpace(s.Input) != ""
}

// Edit replaces the input text. Editing is allowed while a request is in
// flight; the request keeps the payload it was started with.
func Edit(s State, text string) State {
	s.Input = text
	return s
}

// Submit starts a submission identified by token. It returns the state
// unchanged and false when CanSubmit is false; the caller must not issue a
// request in that case. On success the previous result is cleared and the
// form enters the loading phase before any request is made.
func Submit(s State, token string) (State, bool) {
	if !CanSubmit(s) || token == "" {
		return s, false
	}
	s.Result = Result{}
	s.Loading = true
	s.Pending = token
	return s, true
}

// Succeed completes the submission identified by token with summary.
func Succeed(s State, token, summary string) State {
	if !s.owns(token) {
		return s
	}
	s.Result = Success(summary)
	return s.settle()
}

// Fail completes the submission identified by token with an error. The
// displayed result becomes ErrorMessage regardless of the cause.
func Fail(s State, token string, err error) State {
	if !s.owns(token) {
		return s
	}
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	s.Result = Failure(reason)
	return s.settle()
}

// Cancel abandons the submission identified by token. The result panel
// stays empty and any later completion for token is ignored.
func Cancel(s State, token string) State {
	if !s.owns(token) {
		return s
	}
	return s.settle()
}

// CharCount returns the number of user-perceived characters in the input.
func CharCount(s State) int {
	return uniseg.GraphemeClusterCount(s.Input)
}

func (s State) owns(token string) bool {
	return s.Loading && token != "" && token == s.Pending
}

func (s State) settle() State {
	s.Loading = false
	s.Pending = ""
	return s
}
