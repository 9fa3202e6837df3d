package form

import (
	"errors"
	"testing"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		loading bool
		want    bool
	}{
		{"empty idle", "", false, false},
		{"empty loading", "", true, false},
		{"spaces idle", "   ", false, false},
		{"whitespace mix loading", " \t\n ", true, false},
		{"text idle", "Patient reports mild fever.", false, true},
		{"text with padding idle", "  text  ", false, true},
		{"text loading", "text", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Input: tt.input, Loading: tt.loading}
			if got := CanSubmit(s); got != tt.want {
				t.Errorf("CanSubmit(%q, loading=%v) = %v, want %v", tt.input, tt.loading, got, tt.want)
			}
		})
	}
}

func TestSubmit_EntersLoadingBeforeCompletion(t *testing.T) {
	s := Edit(State{}, "text")
	s.Result = Success("old summary")

	next, ok := Submit(s, "tok-1")
	if !ok {
		t.Fatal("Submit should be accepted for non-empty input")
	}
	if !next.Loading {
		t.Error("Loading should be true immediately after Submit")
	}
	if !next.Result.IsEmpty() {
		t.Errorf("previous result should be cleared, got %+v", next.Result)
	}
	if next.Pending != "tok-1" {
		t.Errorf("Pending = %q, want tok-1", next.Pending)
	}
	if next.Phase() != PhaseSubmitting {
		t.Errorf("Phase = %v, want Submitting", next.Phase())
	}
	if next.Input != "text" {
		t.Errorf("Submit must not alter input, got %q", next.Input)
	}
}

func TestSubmit_RejectedWhenDisabled(t *testing.T) {
	prior := Success("kept")
	for _, input := range []string{"", "   "} {
		s := State{Input: input, Result: prior}
		next, ok := Submit(s, "tok")
		if ok {
			t.Errorf("Submit(%q) should be rejected", input)
		}
		if next != s {
			t.Errorf("rejected Submit must not change state: got %+v", next)
		}
		if next.Result.Display() != "kept" {
			t.Errorf("result should remain unchanged, got %q", next.Result.Display())
		}
	}
}

func TestSubmit_RejectedWithoutToken(t *testing.T) {
	s := Edit(State{}, "text")
	if _, ok := Submit(s, ""); ok {
		t.Error("Submit with empty token should be rejected")
	}
}

func TestSubmit_SecondSubmitWhileLoadingIsNoop(t *testing.T) {
	s, _ := Submit(Edit(State{}, "text"), "first")

	again, ok := Submit(s, "second")
	if ok {
		t.Error("second Submit while loading should be rejected")
	}
	if again != s {
		t.Errorf("state changed on rejected Submit: %+v -> %+v", s, again)
	}
}

func TestSucceed_StoresTextVerbatim(t *testing.T) {
	summaries := []string{
		"Patient has mild fever.",
		"  leading and trailing whitespace \n",
		"line one\n\nline two\ttabbed",
		"",
	}
	for _, summary := range summaries {
		s, _ := Submit(Edit(State{}, "text"), "tok")
		s = Succeed(s, "tok", summary)

		if s.Loading {
			t.Errorf("Loading should be false after success")
		}
		if s.Result.Kind != ResultSuccess {
			t.Errorf("Kind = %v, want Success", s.Result.Kind)
		}
		if s.Result.Text != summary {
			t.Errorf("Text = %q, want %q", s.Result.Text, summary)
		}
		if s.Pending != "" {
			t.Errorf("Pending should be cleared, got %q", s.Pending)
		}
	}
}

func TestFail_DisplaysFixedMessage(t *testing.T) {
	causes := []error{
		errors.New("dial tcp: connection refused"),
		errors.New("status 500: model crashed"),
		nil,
	}
	for _, cause := range causes {
		s, _ := Submit(Edit(State{}, "text"), "tok")
		s = Fail(s, "tok", cause)

		if s.Loading {
			t.Error("Loading should be false after failure")
		}
		if got := s.Result.Display(); got != "Error generating summary." {
			t.Errorf("Display() = %q, want fixed error message", got)
		}
		if s.Result.Kind != ResultFailure {
			t.Errorf("Kind = %v, want Failure", s.Result.Kind)
		}
		if cause != nil && s.Result.Reason != cause.Error() {
			t.Errorf("Reason = %q, want %q", s.Result.Reason, cause.Error())
		}
	}
}

func TestResult_FailureDistinguishableFromMatchingSuccess(t *testing.T) {
	ok := Success(ErrorMessage)
	failed := Failure("boom")

	if ok.Display() != failed.Display() {
		t.Fatal("test precondition: displays should match")
	}
	if ok.Kind == failed.Kind {
		t.Error("a success that reads like the error literal must still be a Success")
	}
}

func TestCancel(t *testing.T) {
	s, _ := Submit(Edit(State{}, "text"), "tok")
	s = Cancel(s, "tok")

	if s.Loading || s.Pending != "" {
		t.Errorf("Cancel should settle the form, got %+v", s)
	}
	if !s.Result.IsEmpty() {
		t.Errorf("Cancel should leave result empty, got %+v", s.Result)
	}

	// The canceled request finishing late must not resurface.
	late := Succeed(s, "tok", "late summary")
	if late != s {
		t.Errorf("late completion after cancel changed state: %+v", late)
	}
}

func TestStaleCompletionIgnored(t *testing.T) {
	s, _ := Submit(Edit(State{}, "text"), "old")
	s = Cancel(s, "old")
	s, _ = Submit(s, "new")

	afterStale := Succeed(s, "old", "stale")
	if afterStale != s {
		t.Errorf("stale success changed state: %+v", afterStale)
	}
	afterStale = Fail(s, "old", errors.New("stale"))
	if afterStale != s {
		t.Errorf("stale failure changed state: %+v", afterStale)
	}

	s = Succeed(s, "new", "fresh")
	if s.Result.Display() != "fresh" {
		t.Errorf("Display() = %q, want fresh", s.Result.Display())
	}
}

func TestCompletionWhileIdleIgnored(t *testing.T) {
	s := State{Input: "text", Result: Success("kept")}
	if got := Succeed(s, "tok", "other"); got != s {
		t.Errorf("completion while idle changed state: %+v", got)
	}
}

func TestEdit_AllowedWhileLoading(t *testing.T) {
	s, _ := Submit(Edit(State{}, "text"), "tok")
	s = Edit(s, "more text")

	if !s.Loading {
		t.Error("editing must not affect the in-flight submission")
	}
	if s.Input != "more text" {
		t.Errorf("Input = %q", s.Input)
	}
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"fièvre", 6},
		{"🤒 fever", 7},
		{"e\u0301", 1}, // combining acute accent forms one character
	}
	for _, tt := range tests {
		if got := CharCount(State{Input: tt.input}); got != tt.want {
			t.Errorf("CharCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// Scenario A: a successful round trip.
func TestScenario_Success(t *testing.T) {
	s := Edit(State{}, "Patient reports mild fever.")
	s, ok := Submit(s, "a")
	if !ok {
		t.Fatal("submit should be enabled")
	}
	s = Succeed(s, "a", "Patient has mild fever.")

	if s.Result.Display() != "Patient has mild fever." || s.Loading {
		t.Errorf("unexpected final state %+v", s)
	}
}

// Scenario C: the client fails.
func TestScenario_Failure(t *testing.T) {
	s := Edit(State{}, "text")
	s, _ = Submit(s, "c")
	s = Fail(s, "c", errors.New("rejected"))

	if s.Result.Display() != ErrorMessage || s.Loading {
		t.Errorf("unexpected final state %+v", s)
	}
}

func TestKindAndPhaseStrings(t *testing.T) {
	if ResultSuccess.String() != "Success" || ResultKind(42).String() != "Unknown" {
		t.Error("unexpected ResultKind strings")
	}
	if PhaseIdle.String() != "Idle" || PhaseSubmitting.String() != "Submitting" {
		t.Error("unexpected Phase strings")
	}
}
