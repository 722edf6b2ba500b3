//nolint:testpackage // using package name 'args' to access unexported fields for testing
package args

import (
	"errors"
	"strings"
	"testing"
)

func TestUnknownArgumentSuggestion(t *testing.T) {
	p := newTestParser(t)
	if err := p.AddFlag("-v", "--verbose", "verbose", false); err != nil {
		t.Fatalf("AddFlag failed: %v", err)
	}
	if err := p.AddString("-o", "--output", "output", false, ""); err != nil {
		t.Fatalf("AddString failed: %v", err)
	}

	err := p.Parse([]string{"--verbse"})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
	if pe.Suggestion != "--verbose" {
		t.Errorf("Expected suggestion '--verbose', got %q", pe.Suggestion)
	}
	if !strings.Contains(pe.Error(), "did you mean '--verbose'") {
		t.Errorf("Expected rendered suggestion in message, got %q", pe.Error())
	}
}

func TestSuggestionsCanBeDisabled(t *testing.T) {
	p := newTestParser(t)
	p.ErrorHandler().Suggestions(false)
	if err := p.AddFlag("-v", "--verbose", "verbose", false); err != nil {
		t.Fatalf("AddFlag failed: %v", err)
	}

	err := p.Parse([]string{"--verbse"})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
	if pe.Suggestion != "" {
		t.Errorf("Expected no suggestion, got %q", pe.Suggestion)
	}
}

func TestNoSuggestionForDistantTypos(t *testing.T) {
	p := newTestParser(t)
	if err := p.AddFlag("-v", "--verbose", "verbose", false); err != nil {
		t.Fatalf("AddFlag failed: %v", err)
	}

	err := p.Parse([]string{"--zzzzzz"})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
	if pe.Suggestion != "" {
		t.Errorf("Expected no suggestion for unrelated token, got %q", pe.Suggestion)
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError(ErrorTypeMissingValue, "missing value for argument: --count")
	if err.Error() != "missing value for argument: --count" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{&ParseError{Type: ErrorTypeUnknownArgument}, 2},
		{&ParseError{Type: ErrorTypeMissingValue}, 2},
		{&ParseError{Type: ErrorTypeMissingRequired}, 2},
		{&ParseError{Type: ErrorTypeInvalidDefinition}, 2},
		{&ParseError{Type: ErrorTypeValidation}, 3},
		{&ParseError{Type: ErrorTypeNotFound}, 1},
		{errors.New("some other failure"), 1},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestExitCodeCustomMapping(t *testing.T) {
	codes := ExitCodes{Success: 0, GeneralError: 10, MisusageError: 64, ValidationError: 65}
	if got := codes.Resolve(&ParseError{Type: ErrorTypeUnknownArgument}); got != 64 {
		t.Errorf("Expected custom misusage code 64, got %d", got)
	}
	if got := codes.Resolve(&ParseError{Type: ErrorTypeValidation}); got != 65 {
		t.Errorf("Expected custom validation code 65, got %d", got)
	}
}
