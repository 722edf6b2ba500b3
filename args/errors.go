package args

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-args/internal/fuzzy"
)

// ErrorType represents error categories produced by the registry and parser.
// Categories drive suggestion logic and the advisory exit-code mapping.
type ErrorType string

const (
	ErrorTypeInvalidDefinition ErrorType = "invalid_definition"
	ErrorTypeUnknownArgument   ErrorType = "unknown_argument"
	ErrorTypeMissingValue      ErrorType = "missing_value"
	ErrorTypeMissingRequired   ErrorType = "missing_required"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeValidation        ErrorType = "validation"
)

// ParseError is the single error type the library returns. Argument carries
// the offending token or long name where one exists; Suggestion is filled by
// the ErrorHandler for unknown-argument errors.
type ParseError struct {
	Type       ErrorType
	Message    string
	Argument   string
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (did you mean '" + e.Suggestion + "'?)"
	}
	return e.Message
}

// NewParseError creates a ParseError with the given category and message.
func NewParseError(typ ErrorType, message string) *ParseError {
	return &ParseError{Type: typ, Message: message}
}

// ErrorHandler decorates unknown-argument errors with fuzzy-matched
// suggestions. Suggestions are opt-out rather than opt-in: a registry with a
// handful of options is exactly where typo hints earn their keep.
type ErrorHandler struct {
	suggest     bool
	maxDistance int
}

// NewErrorHandler creates a handler with suggestions enabled and an edit
// distance budget of 2.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{suggest: true, maxDistance: 2}
}

// Suggestions enables or disables "did you mean" hints.
func (eh *ErrorHandler) Suggestions(enabled bool) *ErrorHandler {
	eh.suggest = enabled
	return eh
}

// MaxDistance sets the maximum edit distance considered a plausible typo.
func (eh *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	eh.maxDistance = distance
	return eh
}

// unknownArgument builds the UnknownArgument error for a token, consulting
// the definition table for the closest declared name.
func (eh *ErrorHandler) unknownArgument(token string, defs []*Definition) *ParseError {
	err := &ParseError{
		Type:     ErrorTypeUnknownArgument,
		Message:  "unknown argument: " + token,
		Argument: token,
	}
	if !eh.suggest {
		return err
	}

	candidates := make([]string, 0, len(defs)*2)
	for _, def := range defs {
		candidates = append(candidates, def.Long)
		if def.Short != "" {
			candidates = append(candidates, def.Short)
		}
	}
	// Match on the bare name so "--verbse" is distance 1 from "--verbose",
	// not distance 1 plus dash noise.
	input := strings.TrimLeft(token, "-")
	if best := fuzzy.FindBestOption(input, candidates, eh.maxDistance); best != "" {
		err.Suggestion = best
	}
	return err
}

// missingValue builds the MissingValue error for an option token that ran
// out of tokens to consume.
func missingValue(token string) *ParseError {
	return &ParseError{
		Type:     ErrorTypeMissingValue,
		Message:  "missing value for argument: " + token,
		Argument: token,
	}
}

// missingRequired builds the MissingRequired error for the first required
// definition left unset after the pass.
func missingRequired(long string) *ParseError {
	return &ParseError{
		Type:     ErrorTypeMissingRequired,
		Message:  "required argument missing: " + long,
		Argument: long,
	}
}

// invalidDefinition builds registration-time errors.
func invalidDefinition(format string, a ...any) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidDefinition,
		Message: fmt.Sprintf(format, a...),
	}
}
