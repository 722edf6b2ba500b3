package args

import "errors"

// ExitCodes maps error categories to conventional process exit codes. The
// mapping is advisory: the library never calls os.Exit, it only suggests a
// code for callers that want shell-friendly behavior.
type ExitCodes struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

// DefaultExitCodes returns the conventional mapping.
func DefaultExitCodes() ExitCodes {
	return ExitCodes{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// Resolve converts an error returned by Parse or Lookup to an exit code.
func (c ExitCodes) Resolve(err error) int {
	if err == nil {
		return c.Success
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		switch pe.Type {
		case ErrorTypeUnknownArgument, ErrorTypeMissingValue,
			ErrorTypeMissingRequired, ErrorTypeInvalidDefinition:
			return c.MisusageError
		case ErrorTypeValidation:
			return c.ValidationError
		case ErrorTypeNotFound:
			return c.GeneralError
		}
	}
	return c.GeneralError
}

// ExitCode resolves err against the default mapping.
func ExitCode(err error) int {
	return DefaultExitCodes().Resolve(err)
}
