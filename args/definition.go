package args

import (
	"fmt"
	"strings"
)

// ValidatorFunc checks a parsed value beyond type correctness. It receives
// the stored value and the declared type of its definition; a non-nil error
// rejects the value and its message is kept as the validation reason.
// Checking that the declared type matches the validator's expectation is the
// validator's own responsibility.
type ValidatorFunc func(value Value, typ Type) error

// Definition is a declared, named, typed argument. Immutable once registered
// except for validator attachment via Parser.SetValidator.
type Definition struct {
	Short       string // optional short form including the dash, e.g. "-v"
	Long        string // canonical key including dashes, e.g. "--verbose"
	Description string
	Type        Type
	Required    bool
	Default     Value

	validator ValidatorFunc
}

// RequiresValue reports whether the definition consumes the next token.
func (d *Definition) RequiresValue() bool {
	return d.Type != TypeFlag
}

// Validation helper constructors. These mirror the shapes callers reach for
// most often; anything else is a hand-written ValidatorFunc.

// Range builds a validator enforcing min <= value <= max for numeric
// definitions. A value of the wrong variant is rejected.
func Range[T int32 | float32](min, max T) ValidatorFunc {
	return func(value Value, typ Type) error {
		var got T
		switch typ {
		case TypeInt:
			got = T(value.Int())
		case TypeFloat:
			got = T(value.Float())
		case TypeFlag, TypeString:
			return fmt.Errorf("range validator requires a numeric argument, got %s", typ)
		default:
			return fmt.Errorf("range validator requires a numeric argument, got %s", typ)
		}
		if got < min || got > max {
			return fmt.Errorf("value %v is not within range [%v, %v]", got, min, max)
		}
		return nil
	}
}

// OneOf builds a validator accepting only the listed string values.
func OneOf(values ...string) ValidatorFunc {
	return func(value Value, typ Type) error {
		if typ != TypeString {
			return fmt.Errorf("one-of validator requires a string argument, got %s", typ)
		}
		got := value.String()
		for _, v := range values {
			if got == v {
				return nil
			}
		}
		return fmt.Errorf("value %q is not one of the allowed values: %v", got, values)
	}
}

// Suffix builds a validator requiring a string value to end with suffix.
func Suffix(suffix string) ValidatorFunc {
	return func(value Value, typ Type) error {
		if typ != TypeString {
			return fmt.Errorf("suffix validator requires a string argument, got %s", typ)
		}
		if got := value.String(); !strings.HasSuffix(got, suffix) {
			return fmt.Errorf("value %q must end with %q", got, suffix)
		}
		return nil
	}
}
