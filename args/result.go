package args

import (
	"fmt"
	"sync"
)

// Result holds the parsed state of one definition: the current value
// (seeded with the definition default), whether the user supplied it, and
// the memoized validation outcome.
type Result struct {
	def   *Definition
	value Value
	isSet bool

	validateOnce sync.Once
	valid        bool
	reason       string
}

func newResult(def *Definition) *Result {
	return &Result{def: def, value: def.Default}
}

// validate runs the definition's validator at most once and caches the
// outcome. The failure reason is reported to the diagnostic writer the
// first time it is discovered. Safe for concurrent first access.
func (r *Result) validate(p *Parser) bool {
	r.validateOnce.Do(func() {
		if r.def.validator == nil {
			r.valid = true
			return
		}
		if err := r.def.validator(r.value, r.def.Type); err != nil {
			r.reason = err.Error()
			fmt.Fprintf(p.io.Err(), "validation error for %s: %s\n", r.def.Long, r.reason)
			return
		}
		r.valid = true
	})
	return r.valid
}

// Legacy accessors. Unknown name, type mismatch and validation failure all
// collapse to the zero or default value; callers that need to tell those
// apart use Lookup instead.

// GetFlag returns the flag value for the given long name, or false when the
// name is unknown, the definition is not a flag, or validation failed.
func (p *Parser) GetFlag(long string) bool {
	if r, ok := p.results[long]; ok {
		if r.validate(p) && r.def.Type == TypeFlag {
			return r.value.Bool()
		}
	}
	return false
}

// GetString returns the string value for the given long name, or "" when
// the name is unknown, the definition is not a string, or validation failed.
func (p *Parser) GetString(long string) string {
	if r, ok := p.results[long]; ok {
		if r.validate(p) && r.def.Type == TypeString {
			return r.value.String()
		}
	}
	return ""
}

// GetInt returns the integer value for the given long name. When validation
// fails the definition's default is returned, matching the legacy surface;
// an unknown name or non-int definition yields 0.
func (p *Parser) GetInt(long string) int32 {
	if r, ok := p.results[long]; ok {
		if r.validate(p) && r.def.Type == TypeInt {
			return r.value.Int()
		}
	}
	if def, ok := p.byName[long]; ok && def.Long == long && def.Type == TypeInt {
		return def.Default.Int()
	}
	return 0
}

// GetFloat returns the float value for the given long name. When validation
// fails the definition's default is returned; an unknown name or non-float
// definition yields 0.
func (p *Parser) GetFloat(long string) float32 {
	if r, ok := p.results[long]; ok {
		if r.validate(p) && r.def.Type == TypeFloat {
			return r.value.Float()
		}
	}
	if def, ok := p.byName[long]; ok && def.Long == long && def.Type == TypeFloat {
		return def.Default.Float()
	}
	return 0
}

// IsSet reports whether the user explicitly supplied the argument. The
// report is independent of the validation outcome, though like every
// accessor it counts as the first touch that triggers lazy validation.
func (p *Parser) IsSet(long string) bool {
	r, ok := p.results[long]
	if !ok {
		return false
	}
	r.validate(p)
	return r.isSet
}

// Lookup is the richer accessor: it returns the stored value or a typed
// error distinguishing an unknown name from a rejected value.
func (p *Parser) Lookup(long string) (Value, error) {
	r, ok := p.results[long]
	if !ok {
		return Value{}, &ParseError{
			Type:     ErrorTypeNotFound,
			Message:  "no argument registered as " + long,
			Argument: long,
		}
	}
	if !r.validate(p) {
		return Value{}, &ParseError{
			Type:     ErrorTypeValidation,
			Message:  "validation failed for " + long + ": " + r.reason,
			Argument: long,
		}
	}
	return r.value, nil
}
