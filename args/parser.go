package args

import (
	"strings"

	argio "github.com/dzonerzy/go-args/io"
)

// Parser owns the full declaration/parse/validate/retrieve lifecycle: an
// ordered definition table, the result set of the most recent Parse call and
// the accumulated positional arguments.
//
// Registration and Parse mutate the parser and are not safe for concurrent
// use. After a successful Parse, accessors may run concurrently; the lazy
// validation transition is guarded per result.
type Parser struct {
	defs   []*Definition
	byName map[string]*Definition // short and long forms share one index

	results     map[string]*Result // keyed by long name, rebuilt per Parse
	positionals []string

	errorHandler *ErrorHandler
	io           *argio.IOManager

	defErr *ParseError // first deferred builder registration error
}

// NewParser creates an empty argument parser.
func NewParser() *Parser {
	return &Parser{
		byName:       make(map[string]*Definition),
		errorHandler: NewErrorHandler(),
		io:           argio.New(),
	}
}

// IO returns the parser's IO manager for fluent configuration.
func (p *Parser) IO() *argio.IOManager { return p.io }

// ErrorHandler returns the handler decorating unknown-argument errors.
func (p *Parser) ErrorHandler() *ErrorHandler { return p.errorHandler }

// Definitions returns the definition table in registration order.
func (p *Parser) Definitions() []*Definition { return p.defs }

// Registration

// AddFlag appends a boolean flag definition. Flags are never required:
// absence simply means false.
func (p *Parser) AddFlag(short, long, description string, defaultValue bool) error {
	return p.add(&Definition{
		Short:       short,
		Long:        long,
		Description: description,
		Type:        TypeFlag,
		Default:     BoolValue(defaultValue),
	})
}

// AddString appends a string definition. The default is copied, so the
// caller's buffer may be reused afterwards.
func (p *Parser) AddString(short, long, description string, required bool, defaultValue string) error {
	return p.add(&Definition{
		Short:       short,
		Long:        long,
		Description: description,
		Type:        TypeString,
		Required:    required,
		Default:     StringValue(strings.Clone(defaultValue)),
	})
}

// AddInt appends a 32-bit integer definition.
func (p *Parser) AddInt(short, long, description string, required bool, defaultValue int32) error {
	return p.add(&Definition{
		Short:       short,
		Long:        long,
		Description: description,
		Type:        TypeInt,
		Required:    required,
		Default:     IntValue(defaultValue),
	})
}

// AddFloat appends a 32-bit float definition.
func (p *Parser) AddFloat(short, long, description string, required bool, defaultValue float32) error {
	return p.add(&Definition{
		Short:       short,
		Long:        long,
		Description: description,
		Type:        TypeFloat,
		Required:    required,
		Default:     FloatValue(defaultValue),
	})
}

// add validates and indexes a definition. Long names are mandatory and
// unique; a taken short name is rejected the same way.
func (p *Parser) add(def *Definition) error {
	if def.Long == "" {
		return invalidDefinition("argument definition requires a long name")
	}
	if _, exists := p.byName[def.Long]; exists {
		return invalidDefinition("duplicate argument name: %s", def.Long)
	}
	if def.Short != "" {
		if _, exists := p.byName[def.Short]; exists {
			return invalidDefinition("duplicate argument name: %s", def.Short)
		}
	}

	p.defs = append(p.defs, def)
	p.byName[def.Long] = def
	if def.Short != "" {
		p.byName[def.Short] = def
	}
	return nil
}

// SetValidator attaches a validator to the definition with the given long
// name. The validator runs at most once per parse, on first accessor touch.
func (p *Parser) SetValidator(long string, fn ValidatorFunc) error {
	def, ok := p.byName[long]
	if !ok || def.Long != long {
		return &ParseError{
			Type:     ErrorTypeNotFound,
			Message:  "no argument registered as " + long,
			Argument: long,
		}
	}
	def.validator = fn
	return nil
}

// Parse consumes an argv-style token vector (program name excluded) in a
// single left-to-right pass. It rebuilds the result set from scratch, so a
// second call replaces the previous parse entirely.
//
// The first error aborts the pass. Results mutated before the error are
// discarded along with the positional list; callers observing an error
// should not query the parser.
func (p *Parser) Parse(argv []string) error {
	if p.defErr != nil {
		return p.defErr
	}

	// Fresh results seeded with defaults.
	p.results = make(map[string]*Result, len(p.defs))
	for _, def := range p.defs {
		p.results[def.Long] = newResult(def)
	}
	p.positionals = nil

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if !strings.HasPrefix(token, "-") {
			p.positionals = append(p.positionals, strings.Clone(token))
			continue
		}

		// Exact, case-sensitive match against short or long names. No
		// prefixes, no abbreviations.
		def, ok := p.byName[token]
		if !ok {
			return p.fail(p.errorHandler.unknownArgument(token, p.defs))
		}
		result := p.results[def.Long]

		if def.Type == TypeFlag {
			result.value = BoolValue(true)
			result.isSet = true
			continue
		}

		// Value types consume the next token unconditionally, even when it
		// looks like an option.
		if i+1 >= len(argv) {
			return p.fail(missingValue(token))
		}
		i++
		raw := argv[i]

		switch def.Type {
		case TypeString:
			result.value = StringValue(strings.Clone(raw))
		case TypeInt:
			result.value = IntValue(atoi(raw))
		case TypeFloat:
			result.value = FloatValue(atof(raw))
		case TypeFlag:
			// unreachable, flags handled above
		}
		result.isSet = true
	}

	// Required sweep in registration order; the first offender wins.
	for _, def := range p.defs {
		if def.Required && !p.results[def.Long].isSet {
			return p.fail(missingRequired(def.Long))
		}
	}

	return nil
}

// fail drops partial positional state before surfacing a parse error.
func (p *Parser) fail(err *ParseError) error {
	p.positionals = nil
	return err
}

// Positional returns the non-option tokens of the last parse, in order.
func (p *Parser) Positional() []string {
	return p.positionals
}
