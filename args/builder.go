package args

import "strings"

// Builder provides fluent, type-safe configuration sugar over the Add*
// contract. Definitions are registered when the builder is created; a bad
// registration (empty or duplicate name) is recorded and surfaced by the
// next Parse call instead of panicking mid-chain.
type Builder[T bool | string | int32 | float32] struct {
	parser *Parser
	def    *Definition
}

// Flag declares a boolean flag and returns its builder.
func (p *Parser) Flag(long, description string) *Builder[bool] {
	return newBuilder[bool](p, long, description, TypeFlag, BoolValue(false))
}

// String declares a string argument and returns its builder.
func (p *Parser) String(long, description string) *Builder[string] {
	return newBuilder[string](p, long, description, TypeString, StringValue(""))
}

// Int declares a 32-bit integer argument and returns its builder.
func (p *Parser) Int(long, description string) *Builder[int32] {
	return newBuilder[int32](p, long, description, TypeInt, IntValue(0))
}

// Float declares a 32-bit float argument and returns its builder.
func (p *Parser) Float(long, description string) *Builder[float32] {
	return newBuilder[float32](p, long, description, TypeFloat, FloatValue(0))
}

func newBuilder[T bool | string | int32 | float32](p *Parser, long, description string, typ Type, def Value) *Builder[T] {
	d := &Definition{
		Long:        long,
		Description: description,
		Type:        typ,
		Default:     def,
	}
	if err := p.add(d); err != nil {
		if p.defErr == nil {
			p.defErr = err.(*ParseError)
		}
		// The orphan definition is still handed to the builder so the rest
		// of the chain stays inert instead of nil-panicking.
	}
	return &Builder[T]{parser: p, def: d}
}

// Short attaches a short form (including the dash, e.g. "-v").
func (b *Builder[T]) Short(short string) *Builder[T] {
	if short == "" {
		return b
	}
	if _, exists := b.parser.byName[short]; exists {
		if b.parser.defErr == nil {
			b.parser.defErr = invalidDefinition("duplicate argument name: %s", short)
		}
		return b
	}
	b.def.Short = short
	b.parser.byName[short] = b.def
	return b
}

// Default sets the default value. String defaults are copied.
func (b *Builder[T]) Default(value T) *Builder[T] {
	switch v := any(value).(type) {
	case bool:
		b.def.Default = BoolValue(v)
	case string:
		b.def.Default = StringValue(strings.Clone(v))
	case int32:
		b.def.Default = IntValue(v)
	case float32:
		b.def.Default = FloatValue(v)
	}
	return b
}

// Required marks the argument as required. Flags stay optional: their
// absence already means false.
func (b *Builder[T]) Required() *Builder[T] {
	if b.def.Type != TypeFlag {
		b.def.Required = true
	}
	return b
}

// Validate attaches a type-safe validator. The wrapper unpacks the stored
// value for the builder's own type, so a mismatch cannot reach fn.
func (b *Builder[T]) Validate(fn func(T) error) *Builder[T] {
	b.def.validator = func(v Value, _ Type) error {
		var got T
		switch t := any(&got).(type) {
		case *bool:
			*t = v.Bool()
		case *string:
			*t = v.String()
		case *int32:
			*t = v.Int()
		case *float32:
			*t = v.Float()
		}
		return fn(got)
	}
	return b
}
