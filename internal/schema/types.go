package schema

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/seedline/internal/result"
)

// DefaultCommand is the name of the command resolved when the first
// positional argument does not name a declared command.
const DefaultCommand = "default"

// negationPrefix marks a boolean option whose presence turns off an implied
// positive key.
const negationPrefix = "no-"

// ValueType is the declared type of an option.
type ValueType int

const (
	// TypeUnset lets New infer the type from the default value.
	TypeUnset ValueType = iota
	// TypeBoolean flags take no value.
	TypeBoolean
	// TypeString flags always consume the next token.
	TypeString
	// TypeEither flags are true when bare, a string when given a value and
	// false when absent.
	TypeEither
)

// ParseValueType converts the type keyword used in schema files.
func ParseValueType(s string) (ValueType, error) {
	switch strings.ToLower(s) {
	case "boolean", "bool":
		return TypeBoolean, nil
	case "string":
		return TypeString, nil
	case "either":
		return TypeEither, nil
	default:
		return TypeUnset, fmt.Errorf("unknown option type %q: must be 'boolean', 'string' or 'either'", s)
	}
}

// String returns the schema keyword for t.
func (t ValueType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeEither:
		return "either"
	default:
		return "unset"
	}
}

// TakesValue reports whether a flag of this type may consume the next token.
func (t ValueType) TakesValue() bool {
	return t == TypeString || t == TypeEither
}

// OptionSpec declares a single named option.
type OptionSpec struct {
	Key         string
	Alias       string
	Type        ValueType
	Default     *result.Value
	Description string
	// Hidden options are accepted but left out of usage output.
	Hidden bool
}

// NegatedKey returns the implied positive key of a negated boolean option,
// e.g. `quit` for `no-quit`.
func (o OptionSpec) NegatedKey() (string, bool) {
	if o.Type != TypeBoolean || !strings.HasPrefix(o.Key, negationPrefix) {
		return "", false
	}
	return strings.TrimPrefix(o.Key, negationPrefix), true
}

// PositionalToken is one slot of a command's positional template.
type PositionalToken struct {
	Name     string
	Required bool
	Variadic bool
}

// String renders the token in template syntax: `<name>`, `[name]`,
// `<name...>` or `[name...]`.
func (p PositionalToken) String() string {
	name := p.Name
	if p.Variadic {
		name += "..."
	}
	if p.Required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

// CommandSpec declares a command and its positional template.
type CommandSpec struct {
	Name        string
	Template    []PositionalToken
	Handler     string
	Description string
	Hidden      bool
}

// IsDefault reports whether c is the default command.
func (c CommandSpec) IsDefault() bool {
	return c.Name == DefaultCommand
}

// Usage renders the template of c, e.g. `seed <inputs...>`. The default
// command renders its template alone.
func (c CommandSpec) Usage() string {
	parts := make([]string, 0, len(c.Template)+1)
	if !c.IsDefault() {
		parts = append(parts, c.Name)
	}
	for _, tok := range c.Template {
		parts = append(parts, tok.String())
	}
	return strings.Join(parts, " ")
}
