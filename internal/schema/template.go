package schema

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/keys"
)

// ParseTemplate parses a positional template such as `<input> [names...]`
// into its tokens and checks the ordering invariants.
func ParseTemplate(tmpl string) ([]PositionalToken, error) {
	fields := strings.Fields(tmpl)
	tokens := make([]PositionalToken, 0, len(fields))
	for _, field := range fields {
		tok, err := parseToken(field)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	if err := ValidateTemplate(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// MustParseTemplate is like ParseTemplate but panics on error. It is meant
// for templates written as Go literals.
func MustParseTemplate(tmpl string) []PositionalToken {
	tokens, err := ParseTemplate(tmpl)
	if err != nil {
		panic(err)
	}
	return tokens
}

func parseToken(field string) (PositionalToken, error) {
	if len(field) < 3 {
		return PositionalToken{}, &argerr.SchemaError{Subject: field, Rule: "template token must be <name> or [name]"}
	}

	var tok PositionalToken
	open, closing := field[0], field[len(field)-1]
	switch {
	case open == '<' && closing == '>':
		tok.Required = true
	case open == '[' && closing == ']':
	default:
		return PositionalToken{}, &argerr.SchemaError{Subject: field, Rule: "template token must be <name> or [name]"}
	}

	name := field[1 : len(field)-1]
	if strings.HasSuffix(name, "...") {
		tok.Variadic = true
		name = strings.TrimSuffix(name, "...")
	}
	if !keys.Valid(name) {
		return PositionalToken{}, &argerr.SchemaError{Subject: field, Rule: fmt.Sprintf("invalid positional name %q", name)}
	}
	tok.Name = name
	return tok, nil
}

// ValidateTemplate enforces the ordering invariants of a template: only the
// last token may be variadic, no required token may follow an optional one
// and names are unique.
func ValidateTemplate(tokens []PositionalToken) error {
	seenOptional := false
	names := make(map[string]struct{}, len(tokens))
	for i, tok := range tokens {
		if !keys.Valid(tok.Name) {
			return &argerr.SchemaError{Subject: tok.String(), Rule: fmt.Sprintf("invalid positional name %q", tok.Name)}
		}
		if tok.Variadic && i != len(tokens)-1 {
			return &argerr.SchemaError{Subject: tok.String(), Rule: "only the last positional may be variadic"}
		}
		if !tok.Required {
			seenOptional = true
		} else if seenOptional {
			return &argerr.SchemaError{Subject: tok.String(), Rule: "required positional cannot follow an optional one"}
		}
		for _, n := range spellings(tok.Name) {
			if _, dup := names[n]; dup {
				return &argerr.SchemaError{Subject: tok.String(), Rule: fmt.Sprintf("duplicate positional name %q", n)}
			}
			names[n] = struct{}{}
		}
	}
	return nil
}

// spellings returns name and, when it differs, its camelCase mirror.
func spellings(name string) []string {
	if camel := keys.CamelCase(name); camel != name {
		return []string{name, camel}
	}
	return []string{name}
}
