// Package matcher resolves the command named by the leading positional
// token and binds the remaining positionals to the command's template.
package matcher

import (
	"fmt"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
)

// Resolve picks the command for positionals. The first token selects a
// command only when it is a declared command name, in which case it is
// dropped from the returned residual list. Otherwise the default command is
// resolved and the whole list is returned.
func Resolve(positionals []string, s *schema.Schema) (schema.CommandSpec, []string) {
	if len(positionals) > 0 {
		if cmd, ok := s.Resolve(positionals[0]); ok {
			return cmd, positionals[1:]
		}
	}
	return s.Default(), positionals
}

// Match binds rest to the template of cmd. Unbound optional slots are left
// out of the returned bindings. The bindings follow template order.
func Match(cmd schema.CommandSpec, rest []string) ([]result.Binding, error) {
	bindings := make([]result.Binding, 0, len(cmd.Template))

	for i, tok := range cmd.Template {
		if tok.Variadic {
			var captured []string
			if i < len(rest) {
				captured = rest[i:]
			}
			if tok.Required && len(captured) == 0 {
				return nil, missing(cmd, tok)
			}
			bindings = append(bindings, result.Binding{Name: tok.Name, Value: result.ListValue(captured...)})
			return bindings, nil
		}

		if i >= len(rest) {
			if tok.Required {
				return nil, missing(cmd, tok)
			}
			continue
		}
		bindings = append(bindings, result.Binding{Name: tok.Name, Value: result.StringValue(rest[i])})
	}

	if len(rest) > len(cmd.Template) {
		return nil, &argerr.UsageError{
			Stage:   argerr.StageMatch,
			Command: cmd.Name,
			Rule:    tooMany(cmd, rest),
			Token:   rest[len(cmd.Template)],
		}
	}
	return bindings, nil
}

func missing(cmd schema.CommandSpec, tok schema.PositionalToken) error {
	return &argerr.UsageError{
		Stage:   argerr.StageMatch,
		Command: cmd.Name,
		Rule:    fmt.Sprintf("missing required argument `%s`", tok.Name),
		Token:   tok.String(),
	}
}

// tooMany names the violated rule for surplus positionals. A default
// command without a template accepts nothing, so its first token is an
// unknown command.
func tooMany(cmd schema.CommandSpec, rest []string) string {
	if cmd.IsDefault() && len(cmd.Template) == 0 {
		return fmt.Sprintf("unknown command `%s`", rest[0])
	}
	return fmt.Sprintf("too many arguments for command `%s`", cmd.Name)
}
