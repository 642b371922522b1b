package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/keys"
	"github.com/specialistvlad/seedline/internal/result"
)

// Schema is the validated, immutable set of options and commands.
type Schema struct {
	options  []OptionSpec
	commands []CommandSpec

	// spellings maps every accepted flag name (key, camelCase key, alias) to
	// an index into options.
	spellings map[string]int
	// implied maps the positive key of a negated option to its index.
	implied map[string]int
	// pairs links a declared `foo` and `no-foo` to each other by index.
	pairs        map[int]int
	commandIndex map[string]int
}

// New validates the declarations and builds a Schema. Every problem found is
// reported in a single argerr.SchemaErrors value. When no default command is
// declared, one with an empty template is added.
func New(options []OptionSpec, commands []CommandSpec) (*Schema, error) {
	s := &Schema{
		spellings:    make(map[string]int),
		implied:      make(map[string]int),
		pairs:        make(map[int]int),
		commandIndex: make(map[string]int),
	}
	var errs argerr.SchemaErrors

	for _, o := range options {
		o, err := resolveOption(o)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		idx := len(s.options)
		names := spellings(o.Key)
		if o.Alias != "" {
			names = append(names, o.Alias)
		}
		collided := false
		for _, name := range names {
			if other, taken := s.spellings[name]; taken {
				errs = append(errs, &argerr.SchemaError{
					Subject: o.Key,
					Rule:    fmt.Sprintf("flag name %q already used by option %q", name, s.options[other].Key),
				})
				collided = true
			}
		}
		if collided {
			continue
		}
		for _, name := range names {
			s.spellings[name] = idx
		}
		s.options = append(s.options, o)
	}

	resultKeys := make(map[string]struct{})
	for _, o := range s.options {
		for _, name := range spellings(o.Key) {
			resultKeys[name] = struct{}{}
		}
	}
	for i, o := range s.options {
		positive, ok := o.NegatedKey()
		if !ok {
			continue
		}
		if pi, declared := s.spellings[positive]; declared && s.options[pi].Key == positive {
			// A declared positive key pairs with its negation instead of
			// being implied.
			if s.options[pi].Type != TypeBoolean {
				errs = append(errs, &argerr.SchemaError{
					Subject: o.Key,
					Rule:    fmt.Sprintf("negates %q, which is a %s option", positive, s.options[pi].Type),
				})
				continue
			}
			if s.options[pi].Default == nil {
				on := result.BoolValue(true)
				s.options[pi].Default = &on
			}
			s.pairs[i], s.pairs[pi] = pi, i
			continue
		}
		clash := false
		for _, name := range spellings(positive) {
			if _, taken := s.spellings[name]; taken {
				errs = append(errs, &argerr.SchemaError{
					Subject: o.Key,
					Rule:    fmt.Sprintf("implied key %q collides with a declared flag", name),
				})
				clash = true
			}
		}
		if clash {
			continue
		}
		s.implied[positive] = i
		for _, name := range spellings(positive) {
			resultKeys[name] = struct{}{}
		}
	}

	hasDefault := false
	for _, c := range commands {
		if err := s.addCommand(c, resultKeys); err != nil {
			errs = append(errs, err)
			continue
		}
		if c.IsDefault() {
			hasDefault = true
		}
	}
	if !hasDefault {
		s.commandIndex[DefaultCommand] = len(s.commands)
		s.commands = append(s.commands, CommandSpec{Name: DefaultCommand})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

// MustNew is like New but panics on error. Schema errors are programmer
// errors, so built-in schemas use it at startup.
func MustNew(options []OptionSpec, commands []CommandSpec) *Schema {
	s, err := New(options, commands)
	if err != nil {
		panic(err)
	}
	return s
}

// resolveOption checks a single option and settles its type.
func resolveOption(o OptionSpec) (OptionSpec, *argerr.SchemaError) {
	if !keys.Valid(o.Key) {
		return o, &argerr.SchemaError{Subject: o.Key, Rule: "invalid option key"}
	}
	if o.Alias != "" {
		if !keys.Valid(o.Alias) {
			return o, &argerr.SchemaError{Subject: o.Key, Rule: fmt.Sprintf("invalid alias %q", o.Alias)}
		}
		if o.Alias == o.Key {
			return o, &argerr.SchemaError{Subject: o.Key, Rule: "alias repeats the key"}
		}
	}

	if o.Default != nil {
		d := *o.Default
		o.Default = &d
		switch d.Kind() {
		case result.KindBool:
			// A boolean default forces boolean handling, for either-typed
			// options too.
			o.Type = TypeBoolean
		case result.KindString:
			if o.Type == TypeUnset {
				o.Type = TypeString
			}
			if o.Type == TypeBoolean {
				return o, &argerr.SchemaError{Subject: o.Key, Rule: "boolean option cannot have a string default"}
			}
		default:
			return o, &argerr.SchemaError{Subject: o.Key, Rule: fmt.Sprintf("unsupported default of kind %s", d.Kind())}
		}
	}
	if o.Type == TypeUnset {
		o.Type = TypeBoolean
	}
	if o.Type < TypeBoolean || o.Type > TypeEither {
		return o, &argerr.SchemaError{Subject: o.Key, Rule: fmt.Sprintf("unknown option type %d", int(o.Type))}
	}
	return o, nil
}

func (s *Schema) addCommand(c CommandSpec, resultKeys map[string]struct{}) *argerr.SchemaError {
	if !keys.Valid(c.Name) {
		return &argerr.SchemaError{Subject: c.Name, Rule: "invalid command name"}
	}
	if _, dup := s.commandIndex[c.Name]; dup {
		return &argerr.SchemaError{Subject: c.Name, Rule: "duplicate command"}
	}
	if err := ValidateTemplate(c.Template); err != nil {
		var se *argerr.SchemaError
		if errors.As(err, &se) {
			return &argerr.SchemaError{Subject: c.Name + " " + se.Subject, Rule: se.Rule}
		}
		return &argerr.SchemaError{Subject: c.Name, Rule: err.Error()}
	}
	for _, tok := range c.Template {
		for _, name := range spellings(tok.Name) {
			if _, taken := resultKeys[name]; taken {
				return &argerr.SchemaError{
					Subject: c.Name + " " + tok.String(),
					Rule:    fmt.Sprintf("positional name %q shadows an option", name),
				}
			}
		}
	}
	c.Template = slices.Clone(c.Template)
	s.commandIndex[c.Name] = len(s.commands)
	s.commands = append(s.commands, c)
	return nil
}

// Options returns the declared options in declaration order.
func (s *Schema) Options() []OptionSpec {
	return slices.Clone(s.options)
}

// Commands returns every command, the default command included, in
// declaration order.
func (s *Schema) Commands() []CommandSpec {
	return slices.Clone(s.commands)
}

// Option returns the option declared under the canonical key.
func (s *Schema) Option(key string) (OptionSpec, bool) {
	i, ok := s.spellings[key]
	if !ok || s.options[i].Key != key {
		return OptionSpec{}, false
	}
	return s.options[i], true
}

// Lookup returns the option a flag spelling refers to. The spelling may be
// the canonical key, its camelCase form or the alias.
func (s *Schema) Lookup(spelling string) (OptionSpec, bool) {
	i, ok := s.spellings[spelling]
	if !ok {
		return OptionSpec{}, false
	}
	return s.options[i], true
}

// Canonical resolves a spelling to its canonical result key. Implied
// positive keys of negated options are canonical themselves.
func (s *Schema) Canonical(spelling string) (string, bool) {
	if o, ok := s.Lookup(spelling); ok {
		return o.Key, true
	}
	if _, ok := s.implied[spelling]; ok {
		return spelling, true
	}
	return "", false
}

// Implied returns the negated option that declares the positive key.
func (s *Schema) Implied(key string) (OptionSpec, bool) {
	i, ok := s.implied[key]
	if !ok {
		return OptionSpec{}, false
	}
	return s.options[i], true
}

// Counterpart returns the other half of a declared `foo`/`no-foo` pair. A
// flag given for either half sets both, so the tokenizer treats them as one
// option.
func (s *Schema) Counterpart(key string) (OptionSpec, bool) {
	i, ok := s.spellings[key]
	if !ok || s.options[i].Key != key {
		return OptionSpec{}, false
	}
	j, ok := s.pairs[i]
	if !ok {
		return OptionSpec{}, false
	}
	return s.options[j], true
}

// FlagNames returns the canonical keys and aliases, sorted. camelCase forms
// are accepted but left out, which makes the list a source of suggestions.
func (s *Schema) FlagNames() []string {
	out := make([]string, 0, 2*len(s.options))
	for _, o := range s.options {
		out = append(out, o.Key)
		if o.Alias != "" {
			out = append(out, o.Alias)
		}
	}
	slices.Sort(out)
	return out
}

// ResultKeys returns the canonical option keys in declaration order, each
// implied positive key directly after its negated option.
func (s *Schema) ResultKeys() []string {
	out := make([]string, 0, len(s.options)+len(s.implied))
	for _, o := range s.options {
		out = append(out, o.Key)
		if positive, ok := o.NegatedKey(); ok {
			if _, declared := s.implied[positive]; declared {
				out = append(out, positive)
			}
		}
	}
	return out
}

// Command returns the command declared under name, the default command
// included.
func (s *Schema) Command(name string) (CommandSpec, bool) {
	i, ok := s.commandIndex[name]
	if !ok {
		return CommandSpec{}, false
	}
	return s.commands[i], true
}

// Resolve returns the command a leading positional token selects. The
// default command's sentinel name is never selectable.
func (s *Schema) Resolve(token string) (CommandSpec, bool) {
	if token == DefaultCommand {
		return CommandSpec{}, false
	}
	return s.Command(token)
}

// Default returns the default command.
func (s *Schema) Default() CommandSpec {
	return s.commands[s.commandIndex[DefaultCommand]]
}
