// Package tokenizer splits raw process arguments into flag values and the
// residual positional tokens, using a schema to know which flags take a
// value.
package tokenizer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
)

// terminator ends flag parsing; every later token is positional.
const terminator = "--"

// maxSuggestionDistance bounds the edit distance of a "did you mean" hint
// when no fuzzy subsequence match exists.
const maxSuggestionDistance = 2

// Tokens is the output of Tokenize.
type Tokens struct {
	// Flags maps the spelling a flag was given under to its raw value. An
	// option appears under at most one spelling: the last one used.
	Flags map[string]result.Value
	// Order lists the spellings in Flags by first appearance.
	Order []string
	// Positionals holds every token not consumed as a flag or flag value,
	// in original order.
	Positionals []string
}

type tokenizer struct {
	schema *schema.Schema
	args   []string
	out    *Tokens
	// byKey tracks which spelling currently holds each option's value.
	byKey map[string]string
}

// Tokenize splits args according to s. It is a pure function of its inputs.
func Tokenize(args []string, s *schema.Schema) (*Tokens, error) {
	t := &tokenizer{
		schema: s,
		args:   args,
		out:    &Tokens{Flags: make(map[string]result.Value)},
		byKey:  make(map[string]string),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == terminator:
			t.out.Positionals = append(t.out.Positionals, args[i+1:]...)
			return t.out, nil
		case strings.HasPrefix(arg, "--"):
			next, err := t.long(i)
			if err != nil {
				return nil, err
			}
			i = next
		case isFlag(arg):
			next, err := t.short(i)
			if err != nil {
				return nil, err
			}
			i = next
		default:
			t.out.Positionals = append(t.out.Positionals, arg)
		}
	}
	return t.out, nil
}

// isFlag reports whether arg looks like a flag. A lone "-" is a positional
// conventionally meaning stdin.
func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// long handles `--name` and `--name=value` at index i and returns the index
// of the last token consumed.
func (t *tokenizer) long(i int) (int, error) {
	name, inline, hasInline := strings.Cut(t.args[i][2:], "=")
	opt, ok := t.schema.Lookup(name)
	if !ok {
		return i, t.unknown("--"+name, name)
	}
	var inlinePtr *string
	if hasInline {
		inlinePtr = &inline
	}
	return t.apply(opt, name, "--"+name, inlinePtr, i)
}

// short handles `-a`, `-a=value`, word aliases given with a single dash and
// bundles of single-character flags such as `-qk`.
func (t *tokenizer) short(i int) (int, error) {
	name, inline, hasInline := strings.Cut(t.args[i][1:], "=")
	var inlinePtr *string
	if hasInline {
		inlinePtr = &inline
	}

	if opt, ok := t.schema.Lookup(name); ok {
		return t.apply(opt, name, "-"+name, inlinePtr, i)
	}
	if len(name) == 1 {
		return i, t.unknown("-"+name, name)
	}

	// A bundle: every member but the last must be a boolean.
	members := []rune(name)
	for j, r := range members {
		spelling := string(r)
		opt, ok := t.schema.Lookup(spelling)
		if !ok {
			return i, t.unknown("-"+spelling, spelling)
		}
		last := j == len(members)-1
		if !last && opt.Type.TakesValue() {
			return i, &argerr.UsageError{
				Stage: argerr.StageTokenize,
				Rule:  fmt.Sprintf("flag -%s takes a value and must be last in %s", spelling, t.args[i]),
				Token: t.args[i],
			}
		}
		if !last {
			t.set(opt, spelling, result.BoolValue(true))
			continue
		}
		return t.apply(opt, spelling, "-"+spelling, inlinePtr, i)
	}
	return i, nil
}

// apply records the value of opt given under spelling at index i, consuming
// the following token when the type allows it.
func (t *tokenizer) apply(opt schema.OptionSpec, spelling, display string, inline *string, i int) (int, error) {
	switch opt.Type {
	case schema.TypeBoolean:
		if inline == nil {
			t.set(opt, spelling, result.BoolValue(true))
			return i, nil
		}
		b, err := strconv.ParseBool(*inline)
		if err != nil {
			return i, &argerr.UsageError{
				Stage: argerr.StageTokenize,
				Rule:  fmt.Sprintf("flag %s expects true or false, got %q", display, *inline),
				Token: t.args[i],
			}
		}
		t.set(opt, spelling, result.BoolValue(b))
		return i, nil

	case schema.TypeString:
		if inline != nil {
			t.set(opt, spelling, result.StringValue(*inline))
			return i, nil
		}
		if i+1 >= len(t.args) || t.declared(t.args[i+1]) {
			return i, &argerr.UsageError{
				Stage: argerr.StageTokenize,
				Rule:  fmt.Sprintf("flag %s requires a value", display),
				Token: t.args[i],
			}
		}
		t.set(opt, spelling, result.StringValue(t.args[i+1]))
		return i + 1, nil

	default:
		if inline != nil {
			t.set(opt, spelling, result.StringValue(*inline))
			return i, nil
		}
		if i+1 < len(t.args) && !isFlag(t.args[i+1]) {
			t.set(opt, spelling, result.StringValue(t.args[i+1]))
			return i + 1, nil
		}
		// Bare: the normalizer turns the empty string into true.
		t.set(opt, spelling, result.StringValue(""))
		return i, nil
	}
}

// declared reports whether arg is the terminator or a flag the schema
// knows. A string flag takes any other token as its value, so `--out -dir`
// and `--port -1` both work.
func (t *tokenizer) declared(arg string) bool {
	if arg == terminator {
		return true
	}
	if !isFlag(arg) {
		return false
	}
	if strings.HasPrefix(arg, "--") {
		name, _, _ := strings.Cut(arg[2:], "=")
		_, ok := t.schema.Lookup(name)
		return ok
	}
	name, _, _ := strings.Cut(arg[1:], "=")
	if _, ok := t.schema.Lookup(name); ok {
		return true
	}
	for _, r := range name {
		if _, ok := t.schema.Lookup(string(r)); !ok {
			return false
		}
	}
	return name != ""
}

// group returns the key under which opt competes for the last occurrence.
// A declared `foo`/`no-foo` pair shares one group.
func (t *tokenizer) group(opt schema.OptionSpec) string {
	if positive, negated := opt.NegatedKey(); negated {
		if _, paired := t.schema.Counterpart(opt.Key); paired {
			return positive
		}
	}
	return opt.Key
}

// set stores v under spelling, dropping any earlier spelling of the same
// option so that the last occurrence wins.
func (t *tokenizer) set(opt schema.OptionSpec, spelling string, v result.Value) {
	key := t.group(opt)
	if prev, ok := t.byKey[key]; ok && prev != spelling {
		delete(t.out.Flags, prev)
		for j, s := range t.out.Order {
			if s == prev {
				t.out.Order = append(t.out.Order[:j], t.out.Order[j+1:]...)
				break
			}
		}
	}
	if _, ok := t.out.Flags[spelling]; !ok {
		t.out.Order = append(t.out.Order, spelling)
	}
	t.byKey[key] = spelling
	t.out.Flags[spelling] = v
}

func (t *tokenizer) unknown(display, name string) error {
	return &argerr.UsageError{
		Stage:      argerr.StageTokenize,
		Rule:       "unknown flag " + display,
		Token:      display,
		Suggestion: Suggest(name, t.schema.FlagNames()),
	}
}

// Suggest returns the flag, dashes included, that name most likely meant,
// or an empty string.
func Suggest(name string, spellings []string) string {
	best := Closest(name, spellings)
	if best == "" {
		return ""
	}
	return dashed(best)
}

// Closest returns the candidate name most likely meant, or an empty string.
// Candidates containing name as a fuzzy subsequence are preferred; otherwise
// the closest one within a small edit distance is used.
func Closest(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", maxSuggestionDistance+1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func dashed(spelling string) string {
	if len(spelling) == 1 {
		return "-" + spelling
	}
	return "--" + spelling
}
