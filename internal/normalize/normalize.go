// Package normalize rewrites the tokenizer's flag map into canonical form:
// aliases collapse to their key, declared types are coerced and defaults
// are applied.
package normalize

import (
	"fmt"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
)

// Normalize returns the canonical option map for raw. It is idempotent:
// normalizing its own output yields an equal map. Keys the schema does not
// know pass through unchanged.
//
// The only failure is a value whose kind the declared type cannot hold,
// which means raw was not produced from s.
func Normalize(raw map[string]result.Value, s *schema.Schema) (map[string]result.Value, error) {
	out := make(map[string]result.Value, len(raw))
	given := make(map[string]struct{}, len(raw))

	for spelling, v := range raw {
		key, ok := s.Canonical(spelling)
		if !ok {
			out[spelling] = v
			continue
		}
		if _, isImplied := s.Implied(key); isImplied {
			// Derived below from the negated option.
			continue
		}
		opt, _ := s.Option(key)
		coerced, err := coerce(opt, v)
		if err != nil {
			return nil, err
		}
		out[key] = coerced
		given[key] = struct{}{}
	}

	for _, opt := range s.Options() {
		if _, present := out[opt.Key]; !present {
			if d, ok := implicitDefault(opt); ok {
				out[opt.Key] = d
			}
		}
	}

	for _, opt := range s.Options() {
		positive, ok := opt.NegatedKey()
		if !ok {
			continue
		}
		if _, implied := s.Implied(positive); implied {
			out[positive] = result.BoolValue(!out[opt.Key].Bool())
			continue
		}
		if _, paired := s.Counterpart(opt.Key); !paired {
			continue
		}
		// An explicit `no-foo` decides the pair. Otherwise `foo`, given or
		// defaulted, does.
		if _, negated := given[opt.Key]; negated {
			out[positive] = result.BoolValue(!out[opt.Key].Bool())
		} else {
			out[opt.Key] = result.BoolValue(!out[positive].Bool())
		}
	}
	return out, nil
}

// coerce converts v to the shape opt declares.
func coerce(opt schema.OptionSpec, v result.Value) (result.Value, error) {
	switch opt.Type {
	case schema.TypeBoolean:
		if v.Kind() == result.KindBool {
			return v, nil
		}
	case schema.TypeString:
		if v.Kind() == result.KindString {
			return v, nil
		}
	case schema.TypeEither:
		switch v.Kind() {
		case result.KindBool:
			return v, nil
		case result.KindString:
			if v.Str() == "" {
				return result.BoolValue(true), nil
			}
			return v, nil
		}
	}
	return result.Value{}, &argerr.SchemaError{
		Subject: opt.Key,
		Rule:    fmt.Sprintf("%s option cannot hold a %s value", opt.Type, v.Kind()),
	}
}

// implicitDefault returns the value an absent option takes: its declared
// default, false for booleans and either-typed options, nothing for
// strings without a default.
func implicitDefault(opt schema.OptionSpec) (result.Value, bool) {
	if opt.Default != nil {
		return *opt.Default, true
	}
	if opt.Type == schema.TypeBoolean || opt.Type == schema.TypeEither {
		return result.BoolValue(false), true
	}
	return result.Value{}, false
}
