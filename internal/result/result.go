package result

import (
	"maps"
	"slices"

	"github.com/specialistvlad/seedline/internal/keys"
)

// Entry is one key of a ParseResult together with its value.
type Entry struct {
	Key   string
	Value Value
}

// Binding is a positional template slot bound to its value.
type Binding struct {
	Name  string
	Value Value
}

// ParseResult is the immutable outcome of a successful parse: the resolved
// command plus an ordered association of option and positional keys.
type ParseResult struct {
	command     string
	fallThrough bool
	entries     []Entry
	index       map[string]int
}

// Assemble merges normalized options and bound positionals into a
// ParseResult. Options come first, in the order given by optionOrder, then
// any option keys missing from optionOrder in sorted order, then bindings in
// template order. Every hyphenated key is followed by its camelCase mirror.
func Assemble(command string, fallThrough bool, options map[string]Value, optionOrder []string, bindings []Binding) *ParseResult {
	r := &ParseResult{
		command:     command,
		fallThrough: fallThrough,
		index:       make(map[string]int, 2*(len(options)+len(bindings))),
	}

	seen := make(map[string]struct{}, len(options))
	for _, key := range optionOrder {
		v, ok := options[key]
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		r.add(key, v)
	}
	for _, key := range slices.Sorted(maps.Keys(options)) {
		if _, ok := seen[key]; ok {
			continue
		}
		r.add(key, options[key])
	}
	for _, b := range bindings {
		r.add(b.Name, b.Value)
	}
	return r
}

func (r *ParseResult) add(key string, v Value) {
	r.set(key, v)
	if keys.Hyphenated(key) {
		r.set(keys.CamelCase(key), v)
	}
}

func (r *ParseResult) set(key string, v Value) {
	if i, ok := r.index[key]; ok {
		r.entries[i].Value = v
		return
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Key: key, Value: v})
}

// Command returns the resolved command name.
func (r *ParseResult) Command() string { return r.command }

// Fallthrough reports whether the default command was resolved without any
// positional arguments. Callers use it to show help instead of running.
func (r *ParseResult) Fallthrough() bool { return r.fallThrough }

// Get returns the value stored under key.
func (r *ParseResult) Get(key string) (Value, bool) {
	i, ok := r.index[key]
	if !ok {
		return Value{}, false
	}
	return r.entries[i].Value, true
}

// Has reports whether key is present.
func (r *ParseResult) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Bool returns the boolean stored under key, false when absent.
func (r *ParseResult) Bool(key string) bool {
	v, _ := r.Get(key)
	return v.Bool()
}

// Str returns the string stored under key, empty when absent.
func (r *ParseResult) Str(key string) string {
	v, _ := r.Get(key)
	return v.Str()
}

// Strings returns the list stored under key, nil when absent.
func (r *ParseResult) Strings(key string) []string {
	v, _ := r.Get(key)
	return v.List()
}

// Keys returns every key in assembly order.
func (r *ParseResult) Keys() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Key
	}
	return out
}

// Entries returns a copy of every entry in assembly order.
func (r *ParseResult) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of keys, camelCase mirrors included.
func (r *ParseResult) Len() int { return len(r.entries) }
