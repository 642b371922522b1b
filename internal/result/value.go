package result

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which member of a Value is populated.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindList
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a resolved option or positional value: a boolean, a single
// string or an ordered list of strings.
type Value struct {
	kind Kind
	b    bool
	s    string
	list []string
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// ListValue returns a list Value holding a copy of items. The list is never
// nil, so an empty capture compares equal to another empty capture.
func ListValue(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list}
}

// Kind reports which member of v is populated.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean member. It is false for non-boolean values.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Str returns the string member. It is empty for non-string values.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// List returns a copy of the list member. A single string is returned as a
// one-element list so that handlers can treat both shapes uniformly.
func (v Value) List() []string {
	switch v.kind {
	case KindList:
		return slices.Clone(v.list)
	case KindString:
		return []string{v.s}
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same kind and contents. go-cmp and
// testify both pick this method up.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	default:
		return slices.Equal(v.list, o.list)
	}
}

// String renders v for logs and the report handler.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return strconv.Quote(v.s)
	default:
		quoted := make([]string, len(v.list))
		for i, item := range v.list {
			quoted[i] = strconv.Quote(item)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}
}
