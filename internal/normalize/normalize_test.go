package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
)

func ptr(v result.Value) *result.Value { return &v }

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New([]schema.OptionSpec{
		{Key: "quiet", Alias: "q", Type: schema.TypeBoolean},
		{Key: "keep-seeding", Alias: "k", Type: schema.TypeBoolean},
		{Key: "out", Alias: "o", Type: schema.TypeString},
		{Key: "port", Alias: "p", Type: schema.TypeString, Default: ptr(result.StringValue("8000"))},
		{Key: "select", Alias: "s", Type: schema.TypeEither},
		{Key: "no-quit", Type: schema.TypeBoolean},
	}, nil)
	require.NoError(t, err)
	return s
}

func TestNormalize(t *testing.T) {
	s := testSchema(t)

	testCases := []struct {
		name     string
		raw      map[string]result.Value
		expected map[string]result.Value
	}{
		{
			name: "defaults only",
			raw:  map[string]result.Value{},
			expected: map[string]result.Value{
				"quiet":        result.BoolValue(false),
				"keep-seeding": result.BoolValue(false),
				"port":         result.StringValue("8000"),
				"select":       result.BoolValue(false),
				"no-quit":      result.BoolValue(false),
				"quit":         result.BoolValue(true),
			},
		},
		{
			name: "aliases and camel spelling collapse",
			raw: map[string]result.Value{
				"q":           result.BoolValue(true),
				"keepSeeding": result.BoolValue(true),
				"o":           result.StringValue("/tmp"),
				"p":           result.StringValue("9000"),
			},
			expected: map[string]result.Value{
				"quiet":        result.BoolValue(true),
				"keep-seeding": result.BoolValue(true),
				"out":          result.StringValue("/tmp"),
				"port":         result.StringValue("9000"),
				"select":       result.BoolValue(false),
				"no-quit":      result.BoolValue(false),
				"quit":         result.BoolValue(true),
			},
		},
		{
			name: "either bare is true, either with value stays a string",
			raw:  map[string]result.Value{"s": result.StringValue("")},
			expected: map[string]result.Value{
				"quiet":        result.BoolValue(false),
				"keep-seeding": result.BoolValue(false),
				"port":         result.StringValue("8000"),
				"select":       result.BoolValue(true),
				"no-quit":      result.BoolValue(false),
				"quit":         result.BoolValue(true),
			},
		},
		{
			name: "negated flag turns off the implied key",
			raw:  map[string]result.Value{"no-quit": result.BoolValue(true)},
			expected: map[string]result.Value{
				"quiet":        result.BoolValue(false),
				"keep-seeding": result.BoolValue(false),
				"port":         result.StringValue("8000"),
				"select":       result.BoolValue(false),
				"no-quit":      result.BoolValue(true),
				"quit":         result.BoolValue(false),
			},
		},
		{
			name: "implied key in the input is recomputed",
			raw:  map[string]result.Value{"quit": result.BoolValue(false)},
			expected: map[string]result.Value{
				"quiet":        result.BoolValue(false),
				"keep-seeding": result.BoolValue(false),
				"port":         result.StringValue("8000"),
				"select":       result.BoolValue(false),
				"no-quit":      result.BoolValue(false),
				"quit":         result.BoolValue(true),
			},
		},
		{
			name: "unknown keys pass through",
			raw:  map[string]result.Value{"extra": result.StringValue("x")},
			expected: map[string]result.Value{
				"extra":        result.StringValue("x"),
				"quiet":        result.BoolValue(false),
				"keep-seeding": result.BoolValue(false),
				"port":         result.StringValue("8000"),
				"select":       result.BoolValue(false),
				"no-quit":      result.BoolValue(false),
				"quit":         result.BoolValue(true),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.raw, s)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("normalized map mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	s := testSchema(t)

	inputs := []map[string]result.Value{
		{},
		{"q": result.BoolValue(true), "select": result.StringValue("")},
		{"select": result.StringValue("2"), "o": result.StringValue("x")},
		{"no-quit": result.BoolValue(true), "keepSeeding": result.BoolValue(true)},
	}

	for _, in := range inputs {
		once, err := Normalize(in, s)
		require.NoError(t, err)
		twice, err := Normalize(once, s)
		require.NoError(t, err)

		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("normalize is not idempotent (-once +twice):\n%s", diff)
		}
	}
}

func TestNormalize_KindMismatch(t *testing.T) {
	s := testSchema(t)

	_, err := Normalize(map[string]result.Value{"quiet": result.StringValue("yes")}, s)
	require.Error(t, err)
	assert.True(t, argerr.IsSchema(err))
	assert.Contains(t, err.Error(), "boolean option cannot hold a string value")

	_, err = Normalize(map[string]result.Value{"out": result.ListValue("a")}, s)
	require.Error(t, err)
	assert.True(t, argerr.IsSchema(err))
}

func TestNormalize_DeclaredPair(t *testing.T) {
	s, err := schema.New([]schema.OptionSpec{
		{Key: "no-foo", Type: schema.TypeBoolean},
		{Key: "foo", Type: schema.TypeBoolean},
	}, nil)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		raw   map[string]result.Value
		foo   bool
		noFoo bool
	}{
		{name: "positive defaults to true", raw: map[string]result.Value{}, foo: true},
		{name: "negation given", raw: map[string]result.Value{"noFoo": result.BoolValue(true)}, noFoo: true},
		{name: "positive given false", raw: map[string]result.Value{"foo": result.BoolValue(false)}, noFoo: true},
		{name: "positive given true", raw: map[string]result.Value{"foo": result.BoolValue(true)}, foo: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.raw, s)
			require.NoError(t, err)
			want := map[string]result.Value{
				"foo":    result.BoolValue(tc.foo),
				"no-foo": result.BoolValue(tc.noFoo),
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("normalized map mismatch (-want +got):\n%s", diff)
			}

			again, err := Normalize(got, s)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}
