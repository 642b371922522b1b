package usage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	port := result.StringValue("8000")
	s, err := schema.New(
		[]schema.OptionSpec{
			{Key: "out", Alias: "o", Type: schema.TypeString, Description: "Set download destination"},
			{Key: "select", Alias: "s", Type: schema.TypeEither, Description: "Select specific file"},
			{Key: "port", Alias: "p", Type: schema.TypeString, Default: &port, Description: "Change the http server port"},
			{Key: "not-on-top", Type: schema.TypeBoolean},
			{Key: "verbose", Type: schema.TypeBoolean, Hidden: true},
		},
		[]schema.CommandSpec{
			{Name: "seed", Template: schema.MustParseTemplate("<inputs...>"), Description: "Seed a file or a folder"},
			{Name: "create", Template: schema.MustParseTemplate("<input>"), Description: "Create a .torrent file"},
			{Name: "secret", Hidden: true},
			{Name: schema.DefaultCommand, Template: schema.MustParseTemplate("[torrent-ids...]")},
		},
	)
	require.NoError(t, err)
	return s
}

func TestRender_Overview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testSchema(t), Options{Program: "wt"}))
	out := buf.String()

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "wt <command> [options]")
	assert.Contains(t, out, "wt [torrent-ids...] [options]")
	assert.Contains(t, out, "wt seed <inputs...>")
	assert.Contains(t, out, "Seed a file or a folder")
	assert.Contains(t, out, "wt create <input>")
	assert.NotContains(t, out, "secret")

	assert.Contains(t, out, "-o, --out <value>")
	assert.Contains(t, out, "-s, --select [value]")
	assert.Contains(t, out, "--not-on-top")
	assert.Contains(t, out, `[default: "8000"]`)
	assert.NotContains(t, out, "verbose", "hidden options are not listed")
}

func TestRender_Command(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testSchema(t), Options{Command: "seed"}))
	out := buf.String()

	assert.Contains(t, out, "seedline seed <inputs...> [options]")
	assert.Contains(t, out, "Seed a file or a folder")
	assert.Contains(t, out, "Arguments:")
	assert.Contains(t, out, "required, one or more values")
	assert.NotContains(t, out, "Commands:")
}

func TestRender_UnknownCommand(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, testSchema(t), Options{Command: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "nope"`)

	err = Render(&buf, testSchema(t), Options{Command: "secret"})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestFlagLabel(t *testing.T) {
	testCases := []struct {
		opt  schema.OptionSpec
		want string
	}{
		{schema.OptionSpec{Key: "quiet", Alias: "q", Type: schema.TypeBoolean}, "-q, --quiet"},
		{schema.OptionSpec{Key: "dht-port", Type: schema.TypeString}, "    --dht-port <value>"},
		{schema.OptionSpec{Key: "chromecast", Alias: "cast", Type: schema.TypeEither}, "--cast, --chromecast [value]"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, flagLabel(tc.opt))
	}
}
