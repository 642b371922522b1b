package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/seedline/internal/argparse"
	"github.com/specialistvlad/seedline/internal/ctxlog"
	"github.com/specialistvlad/seedline/internal/handlers"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
	"github.com/specialistvlad/seedline/internal/torrentschema"
)

func parse(t *testing.T, s *schema.Schema, args ...string) *result.ParseResult {
	t.Helper()
	res, err := argparse.Parse(args, s)
	require.NoError(t, err)
	return res
}

func TestNewConfig(t *testing.T) {
	s := torrentschema.Default()
	res := parse(t, s, "version")

	testCases := []struct {
		name      string
		cfg       Config
		expectErr string
	}{
		{name: "valid", cfg: Config{Result: res, Schema: s, LogFormat: "text", LogLevel: "warn"}},
		{name: "missing result", cfg: Config{Schema: s, LogFormat: "text", LogLevel: "warn"}, expectErr: "Result is a required"},
		{name: "missing schema", cfg: Config{Result: res, LogFormat: "text", LogLevel: "warn"}, expectErr: "Schema is a required"},
		{name: "bad format", cfg: Config{Result: res, Schema: s, LogFormat: "xml", LogLevel: "warn"}, expectErr: `unsupported log format "xml"`},
		{name: "bad level", cfg: Config{Result: res, Schema: s, LogFormat: "json", LogLevel: "loud"}, expectErr: `unsupported log level "loud"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *cfg)
		})
	}
}

func TestRun_CoreModules(t *testing.T) {
	s := torrentschema.Default()
	res := parse(t, s, "seed", "fileA", "-q")

	a, buf := SetupAppTest(t, &Config{Result: res, LogFormat: "text", Version: "0.0.1"}, s)
	require.NoError(t, a.Run(context.Background(), res))

	out := buf.String()
	assert.Contains(t, out, `seed (command "seed")`)
	assert.Contains(t, out, `inputs = ["fileA"]`)
	assert.Contains(t, out, "command=seed", "the handler log is tagged with its command")
}

type recordModule struct {
	got    *result.ParseResult
	logged bool
	fail   error
}

func (m *recordModule) Register(r *handlers.Registry) {
	r.Register("record", func(ctx context.Context, out io.Writer, res *result.ParseResult) error {
		m.got = res
		ctxlog.FromContext(ctx).Info("recorded")
		m.logged = true
		return m.fail
	})
}

func recordSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(nil, []schema.CommandSpec{
		{Name: "fetch", Template: schema.MustParseTemplate("<id>"), Handler: "record"},
		{Name: "bare"},
	})
	require.NoError(t, err)
	return s
}

func TestRun_Dispatch(t *testing.T) {
	s := recordSchema(t)
	res := parse(t, s, "fetch", "abc")

	mod := &recordModule{}
	a, buf := SetupAppTest(t, &Config{Result: res, LogFormat: "json"}, s, mod)
	require.NoError(t, a.Run(context.Background(), res))

	require.Same(t, res, mod.got)
	assert.True(t, mod.logged)
	assert.Contains(t, buf.String(), `"command":"fetch"`)
	assert.Contains(t, buf.String(), `"handler":"record"`)
}

func TestRun_Errors(t *testing.T) {
	s := recordSchema(t)

	t.Run("handler error is wrapped", func(t *testing.T) {
		res := parse(t, s, "fetch", "abc")
		boom := errors.New("boom")
		a, _ := SetupAppTest(t, &Config{Result: res, LogFormat: "text"}, s, &recordModule{fail: boom})

		err := a.Run(context.Background(), res)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), `command "fetch" failed`)
	})

	t.Run("command without handler", func(t *testing.T) {
		res := parse(t, s, "bare")
		a, _ := SetupAppTest(t, &Config{Result: res, LogFormat: "text"}, s, &recordModule{})

		err := a.Run(context.Background(), res)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `command "bare" has no handler`)
	})
}

func TestNewApp_PanicsOnParityMismatch(t *testing.T) {
	s, err := schema.New(nil, []schema.CommandSpec{{Name: "fetch", Handler: "missing"}})
	require.NoError(t, err)
	res := parse(t, s, "fetch")

	assert.PanicsWithError(t, "handler registry validation failed:\n"+
		"- command 'fetch': handler 'missing' is not registered\n"+
		"- handler 'record' is registered but no command uses it",
		func() {
			NewApp(io.Discard, &Config{Result: res, LogFormat: "text", LogLevel: "error"}, s, &recordModule{})
		})
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedline.log")
	var out SafeBuffer

	logger, closer := newLogger("info", "json", path, &out)
	logger.Debug("hidden")
	logger.Info("written to file", "key", "value")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written to file"`)
	assert.NotContains(t, string(data), "hidden")
	assert.Empty(t, out.String(), "nothing is logged to the output writer")
}
