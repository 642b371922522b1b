// Package torrentschema holds the built-in command-line schema of the
// torrent tool, declared in an embedded HCL file.
package torrentschema

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/specialistvlad/seedline/internal/schema"
	"github.com/specialistvlad/seedline/internal/schemahcl"
)

//go:embed schema.hcl
var source []byte

// Handler names referenced by the built-in commands.
const (
	HandlerDownload     = "download"
	HandlerDownloadMeta = "downloadmeta"
	HandlerSeed         = "seed"
	HandlerCreate       = "create"
	HandlerInfo         = "info"
	HandlerVersion      = "version"
	HandlerHelp         = "help"
)

var builtin = sync.OnceValues(func() (*schema.Schema, error) {
	return schemahcl.LoadBytes(context.Background(), "schema.hcl", source)
})

// Load returns the built-in schema.
func Load() (*schema.Schema, error) {
	return builtin()
}

// EnvExtraPaths names the environment variable that lists extra schema
// files or directories, separated like PATH. Their declarations are merged
// into the built-in ones, so they can add commands that reuse the built-in
// handlers.
const EnvExtraPaths = "SEEDLINE_SCHEMA_PATH"

// LoadWith returns the built-in schema extended with every .hcl file found
// under paths.
func LoadWith(ctx context.Context, paths ...string) (*schema.Schema, error) {
	if len(paths) == 0 {
		return Load()
	}
	l := schemahcl.NewLoader()
	if err := l.AddBytes(ctx, "schema.hcl", source); err != nil {
		return nil, err
	}
	if err := l.AddPaths(ctx, paths...); err != nil {
		return nil, err
	}
	return l.Schema(ctx)
}

// Default returns the built-in schema. A broken built-in schema is a
// programmer error, so it panics.
func Default() *schema.Schema {
	s, err := builtin()
	if err != nil {
		panic(fmt.Errorf("built-in schema is invalid: %w", err))
	}
	return s
}
