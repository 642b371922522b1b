package schemahcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/seedline/internal/ctxlog"
	"github.com/specialistvlad/seedline/internal/fsutil"
	"github.com/specialistvlad/seedline/internal/schema"
)

// Loader reads schema declarations from HCL sources.
type Loader struct {
	parser   *hclparse.Parser
	options  []schema.OptionSpec
	commands []schema.CommandSpec
}

// NewLoader creates a new HCL schema loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses every .hcl file found under paths and builds the merged schema.
func Load(ctx context.Context, paths ...string) (*schema.Schema, error) {
	l := NewLoader()
	if err := l.AddPaths(ctx, paths...); err != nil {
		return nil, err
	}
	return l.Schema(ctx)
}

// LoadBytes builds a schema from a single in-memory HCL source. filename is
// used in diagnostics only.
func LoadBytes(ctx context.Context, filename string, src []byte) (*schema.Schema, error) {
	l := NewLoader()
	if err := l.AddBytes(ctx, filename, src); err != nil {
		return nil, err
	}
	return l.Schema(ctx)
}

// AddPaths parses every .hcl file found under paths, recursing into
// directories, and collects their declarations.
func (l *Loader) AddPaths(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL schema loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	for _, file := range files {
		hclFile, diags := l.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.addFile(ctx, file, hclFile); err != nil {
			return err
		}
	}
	return nil
}

// AddBytes parses src and collects its declarations.
func (l *Loader) AddBytes(ctx context.Context, filename string, src []byte) error {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.addFile(ctx, filename, hclFile)
}

func (l *Loader) addFile(ctx context.Context, filename string, file *hcl.File) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	for _, b := range root.Options {
		spec, err := translateOption(ctx, b)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		l.options = append(l.options, spec)
	}
	for _, b := range root.Commands {
		spec, err := translateCommand(ctx, b)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		l.commands = append(l.commands, spec)
	}

	ctxlog.FromContext(ctx).Debug("Loaded schema declarations.", "file", filename, "options", len(root.Options), "commands", len(root.Commands))
	return nil
}

// Schema validates everything collected so far and returns the schema.
func (l *Loader) Schema(ctx context.Context) (*schema.Schema, error) {
	s, err := schema.New(l.options, l.commands)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("HCL schema loading complete.", "options", len(l.options), "commands", len(s.Commands()))
	return s, nil
}
