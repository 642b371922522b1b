// Package report holds the built-in command handlers. The torrent commands do
// not transfer anything: they print the parse result they were given, which
// makes the binary a faithful inspector of the command-line surface.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/ctxlog"
	"github.com/specialistvlad/seedline/internal/handlers"
	"github.com/specialistvlad/seedline/internal/keys"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
	"github.com/specialistvlad/seedline/internal/tokenizer"
	"github.com/specialistvlad/seedline/internal/torrentschema"
	"github.com/specialistvlad/seedline/internal/usage"
)

// Module registers the built-in handlers.
type Module struct {
	Program string
	Version string
	Schema  *schema.Schema
}

// Register registers every built-in handler with the registry.
func (m *Module) Register(r *handlers.Registry) {
	for name, title := range map[string]string{
		torrentschema.HandlerDownload:     "download",
		torrentschema.HandlerDownloadMeta: "download metadata",
		torrentschema.HandlerSeed:         "seed",
		torrentschema.HandlerCreate:       "create torrent",
		torrentschema.HandlerInfo:         "torrent info",
	} {
		r.Register(name, Print(title))
	}
	r.Register(torrentschema.HandlerVersion, m.version)
	r.Register(torrentschema.HandlerHelp, m.help)
}

// Print returns a handler that writes the parse result under the given title.
func Print(title string) handlers.Handler {
	return func(ctx context.Context, out io.Writer, res *result.ParseResult) error {
		ctxlog.FromContext(ctx).Info("Printing parse result.", "title", title, "entries", res.Len())
		return Write(out, title, res)
	}
}

// Write prints one `key = value` line per result entry. camelCase mirrors
// are left out since they repeat their hyphenated key.
func Write(out io.Writer, title string, res *result.ParseResult) error {
	if _, err := fmt.Fprintf(out, "%s (command %q)\n", title, res.Command()); err != nil {
		return err
	}

	mirrors := make(map[string]struct{})
	for _, e := range res.Entries() {
		if keys.Hyphenated(e.Key) {
			mirrors[keys.CamelCase(e.Key)] = struct{}{}
		}
	}

	for _, e := range res.Entries() {
		if _, ok := mirrors[e.Key]; ok {
			continue
		}
		if _, err := fmt.Fprintf(out, "      %s = %s\n", e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) version(ctx context.Context, out io.Writer, _ *result.ParseResult) error {
	ctxlog.FromContext(ctx).Debug("Printing version.", "version", m.Version)
	_, err := fmt.Fprintf(out, "%s %s\n", m.program(), m.Version)
	return err
}

// help renders usage for the whole tool, or for the command named by the
// optional `command` positional.
func (m *Module) help(ctx context.Context, out io.Writer, res *result.ParseResult) error {
	topic := res.Str("command")
	ctxlog.FromContext(ctx).Debug("Rendering help.", "topic", topic)
	if topic != "" {
		if cmd, ok := m.Schema.Resolve(topic); !ok || cmd.Hidden {
			return &argerr.UsageError{
				Stage:      argerr.StageResolve,
				Command:    res.Command(),
				Rule:       fmt.Sprintf("unknown command `%s`", topic),
				Token:      topic,
				Suggestion: tokenizer.Closest(topic, m.commandNames()),
			}
		}
	}
	return usage.Render(out, m.Schema, usage.Options{Program: m.program(), Command: topic})
}

// commandNames lists the commands help can describe.
func (m *Module) commandNames() []string {
	var names []string
	for _, cmd := range m.Schema.Commands() {
		if !cmd.IsDefault() && !cmd.Hidden {
			names = append(names, cmd.Name)
		}
	}
	return names
}

func (m *Module) program() string {
	if m.Program == "" {
		return "seedline"
	}
	return m.Program
}
