// Package usage renders help text from a schema. It only reads the schema;
// deciding when to show help is left to the caller.
package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/specialistvlad/seedline/internal/schema"
)

// Options selects what Render prints.
type Options struct {
	// Program is the executable name shown in usage lines.
	Program string
	// Command limits the output to a single command when set.
	Command string
}

// row is one line of a two-column table.
type row struct {
	left, right string
}

type renderer struct {
	w       io.Writer
	program string
	heading lipgloss.Style
	name    lipgloss.Style
	dim     lipgloss.Style
}

// Render writes usage text for s to w. Styles degrade to plain text when w
// is not a terminal.
func Render(w io.Writer, s *schema.Schema, opts Options) error {
	lr := lipgloss.NewRenderer(w)
	r := &renderer{
		w:       w,
		program: opts.Program,
		heading: lr.NewStyle().Bold(true),
		name:    lr.NewStyle().Foreground(lipgloss.Color("6")),
		dim:     lr.NewStyle().Faint(true),
	}
	if r.program == "" {
		r.program = "seedline"
	}

	var b strings.Builder
	if opts.Command != "" {
		cmd, ok := s.Command(opts.Command)
		if !ok || cmd.Hidden {
			return fmt.Errorf("unknown command %q", opts.Command)
		}
		r.command(&b, cmd)
	} else {
		r.overview(&b, s)
	}
	r.options(&b, s)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *renderer) overview(b *strings.Builder, s *schema.Schema) {
	b.WriteString(r.heading.Render("Usage:") + "\n")
	fmt.Fprintf(b, "  %s <command> [options]\n", r.program)
	if d := s.Default(); len(d.Template) > 0 {
		fmt.Fprintf(b, "  %s %s [options]\n", r.program, d.Usage())
	}
	b.WriteString("\n")

	var rows []row
	for _, cmd := range s.Commands() {
		if cmd.IsDefault() || cmd.Hidden {
			continue
		}
		rows = append(rows, row{left: r.name.Render(r.program + " " + cmd.Usage()), right: cmd.Description})
	}
	if len(rows) > 0 {
		b.WriteString(r.heading.Render("Commands:") + "\n")
		writeRows(b, rows)
		b.WriteString("\n")
	}
}

func (r *renderer) command(b *strings.Builder, cmd schema.CommandSpec) {
	b.WriteString(r.heading.Render("Usage:") + "\n")
	fmt.Fprintf(b, "  %s %s [options]\n\n", r.program, cmd.Usage())
	if cmd.Description != "" {
		b.WriteString(cmd.Description + "\n\n")
	}

	if len(cmd.Template) == 0 {
		return
	}
	rows := make([]row, 0, len(cmd.Template))
	for _, tok := range cmd.Template {
		var notes []string
		if tok.Required {
			notes = append(notes, "required")
		} else {
			notes = append(notes, "optional")
		}
		if tok.Variadic {
			notes = append(notes, "one or more values")
			if !tok.Required {
				notes[len(notes)-1] = "any number of values"
			}
		}
		rows = append(rows, row{left: r.name.Render(tok.String()), right: strings.Join(notes, ", ")})
	}
	b.WriteString(r.heading.Render("Arguments:") + "\n")
	writeRows(b, rows)
	b.WriteString("\n")
}

func (r *renderer) options(b *strings.Builder, s *schema.Schema) {
	var rows []row
	for _, o := range s.Options() {
		if o.Hidden {
			continue
		}
		rows = append(rows, row{left: r.name.Render(flagLabel(o)), right: r.describe(o)})
	}
	if len(rows) == 0 {
		return
	}
	b.WriteString(r.heading.Render("Options:") + "\n")
	writeRows(b, rows)
}

// flagLabel renders the flag column, e.g. `-o, --out <value>`.
func flagLabel(o schema.OptionSpec) string {
	var label string
	switch {
	case o.Alias == "":
		label = "    --" + o.Key
	case len(o.Alias) == 1:
		label = "-" + o.Alias + ", --" + o.Key
	default:
		label = "--" + o.Alias + ", --" + o.Key
	}
	if !o.Type.TakesValue() {
		return label
	}
	if o.Type == schema.TypeEither {
		return label + " [value]"
	}
	return label + " <value>"
}

func (r *renderer) describe(o schema.OptionSpec) string {
	desc := o.Description
	if o.Default != nil && o.Type != schema.TypeBoolean {
		note := r.dim.Render(fmt.Sprintf("[default: %s]", o.Default))
		if desc == "" {
			return note
		}
		desc += " " + note
	}
	return desc
}

// writeRows prints rows as an aligned two-column table.
func writeRows(b *strings.Builder, rows []row) {
	width := 0
	for _, rw := range rows {
		width = max(width, lipgloss.Width(rw.left))
	}
	for _, rw := range rows {
		if rw.right == "" {
			fmt.Fprintf(b, "  %s\n", rw.left)
			continue
		}
		padding := strings.Repeat(" ", width-lipgloss.Width(rw.left)+3)
		fmt.Fprintf(b, "  %s%s%s\n", rw.left, padding, rw.right)
	}
}
