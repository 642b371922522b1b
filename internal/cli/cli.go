package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/seedline/internal/app"
	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/argparse"
	"github.com/specialistvlad/seedline/internal/normalize"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
	"github.com/specialistvlad/seedline/internal/tokenizer"
	"github.com/specialistvlad/seedline/internal/torrentschema"
	"github.com/specialistvlad/seedline/internal/usage"
)

// Program is the name the tool is invoked as in usage output.
const Program = "seedline"

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments against the built-in schema. It
// returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	s := torrentschema.Default()
	if extra := os.Getenv(torrentschema.EnvExtraPaths); extra != "" {
		slog.Debug("Extending the built-in schema.", "paths", extra)
		var err error
		s, err = torrentschema.LoadWith(context.Background(), filepath.SplitList(extra)...)
		if err != nil {
			return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("failed to load %s: %v", torrentschema.EnvExtraPaths, err)}
		}
	}
	return ParseWith(s, args, output)
}

// ParseWith is Parse for an arbitrary schema. The schema must declare the
// help, version and log-* options.
func ParseWith(s *schema.Schema, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	res, err := argparse.New(s, argparse.WithLogger(slog.Default())).Parse(args)
	if err != nil {
		var usageErr *argerr.UsageError
		// `seed --help` must show help even though `seed` alone is missing
		// its arguments.
		if errors.As(err, &usageErr) && askedForHelp(s, args) {
			opts := usage.Options{Program: Program}
			if usageErr.Command != schema.DefaultCommand {
				opts.Command = usageErr.Command
			}
			return nil, true, usage.Render(output, s, opts)
		}
		return nil, false, Exit(err)
	}
	slog.Debug("Arguments parsed successfully.", "command", res.Command())

	switch {
	case res.Bool("help"):
		return nil, true, printUsage(output, s, res)
	case res.Bool("version"):
		_, err := fmt.Fprintf(output, "%s %s\n", Program, Version)
		return nil, true, err
	case res.Fallthrough():
		slog.Debug("No command or arguments provided, printing usage and exiting.")
		return nil, true, usage.Render(output, s, usage.Options{Program: Program})
	}

	logFormat := strings.ToLower(res.Str("log-format"))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(res.Str("log-level"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Result:    res,
		Schema:    s,
		Program:   Program,
		Version:   Version,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		LogFile:   res.Str("log-file"),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "command", res.Command())
	return config, false, nil
}

// printUsage renders help for the command the user asked about, or for the
// whole tool when no command was named.
func printUsage(output io.Writer, s *schema.Schema, res *result.ParseResult) error {
	opts := usage.Options{Program: Program}
	if res.Command() != schema.DefaultCommand {
		opts.Command = res.Command()
	}
	return usage.Render(output, s, opts)
}

// Exit converts a UsageError into an ExitError with status 2 and a hint
// pointing at the usage text. Other errors are returned unchanged.
func Exit(err error) error {
	var usageErr *argerr.UsageError
	if !errors.As(err, &usageErr) {
		return err
	}
	return &ExitError{
		Code:    2,
		Message: fmt.Sprintf("%s\nRun '%s --help' for usage.", usageErr.Error(), Program),
	}
}

// askedForHelp reports whether args set the help option. It reruns the
// flag stages alone, so bundles like `-qh`, `--help=true` and the `--`
// terminator are read the same way the engine reads them.
func askedForHelp(s *schema.Schema, args []string) bool {
	tokens, err := tokenizer.Tokenize(args, s)
	if err != nil {
		return false
	}
	opts, err := normalize.Normalize(tokens.Flags, s)
	if err != nil {
		return false
	}
	return opts["help"].Bool()
}
