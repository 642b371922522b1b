package argparse

import (
	"log/slog"

	"github.com/specialistvlad/seedline/internal/argerr"
	"github.com/specialistvlad/seedline/internal/matcher"
	"github.com/specialistvlad/seedline/internal/normalize"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
	"github.com/specialistvlad/seedline/internal/tokenizer"
)

// Parser parses argument lists against a single schema. It holds no mutable
// state and may be used from several goroutines.
type Parser struct {
	schema *schema.Schema
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger makes the parser log each pipeline stage at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New returns a Parser for s.
func New(s *schema.Schema, opts ...Option) *Parser {
	p := &Parser{
		schema: s,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse resolves rawArgs against s without logging.
func Parse(rawArgs []string, s *schema.Schema) (*result.ParseResult, error) {
	return New(s).Parse(rawArgs)
}

// Parse resolves rawArgs. A returned error is an *argerr.UsageError for bad
// input or an *argerr.SchemaError when the parser was built without a schema.
func (p *Parser) Parse(rawArgs []string) (*result.ParseResult, error) {
	if p.schema == nil {
		return nil, &argerr.SchemaError{Rule: "parser has no schema"}
	}
	logger := p.logger
	logger.Debug("Argument parsing started.", "arg_count", len(rawArgs))

	tokens, err := tokenizer.Tokenize(rawArgs, p.schema)
	if err != nil {
		logger.Debug("Tokenizing failed.", "error", err)
		return nil, err
	}
	logger.Debug("Arguments tokenized.", "flags", tokens.Order, "positionals", len(tokens.Positionals))

	options, err := normalize.Normalize(tokens.Flags, p.schema)
	if err != nil {
		logger.Debug("Normalizing failed.", "error", err)
		return nil, err
	}
	logger.Debug("Options normalized.", "option_count", len(options))

	cmd, rest := matcher.Resolve(tokens.Positionals, p.schema)
	logger.Debug("Command resolved.", "command", cmd.Name, "residual", len(rest))

	bindings, err := matcher.Match(cmd, rest)
	if err != nil {
		logger.Debug("Positional matching failed.", "command", cmd.Name, "error", err)
		return nil, err
	}
	logger.Debug("Positionals bound.", "command", cmd.Name, "bound", len(bindings))

	fallThrough := cmd.IsDefault() && len(tokens.Positionals) == 0
	res := result.Assemble(cmd.Name, fallThrough, options, p.schema.ResultKeys(), bindings)
	logger.Debug("Argument parsing finished.", "command", res.Command(), "keys", res.Len(), "fallthrough", fallThrough)
	return res, nil
}
