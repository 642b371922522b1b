package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Result *result.ParseResult // the parsed command line to dispatch
	Schema *schema.Schema      // the schema Result was parsed against

	Program string
	Version string

	LogFormat string
	LogLevel  string
	LogFile   string // rotated when set, otherwise logs go to the output writer
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Result == nil {
		return nil, errors.New("Result is a required configuration field and cannot be nil")
	}
	if cfg.Schema == nil {
		return nil, errors.New("Schema is a required configuration field and cannot be nil")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unsupported log level %q", cfg.LogLevel)
	}

	return &cfg, nil
}
