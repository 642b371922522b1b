package app

import (
	"github.com/specialistvlad/seedline/internal/handlers"
	"github.com/specialistvlad/seedline/internal/report"
	"github.com/specialistvlad/seedline/internal/schema"
)

// coreModules is the definitive list of all handler modules that are
// compiled into the seedline binary.
func coreModules(cfg *Config, s *schema.Schema) []handlers.Module {
	return []handlers.Module{
		&report.Module{Program: cfg.Program, Version: cfg.Version, Schema: s},
	}
}
