package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/seedline/internal/ctxlog"
	"github.com/specialistvlad/seedline/internal/schema"
)

// Validate performs a strict parity check between the schema's commands and
// the registered Go handlers. Every handler a command names must be
// registered, and every registered handler must be used by some command.
// All mismatches are reported together.
func (r *Registry) Validate(ctx context.Context, s *schema.Schema) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	used := make(map[string]struct{})
	for _, cmd := range s.Commands() {
		if cmd.Handler == "" {
			if !cmd.IsDefault() {
				logger.Warn("Command has no handler and can only be used for help output.", "command", cmd.Name)
			}
			continue
		}
		used[cmd.Handler] = struct{}{}
		if _, ok := r.all[cmd.Handler]; !ok {
			errs = append(errs, fmt.Sprintf("command '%s': handler '%s' is not registered", cmd.Name, cmd.Handler))
		}
	}

	for _, name := range r.Names() {
		if _, ok := used[name]; !ok {
			errs = append(errs, fmt.Sprintf("handler '%s' is registered but no command uses it", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("handler registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Handler registry validation passed.", "handlers", r.Len())
	return nil
}
