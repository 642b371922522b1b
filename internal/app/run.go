package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/seedline/internal/ctxlog"
	"github.com/specialistvlad/seedline/internal/result"
)

// Run dispatches a parse result to the handler of its command.
func (a *App) Run(ctx context.Context, res *result.ParseResult) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	cmd, ok := a.schema.Command(res.Command())
	if !ok {
		return fmt.Errorf("command %q is not declared by the schema", res.Command())
	}
	if cmd.Handler == "" {
		return fmt.Errorf("command %q has no handler", cmd.Name)
	}
	handler, ok := a.registry.Get(cmd.Handler)
	if !ok {
		return fmt.Errorf("command %q: handler %q is not registered", cmd.Name, cmd.Handler)
	}

	ctx = ctxlog.With(ctx, "command", cmd.Name, "handler", cmd.Handler)
	ctxlog.FromContext(ctx).Info("Running command.", "fallthrough", res.Fallthrough())
	if err := handler(ctx, a.outW, res); err != nil {
		return fmt.Errorf("command %q failed: %w", cmd.Name, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
