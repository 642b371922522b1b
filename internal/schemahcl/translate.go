package schemahcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/specialistvlad/seedline/internal/ctxlog"
	"github.com/specialistvlad/seedline/internal/result"
	"github.com/specialistvlad/seedline/internal/schema"
)

// translateOption converts a decoded option block into a schema.OptionSpec.
func translateOption(ctx context.Context, b *optionBlock) (schema.OptionSpec, error) {
	logger := ctxlog.FromContext(ctx).With("option", b.Key)

	vt, err := typeExprToValueType(b.Type)
	if err != nil {
		return schema.OptionSpec{}, fmt.Errorf("option %q: %w", b.Key, err)
	}

	spec := schema.OptionSpec{
		Key:         b.Key,
		Alias:       b.Alias,
		Type:        vt,
		Description: b.Description,
		Hidden:      b.Hidden,
	}

	if b.Default != nil && !b.Default.IsNull() {
		def, err := defaultValue(vt, *b.Default)
		if err != nil {
			return schema.OptionSpec{}, fmt.Errorf("option %q: %w", b.Key, err)
		}
		spec.Default = &def
	}

	logger.Debug("Translated option block.", "type", spec.Type.String(), "alias", spec.Alias)
	return spec, nil
}

// translateCommand converts a decoded command block into a schema.CommandSpec.
func translateCommand(ctx context.Context, b *commandBlock) (schema.CommandSpec, error) {
	tokens, err := schema.ParseTemplate(b.Template)
	if err != nil {
		return schema.CommandSpec{}, fmt.Errorf("command %q: %w", b.Name, err)
	}
	ctxlog.FromContext(ctx).Debug("Translated command block.", "command", b.Name, "slots", len(tokens))

	return schema.CommandSpec{
		Name:        b.Name,
		Template:    tokens,
		Handler:     b.Handler,
		Description: b.Description,
		Hidden:      b.Hidden,
	}, nil
}

// typeExprToValueType reads the `type` attribute. Both the bare keyword form
// (`type = either`) and a quoted string (`type = "either"`) are accepted.
func typeExprToValueType(expr hcl.Expression) (schema.ValueType, error) {
	if expr == nil {
		return schema.TypeUnset, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return schema.TypeUnset, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		return schema.ParseValueType(v.Traversal.RootName())

	default:
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return schema.TypeUnset, fmt.Errorf("invalid type expression: %w", diags)
		}
		if val.IsNull() {
			return schema.TypeUnset, nil
		}
		if !val.Type().Equals(cty.String) || !val.IsKnown() {
			return schema.TypeUnset, fmt.Errorf("type must be a keyword or a string, got %s", val.Type().FriendlyName())
		}
		return schema.ParseValueType(val.AsString())
	}
}

// defaultValue converts an HCL default into a result.Value of the shape the
// option type expects. Numbers become strings, since option values are text.
func defaultValue(vt schema.ValueType, v cty.Value) (result.Value, error) {
	if !v.IsWhollyKnown() {
		return result.Value{}, fmt.Errorf("default must be a known value")
	}

	// A boolean default is kept boolean whatever the declared type, so that
	// schema.New can force boolean handling.
	target := cty.String
	if v.Type().Equals(cty.Bool) || vt == schema.TypeBoolean {
		target = cty.Bool
	}

	converted, err := convert.Convert(v, target)
	if err != nil {
		return result.Value{}, fmt.Errorf("default of type %s does not fit a %s option: %w", v.Type().FriendlyName(), vt, err)
	}
	if target.Equals(cty.Bool) {
		return result.BoolValue(converted.True()), nil
	}
	return result.StringValue(converted.AsString()), nil
}
