package schemahcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot decodes all top-level blocks of a schema file.
type fileRoot struct {
	Options  []*optionBlock  `hcl:"option,block"`
	Commands []*commandBlock `hcl:"command,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// optionBlock is the HCL form of schema.OptionSpec.
type optionBlock struct {
	Key         string         `hcl:"key,label"`
	Alias       string         `hcl:"alias,optional"`
	Type        hcl.Expression `hcl:"type,optional"`
	Default     *cty.Value     `hcl:"default,optional"`
	Description string         `hcl:"description,optional"`
	Hidden      bool           `hcl:"hidden,optional"`
}

// commandBlock is the HCL form of schema.CommandSpec.
type commandBlock struct {
	Name        string `hcl:"name,label"`
	Template    string `hcl:"template,optional"`
	Handler     string `hcl:"handler,optional"`
	Description string `hcl:"description,optional"`
	Hidden      bool   `hcl:"hidden,optional"`
}
