// Package schemahcl loads schema declarations written in HCL:
//
//	option "out" {
//	  alias       = "o"
//	  type        = string
//	  description = "Set download destination"
//	}
//
//	command "seed" {
//	  template    = "<inputs...>"
//	  handler     = "seed"
//	  description = "Seed a file or a folder"
//	}
//
// Any number of files may contribute blocks. Declaration order is preserved
// across files in the order they are loaded, and the merged declarations are
// validated by schema.New.
package schemahcl
