// Package result defines the values produced by the argument parser and the
// assembler that merges options and positionals into a single ParseResult.
package result
