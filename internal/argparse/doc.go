// Package argparse is the entry point of the argument resolution engine. It
// runs the pipeline
//
//	RawArgs → Tokenized → Normalized → CommandResolved → PositionalsBound → Assembled
//
// over a schema.Schema and returns either a result.ParseResult or the first
// structured error. There is no backtracking and no process-wide state: Parse
// is a pure function of its arguments.
package argparse
