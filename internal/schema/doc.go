// Package schema describes the command-line surface of the tool: the
// options it accepts and the commands it dispatches to, each with an ordered
// template of positional arguments.
//
// A Schema is built once through New, which validates every declaration and
// precomputes the lookup indexes used by the tokenizer, the normalizer and the
// matcher. After construction it is read-only and may be shared freely between
// goroutines.
package schema
