// Package argerr defines the two error classes produced while resolving
// command-line arguments.
//
// A SchemaError is a programmer error: the declared options or command
// templates are inconsistent. It is detected once, when the schema is built,
// and is never caused by end-user input.
//
// A UsageError is an end-user error: a missing positional, too many
// positionals, a flag without its value or an unknown flag. It is always
// returned as a value so that the caller can print it and choose an exit code.
package argerr
