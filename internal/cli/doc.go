// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It runs
// the argument engine over the built-in schema and translates the result
// into the application's configuration.
package cli
