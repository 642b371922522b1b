package argerr

import (
	"errors"
	"fmt"
	"strings"
)

// Stage identifies the step of the parse pipeline that rejected the input.
type Stage int

const (
	StageTokenize Stage = iota
	StageNormalize
	StageResolve
	StageMatch
	StageAssemble
)

// String returns the lower-case stage name used in log records and messages.
func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageNormalize:
		return "normalize"
	case StageResolve:
		return "resolve"
	case StageMatch:
		return "match"
	case StageAssemble:
		return "assemble"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// SchemaError reports an inconsistent schema definition.
type SchemaError struct {
	// Subject names the option key, alias or command the rule applies to.
	Subject string
	Rule    string
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	if e.Subject == "" {
		return "schema error: " + e.Rule
	}
	return fmt.Sprintf("schema error: %s: %s", e.Subject, e.Rule)
}

// SchemaErrors aggregates every problem found while validating a schema.
type SchemaErrors []*SchemaError

// Error joins all collected problems in the same list layout used by the
// handler registry validation.
func (es SchemaErrors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("schema validation failed:\n- %s", strings.Join(msgs, "\n- "))
}

// Unwrap exposes the individual errors to errors.As and errors.Is.
func (es SchemaErrors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// UsageError reports input the user supplied that does not fit the schema.
type UsageError struct {
	Stage Stage
	// Command is the resolved command name, empty if resolution had not
	// happened yet.
	Command    string
	Rule       string
	Token      string
	Suggestion string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	var b strings.Builder
	b.WriteString(e.Rule)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %s?)", e.Suggestion)
	}
	return b.String()
}

// IsUsage reports whether err is, or wraps, a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// IsSchema reports whether err is, or wraps, a SchemaError.
func IsSchema(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
