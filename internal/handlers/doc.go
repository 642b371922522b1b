// Package handlers maps the handler names declared by a schema's commands to
// the Go functions that run them.
package handlers
