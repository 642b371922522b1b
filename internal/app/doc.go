// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the dispatch of a parsed command line to its
// handler, decoupled from any specific entrypoint like a CLI.
package app
