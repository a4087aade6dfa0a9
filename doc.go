// Package ziglet is a declarative command-line parsing and dispatch
// engine. A program describes its commands and options as a schema, and
// ziglet tokenizes the raw argument list against it, coerces values to
// their declared types, enforces required and choice constraints, and
// routes control to the matched command handler with a fully validated
// context.
//
// Parsing happens in two passes: a first pass against the global options
// alone detects --help/--version and the command name, then the global
// and command schemas are merged and the same arguments are parsed
// strictly against the merged schema before dispatch.
package ziglet

//go:generate gomarkdoc ./ -o docs/ziglet.md
