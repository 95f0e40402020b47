// Package logging provides the structured logging interface shared by the
// algodemo entry points. Components depend on Logger, never on zerolog
// directly, so the server, REPL and tests can swap backends.
package logging
