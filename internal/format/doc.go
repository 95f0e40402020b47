// Package format holds the number, duration and progress formatting helpers
// shared by the CLI, the REPL and the playground.
package format
