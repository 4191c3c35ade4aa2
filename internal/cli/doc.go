// Package cli implements the command-line interface for gamelines.
//
// The cli package provides the Cobra-based command that fetches the current
// college football game lines, optionally sorts them and writes them as text
// or JSON. Fetch and parse failures are reported through the logger and never
// change the exit code.
package cli
