// Package cli implements the command surface of the paygate client: cobra
// subcommands for one-shot use and a small REPL for interactive sessions.
// Commands translate outcomes into user-facing messages; transport and
// state errors are logged and never crash the process.
package cli
