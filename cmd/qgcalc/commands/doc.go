// Package commands defines the qgcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)          Interactive keypad when stdin is a terminal, else repl
//   - eval            Evaluate an expression and record it in history
//   - keys            Feed calculator keys and print the display after each
//   - history         List, clear or recall history entries
//   - theme           Show, toggle or set the colour theme
//   - repl            Evaluate one expression per input line
//
// # Implementation
//
// The root command loads config.json from the home directory, applies flag
// overrides, configures the logger and builds the dependency graph (store
// backend, history, theme and calculator services, optional calcd client)
// before any subcommand runs.
package commands
