// Package app wires application dependencies for the CLI and calcd.
//
// It reads Config, opens the configured storage backend and builds the
// history, theme and calculator services, exposing them via Wire.
package app
