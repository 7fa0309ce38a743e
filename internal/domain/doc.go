// Package domain holds the calculator's shared records and the storage and
// service contracts that the CLI, TUI and HTTP service are built against.
package domain
