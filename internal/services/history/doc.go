// Package history keeps the list of successful evaluations.
//
// Records are stored as one JSON array of {"exp","res"} objects under the
// key "qg_history", most recent last, and trimmed to a fixed retention count
// on every write. A copy is kept in memory so the list stays usable when the
// backing store is not.
package history
