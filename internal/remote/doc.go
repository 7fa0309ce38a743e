// Package remote is the HTTP client for a calcd evaluation service.
//
// Client implements domain.Evaluator, so a remote service can stand in for
// the local engine wherever whole expressions are evaluated. Evaluation
// failures come back as the engine's sentinel errors, which keeps errors.Is
// checks working across the wire. Other non-2xx statuses are returned as
// errors carrying the method, path and status text.
package remote
