// Package calculator is the controller behind every front end.
//
// A Service owns one editing session and feeds each successful evaluation
// into the history service. Key handling always runs on the local engine;
// whole-expression evaluation goes through a domain.Evaluator, which may be
// the local engine or a remote calcd client.
//
// Storage failures never reach the session: they are logged and the
// in-memory history stays current.
package calculator
