// Package main runs calcd, the HTTP evaluation service behind
// `qgcalc --remote`. It evaluates expressions with the same engine as the
// CLI and holds the history for every client pointed at it.
//
// HTTP API
//
//	POST /eval {"expression": "3+4*2", "dry_run": false}
//	    Evaluate and record. 200 {"expression": "3+4*2", "result": 11}.
//	    With "dry_run": true the result is not recorded.
//	    Evaluation failures are 422 {"error": code, "message": text} where
//	    code is one of invalid_number_format, unexpected_character,
//	    mismatched_parentheses, percent_without_operand, unary_minus,
//	    binary_operator, division_by_zero, malformed_expression, overflow.
//
//	GET /history?limit=N
//	    Return the last N records (all when limit is absent or 0) as
//	    [{"exp": ..., "res": ...}], most recent last.
//
//	POST /history {"exp": "2*3", "res": 6}
//	    Append a record evaluated by a client. 204 on success.
//
//	DELETE /history
//	    Remove every record. 204 on success.
//
//	GET /health
//	    {"status": "ok"}.
//
// Behaviour
//
//   - History is held in memory and lost on exit unless --home is given, in
//     which case the json (or --backend sqlite) store under that directory
//     is used.
//   - Malformed requests get 400 {"error": "bad_request"}; storage failures
//     get 503 {"error": "storage_unavailable"}.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
//   - The default listen address is :8080.
package main
