package types

// EvalRequest is the body of POST /eval. A dry run evaluates without
// recording.
type EvalRequest struct {
	Expression string `json:"expression"`
	DryRun     bool   `json:"dry_run,omitempty"`
}

// EvalResponse is returned by POST /eval on success.
type EvalResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

// ErrorResponse carries a stable error code and a human readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
