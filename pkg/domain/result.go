package domain

import "fmt"

// ExecutionResult is the ordered outcome log of one flow run. Messages are
// append-only: nothing is rewritten once emitted, so on an aborted flow the
// log shows exactly how far execution progressed.
type ExecutionResult struct {
	RunID    string   `json:"run_id"`
	Screen   string   `json:"screen"`
	Messages []string `json:"messages"`
	Success  bool     `json:"success"`
}

// NewExecutionResult creates an empty result for a run against a screen.
func NewExecutionResult(runID, screen string) *ExecutionResult {
	return &ExecutionResult{RunID: runID, Screen: screen}
}

// Append adds a human-readable outcome message to the log.
func (r *ExecutionResult) Append(msg string) {
	r.Messages = append(r.Messages, msg)
}

// Appendf adds a formatted outcome message to the log.
func (r *ExecutionResult) Appendf(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}
