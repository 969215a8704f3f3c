package ports

import "context"

// Recorder receives screen snapshots for diagnostics: one capture before
// each step and around form submission. Implementations own all file or
// network I/O; the engine only hands over text and never fails a flow on a
// capture error.
type Recorder interface {
	Record(ctx context.Context, label string, screen string) error
}
