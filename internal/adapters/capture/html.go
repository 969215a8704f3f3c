// Package capture writes diagnostic screen snapshots as standalone HTML
// files, styled like the green-on-black terminal they came from.
package capture

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"time"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Screen Capture</title>
<style>
body { font-family: 'Courier New', monospace; background-color: #000; color: #00ff00; white-space: pre; margin: 20px; line-height: 1.2; }
.screen-content { border: 1px solid #00ff00; padding: 10px; background-color: #001100; }
.timestamp { color: #ffff00; font-size: 12px; margin-bottom: 10px; }
</style>
</head>
<body>
<div class="timestamp">Captured: %s</div>
<div class="screen-content">%s</div>
</body>
</html>
`

// Recorder implements ports.Recorder by writing one HTML file per capture
// into a per-run directory. Filenames carry a timestamp so repeated labels
// never overwrite each other.
type Recorder struct {
	dir string
	now func() time.Time
}

// New creates a Recorder writing under baseDir/<runID>. The directory is
// created eagerly so a capture failure surfaces at setup, not mid-flow.
func New(baseDir, runID string) (*Recorder, error) {
	dir := filepath.Join(baseDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create capture directory: %w", err)
	}
	return &Recorder{dir: dir, now: time.Now}, nil
}

// Dir returns the directory captures are written into.
func (r *Recorder) Dir() string {
	return r.dir
}

// Record writes the screen text as an HTML snapshot named after the label.
func (r *Recorder) Record(ctx context.Context, label string, screen string) error {
	ts := r.now()
	name := fmt.Sprintf("%s_%s.html", label, ts.Format("150405.000"))
	content := fmt.Sprintf(pageTemplate, ts.Format("2006-01-02 15:04:05"), html.EscapeString(screen))

	if err := os.WriteFile(filepath.Join(r.dir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write capture %s: %w", name, err)
	}
	return nil
}
