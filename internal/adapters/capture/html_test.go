package capture_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/greenscreenhq/greenscreen/internal/adapters/capture"
)

func TestRecorder_WritesEscapedHTML(t *testing.T) {
	base := t.TempDir()
	rec, err := capture.New(base, "run-1")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if rec.Dir() != filepath.Join(base, "run-1") {
		t.Errorf("Dir() = %q", rec.Dir())
	}

	screen := "ADD CUSTOMER\nName: <unset> & more"
	if err := rec.Record(context.Background(), "before_submission", screen); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := os.ReadDir(rec.Dir())
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "before_submission_") || !strings.HasSuffix(name, ".html") {
		t.Errorf("capture file name = %q", name)
	}

	data, err := os.ReadFile(filepath.Join(rec.Dir(), name))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "&lt;unset&gt; &amp; more") {
		t.Errorf("screen text not escaped:\n%s", content)
	}
	if !strings.Contains(content, "background-color: #000") {
		t.Errorf("terminal styling missing")
	}
}

func TestRecorder_CreatesRunDirectoryEagerly(t *testing.T) {
	base := t.TempDir()
	if _, err := capture.New(base, "run-2"); err != nil {
		t.Fatalf("New failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(base, "run-2"))
	if err != nil || !info.IsDir() {
		t.Errorf("run directory missing: %v", err)
	}
}
