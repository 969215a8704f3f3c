// Package screen holds the immutable text snapshot of a host screen and
// small predicates over it. The engine classifies and gates navigation on
// these snapshots instead of re-reading the live terminal.
package screen

import "strings"

// Screen is an immutable capture of terminal content.
type Screen struct {
	raw   string
	lines []string
}

// New creates a Screen from a raw snapshot. Line endings are normalized and
// a single trailing newline is dropped, matching what terminal clients emit.
func New(raw string) *Screen {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimSuffix(raw, "\n")
	return &Screen{
		raw:   raw,
		lines: strings.Split(raw, "\n"),
	}
}

// String returns the full screen content.
func (s *Screen) String() string {
	return s.raw
}

// Lines returns a copy of the screen content, one string per row.
func (s *Screen) Lines() []string {
	cp := make([]string, len(s.lines))
	copy(cp, s.lines)
	return cp
}

// Contains reports whether the screen contains the substring.
func (s *Screen) Contains(substr string) bool {
	return strings.Contains(s.raw, substr)
}

// ContainsFold reports whether the screen contains the substring,
// case-insensitively.
func (s *Screen) ContainsFold(substr string) bool {
	return strings.Contains(strings.ToLower(s.raw), strings.ToLower(substr))
}
