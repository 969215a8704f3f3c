package memory

import (
	"sync"
)

// Session is a scripted ports.Session for tests and dry runs. It replays a
// fixed sequence of screens: GetScreen returns the current screen and each
// SendEnter advances to the next one, mimicking a host that redraws on
// submission. Every operation is appended to Ops so tests can assert the
// exact keystroke sequence.
type Session struct {
	mu      sync.Mutex
	screens []string
	pos     int

	// Err, when set, is returned by every subsequent operation. It
	// simulates a dropped terminal connection.
	Err error

	// Ops records operations in order: "move", "text:<s>", "tab", "enter".
	Ops []string
}

// NewSession creates a scripted session that serves the given screens in
// order. At least one screen should be provided; an empty script serves
// empty screens.
func NewSession(screens ...string) *Session {
	return &Session{screens: screens}
}

func (s *Session) record(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Ops = append(s.Ops, op)
	return nil
}

// MoveToFirstField implements ports.Session.
func (s *Session) MoveToFirstField() error {
	return s.record("move")
}

// SendText implements ports.Session.
func (s *Session) SendText(text string) error {
	return s.record("text:" + text)
}

// SendTab implements ports.Session.
func (s *Session) SendTab() error {
	return s.record("tab")
}

// SendEnter implements ports.Session. It advances the script to the next
// screen.
func (s *Session) SendEnter() error {
	if err := s.record("enter"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos < len(s.screens)-1 {
		s.pos++
	}
	return nil
}

// GetScreen implements ports.Session.
func (s *Session) GetScreen() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.screens) == 0 {
		return "", nil
	}
	return s.screens[s.pos], nil
}

// Screen returns the script's current screen without counting as an
// operation.
func (s *Session) Screen() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.screens) == 0 {
		return ""
	}
	return s.screens[s.pos]
}
