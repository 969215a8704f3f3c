package ports

// Session is the capability surface of one live terminal connection. The
// engine drives it strictly sequentially: send keys, wait, read the screen.
// Implementations own connection lifecycle and I/O timeouts; the engine
// performs no transport-level retries and propagates failures unmodified.
type Session interface {
	// MoveToFirstField relocates the cursor to the first writable field.
	MoveToFirstField() error
	// SendText types literal text at the current cursor position.
	SendText(text string) error
	// SendTab advances the cursor to the next field.
	SendTab() error
	// SendEnter transmits the composed input to the host.
	SendEnter() error
	// GetScreen returns the current full-screen text snapshot.
	GetScreen() (string, error)
}
