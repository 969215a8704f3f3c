package domain

import "errors"

// ErrScreenNotFound is returned when a screen name cannot be found in the
// configuration store.
var ErrScreenNotFound = errors.New("screen definition not found")

// ErrPromptUnresolved is returned when a reactivation prompt reappears after
// one handling attempt. Handling is bounded to a single retry so a stuck
// terminal cannot loop the engine forever.
var ErrPromptUnresolved = errors.New("reactivation prompt unresolved after confirmation")

// ErrNoTransport is returned when a flow is requested but no terminal
// transport has been configured.
var ErrNoTransport = errors.New("no terminal transport configured")
