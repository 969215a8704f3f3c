// Package ports defines the boundary interfaces between the automation
// engine and its collaborators: the terminal session transport, the screen
// definition store and the diagnostic screen recorder.
//
// The engine consumes these interfaces and never implements them; adapters
// live under internal/adapters.
package ports
