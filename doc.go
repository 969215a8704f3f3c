// Package greenscreen drives legacy block-mode host terminals through
// scripted navigation flows.
//
// A flow is described by a ScreenDefinition: an ordered list of
// navigation steps plus the field layout of the final data-entry form.
// The engine validates user-supplied field values offline, walks the
// steps against a live terminal session, fills the form with the exact
// tab choreography the host expects, and classifies every resulting
// screen as success, error, or a reactivation prompt.
//
// The terminal itself is abstracted behind ports.Session; the bundled
// x3270 adapter speaks to a s3270 subprocess, and the in-memory adapter
// scripts screens for tests. Definitions can be kept in memory, on disk
// as YAML, or in Redis through the ports.ConfigStore implementations.
//
// Basic usage:
//
//	eng := greenscreen.New(greenscreen.WithStore(store))
//	result, err := eng.RunScreen(ctx, "add-customer", inputs, sess)
package greenscreen
