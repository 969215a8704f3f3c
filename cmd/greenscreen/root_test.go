package main

import (
	"testing"
)

// Building this test binary runs every command's init, so a duplicate flag
// registration would panic before any test body executes.

func TestServeCommandFlags(t *testing.T) {
	port := serveCmd.Flags().Lookup("port")
	if port == nil {
		t.Fatal("serve must keep --port for the HTTP listener")
	}
	if port.Value.Type() != "string" {
		t.Errorf("--port type = %s, want string", port.Value.Type())
	}

	termPort := serveCmd.Flags().Lookup("terminal-port")
	if termPort == nil {
		t.Fatal("serve must expose --terminal-port for the host connection")
	}
	if termPort.Value.Type() != "int" {
		t.Errorf("--terminal-port type = %s, want int", termPort.Value.Type())
	}
}

func TestRunCommandFlags(t *testing.T) {
	for _, name := range []string{"host", "terminal-port", "ssl", "input", "capture-dir"} {
		if runCmd.Flags().Lookup(name) == nil {
			t.Errorf("run is missing --%s", name)
		}
	}
}

func TestRootCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "validate", "serve", "screens", "version"} {
		if !names[want] {
			t.Errorf("root is missing the %s command", want)
		}
	}
}

func TestParseInputs(t *testing.T) {
	cmd := runCmd
	if err := cmd.Flags().Set("input", "customer_id=594"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cmd.Flags().Set("input", "name=ACME"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	inputs, err := parseInputs(cmd)
	if err != nil {
		t.Fatalf("parseInputs failed: %v", err)
	}
	pairs := inputs.Pairs()
	if len(pairs) < 2 || pairs[0].Field != "customer_id" || pairs[1].Field != "name" {
		t.Errorf("pairs = %v", pairs)
	}
}

func TestParseInputs_Malformed(t *testing.T) {
	if err := validateCmd.Flags().Set("input", "no-separator"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := parseInputs(validateCmd); err == nil {
		t.Error("expected error for input without name=value form")
	}
}
