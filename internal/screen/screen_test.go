package screen_test

import (
	"testing"

	"github.com/greenscreenhq/greenscreen/internal/screen"
)

func TestNew_NormalizesLineEndings(t *testing.T) {
	s := screen.New("MAIN MENU\r\n 1. Customers\r\n")
	lines := s.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2 (%q)", len(lines), lines)
	}
	if lines[0] != "MAIN MENU" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != " 1. Customers" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestContains(t *testing.T) {
	s := screen.New("ADD CUSTOMER\nCustomer ID: ____")
	if !s.Contains("ADD CUSTOMER") {
		t.Error("expected exact match")
	}
	if s.Contains("add customer") {
		t.Error("Contains must be case sensitive")
	}
	if !s.ContainsFold("add customer") {
		t.Error("ContainsFold must ignore case")
	}
}

func TestMatchers(t *testing.T) {
	s := screen.New("MAIN MENU\n80. Add Customer\n")

	if ok, _ := screen.Text("MAIN MENU")(s); !ok {
		t.Error("Text should match")
	}
	if ok, _ := screen.TextFold("main menu")(s); !ok {
		t.Error("TextFold should match")
	}
	if ok, _ := screen.Line("Add Customer")(s); !ok {
		t.Error("Line should match")
	}
	if ok, _ := screen.Not(screen.Text("PAYROLL"))(s); !ok {
		t.Error("Not should invert a miss")
	}
	if ok, _ := screen.All(screen.Text("MAIN"), screen.Text("MENU"))(s); !ok {
		t.Error("All should require every matcher")
	}
	if ok, _ := screen.All(screen.Text("MAIN"), screen.Text("PAYROLL"))(s); ok {
		t.Error("All should fail on any miss")
	}
	if ok, _ := screen.Any(screen.Text("PAYROLL"), screen.Text("MENU"))(s); !ok {
		t.Error("Any should pass on one hit")
	}
}

func TestString_RoundTrips(t *testing.T) {
	raw := "line one\nline two"
	if got := screen.New(raw).String(); got != raw {
		t.Errorf("String() = %q, want %q", got, raw)
	}
}
