package runtime_test

import (
	"testing"

	"github.com/greenscreenhq/greenscreen/internal/runtime"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

func TestPlanTabs(t *testing.T) {
	cfg := domain.FieldConfig{Name: "f", MaxLength: 5, TabsFilled: 2, TabsEmpty: 1}

	cases := []struct {
		value string
		want  int
	}{
		{"", 1},       // untouched field, tabs_empty
		{"ab", 2},     // partial fill, full tabs_filled
		{"abcd", 2},   // one short of max, still no auto-advance
		{"abcde", 1},  // exactly full, host auto-advanced one position
	}
	for _, tc := range cases {
		if got := runtime.PlanTabs(cfg, tc.value); got != tc.want {
			t.Errorf("PlanTabs(%q) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestPlanTabs_NeverNegative(t *testing.T) {
	cfg := domain.FieldConfig{Name: "f", MaxLength: 3, TabsFilled: 0, TabsEmpty: 0}
	if got := runtime.PlanTabs(cfg, "abc"); got != 0 {
		t.Errorf("PlanTabs full field with zero tabs = %d, want 0", got)
	}
	if got := runtime.PlanTabs(cfg, ""); got != 0 {
		t.Errorf("PlanTabs empty field with zero tabs = %d, want 0", got)
	}
}
