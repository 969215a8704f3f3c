package runtime

import "github.com/greenscreenhq/greenscreen/pkg/domain"

// PlanTabs returns how many explicit tab presses to issue after a field.
//
// Host terminals auto-advance the cursor once a field is filled to its
// maximum length. That behavior is inferred, not observed: the engine never
// reads cursor coordinates, it assumes an exactly-full field already moved
// the cursor one position and sends one tab fewer. The policy is
// deliberately explicit here rather than buried in the form-fill loop.
func PlanTabs(cfg domain.FieldConfig, value string) int {
	if value == "" {
		// The field is never entered at all.
		return cfg.TabsEmpty
	}
	if len(value) >= cfg.MaxLength {
		// Auto-advance already consumed one tab.
		if extra := cfg.TabsFilled - 1; extra > 0 {
			return extra
		}
		return 0
	}
	return cfg.TabsFilled
}
