package runtime

import (
	"fmt"
	"strings"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// ValidateField checks one submitted value against its field configuration.
// It is a pure function: no side effects, deterministic for a given pair.
// The returned message is suitable for the flow's outcome log either way.
func ValidateField(cfg domain.FieldConfig, value string) (bool, string) {
	if cfg.Required && value == "" {
		return false, fmt.Sprintf("%s is required but empty", cfg.Name)
	}
	if value == "" {
		return true, fmt.Sprintf("%s is optional and empty", cfg.Name)
	}
	if len(value) > cfg.MaxLength {
		return false, fmt.Sprintf("%s exceeds maximum length of %d (current: %d)", cfg.Name, cfg.MaxLength, len(value))
	}
	if cfg.Kind == domain.FieldDigits && !allDigits(value) {
		return false, fmt.Sprintf("%s must contain only digits (current: %s)", cfg.Name, value)
	}
	if len(cfg.ValidValues) > 0 && !containsValue(cfg.ValidValues, value) {
		return false, fmt.Sprintf("%s must be one of [%s] (current: %s)", cfg.Name, strings.Join(cfg.ValidValues, ", "), value)
	}
	return true, fmt.Sprintf("%s: %q (%d/%d chars)", cfg.Name, value, len(value), cfg.MaxLength)
}

// ValidateAll validates every submitted field against the screen definition.
// It never short-circuits: all failures are collected so the caller can
// report everything wrong at once. The boolean is the AND of all results.
func ValidateAll(def *domain.ScreenDefinition, inputs *domain.Inputs) (bool, []string) {
	allValid := true
	var messages []string

	for _, p := range inputs.Pairs() {
		cfg, ok := def.Field(p.Field)
		if !ok {
			messages = append(messages, fmt.Sprintf("validation error: unknown field: %s", p.Field))
			allValid = false
			continue
		}
		valid, msg := ValidateField(cfg, p.Value)
		if !valid {
			messages = append(messages, "validation error: "+msg)
			allValid = false
			continue
		}
		messages = append(messages, "ok: "+msg)
	}

	return allValid, messages
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsValue(values []string, v string) bool {
	for _, allowed := range values {
		if allowed == v {
			return true
		}
	}
	return false
}
