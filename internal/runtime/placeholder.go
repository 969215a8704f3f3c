package runtime

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// ResolvePlaceholders substitutes {name} tokens in a step's action value.
//
// A token whose name matches a submitted field (case-insensitively) resolves
// to that field's value. A token with no matching field falls back to
// consuming the next unused input value in insertion order, which keeps old
// purely positional templates working. When values run out the token
// resolves to an empty string and a warning is returned; resolution never
// fails. Text outside the brace pattern passes through unchanged.
func ResolvePlaceholders(template string, inputs *domain.Inputs) (string, []string) {
	var warnings []string
	pairs := inputs.Pairs()
	used := make([]bool, len(pairs))

	resolved := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		if i, ok := lookupFold(pairs, name); ok {
			used[i] = true
			return pairs[i].Value
		}
		for i := range pairs {
			if used[i] {
				continue
			}
			used[i] = true
			return pairs[i].Value
		}
		warnings = append(warnings, fmt.Sprintf("no value available for placeholder %s, substituting empty string", token))
		return ""
	})

	return resolved, warnings
}

// lookupFold finds an input index by field name, exact match first, then
// ignoring case so templates written as {COMPANY_ID} match an input
// submitted as company_id.
func lookupFold(pairs []domain.Pair, name string) (int, bool) {
	for i, p := range pairs {
		if p.Field == name {
			return i, true
		}
	}
	for i, p := range pairs {
		if strings.EqualFold(p.Field, name) {
			return i, true
		}
	}
	return -1, false
}
