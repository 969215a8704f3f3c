package screen

import (
	"fmt"
	"strings"
)

// A Matcher reports whether a Screen satisfies a condition. The string
// return is a human-readable description for log and test output.
type Matcher func(s *Screen) (ok bool, description string)

// Text matches if the screen contains the substring anywhere.
func Text(substr string) Matcher {
	return func(s *Screen) (bool, string) {
		return s.Contains(substr), fmt.Sprintf("screen to contain %q", substr)
	}
}

// TextFold matches like Text but case-insensitively.
func TextFold(substr string) Matcher {
	return func(s *Screen) (bool, string) {
		return s.ContainsFold(substr), fmt.Sprintf("screen to contain %q (fold)", substr)
	}
}

// Line matches if any screen line, lowercased and trimmed, contains the
// lowercase substring.
func Line(substr string) Matcher {
	want := strings.ToLower(substr)
	return func(s *Screen) (bool, string) {
		for _, l := range s.Lines() {
			if strings.Contains(strings.ToLower(strings.TrimSpace(l)), want) {
				return true, fmt.Sprintf("a line to contain %q", substr)
			}
		}
		return false, fmt.Sprintf("a line to contain %q", substr)
	}
}

// Not inverts a matcher.
func Not(m Matcher) Matcher {
	return func(s *Screen) (bool, string) {
		ok, desc := m(s)
		return !ok, "NOT(" + desc + ")"
	}
}

// All matches when every provided matcher matches.
func All(matchers ...Matcher) Matcher {
	return func(s *Screen) (bool, string) {
		descs := make([]string, 0, len(matchers))
		for _, m := range matchers {
			ok, desc := m(s)
			descs = append(descs, desc)
			if !ok {
				return false, "all of: " + strings.Join(descs, ", ")
			}
		}
		return true, "all of: " + strings.Join(descs, ", ")
	}
}

// Any matches when at least one provided matcher matches.
func Any(matchers ...Matcher) Matcher {
	return func(s *Screen) (bool, string) {
		descs := make([]string, 0, len(matchers))
		for _, m := range matchers {
			ok, desc := m(s)
			descs = append(descs, desc)
			if ok {
				return true, "any of: " + strings.Join(descs, ", ")
			}
		}
		return false, "any of: " + strings.Join(descs, ", ")
	}
}
