package runtime

import (
	"strings"

	"github.com/greenscreenhq/greenscreen/internal/screen"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// Error phrases the host uses on failure, matched case-insensitively per
// line. Order within the list does not matter; the first matching line wins.
var errorPhrases = []string{
	"invalid",
	"error",
	"already exists",
	"not found",
	"unauthorized",
	"access denied",
	"duplicate",
	"cannot",
	"unable to",
	"failed",
}

// Success phrases, checked only after the error scan found nothing.
var successPhrases = []string{
	"added successfully",
	"updated successfully",
	"completed successfully",
	"successful",
}

// classifierRule pairs a detector with the classification it produces.
// Rules run in fixed order so precedence is explicit: the reactivation
// prompt always wins over the generic error scan, because its screen text
// ("record is inactive ...") would otherwise look like an error.
type classifierRule struct {
	kind   domain.ClassKind
	detect func(s *screen.Screen) (bool, string)
}

var classifierRules = []classifierRule{
	{domain.ClassReactivationPrompt, detectReactivationPrompt},
	{domain.ClassError, detectError},
	{domain.ClassSuccess, detectSuccess},
}

// Classify inspects a screen snapshot and reports the host's verdict.
// ClassUnknown means no definitive signal and is treated as non-error.
func Classify(s *screen.Screen) domain.Classification {
	for _, rule := range classifierRules {
		if ok, msg := rule.detect(s); ok {
			return domain.Classification{Kind: rule.kind, Message: msg}
		}
	}
	return domain.Classification{Kind: domain.ClassUnknown, Message: "no errors detected"}
}

func detectReactivationPrompt(s *screen.Screen) (bool, string) {
	for _, line := range s.Lines() {
		l := strings.ToLower(strings.TrimSpace(line))
		if l == "" {
			continue
		}
		if strings.Contains(l, "reactivate") && strings.Contains(l, "y/n") {
			return true, strings.TrimSpace(line)
		}
	}
	return false, ""
}

func detectError(s *screen.Screen) (bool, string) {
	for _, line := range s.Lines() {
		l := strings.ToLower(strings.TrimSpace(line))
		if l == "" {
			continue
		}
		// "inactive ... reactivate" is the precondition text of the
		// reactivation prompt, not an error.
		if strings.Contains(l, "inactive") && strings.Contains(l, "reactivate") {
			continue
		}
		for _, phrase := range errorPhrases {
			if strings.Contains(l, phrase) {
				return true, "Error detected: " + strings.TrimSpace(line)
			}
		}
	}
	return false, ""
}

func detectSuccess(s *screen.Screen) (bool, string) {
	for _, line := range s.Lines() {
		l := strings.ToLower(strings.TrimSpace(line))
		if l == "" {
			continue
		}
		for _, phrase := range successPhrases {
			if strings.Contains(l, phrase) {
				return true, "Success: " + strings.TrimSpace(line)
			}
		}
	}
	return false, ""
}
