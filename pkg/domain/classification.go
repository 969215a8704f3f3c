package domain

// ClassKind tags the outcome of classifying a screen snapshot.
type ClassKind string

const (
	// ClassUnknown means no definitive signal was found. Callers treat it
	// as non-error.
	ClassUnknown ClassKind = "unknown"
	// ClassReactivationPrompt means the host is asking a yes/no question
	// about reactivating a previously inactive record.
	ClassReactivationPrompt ClassKind = "reactivation_prompt"
	// ClassError means an error phrase was found on the screen.
	ClassError ClassKind = "error"
	// ClassSuccess means a success phrase was found on the screen.
	ClassSuccess ClassKind = "success"
)

// Classification is the verdict for one screen snapshot. It is produced
// fresh from each snapshot and never persisted.
type Classification struct {
	Kind    ClassKind `json:"kind"`
	Message string    `json:"message"`
}

// IsError reports whether the classification is a hard host error.
func (c Classification) IsError() bool {
	return c.Kind == ClassError
}

// IsPrompt reports whether the classification is a reactivation prompt.
func (c Classification) IsPrompt() bool {
	return c.Kind == ClassReactivationPrompt
}
