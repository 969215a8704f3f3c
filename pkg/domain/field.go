package domain

// FieldKind constrains the characters a field accepts.
type FieldKind string

const (
	// FieldText accepts any printable text up to MaxLength.
	FieldText FieldKind = "text"
	// FieldDigits accepts decimal digits only.
	FieldDigits FieldKind = "digits"
)

// FieldConfig describes one named, bounded-length input region on a host
// screen. Instances are read-only once loaded; the engine never mutates them.
type FieldConfig struct {
	Name        string    `json:"name" yaml:"name" mapstructure:"name"`
	MaxLength   int       `json:"max_length" yaml:"max_length" mapstructure:"max_length"`
	Required    bool      `json:"required" yaml:"required" mapstructure:"required"`
	Kind        FieldKind `json:"kind" yaml:"kind" mapstructure:"kind"`
	ValidValues []string  `json:"valid_values,omitempty" yaml:"valid_values,omitempty" mapstructure:"valid_values"`

	// TabsFilled is the number of tab presses needed to reach the next
	// field after this one was typed into. TabsEmpty is the number needed
	// when the field is left untouched. The two differ on screens where an
	// exactly-filled field auto-advances the cursor.
	TabsFilled int `json:"tabs_filled" yaml:"tabs_filled" mapstructure:"tabs_filled"`
	TabsEmpty  int `json:"tabs_empty" yaml:"tabs_empty" mapstructure:"tabs_empty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}
