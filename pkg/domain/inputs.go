package domain

// Pair is one submitted field value.
type Pair struct {
	Field string `json:"field" yaml:"field" mapstructure:"field"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

// Inputs is an insertion-ordered mapping of field name to submitted value.
// Order matters: form fill and placeholder resolution consume values in the
// order the caller set them, so Inputs preserves it where a plain map would
// not.
type Inputs struct {
	pairs []Pair
	index map[string]int
}

// NewInputs creates an empty input set.
func NewInputs() *Inputs {
	return &Inputs{index: make(map[string]int)}
}

// InputsFromPairs builds an input set preserving the slice order. A repeated
// field name overwrites the earlier value but keeps its original position.
func InputsFromPairs(pairs []Pair) *Inputs {
	in := NewInputs()
	for _, p := range pairs {
		in.Set(p.Field, p.Value)
	}
	return in
}

// Set adds or replaces a value. New fields append to the insertion order.
func (in *Inputs) Set(field, value string) {
	if i, ok := in.index[field]; ok {
		in.pairs[i].Value = value
		return
	}
	in.index[field] = len(in.pairs)
	in.pairs = append(in.pairs, Pair{Field: field, Value: value})
}

// Get returns the value for a field and whether it was submitted.
func (in *Inputs) Get(field string) (string, bool) {
	i, ok := in.index[field]
	if !ok {
		return "", false
	}
	return in.pairs[i].Value, true
}

// Len returns the number of submitted fields.
func (in *Inputs) Len() int {
	return len(in.pairs)
}

// Pairs returns the submitted fields in insertion order. The returned slice
// is a copy; callers may modify it freely.
func (in *Inputs) Pairs() []Pair {
	cp := make([]Pair, len(in.pairs))
	copy(cp, in.pairs)
	return cp
}

// Values returns just the submitted values in insertion order.
func (in *Inputs) Values() []string {
	vals := make([]string, len(in.pairs))
	for i, p := range in.pairs {
		vals[i] = p.Value
	}
	return vals
}
