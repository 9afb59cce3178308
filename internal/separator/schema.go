package separator

// Field describes one named scalar input of a calculator. Ref binds the field
// to its slot in the typed input record T so that callers can fill an input
// by name without reflecting over struct tags.
type Field[T any] struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Default float64 `json:"default"`

	Ref func(*T) *float64 `json:"-"`
}

// Schema is the ordered, static list of inputs a calculator accepts.
type Schema[T any] []Field[T]

// Defaults returns an input record populated with every field's default.
func (s Schema[T]) Defaults() T {
	var in T
	for _, f := range s {
		*f.Ref(&in) = f.Default
	}
	return in
}

// Lookup finds a field by its name.
func (s Schema[T]) Lookup(name string) (Field[T], bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Names lists field names in display order.
func (s Schema[T]) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Values reads every field of in, keyed by name.
func (s Schema[T]) Values(in T) map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, f := range s {
		out[f.Name] = *f.Ref(&in)
	}
	return out
}
