package schema

// Kind tags the shape of an option's legal value set. The set is closed and
// never extended at runtime; consumers dispatch over it with an exhaustive
// switch so a new kind fails loudly at the dispatch sites instead of being
// silently mis-enumerated.
type Kind string

const (
	// KindToggle is a two-valued option encoded as 0 and 1.
	KindToggle Kind = "toggle"

	// KindDefaultOnToggle behaves exactly like KindToggle during enumeration;
	// only its default differs.
	KindDefaultOnToggle Kind = "default_on_toggle"

	// KindChoice carries an ordered label-to-code mapping.
	KindChoice Kind = "choice"

	// KindRange is a closed integer interval [RangeStart, RangeEnd].
	KindRange Kind = "range"

	// KindNamedRange is a Range plus out-of-interval sentinel values that are
	// always enumerated in addition to the sampled interval points.
	KindNamedRange Kind = "named_range"

	// KindFreeText carries arbitrary text and no finite value set.
	KindFreeText Kind = "free_text"

	// KindTextChoice is a Choice that also accepts free-form values. Like
	// KindFreeText it has no enumerable value set.
	KindTextChoice Kind = "text_choice"
)

// Choice pairs a human-readable label with the integer code written into
// generated documents. Choices preserve the order declared by the provider.
type Choice struct {
	Label string
	Code  int
}

// SpecialValue is a named sentinel on a NamedRange option. Sentinels sit
// outside [RangeStart, RangeEnd] and are assigned verbatim, never sampled or
// rounded.
type SpecialValue struct {
	Name  string
	Value int
}

// Option describes one configurable setting of an entity. Only the fields
// matching the Kind are populated; the rest stay at their zero values.
type Option struct {
	Name    string
	Kind    Kind
	Default any

	// Choices is set for KindChoice and KindTextChoice.
	Choices []Choice

	// RangeStart and RangeEnd bound KindRange and KindNamedRange, with
	// RangeStart <= RangeEnd.
	RangeStart int
	RangeEnd   int

	// Specials is set for KindNamedRange.
	Specials []SpecialValue
}

// Enumerable reports whether the option carries a finite value set the
// enumeration engine can expand. FreeText and TextChoice do not; they are
// excluded from both base-filling and enumeration.
func (o Option) Enumerable() bool {
	switch o.Kind {
	case KindToggle, KindDefaultOnToggle, KindChoice, KindRange, KindNamedRange:
		return true
	case KindFreeText, KindTextChoice:
		return false
	default:
		return false
	}
}

// Labels returns the choice labels in declaration order. It is empty for
// non-choice kinds.
func (o Option) Labels() []string {
	if len(o.Choices) == 0 {
		return nil
	}
	labels := make([]string, 0, len(o.Choices))
	for _, c := range o.Choices {
		labels = append(labels, c.Label)
	}
	return labels
}

// Schema is the ordered option list of a single entity. The order is the
// provider's declaration order and determines enumeration order, which in
// turn fixes the output document ordering for a given document.
type Schema []Option

// Lookup returns the option with the given name.
func (s Schema) Lookup(name string) (Option, bool) {
	for _, opt := range s {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Names returns the option identifiers in schema order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, opt := range s {
		names = append(names, opt.Name)
	}
	return names
}
