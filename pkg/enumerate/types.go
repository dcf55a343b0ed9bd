package enumerate

import "errors"

// Sentinel errors for selection validation. Callers match with errors.Is.
var (
	// ErrEmptySelection signals a selection with no options to enumerate.
	ErrEmptySelection = errors.New("enumerate: empty selection")

	// ErrBadSplits signals a default split count below one.
	ErrBadSplits = errors.New("enumerate: split count must be at least 1")
)

// FillBehavior governs how every option outside the selection set is assigned
// its single base value.
type FillBehavior string

const (
	// FillDefault assigns the option's declared default.
	FillDefault FillBehavior = "default"

	// FillRandom assigns the literal marker "random"; resolution is deferred
	// to the downstream consumer of the generated document.
	FillRandom FillBehavior = "random"

	// FillMinimum assigns the range start, or 0 for non-range kinds.
	FillMinimum FillBehavior = "minimum"

	// FillMaximum assigns the range end, or the choice count for non-range
	// kinds.
	FillMaximum FillBehavior = "maximum"
)

// Restriction narrows the candidate values enumerated for one selected
// option. The zero value means "all": every legal value is enumerated.
type Restriction struct {
	// All enumerates the option's full legal value set.
	All bool

	// Labels restricts a Choice to the named labels. Ignored for other kinds.
	Labels []string

	// Splits overrides the selection's default split count for a Range or
	// NamedRange. Zero means use the default.
	Splits int
}

// AllValues returns the "enumerate everything" restriction.
func AllValues() Restriction {
	return Restriction{All: true}
}

// OnlyLabels restricts a Choice option to the given labels.
func OnlyLabels(labels ...string) Restriction {
	return Restriction{Labels: labels}
}

// SplitInto overrides the split count for a range option.
func SplitInto(n int) Restriction {
	return Restriction{Splits: n}
}

func (r Restriction) allowsLabel(label string) bool {
	if r.All || len(r.Labels) == 0 {
		return true
	}
	for _, l := range r.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Selection is the caller's choice of which options to enumerate and how to
// fill the rest.
type Selection struct {
	// Options maps each selected option identifier to its restriction.
	Options map[string]Restriction

	// Ignored lists options excluded from both base-filling and enumeration.
	Ignored map[string]struct{}

	// Fill assigns values to every non-selected, non-ignored option.
	Fill FillBehavior

	// Splits is the default section count for sampling Range and NamedRange
	// intervals. Minimum 1.
	Splits int
}

// Validate reports configuration errors that make the selection unusable.
func (s Selection) Validate() error {
	if len(s.Options) == 0 {
		return ErrEmptySelection
	}
	if s.Splits < 1 {
		return ErrBadSplits
	}
	return nil
}

// Selected reports whether the option is part of the enumeration set.
func (s Selection) Selected(name string) bool {
	_, ok := s.Options[name]
	return ok
}

// Ignores reports whether the option is on the ignore list.
func (s Selection) Ignores(name string) bool {
	_, ok := s.Ignored[name]
	return ok
}

// IgnoreSet builds the Ignored map from a list of identifiers.
func IgnoreSet(names ...string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}
