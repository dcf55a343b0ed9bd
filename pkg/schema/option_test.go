package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionEnumerable(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{KindToggle, true},
		{KindDefaultOnToggle, true},
		{KindChoice, true},
		{KindRange, true},
		{KindNamedRange, true},
		{KindFreeText, false},
		{KindTextChoice, false},
		{Kind("mystery"), false},
	}
	for _, tc := range cases {
		opt := Option{Name: "x", Kind: tc.kind}
		if got := opt.Enumerable(); got != tc.want {
			t.Errorf("Enumerable() for kind %q = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestSchemaLookupAndNames(t *testing.T) {
	sch := Schema{
		{Name: "a", Kind: KindToggle},
		{Name: "b", Kind: KindChoice, Choices: []Choice{{Label: "x", Code: 0}, {Label: "y", Code: 1}}},
	}

	if diff := cmp.Diff([]string{"a", "b"}, sch.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	opt, ok := sch.Lookup("b")
	if !ok {
		t.Fatal("Lookup(b) reported missing")
	}
	if diff := cmp.Diff([]string{"x", "y"}, opt.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := sch.Lookup("missing"); ok {
		t.Error("Lookup(missing) reported present")
	}
}

func TestIsCommon(t *testing.T) {
	for _, name := range []string{"death_link", "progression_balancing", "accessibility", "start_inventory"} {
		if !IsCommon(name) {
			t.Errorf("IsCommon(%q) = false, want true", name)
		}
	}
	if IsCommon("logic_rules") {
		t.Error("IsCommon(logic_rules) = true, want false")
	}
}
