package enumerate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-enumgen/pkg/genconfig"
	"github.com/goliatone/go-enumgen/pkg/schema"
)

func baseSchema() schema.Schema {
	return schema.Schema{
		{Name: "death_link", Kind: schema.KindToggle, Default: 0},
		{Name: "ignored", Kind: schema.KindToggle, Default: 1},
		{Name: "selected", Kind: schema.KindToggle, Default: 0},
		{Name: "note", Kind: schema.KindFreeText},
		{Name: "t", Kind: schema.KindDefaultOnToggle, Default: 1},
		{Name: "c", Kind: schema.KindChoice, Default: 2, Choices: []schema.Choice{
			{Label: "a", Code: 0}, {Label: "b", Code: 1}, {Label: "c", Code: 2},
		}},
		{Name: "r", Kind: schema.KindRange, Default: 10, RangeStart: 5, RangeEnd: 50},
	}
}

func baseSelection(fill FillBehavior) Selection {
	return Selection{
		Options: map[string]Restriction{"selected": AllValues()},
		Ignored: IgnoreSet("ignored"),
		Fill:    fill,
		Splits:  2,
	}
}

func TestBuildBaseSkipsNonFillableOptions(t *testing.T) {
	doc := NewBaseBuilder(nil).Build(game, baseSchema(), baseSelection(FillDefault))

	opts := doc.Options(game)
	assert.NotContains(t, opts, "death_link", "common options are never filled")
	assert.NotContains(t, opts, "ignored")
	assert.NotContains(t, opts, "selected", "selected options are enumerated later")
	assert.NotContains(t, opts, "note", "free text carries no enumerable value")
}

func TestBuildBaseSeedsCoreKeys(t *testing.T) {
	doc := NewBaseBuilder(nil).Build(game, baseSchema(), baseSelection(FillDefault))

	opts := doc.Options(game)
	assert.Equal(t, 0, opts[genconfig.KeyProgressionBalancing])
	assert.Equal(t, "items", opts[genconfig.KeyAccessibility])
}

func TestBuildBaseFillBehaviors(t *testing.T) {
	sch := baseSchema()
	builder := NewBaseBuilder(nil)

	cases := []struct {
		name string
		fill FillBehavior
		want map[string]any
	}{
		{
			name: "default",
			fill: FillDefault,
			want: map[string]any{"t": 1, "c": 2, "r": 10},
		},
		{
			name: "random",
			fill: FillRandom,
			want: map[string]any{"t": "random", "c": "random", "r": "random"},
		},
		{
			name: "minimum",
			fill: FillMinimum,
			want: map[string]any{"t": 0, "c": 0, "r": 5},
		},
		{
			name: "maximum",
			fill: FillMaximum,
			want: map[string]any{"t": 1, "c": 3, "r": 50},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := builder.Build(game, sch, baseSelection(tc.fill))
			opts := doc.Options(game)
			for name, want := range tc.want {
				assert.Equal(t, want, opts[name], "option %s", name)
			}
		})
	}
}

func TestBuildBaseUnknownBehaviorFallsBackToDefault(t *testing.T) {
	doc := NewBaseBuilder(nil).Build(game, baseSchema(), baseSelection(FillBehavior("banana")))

	opts := doc.Options(game)
	assert.Equal(t, 1, opts["t"])
	assert.Equal(t, 2, opts["c"])
	assert.Equal(t, 10, opts["r"])
}

func TestBuildBaseIsIdempotent(t *testing.T) {
	builder := NewBaseBuilder(nil)
	sel := baseSelection(FillDefault)

	first := builder.Build(game, baseSchema(), sel)
	second := builder.Build(game, baseSchema(), sel)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("base documents differ (-first +second):\n%s", diff)
	}
}

func TestBuildBaseFlattensTupleDefaults(t *testing.T) {
	declared := []any{1, 2, 3}
	sch := schema.Schema{
		{Name: "seq", Kind: schema.KindChoice, Default: declared, Choices: []schema.Choice{{Label: "a", Code: 0}}},
	}
	sel := Selection{
		Options: map[string]Restriction{"other": AllValues()},
		Fill:    FillDefault,
		Splits:  2,
	}

	doc := NewBaseBuilder(nil).Build(game, sch, sel)

	got, ok := doc.Options(game)["seq"].([]any)
	require.True(t, ok, "tuple default should become an ordered sequence")
	assert.Equal(t, []any{1, 2, 3}, got)

	declared[0] = 99
	assert.Equal(t, 1, got[0], "document must not alias schema-owned storage")
}
