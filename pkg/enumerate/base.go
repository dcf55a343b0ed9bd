package enumerate

import (
	"log/slog"

	"github.com/goliatone/go-enumgen/pkg/genconfig"
	"github.com/goliatone/go-enumgen/pkg/schema"
)

// BaseBuilder produces the starting configuration document: one value per
// option that is neither common, ignored, selected, nor unsupported.
type BaseBuilder struct {
	logger *slog.Logger
}

// NewBaseBuilder constructs a builder. A nil logger falls back to
// slog.Default.
func NewBaseBuilder(logger *slog.Logger) *BaseBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &BaseBuilder{logger: logger}
}

// Build walks the schema in order and fills every non-enumerated option
// according to the selection's fill behavior. The result is deterministic for
// fixed inputs: FillRandom writes the literal marker string, it never draws.
func (b *BaseBuilder) Build(entity string, sch schema.Schema, sel Selection) genconfig.Document {
	doc := genconfig.New(entity)

	for _, opt := range sch {
		if schema.IsCommon(opt.Name) {
			continue
		}
		if sel.Ignores(opt.Name) {
			continue
		}
		if sel.Selected(opt.Name) {
			// Enumerated later by the engine.
			continue
		}
		if !opt.Enumerable() {
			b.logger.Debug("skipping unsupported option",
				"entity", entity, "option", opt.Name, "kind", string(opt.Kind))
			continue
		}
		doc.Set(entity, opt.Name, b.fillValue(entity, opt, sel.Fill))
	}

	return doc
}

func (b *BaseBuilder) fillValue(entity string, opt schema.Option, fill FillBehavior) any {
	switch fill {
	case FillDefault, "":
		return flattenDefault(opt.Default)
	case FillRandom:
		return "random"
	case FillMinimum:
		switch opt.Kind {
		case schema.KindRange, schema.KindNamedRange:
			return opt.RangeStart
		default:
			return 0
		}
	case FillMaximum:
		switch opt.Kind {
		case schema.KindRange, schema.KindNamedRange:
			return opt.RangeEnd
		case schema.KindChoice:
			return len(opt.Choices)
		default:
			return 1
		}
	default:
		b.logger.Warn("unknown fill behavior, falling back to default",
			"entity", entity, "option", opt.Name, "behavior", string(fill))
		return flattenDefault(opt.Default)
	}
}

// flattenDefault turns tuple-shaped defaults into ordered sequences and
// copies them so documents never alias schema-owned storage.
func flattenDefault(value any) any {
	switch v := value.(type) {
	case []any:
		flat := make([]any, len(v))
		copy(flat, v)
		return flat
	case []int:
		flat := make([]any, len(v))
		for i, item := range v {
			flat[i] = item
		}
		return flat
	case []string:
		flat := make([]any, len(v))
		for i, item := range v {
			flat[i] = item
		}
		return flat
	default:
		return value
	}
}
