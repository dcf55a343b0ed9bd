package enumerate

import (
	"log/slog"

	"github.com/goliatone/go-enumgen/pkg/schema"
)

// Estimator predicts, without materializing anything, how many documents the
// engine will attempt to produce for a schema and selection. The product is
// exact for the values the engine visits; rounding-induced duplicates are
// removed later by the caller's cache, so the post-deduplication count may be
// lower.
type Estimator struct {
	logger *slog.Logger
}

// NewEstimator constructs an estimator. A nil logger falls back to
// slog.Default.
func NewEstimator(logger *slog.Logger) *Estimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{logger: logger}
}

// Estimate multiplies a per-option factor across every selected, non-common,
// non-ignored option in the schema. Selected identifiers absent from the
// schema contribute no factor; the engine likewise never branches on them,
// so the real yield falls short of the estimate in that case.
//
// For NamedRange options the factor multiplies the interval samples by the
// sentinel count, while the engine appends one document per sentinel. The
// estimate is therefore a confirmation-gate bound for such selections, not
// an exact accounting of the engine's yield.
func (e *Estimator) Estimate(sch schema.Schema, sel Selection) int {
	count := 1
	for _, opt := range sch {
		if schema.IsCommon(opt.Name) || sel.Ignores(opt.Name) {
			continue
		}
		r, ok := sel.Options[opt.Name]
		if !ok {
			continue
		}

		switch opt.Kind {
		case schema.KindToggle, schema.KindDefaultOnToggle:
			count *= 2
		case schema.KindChoice:
			if r.All || len(r.Labels) == 0 {
				count *= len(opt.Choices)
			} else {
				count *= len(r.Labels)
			}
		case schema.KindRange:
			count *= effectiveSplits(opt, r, sel.Splits) + 1
		case schema.KindNamedRange:
			factor := effectiveSplits(opt, r, sel.Splits) + 1
			if n := len(opt.Specials); n > 0 {
				factor *= n
			}
			count *= factor
		case schema.KindFreeText, schema.KindTextChoice:
			e.logger.Debug("unsupported option selected, contributes nothing",
				"option", opt.Name, "kind", string(opt.Kind))
		}
	}
	return count
}

// effectiveSplits resolves the section count for a range option: the
// restriction override when present, else the selection default, clamped to
// the interval width since more distinct sample points than integers in the
// interval is meaningless.
func effectiveSplits(opt schema.Option, r Restriction, defaultSplits int) int {
	splits := defaultSplits
	if r.Splits > 0 {
		splits = r.Splits
	}
	if width := opt.RangeEnd - opt.RangeStart; splits > width {
		splits = width
	}
	return splits
}
