package enumerate

import (
	"iter"
	"log/slog"
	"math"

	"github.com/goliatone/go-enumgen/pkg/genconfig"
	"github.com/goliatone/go-enumgen/pkg/schema"
)

// Engine expands the Cartesian product of the selected options' candidate
// values over a base document. It is a lazy depth-first generator: pulling
// stops the traversal, and each returned sequence is a fresh, finite,
// non-restartable walk.
type Engine struct {
	logger *slog.Logger
}

// NewEngine constructs an engine. A nil logger falls back to slog.Default.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// assignment is one resolved option value accumulated down a branch. The
// base document stays immutable; branches share it and carry only their own
// assignment lists, so siblings never alias each other's values. Documents
// are materialized from base plus assignments at yield points only.
type assignment struct {
	name  string
	value any
}

// Enumerate returns the full document sequence for the entity. Enumeration
// follows schema order: each recursion level expands the first selected,
// unassigned option at or after its cursor, so one level exists per selected
// option present in the schema.
//
// A selected identifier absent from the schema never branches: the terminal
// depth derived from the selection size is then unreachable and the sequence
// is empty, which is fewer documents than the estimator predicted. Callers
// that care should compare yields against the estimate.
func (e *Engine) Enumerate(entity string, sch schema.Schema, base genconfig.Document, sel Selection) iter.Seq[genconfig.Document] {
	return func(yield func(genconfig.Document) bool) {
		if len(sel.Options) == 0 {
			return
		}
		e.walk(entity, sch, base, sel, 0, nil, yield)
	}
}

// walk expands exactly one option per invocation and recurses for the rest.
// cursor is the schema index to resume scanning from; acc holds the branch's
// assignments so far. The return value is false once the consumer stops
// pulling, which unwinds the whole traversal.
func (e *Engine) walk(entity string, sch schema.Schema, base genconfig.Document, sel Selection, cursor int, acc []assignment, yield func(genconfig.Document) bool) bool {
	// A fully resolved document holds |base| + |selected| options. One more
	// assignment reaches that size exactly when every other selected option
	// is already in acc.
	terminal := len(acc)+1 == len(sel.Options)

	for i := cursor; i < len(sch); i++ {
		opt := sch[i]
		if schema.IsCommon(opt.Name) || sel.Ignores(opt.Name) {
			continue
		}
		r, ok := sel.Options[opt.Name]
		if !ok {
			continue
		}

		emit := func(value any) bool {
			branch := append(acc[:len(acc):len(acc)], assignment{name: opt.Name, value: value})
			if terminal {
				return yield(materialize(entity, base, branch))
			}
			return e.walk(entity, sch, base, sel, i+1, branch, yield)
		}

		switch opt.Kind {
		case schema.KindToggle, schema.KindDefaultOnToggle:
			for v := 0; v < 2; v++ {
				if !emit(v) {
					return false
				}
			}
		case schema.KindChoice:
			for _, c := range opt.Choices {
				if !r.allowsLabel(c.Label) {
					continue
				}
				if !emit(c.Code) {
					return false
				}
			}
		case schema.KindRange:
			if !sampleInterval(opt, r, sel.Splits, emit) {
				return false
			}
		case schema.KindNamedRange:
			if !sampleInterval(opt, r, sel.Splits, emit) {
				return false
			}
			for _, sp := range opt.Specials {
				if !emit(sp.Value) {
					return false
				}
			}
		case schema.KindFreeText, schema.KindTextChoice:
			// No finite value set; treat like an unselected option.
			continue
		}

		// Only the first matching option expands at this level; deeper
		// options belong to the recursive calls above.
		return true
	}
	return true
}

// sampleInterval walks the closed interval with a real-valued accumulator,
// rounding each stepped value to the nearest integer before assignment and
// continuing while the unrounded running value stays within the upper bound.
// Float accumulation error near the endpoint is a known property of this
// sampling, pinned by tests; duplicates produced by rounding collisions are
// suppressed downstream, not here.
func sampleInterval(opt schema.Option, r Restriction, defaultSplits int, emit func(any) bool) bool {
	splits := effectiveSplits(opt, r, defaultSplits)
	if splits < 1 {
		// Degenerate interval: a single legal value.
		return emit(opt.RangeStart)
	}

	step := float64(opt.RangeEnd-opt.RangeStart) / float64(splits)
	for v := float64(opt.RangeStart); v <= float64(opt.RangeEnd); v += step {
		if !emit(int(math.Round(v))) {
			return false
		}
	}
	return true
}

// materialize builds the finished document for one branch: a deep copy of the
// base with the branch's assignments applied. Yielded documents therefore
// never share storage with the base or with each other.
func materialize(entity string, base genconfig.Document, acc []assignment) genconfig.Document {
	doc := base.Clone()
	for _, a := range acc {
		doc.Set(entity, a.name, a.value)
	}
	return doc
}
