package emitter

import (
	"context"

	"github.com/goliatone/go-enumgen/pkg/genconfig"
)

// Collect keeps every written document in memory, keyed by entity. It stands
// in for the file emitter in tests and dry runs.
type Collect struct {
	Docs map[string][]genconfig.Document
}

var _ Emitter = (*Collect)(nil)

// NewCollect returns an empty collecting emitter.
func NewCollect() *Collect {
	return &Collect{Docs: make(map[string][]genconfig.Document)}
}

// Begin returns a writer appending to the entity's slice.
func (c *Collect) Begin(ctx context.Context, entity string) (DocumentWriter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &collectWriter{parent: c, entity: entity}, nil
}

type collectWriter struct {
	parent *Collect
	entity string
}

func (w *collectWriter) Write(doc genconfig.Document, _ int) error {
	w.parent.Docs[w.entity] = append(w.parent.Docs[w.entity], doc)
	return nil
}

func (w *collectWriter) Close() error {
	return nil
}
