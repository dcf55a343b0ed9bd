// Package emitter serialises generated configuration documents. The core
// pipeline never touches files itself; it hands each deduplicated document
// and its sequence number to a DocumentWriter obtained here.
package emitter

import (
	"context"

	"github.com/goliatone/go-enumgen/pkg/genconfig"
)

// DocumentWriter consumes one entity's document sequence.
type DocumentWriter interface {
	// Write serialises a single document. seq is 1-based and counts only
	// documents that survived deduplication.
	Write(doc genconfig.Document, seq int) error

	// Close flushes and releases the underlying sink.
	Close() error
}

// Emitter opens a destination per entity. Begin failures are entity-level:
// the caller reports them and moves on to the next entity.
type Emitter interface {
	Begin(ctx context.Context, entity string) (DocumentWriter, error)
}
