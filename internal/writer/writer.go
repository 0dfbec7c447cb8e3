// Package writer defines the record persistence capability and its concrete
// backends. Every backend upserts or appends by the record's deterministic
// id, so re-processing the same source never duplicates stored records.
package writer

import (
	"context"

	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

// Writer persists or serializes records.
type Writer interface {
	// Write persists or updates rec by its deterministic id.
	Write(ctx context.Context, rec record.Record) error
	// Close releases any held resources and flushes pending output.
	Close() error
}
