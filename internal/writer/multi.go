package writer

import (
	"context"

	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

// Multi fans every write out to all wrapped writers. The first failure stops
// the fanout, since writer failures abort a run anyway.
type Multi struct {
	writers []Writer
}

func NewMulti(writers ...Writer) *Multi {
	return &Multi{writers: writers}
}

func (m *Multi) Write(ctx context.Context, rec record.Record) error {
	for _, w := range m.writers {
		if err := w.Write(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every wrapped writer and returns the first error.
func (m *Multi) Close() error {
	var firstErr error
	for _, w := range m.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
