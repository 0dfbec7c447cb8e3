package writer

import (
	"context"

	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

// Memory is an in-process keyed store with upsert semantics. Tests and dry
// runs use it in place of a real backend.
type Memory struct {
	records map[string]map[string]any
	order   []string
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]map[string]any)}
}

func (m *Memory) Write(_ context.Context, rec record.Record) error {
	id := rec.ID()
	if _, exists := m.records[id]; !exists {
		m.order = append(m.order, id)
	}
	m.records[id] = rec.Fields()
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Get returns the stored fields for id.
func (m *Memory) Get(id string) (map[string]any, bool) {
	fields, ok := m.records[id]
	return fields, ok
}

// Len returns the number of distinct stored records.
func (m *Memory) Len() int {
	return len(m.records)
}

// IDs returns stored ids in first-write order.
func (m *Memory) IDs() []string {
	return m.order
}
