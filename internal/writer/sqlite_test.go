package writer

import (
	"context"
	"testing"

	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

func TestSQLiteUpsert(t *testing.T) {
	s, err := NewSQLite(":memory:", nil)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()

	ctx := context.Background()
	first := &record.RollCall{Number: "1", Page: 2, Filename: "a.pdf", Topic: "old"}
	second := &record.RollCall{Number: "1", Page: 2, Filename: "a.pdf", Topic: "new"}

	if err := s.Write(ctx, first); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write(ctx, second); err != nil {
		t.Fatalf("Write: %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 stored record, got %d", n)
	}

	fields, ok, err := s.Get(ctx, first.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("record %q not found", first.ID())
	}
	if fields["topic"] != "new" {
		t.Errorf("topic = %v, want the second write's value", fields["topic"])
	}
}

func TestSQLiteGetMissing(t *testing.T) {
	s, err := NewSQLite(":memory:", nil)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer s.Close()

	_, ok, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected absent id to report ok=false")
	}
}
