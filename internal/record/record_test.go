package record

import (
	"testing"

	"github.com/joseph-ayodele/rollcall-tracker/internal/layout"
)

func TestRollCallID(t *testing.T) {
	rc := &RollCall{
		Number:   "52",
		Date:     &Date{Weekday: "Thursday", Day: "3", Month: "March", Year: "1925"},
		Page:     17,
		Topic:    "über den Antrag",
		Filename: "protokoll.pdf",
		BBox:     layout.BBox{X0: 1, Y0: 2, X1: 3, Y1: 4},
	}

	want := "protokoll.pdf_17_[1,2,3,4]_52"
	if got := rc.ID(); got != want {
		t.Errorf("ID = %q, want %q", got, want)
	}
}

func TestRollCallIDDeterministic(t *testing.T) {
	make1 := func() *RollCall {
		return &RollCall{
			Number:   "7",
			Page:     3,
			Filename: "a.pdf",
			BBox:     layout.BBox{X0: 10.5, Y0: 20, X1: 30, Y1: 40},
		}
	}
	a, b := make1(), make1()
	if a.ID() != b.ID() {
		t.Errorf("identical field sets produced different ids: %q vs %q", a.ID(), b.ID())
	}

	// Topic is not part of the identity; only filename, page, bbox, number.
	c := make1()
	c.Topic = "something else"
	if c.ID() != a.ID() {
		t.Errorf("topic changed the id: %q vs %q", c.ID(), a.ID())
	}

	d := make1()
	d.Page = 4
	if d.ID() == a.ID() {
		t.Error("different pages must produce different ids")
	}
}

func TestNameRecordID(t *testing.T) {
	n := &NameRecord{FullName: "  Müller, Hans  "}
	if got := n.ID(); got != "Müller, Hans" {
		t.Errorf("ID = %q, want trimmed full name", got)
	}
}

func TestRollCallFields(t *testing.T) {
	rc := &RollCall{
		Number: "52",
		Date:   &Date{Weekday: "Thursday", Day: "3", Month: "March", Year: "1925"},
		Page:   17,
	}
	fields := rc.Fields()
	date, ok := fields["date"].(map[string]any)
	if !ok {
		t.Fatal("expected a nested date map")
	}
	if date["weekday"] != "Thursday" {
		t.Errorf("weekday = %v, want Thursday", date["weekday"])
	}

	noDate := &RollCall{Page: 1}
	if _, present := noDate.Fields()["date"]; present {
		t.Error("date key should be absent when no date was parsed")
	}
}

func TestHeadersMatchRows(t *testing.T) {
	records := []Record{
		&RollCall{},
		&NameRecord{},
	}
	for _, r := range records {
		if len(r.Headers()) != len(r.Row()) {
			t.Errorf("%T: header count %d != row count %d", r, len(r.Headers()), len(r.Row()))
		}
	}
}
