package scan

import (
	"testing"

	"github.com/joseph-ayodele/rollcall-tracker/internal/layout"
)

// Helper to build a page from plain line texts.
func makePage(lines ...string) []layout.Element {
	els := make([]layout.Element, len(lines))
	for i, l := range lines {
		els[i] = layout.Element{Text: l}
	}
	return els
}

func TestFindAnchor(t *testing.T) {
	page := makePage(
		"Reichstag",
		"412. Sitzung",
		"Namentliche Abstimmung über den Antrag",
		"on Thursday the 3rd. March 1925",
	)

	if got := FindAnchor(page, "Namentliche Abstimmung"); got != 2 {
		t.Errorf("FindAnchor = %d, want 2", got)
	}
	if got := FindAnchor(page, "Zusammenstellung."); got != -1 {
		t.Errorf("FindAnchor = %d, want -1", got)
	}
	if got := FindAnchor(nil, "Namentliche Abstimmung"); got != -1 {
		t.Errorf("FindAnchor on empty page = %d, want -1", got)
	}
}

func TestCheckNextFew(t *testing.T) {
	tests := []struct {
		name      string
		page      []layout.Element
		anchorIdx int
		checkNext int
		wantIdx   int
		wantDate  bool
	}{
		{
			name: "date directly after anchor",
			page: makePage(
				"Namentliche Abstimmung",
				"on Thursday the 3rd. March 1925",
			),
			anchorIdx: 0,
			checkNext: 5,
			wantIdx:   1,
			wantDate:  true,
		},
		{
			name: "date at the edge of the window",
			page: makePage(
				"Namentliche Abstimmung",
				"noise", "noise", "noise", "noise",
				"on Thursday the 3rd. March 1925",
			),
			anchorIdx: 0,
			checkNext: 5,
			wantIdx:   5,
			wantDate:  true,
		},
		{
			name: "date just past the window",
			page: makePage(
				"Namentliche Abstimmung",
				"noise", "noise", "noise", "noise", "noise",
				"on Thursday the 3rd. March 1925",
			),
			anchorIdx: 0,
			checkNext: 5,
			wantIdx:   -1,
		},
		{
			name:      "page ends inside the window",
			page:      makePage("Namentliche Abstimmung", "noise"),
			anchorIdx: 0,
			checkNext: 5,
			wantIdx:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			look, err := CheckNextFew(tt.page, tt.anchorIdx, tt.checkNext)
			if err != nil {
				t.Fatalf("CheckNextFew: %v", err)
			}
			if look.Index != tt.wantIdx {
				t.Errorf("Index = %d, want %d", look.Index, tt.wantIdx)
			}
			if (look.Date != nil) != tt.wantDate {
				t.Errorf("Date found = %v, want %v", look.Date != nil, tt.wantDate)
			}
			if tt.wantDate && look.Date.Weekday != "Thursday" {
				t.Errorf("weekday = %q, want Thursday", look.Date.Weekday)
			}
		})
	}
}

func TestCheckNextFewSession(t *testing.T) {
	page := makePage(
		"Namentliche Abstimmung",
		"in the 52nd sitting on Thursday the 3rd. March 1925",
	)
	look, err := CheckNextFew(page, 0, 5)
	if err != nil {
		t.Fatalf("CheckNextFew: %v", err)
	}
	if look.Session != "52" {
		t.Errorf("session = %q, want %q", look.Session, "52")
	}
}

func TestExtractTopic(t *testing.T) {
	page := makePage(
		"Namentliche Abstimmung",
		"on Thursday the 3rd. March 1925",
		"über den Antrag",
		"der Abgeordneten  Meyer",
		"und Genossen",
		"Name",
		"Abg. Müller",
	)

	topic := ExtractTopic(page, 0, 5, 100)
	if !topic.DateFound {
		t.Fatal("expected the date line to be re-located")
	}
	if topic.Truncated {
		t.Error("topic should not be truncated")
	}
	want := "über den Antrag der Abgeordneten Meyer und Genossen"
	if topic.Text != want {
		t.Errorf("topic = %q, want %q", topic.Text, want)
	}
}

func TestExtractTopicTruncated(t *testing.T) {
	page := makePage(
		"Namentliche Abstimmung",
		"on Thursday the 3rd. March 1925",
		"line one",
		"line two",
		"line three",
	)

	topic := ExtractTopic(page, 0, 5, 2)
	if !topic.Truncated {
		t.Error("expected truncation when the terminator never appears")
	}
	if topic.Text != "line one line two" {
		t.Errorf("topic = %q, want partial join %q", topic.Text, "line one line two")
	}
}

func TestExtractTopicEmpty(t *testing.T) {
	page := makePage(
		"Namentliche Abstimmung",
		"on Thursday the 3rd. March 1925",
		"   ",
		"Name",
	)

	topic := ExtractTopic(page, 0, 5, 100)
	if topic.Truncated {
		t.Error("terminator was present; topic should not be truncated")
	}
	if topic.Text != "" {
		t.Errorf("topic = %q, want explicit empty string", topic.Text)
	}
}

func TestExtractTopicDateMissing(t *testing.T) {
	page := makePage("Namentliche Abstimmung", "no date here", "Name")
	topic := ExtractTopic(page, 0, 1, 100)
	if topic.DateFound {
		t.Error("date should not have been found")
	}
}

func TestExpectedBBoxArea(t *testing.T) {
	tests := []struct {
		name string
		bbox layout.BBox
		want bool
	}{
		{"inside band", layout.BBox{X0: 0, Y0: 0, X1: 100, Y1: 50}, true},    // area 5000
		{"below band", layout.BBox{X0: 0, Y0: 0, X1: 10, Y1: 10}, false},     // area 100
		{"above band", layout.BBox{X0: 0, Y0: 0, X1: 100, Y1: 100}, false},   // area 10000
		{"lower bound excluded", layout.BBox{X0: 0, Y0: 0, X1: 90, Y1: 50}, false}, // area 4500
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectedBBoxArea(tt.bbox); got != tt.want {
				t.Errorf("ExpectedBBoxArea(area=%v) = %v, want %v", tt.bbox.Area(), got, tt.want)
			}
		})
	}
}
