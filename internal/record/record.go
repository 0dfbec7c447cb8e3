// Package record defines the extracted record types and their deterministic
// identities. Identities are pure functions of already-known fields so that
// re-processing the same source upserts instead of duplicating.
package record

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/rollcall-tracker/internal/layout"
)

// Record is the capability writers operate on: a deterministic id, key/value
// fields for keyed stores, and a header/row pair for tabular sinks.
type Record interface {
	ID() string
	Fields() map[string]any
	Headers() []string
	Row() []any
}

// Date holds the parsed fields of a vote's date line. All fields come
// verbatim from the grammar's capture groups.
type Date struct {
	Weekday string
	Day     string
	Month   string
	Year    string
}

func (d Date) String() string {
	return fmt.Sprintf("%s, %s. %s %s", d.Weekday, d.Day, d.Month, d.Year)
}

func (d Date) fields() map[string]any {
	return map[string]any{
		"weekday": d.Weekday,
		"day":     d.Day,
		"month":   d.Month,
		"year":    d.Year,
	}
}

// RollCall is one recorded named-vote event. At most one is produced per
// page; immutable after creation.
type RollCall struct {
	Number   string
	Date     *Date
	Page     int
	Topic    string
	Filename string
	BBox     layout.BBox
}

// ID is the content-addressed key filename_page_bboxJSON_number.
func (r *RollCall) ID() string {
	return strings.Join([]string{
		r.Filename,
		fmt.Sprintf("%d", r.Page),
		r.BBox.JSON(),
		r.Number,
	}, "_")
}

func (r *RollCall) Fields() map[string]any {
	fields := map[string]any{
		"number":   r.Number,
		"page":     r.Page,
		"topic":    r.Topic,
		"filename": r.Filename,
		"bbox":     []float64{r.BBox.X0, r.BBox.Y0, r.BBox.X1, r.BBox.Y1},
	}
	if r.Date != nil {
		fields["date"] = r.Date.fields()
	}
	return fields
}

func (r *RollCall) Headers() []string {
	return []string{"Filename", "Page", "Date", "Topic"}
}

func (r *RollCall) Row() []any {
	date := ""
	if r.Date != nil {
		date = r.Date.String()
	}
	return []any{r.Filename, r.Page, date, r.Topic}
}

// NameRecord is one legislator roster entry. Identity is the trimmed full
// name; two people sharing an identical normalized name collide in a keyed
// store. Accepted limitation of the source material.
type NameRecord struct {
	FullName     string
	Occupation   string
	Constituency string
	District     string
	Party        string
	Page         int
	Filename     string
	MatchNumber  int
}

func (n *NameRecord) ID() string {
	return strings.TrimSpace(n.FullName)
}

func (n *NameRecord) Fields() map[string]any {
	return map[string]any{
		"full_name":    n.FullName,
		"occupation":   n.Occupation,
		"constituency": n.Constituency,
		"district":     n.District,
		"party":        n.Party,
		"page":         n.Page,
		"filename":     n.Filename,
		"match_number": n.MatchNumber,
	}
}

func (n *NameRecord) Headers() []string {
	return []string{"Name", "Occupation", "Constituency", "District", "Party", "Page", "Filename"}
}

func (n *NameRecord) Row() []any {
	return []any{n.FullName, n.Occupation, n.Constituency, n.District, n.Party, n.Page, n.Filename}
}
