// Package grammar holds the line classifiers and field tokenizers for the
// extraction pipeline. They are heuristics tuned to one document family, not
// general parsers, and are kept independent of the traversal engine so they
// can be tested on plain strings.
package grammar

import (
	"fmt"
	"regexp"

	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

// dateLine matches a vote's date line: an optional "in the <N>th sitting"
// prefix followed by "on <weekday> the <day>. <month> <year>". Ordinal
// suffixes on the day and session number are consumed but not captured.
var dateLine = regexp.MustCompile(
	`^\s*(?:in\s+the\s+(\d+)\w*\s+sitting\s+)?on\s+(\p{L}+)\s+the\s+(\d+)\w*\.\s+(\p{L}+)\s+(\d+)`)

// dateGroups is the capture-group contract of dateLine: session number,
// weekday, day, month, year.
const dateGroups = 5

// MatchDate classifies a line against the date grammar. It returns the
// submatch slice (full match at index 0) or nil when the line is not a date.
func MatchDate(line string) []string {
	return dateLine.FindStringSubmatch(line)
}

// DateFromMatch builds a Date from a grammar match and returns the session
// number capture alongside it. A match surface with a group count other than
// five violates the grammar contract and is a structural failure.
func DateFromMatch(m []string) (*record.Date, string, error) {
	groups := m[1:]
	if len(groups) != dateGroups {
		return nil, "", common.NewStructural("DATE_GROUPS",
			fmt.Sprintf("number of groups (%d) not as expected (%d)", len(groups), dateGroups), nil)
	}
	date := &record.Date{
		Weekday: groups[1],
		Day:     groups[2],
		Month:   groups[3],
		Year:    groups[4],
	}
	return date, groups[0], nil
}
