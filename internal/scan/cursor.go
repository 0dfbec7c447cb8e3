// Package scan implements the anchor-search and bounded-lookahead algorithms
// that run over a single page's element sequence. Everything here is
// stateless with respect to the traversal engine; inputs are plain element
// slices so the algorithms are testable with fabricated pages.
package scan

import (
	"strings"

	"github.com/joseph-ayodele/rollcall-tracker/constants"
	"github.com/joseph-ayodele/rollcall-tracker/internal/grammar"
	"github.com/joseph-ayodele/rollcall-tracker/internal/layout"
	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

// Cursor is a pointer into one page's ordered element sequence. It is never
// shared across pages.
type Cursor struct {
	elements []layout.Element
	pos      int
}

// NewCursor positions a cursor at pos within els. A pos one past the end is
// valid and yields an exhausted cursor.
func NewCursor(els []layout.Element, pos int) *Cursor {
	return &Cursor{elements: els, pos: pos}
}

// Next advances to the following element and reports whether one exists.
func (c *Cursor) Next() bool {
	c.pos++
	return c.pos < len(c.elements)
}

// Text returns the current element's text, or "" when exhausted.
func (c *Cursor) Text() string {
	if c.pos < 0 || c.pos >= len(c.elements) {
		return ""
	}
	return c.elements[c.pos].Text
}

// Pos returns the current element index.
func (c *Cursor) Pos() int {
	return c.pos
}

// FindAnchor locates the first element whose text contains label as a literal
// substring. Returns -1 when the page has no such element.
func FindAnchor(els []layout.Element, label string) int {
	for i, el := range els {
		if strings.Contains(el.Text, label) {
			return i
		}
	}
	return -1
}

// DateLookahead is the outcome of CheckNextFew.
type DateLookahead struct {
	Date    *record.Date
	Session string
	// Index of the element that matched the date grammar; -1 when none did
	// within the window.
	Index int
}

// CheckNextFew walks forward from the element after anchorIdx, testing up to
// checkNext elements against the date grammar. The first match wins. A nil
// Date with a nil error means the window was exhausted without a match,
// which is a warning for the caller, not a failure.
func CheckNextFew(els []layout.Element, anchorIdx, checkNext int) (DateLookahead, error) {
	cur := NewCursor(els, anchorIdx)
	for i := 0; i < checkNext; i++ {
		if !cur.Next() {
			break
		}
		m := grammar.MatchDate(cur.Text())
		if m == nil {
			continue
		}
		date, session, err := grammar.DateFromMatch(m)
		if err != nil {
			return DateLookahead{Index: -1}, err
		}
		return DateLookahead{Date: date, Session: session, Index: cur.Pos()}, nil
	}
	return DateLookahead{Index: -1}, nil
}

// Topic is the outcome of ExtractTopic.
type Topic struct {
	Text string
	// DateFound is false when the date line could not be re-located; the
	// caller should not have invoked extraction in that case.
	DateFound bool
	// Truncated is true when maxTopicRange elements were consumed without
	// seeing the terminator; Text then holds the partial join.
	Truncated bool
}

// ExtractTopic re-locates the date line after the anchor (independent bounded
// loop, same grammar), skips past it, and accumulates element texts until a
// line equal to the terminator marker appears or maxTopicRange elements have
// been consumed. The result is the space-joined, whitespace-normalized
// concatenation; an all-whitespace accumulation yields an explicit empty
// string.
func ExtractTopic(els []layout.Element, anchorIdx, checkNext, maxTopicRange int) Topic {
	cur := NewCursor(els, anchorIdx)

	dateFound := false
	for i := 0; i < checkNext; i++ {
		if !cur.Next() {
			break
		}
		if grammar.MatchDate(cur.Text()) != nil {
			dateFound = true
			break
		}
	}
	if !dateFound {
		return Topic{DateFound: false}
	}

	var parts []string
	ended := false
	for i := 0; i < maxTopicRange; i++ {
		if !cur.Next() {
			break
		}
		text := cur.Text()
		if strings.TrimSpace(text) == constants.TopicTerminator {
			ended = true
			break
		}
		parts = append(parts, text)
	}

	return Topic{
		Text:      grammar.NormalizeSpace(strings.Join(parts, " ")),
		DateFound: true,
		Truncated: !ended,
	}
}

// ExpectedBBoxArea classifies an anchor's box area against the plausibility
// band. Diagnostic signal only; a mismatch never suppresses a record.
func ExpectedBBoxArea(b layout.BBox) bool {
	area := b.Area()
	return area > constants.ExpectedBBoxAreaMin && area < constants.ExpectedBBoxAreaMax
}
