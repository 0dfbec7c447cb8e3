package grammar

import (
	"regexp"
	"strings"
)

// nameEntry matches one roster entry in a page's normalized text:
// <name>;<occupation-and-district>—<party>. The party class spells out
// Unicode letter/digit properties; Go's \w is ASCII-only and would drop
// entries whose party name carries an umlaut.
var nameEntry = regexp.MustCompile(`(?m)^([^\n;\d]{1,200});([^—]{1,200})—([\s\p{L}\p{N}_\n]{1,100})\.`)

// occupationDistrict splits the middle field into
// <occupation> Wahlkr. <number> <district>.
var occupationDistrict = regexp.MustCompile(`(.+)\s+(Wahlkr\.\s+\d+)(.+)`)

// NameEntries returns every roster-entry match in text, in order.
func NameEntries(text string) [][]string {
	return nameEntry.FindAllStringSubmatch(text, -1)
}

// ValidName accepts only "Last, First" shaped candidates. Incidental text
// caught by the entry pattern lacks the comma.
func ValidName(name string) bool {
	return strings.Contains(name, ",")
}

// SplitOccupation tokenizes an occupation-and-district field. ok is false
// when the field does not follow the <occupation> Wahlkr. <number> <district>
// form; callers then keep the whole field as the occupation.
func SplitOccupation(field string) (occupation, constituency, district string, ok bool) {
	m := occupationDistrict.FindStringSubmatch(field)
	if m == nil {
		return "", "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3]), true
}

// NormalizeSpace collapses all interior whitespace runs to single spaces and
// trims the ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
