package constants

// Anchor labels searched for on each page, in order. The primary label marks
// the header of a roll-call vote table; the fallback appears on compilation
// pages that carry the same metadata.
const (
	RollCallAnchor         = "Namentliche Abstimmung"
	RollCallFallbackAnchor = "Zusammenstellung."
)

// TopicTerminator ends topic collection when a line equals it.
const TopicTerminator = "Name"

// Default tuning values for the traversal engine and lookahead grammars.
const (
	DefaultCheckNext     = 5
	DefaultMaxTopicRange = 100
	DefaultFlushEvery    = 5
)

// Bounding-box plausibility band for the roll-call anchor, in the layout
// provider's box units. Diagnostic only; never gates record emission.
const (
	ExpectedBBoxAreaMin = 4500.0
	ExpectedBBoxAreaMax = 6500.0
)

// SoftHyphen is stripped from page text by default before the name-roster
// grammar runs; typeset sources hyphenate across line breaks with U+00AD.
const SoftHyphen = "\u00ad"
