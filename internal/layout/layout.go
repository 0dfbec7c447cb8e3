// Package layout abstracts the document/layout provider: per-page ordered
// text elements with bounding boxes. The traversal engine treats the provider
// as opaque so tests can substitute fabricated pages.
package layout

import "encoding/json"

// BBox is the rectangular extent of a text element on a page.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Area returns (x1-x0)*(y1-y0) in the provider's box units.
func (b BBox) Area() float64 {
	return (b.X1 - b.X0) * (b.Y1 - b.Y0)
}

// JSON renders the box as a deterministic JSON array, the form used in
// record identities.
func (b BBox) JSON() string {
	data, _ := json.Marshal([4]float64{b.X0, b.Y0, b.X1, b.Y1})
	return string(data)
}

// Element is one text line on a page.
type Element struct {
	Text string
	BBox BBox
}

// Document is an open document handle. It is a mutable, exclusively-owned
// resource; the engine discards and reopens it periodically to bound memory,
// because providers retain every visited page for the handle's lifetime.
type Document interface {
	// NumPages returns the total page count from document metadata.
	NumPages() int
	// Page loads the 0-based page and returns its elements in reading order.
	Page(index int) ([]Element, error)
	Close() error
}

// Provider opens documents by path.
type Provider interface {
	Open(path string) (Document, error)
}
