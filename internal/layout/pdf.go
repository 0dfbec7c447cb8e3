package layout

import (
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
)

// lineTolerance groups characters onto one line when their baselines differ
// by no more than this many box units.
const lineTolerance = 2.0

// wordGapFactor inserts a space when the horizontal gap between adjacent
// characters exceeds this fraction of the font size.
const wordGapFactor = 0.25

// PDFProvider opens PDF files through github.com/ledongthuc/pdf.
type PDFProvider struct{}

func NewPDFProvider() *PDFProvider {
	return &PDFProvider{}
}

func (p *PDFProvider) Open(path string) (Document, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, common.NewStructural("OPEN_FAILED", "opening pdf "+path, err)
	}
	doc := &pdfDocument{file: file, reader: reader, pages: reader.NumPage()}
	if doc.pages <= 0 {
		_ = file.Close()
		return nil, common.NewStructural("PAGE_COUNT", "no pages in "+path, nil)
	}
	return doc, nil
}

type pdfDocument struct {
	file   *os.File
	reader *pdf.Reader
	pages  int
}

func (d *pdfDocument) NumPages() int {
	return d.pages
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}

// Page loads the 0-based page and groups its characters into line elements,
// top-to-bottom then left-to-right.
func (d *pdfDocument) Page(index int) ([]Element, error) {
	page := d.reader.Page(index + 1)
	if page.V.IsNull() {
		return nil, nil
	}
	content := page.Content()
	return groupLines(content.Text), nil
}

// groupLines clusters character fragments by baseline and assembles one
// Element per text line.
func groupLines(texts []pdf.Text) []Element {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > lineTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var elements []Element
	var line []pdf.Text
	flush := func() {
		if len(line) == 0 {
			return
		}
		elements = append(elements, assembleLine(line))
		line = line[:0]
	}

	for _, t := range sorted {
		if len(line) > 0 && math.Abs(t.Y-line[0].Y) > lineTolerance {
			flush()
		}
		line = append(line, t)
	}
	flush()
	return elements
}

func assembleLine(line []pdf.Text) Element {
	var sb strings.Builder
	box := BBox{
		X0: line[0].X,
		Y0: line[0].Y,
		X1: line[0].X + line[0].W,
		Y1: line[0].Y + line[0].FontSize,
	}

	var prevEnd float64
	for i, t := range line {
		if i > 0 && t.X-prevEnd > wordGapFactor*t.FontSize {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W

		box.X0 = math.Min(box.X0, t.X)
		box.Y0 = math.Min(box.Y0, t.Y)
		box.X1 = math.Max(box.X1, t.X+t.W)
		box.Y1 = math.Max(box.Y1, t.Y+t.FontSize)
	}
	return Element{Text: sb.String(), BBox: box}
}
