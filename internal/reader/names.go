package reader

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/grammar"
	"github.com/joseph-ayodele/rollcall-tracker/internal/layout"
	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
	"github.com/joseph-ayodele/rollcall-tracker/internal/writer"
)

// NamesProcessor extracts legislator roster entries from whole-page text with
// the multi-field name grammar. A page may yield zero or more NameRecords.
type NamesProcessor struct {
	writer       writer.Writer // optional
	replacements []common.Replacement
	names        []*record.NameRecord
}

func NewNamesProcessor(w writer.Writer, tuning common.TuningConfig) *NamesProcessor {
	return &NamesProcessor{
		writer:       w,
		replacements: tuning.Replacements,
	}
}

// Names returns the roster accumulated across runs.
func (p *NamesProcessor) Names() []*record.NameRecord {
	return p.names
}

func (p *NamesProcessor) Count() int {
	return len(p.names)
}

// PageText joins every element's text with newlines, applying the configured
// character replacements in order to each element first.
func (p *NamesProcessor) PageText(els []layout.Element) string {
	lines := make([]string, len(els))
	for i, el := range els {
		text := el.Text
		for _, r := range p.replacements {
			text = strings.ReplaceAll(text, r.Old, r.New)
		}
		lines[i] = text
	}
	return strings.Join(lines, "\n")
}

func (p *NamesProcessor) ProcessPage(ctx context.Context, logger *slog.Logger, page *Page) error {
	text := p.PageText(page.Elements)
	matches := grammar.NameEntries(text)

	matchNum := 0
	for i, m := range matches {
		matchNum = i + 1
		logger.Debug("names.match", "page", page.Index, "match", matchNum, "text", m[0])

		name := grammar.NormalizeSpace(m[1])
		if !grammar.ValidName(name) {
			logger.Info("names.invalid_candidate", "page", page.Index, "match", matchNum, "name", name)
			continue
		}

		occDist := grammar.NormalizeSpace(m[2])
		occupation, constituency, district, ok := grammar.SplitOccupation(occDist)
		if !ok {
			logger.Error("names.occupation.unparsed",
				"page", page.Index,
				"match", matchNum,
				"field", occDist,
			)
			occupation = occDist
		}

		rec := &record.NameRecord{
			FullName:     name,
			Occupation:   occupation,
			Constituency: constituency,
			District:     district,
			Party:        grammar.NormalizeSpace(m[3]),
			Page:         page.Index,
			Filename:     page.Filename,
			MatchNumber:  matchNum,
		}
		p.names = append(p.names, rec)

		if p.writer != nil {
			if err := p.writer.Write(ctx, rec); err != nil {
				return err
			}
		}
	}

	if matchNum > 0 {
		logger.Info("names.page.count", "page", page.Index, "count", matchNum)
	}
	return nil
}
