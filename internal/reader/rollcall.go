package reader

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/joseph-ayodele/rollcall-tracker/constants"
	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
	"github.com/joseph-ayodele/rollcall-tracker/internal/scan"
	"github.com/joseph-ayodele/rollcall-tracker/internal/writer"
)

// RollCallProcessor detects roll-call vote tables: an anchor label, a date
// line within the lookahead window, and the debate topic up to the terminator
// marker. At most one RollCall per page.
type RollCallProcessor struct {
	writer        writer.Writer // optional
	checkNext     int
	maxTopicRange int
	rollCalls     []*record.RollCall
}

func NewRollCallProcessor(w writer.Writer, tuning common.TuningConfig) *RollCallProcessor {
	return &RollCallProcessor{
		writer:        w,
		checkNext:     tuning.CheckNext,
		maxTopicRange: tuning.MaxTopicRange,
	}
}

// RollCalls returns the roster accumulated across runs.
func (p *RollCallProcessor) RollCalls() []*record.RollCall {
	return p.rollCalls
}

func (p *RollCallProcessor) Count() int {
	return len(p.rollCalls)
}

func (p *RollCallProcessor) ProcessPage(ctx context.Context, logger *slog.Logger, page *Page) error {
	anchorIdx := scan.FindAnchor(page.Elements, constants.RollCallAnchor)
	if anchorIdx < 0 {
		anchorIdx = scan.FindAnchor(page.Elements, constants.RollCallFallbackAnchor)
	}
	if anchorIdx < 0 {
		// silent skip: the page contributes nothing
		return nil
	}
	anchor := page.Elements[anchorIdx]
	logger.Info("rollcall.anchor", "page", page.Index, "text", anchor.Text)

	look, err := scan.CheckNextFew(page.Elements, anchorIdx, p.checkNext)
	if err != nil {
		return err
	}

	expected := scan.ExpectedBBoxArea(anchor.BBox)
	logger.Debug("rollcall.bbox",
		"page", page.Index,
		"area", anchor.BBox.Area(),
		"expected", expected,
	)

	if look.Date == nil {
		logger.Debug("rollcall.date.missing", "page", page.Index, "anchor", anchor.Text)
		if expected {
			// heuristic said yes but no date present
			logger.Error("rollcall.date.missing_with_expected_bbox", "page", page.Index)
		}
		return nil
	}
	logger.Info("rollcall.date", "page", page.Index, "date", look.Date.String())

	topic := scan.ExtractTopic(page.Elements, anchorIdx, p.checkNext, p.maxTopicRange)
	if !topic.DateFound {
		logger.Error("rollcall.topic.date_not_relocated", "page", page.Index)
	}
	if topic.Truncated {
		logger.Error("rollcall.topic.truncated", "page", page.Index, "max_range", p.maxTopicRange)
	}
	if topic.Text == "" {
		logger.Error("rollcall.topic.empty", "page", page.Index)
	}

	rc := &record.RollCall{
		Number:   look.Session,
		Date:     look.Date,
		Page:     page.Index,
		Topic:    topic.Text,
		Filename: filepath.Base(page.Filename),
		BBox:     anchor.BBox,
	}
	logger.Info("rollcall.created", "page", page.Index, "id", rc.ID(), "topic", rc.Topic)

	p.rollCalls = append(p.rollCalls, rc)
	if p.writer != nil {
		if err := p.writer.Write(ctx, rc); err != nil {
			return err
		}
	}
	return nil
}
