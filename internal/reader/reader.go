// Package reader implements the page-by-page document traversal engine. The
// engine owns the document handle, the page range, and the periodic-reload
// policy; what happens on each loaded page is a pluggable PageProcessor
// strategy.
package reader

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/rollcall-tracker/constants"
	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/layout"
	"github.com/joseph-ayodele/rollcall-tracker/internal/writer"
)

// Page is one loaded page handed to a processor.
type Page struct {
	Filename string
	Index    int
	Elements []layout.Element
}

// PageProcessor runs an extraction grammar over a loaded page. Returned
// errors are fatal to the run (writer or structural failures); extraction
// warnings are logged inside the processor and never returned.
type PageProcessor interface {
	ProcessPage(ctx context.Context, logger *slog.Logger, page *Page) error
	// Count reports how many records the processor has accumulated.
	Count() int
}

// Options tune a traversal run.
type Options struct {
	// StartPage (inclusive, 0-based) and EndPage (exclusive). EndPage <= 0
	// means the full document.
	StartPage int
	EndPage   int
	// FlushEvery discards and reopens the document handle every N pages. The
	// layout provider retains all previously visited pages in memory, so
	// reloading is the only way to bound memory on long documents.
	FlushEvery int
	// LogPath/ErrPath override the derived per-file log destinations.
	LogPath string
	ErrPath string
}

func (o *Options) applyDefaults() {
	if o.FlushEvery <= 0 {
		o.FlushEvery = constants.DefaultFlushEvery
	}
}

// Engine walks a document sequentially and invokes its processor per page.
// Single-threaded: one page is fully processed before the next begins.
type Engine struct {
	provider  layout.Provider
	processor PageProcessor
	writer    writer.Writer // optional; finalize closes it when present
	opts      Options
	logger    *slog.Logger

	// traversal state, reset to idle after each run
	filename    string
	doc         layout.Document
	numPages    int
	endPage     int
	currentPage int
	runLogger   *slog.Logger
	logCloser   func() error
	logFileSet  bool
}

func NewEngine(provider layout.Provider, processor PageProcessor, w writer.Writer, opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	opts.applyDefaults()
	return &Engine{
		provider:    provider,
		processor:   processor,
		writer:      w,
		opts:        opts,
		logger:      logger,
		currentPage: -1,
	}
}

// log returns the per-run logger when log files are set up, otherwise the
// engine's base logger.
func (e *Engine) log() *slog.Logger {
	if e.runLogger != nil {
		return e.runLogger
	}
	return e.logger
}

// open binds a document handle, resolves the page count, and computes the
// effective range [startPage, endPage or totalPages).
func (e *Engine) open(file string) error {
	doc, err := e.provider.Open(file)
	if err != nil {
		if errors.Is(err, common.ErrStructural) {
			return err
		}
		return common.NewStructural("OPEN_FAILED", "opening document "+file, err)
	}

	numPages := doc.NumPages()
	if numPages <= 0 {
		_ = doc.Close()
		return common.NewStructural("PAGE_COUNT", "page count unresolvable for "+file, nil)
	}

	e.filename = file
	e.doc = doc
	e.numPages = numPages
	e.endPage = e.opts.EndPage
	if e.endPage <= 0 || e.endPage > numPages {
		e.endPage = numPages
	}
	e.currentPage = e.opts.StartPage - 1

	e.log().Info("reader.opened",
		"file", file,
		"pages", numPages,
		"range_start", e.opts.StartPage,
		"range_end", e.endPage,
	)
	return nil
}

// advance increments the page cursor and loads the target page, reloading the
// document handle every FlushEvery pages first. Returns ErrEndOfDocument when
// the range is exhausted.
func (e *Engine) advance() ([]layout.Element, error) {
	e.currentPage++
	if e.currentPage >= e.endPage {
		return nil, common.ErrEndOfDocument
	}

	if e.currentPage%e.opts.FlushEvery == 0 {
		if err := e.reload(); err != nil {
			return nil, err
		}
	}

	els, err := e.doc.Page(e.currentPage)
	if err != nil {
		return nil, common.NewStructural("PAGE_LOAD", "loading page", err)
	}
	return els, nil
}

// reload discards the current handle and reopens the same file. The page
// cursor is unaffected.
func (e *Engine) reload() error {
	e.log().Debug("reader.reload", "file", e.filename, "page", e.currentPage)
	if err := e.doc.Close(); err != nil {
		e.log().Error("reader.reload.close_failed", "file", e.filename, "error", err)
	}
	doc, err := e.provider.Open(e.filename)
	if err != nil {
		return common.NewStructural("RELOAD_FAILED", "reopening document "+e.filename, err)
	}
	e.doc = doc
	return nil
}

// Read traverses the full page range of file, invoking the processor per
// loaded page, then finalizes: traversal state resets to idle and the writer,
// if present, is closed. Per-page extraction problems are logged and skipped;
// only structural document failures and writer failures abort the run.
func (e *Engine) Read(ctx context.Context, file string) (err error) {
	runID := uuid.New().String()

	if !e.logFileSet {
		runLogger, closer, logErr := common.NewRunLogger(file, e.opts.LogPath, e.opts.ErrPath)
		if logErr != nil {
			return logErr
		}
		e.runLogger = runLogger
		e.logCloser = closer
		e.logFileSet = true
	}
	logger := e.log().With("run_id", runID, "file", filepath.Base(file))

	defer func() {
		if cerr := e.finalize(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := e.open(file); err != nil {
		logger.Error("reader.open.failed", "error", err)
		return err
	}

	before := e.processor.Count()
	for {
		els, advErr := e.advance()
		if errors.Is(advErr, common.ErrEndOfDocument) {
			break
		}
		if advErr != nil {
			logger.Error("reader.advance.failed", "page", e.currentPage, "error", advErr)
			return advErr
		}

		page := &Page{Filename: file, Index: e.currentPage, Elements: els}
		if procErr := e.processor.ProcessPage(ctx, logger, page); procErr != nil {
			// Processors only surface fatal errors; the last successfully
			// processed page stays in the log for operator resumability.
			logger.Error("reader.page.failed", "page", e.currentPage, "error", procErr)
			return procErr
		}
	}

	logger.Info("reader.done",
		"records", e.processor.Count()-before,
		"last_page", e.currentPage-1,
	)
	return nil
}

// finalize resets all traversal state to idle and releases the writer and the
// per-run log files. Safe to call once per run; Read arranges that.
func (e *Engine) finalize() error {
	if e.doc != nil {
		if err := e.doc.Close(); err != nil {
			e.log().Error("reader.close.failed", "file", e.filename, "error", err)
		}
		e.doc = nil
	}
	e.filename = ""
	e.numPages = 0
	e.endPage = 0
	e.currentPage = -1

	var err error
	if e.writer != nil {
		if cerr := e.writer.Close(); cerr != nil {
			err = common.NewWriterError("closing writer", cerr)
		}
	}
	if e.logCloser != nil {
		_ = e.logCloser()
		e.logCloser = nil
		e.runLogger = nil
		e.logFileSet = false
	}
	return err
}
