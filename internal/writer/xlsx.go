package writer

import (
	"context"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

// XLSX appends one row per record to a named sheet, writing the record's
// header row when a sheet is first used. The workbook is saved on Close.
type XLSX struct {
	file   *excelize.File
	path   string
	sheet  string
	logger *slog.Logger

	// next row to write, per sheet; 0 means the sheet has not been created
	nextRow map[string]int
}

func NewXLSX(path, sheet string, logger *slog.Logger) *XLSX {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSX{
		file:    excelize.NewFile(),
		path:    path,
		sheet:   sheet,
		logger:  logger,
		nextRow: make(map[string]int),
	}
}

// SetSheet switches the target sheet for subsequent writes. A sheet is
// auto-created, with headers, on its first write.
func (w *XLSX) SetSheet(name string) {
	w.sheet = name
}

func (w *XLSX) Write(ctx context.Context, rec record.Record) error {
	row, err := w.ensureSheet(rec)
	if err != nil {
		return err
	}

	if err := w.writeRow(w.sheet, row, rec.Row()); err != nil {
		return common.NewWriterError("appending row to sheet "+w.sheet, err)
	}
	w.nextRow[w.sheet] = row + 1
	w.logger.Debug("writer.xlsx.row", "sheet", w.sheet, "row", row, "id", rec.ID())
	return nil
}

// ensureSheet creates the target sheet and its header row on first use and
// returns the row index to append at.
func (w *XLSX) ensureSheet(rec record.Record) (int, error) {
	if row, ok := w.nextRow[w.sheet]; ok {
		return row, nil
	}

	if index, _ := w.file.GetSheetIndex(w.sheet); index == -1 {
		if _, err := w.file.NewSheet(w.sheet); err != nil {
			return 0, common.NewWriterError("creating sheet "+w.sheet, err)
		}
	}

	headers := rec.Headers()
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := w.writeRow(w.sheet, 1, cells); err != nil {
		return 0, common.NewWriterError("writing header row to sheet "+w.sheet, err)
	}

	w.logger.Info("writer.xlsx.sheet", "sheet", w.sheet, "path", w.path)
	w.nextRow[w.sheet] = 2
	return 2, nil
}

func (w *XLSX) writeRow(sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func (w *XLSX) Close() error {
	// Drop the default sheet when nothing was written to it.
	if _, used := w.nextRow["Sheet1"]; !used {
		if index, _ := w.file.GetSheetIndex("Sheet1"); index != -1 && len(w.file.GetSheetList()) > 1 {
			_ = w.file.DeleteSheet("Sheet1")
		}
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return common.NewWriterError("saving workbook "+w.path, err)
	}
	w.logger.Info("writer.xlsx.saved", "path", w.path)
	return w.file.Close()
}

// Workbook exposes the underlying file for inspection in tests.
func (w *XLSX) Workbook() *excelize.File {
	return w.file
}
