// Package xlsx renders an assembled report to an Excel workbook. It is the
// tabular sink behind the report download endpoint; the report core stays
// agnostic to the file format.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/iho/studioops/internal/report"
)

// Writer implements usecase.ReportRenderer using excelize.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Render writes every report sheet, in order, into one workbook and returns
// the serialized bytes.
func (w *Writer) Render(rep *report.Report) ([]byte, error) {
	if len(rep.Sheets) == 0 {
		return nil, fmt.Errorf("report has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range rep.Sheets {
		name := sheetName(sheet.Name)
		if i == 0 {
			// excelize always creates Sheet1; rename it for the first section
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("failed to rename default sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
			}
		}

		for rowIdx, row := range sheet.Rows {
			for colIdx, value := range row {
				cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return nil, fmt.Errorf("failed to compute cell name: %w", err)
				}
				if err := f.SetCellValue(name, cell, cellValue(value)); err != nil {
					return nil, fmt.Errorf("failed to set cell %s!%s: %w", sheet.Name, cell, err)
				}
			}
		}
	}

	index, err := f.GetSheetIndex(sheetName(rep.Sheets[0].Name))
	if err == nil {
		f.SetActiveSheet(index)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue converts report cells to types excelize stores natively. Decimal
// amounts keep their exact string form rather than rounding through float64.
func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.String()
	}
	return v
}

// sheetName trims names to Excel's 31-character sheet name limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
