package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"angket/domain/response"
	"angket/domain/schema"
	"angket/internal/errors"
	"angket/internal/export"
)

const sheetName = "Responses"

// Writer renders response exports as XLSX workbooks. It shares the column
// contract with the CSV exporter so both formats diff identically.
type Writer struct{}

// NewWriter creates a new XLSX writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write builds an XLSX workbook from the export grid and returns its bytes.
func (w *Writer) Write(fields []schema.FieldDescriptor, rows []response.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create export sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to drop default sheet")
	}

	for i, record := range export.Grid(fields, rows) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute cell coordinates")
		}
		values := make([]interface{}, len(record))
		for j, v := range record {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, errors.Wrapf(err, "failed to write export row %d", i)
		}
	}

	// Bold, frozen header row.
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, styleID)
	}
	_ = f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}
	return buf.Bytes(), nil
}
