package wbmanager

import (
	"fmt"

	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/parser"
	"github.com/xuri/excelize/v2"
)

// Row addresses one row of a sheet. It holds no cell data of its own; every
// read goes to the workbook, so a Row stays valid across writes.
type Row struct {
	sheet *Sheet
	index int
}

// Index returns the 0-based row index.
func (r *Row) Index() int {
	return r.index
}

// Number returns the 1-based row number as shown by spreadsheet programs.
func (r *Row) Number() int {
	return r.index + 1
}

// Sheet returns the sheet holding the row.
func (r *Row) Sheet() *Sheet {
	return r.sheet
}

// Cell classifies the cell at the 0-based column.
func (r *Row) Cell(col int) (Cell, error) {
	ref, err := r.ref(col)
	if err != nil {
		return Cell{}, err
	}

	value, err := parser.ReadCell(r.sheet.wb.file, r.sheet.name, col+1, r.index+1)
	if err != nil {
		return Cell{}, err
	}

	return Cell{
		CellValue: value,
		Sheet:     r.sheet.name,
		Ref:       ref,
		Col:       col,
		Row:       r.index,
	}, nil
}

// SetCell stores value in the cell at the 0-based column, creating the cell
// (and the row) when needed.
func (r *Row) SetCell(col int, value any) error {
	ref, err := r.ref(col)
	if err != nil {
		return err
	}
	return r.sheet.wb.file.SetCellValue(r.sheet.name, ref, value)
}

// Values returns the formatted values of the row with trailing empty cells
// trimmed.
func (r *Row) Values() ([]string, error) {
	rows, err := r.sheet.wb.file.GetRows(r.sheet.name)
	if err != nil {
		return nil, err
	}
	if r.index < 0 || r.index >= len(rows) {
		return nil, nil
	}
	row := rows[r.index]
	return row[:parser.CellCount(row)], nil
}

// CellCount returns one more than the index of the last non-empty cell.
func (r *Row) CellCount() (int, error) {
	values, err := r.Values()
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

func (r *Row) ref(col int) (string, error) {
	ref, err := excelize.CoordinatesToCellName(col+1, r.index+1)
	if err != nil {
		return "", fmt.Errorf("row %d column %d: %w", r.index, col, err)
	}
	return ref, nil
}
