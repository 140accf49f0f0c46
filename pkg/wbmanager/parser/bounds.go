package parser

import (
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
	"github.com/xuri/excelize/v2"
)

// SheetBounds computes the row bounds of a sheet from its current contents.
// A row counts as physical when at least one of its cells holds a value.
func SheetBounds(f *excelize.File, sheetName string) (models.SheetInfo, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return models.SheetInfo{}, err
	}
	if idx < 0 {
		return models.SheetInfo{}, excelize.ErrSheetNotExist{SheetName: sheetName}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.SheetInfo{}, err
	}

	first, last, physical := findRowBounds(rows)
	return models.SheetInfo{
		Name:         sheetName,
		Index:        idx,
		FirstRow:     first,
		LastRow:      last,
		PhysicalRows: physical,
	}, nil
}

// CellCount returns one more than the index of the last non-empty cell in
// the row, or 0 for an empty row.
func CellCount(row []string) int {
	for colIdx := len(row) - 1; colIdx >= 0; colIdx-- {
		if row[colIdx] != "" {
			return colIdx + 1
		}
	}
	return 0
}

// findRowBounds finds the first and last non-empty rows and counts the
// non-empty rows between them. Both bounds are -1 when nothing is found.
func findRowBounds(rows [][]string) (first, last, physical int) {
	first, last = -1, -1

	for rowIdx, row := range rows {
		if CellCount(row) == 0 {
			continue
		}
		if first < 0 {
			first = rowIdx
		}
		last = rowIdx
		physical++
	}

	return
}
