package parser

import (
	"github.com/xuri/excelize/v2"
)

// AutoSizeColumns sets each of the given 0-based columns to the width of its
// widest value. Columns without any value keep their current width.
func AutoSizeColumns(f *excelize.File, sheetName string, cols []int) error {
	if len(cols) == 0 {
		return nil
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}

	for _, col := range cols {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			if col < len(row) {
				values = append(values, row[col])
			}
		}

		w := ColumnWidth(values)
		if w == 0 {
			continue
		}

		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, colName, colName, w); err != nil {
			return err
		}
	}

	return nil
}
