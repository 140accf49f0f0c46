package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a legacy workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ImportLegacy reads a BIFF (.xls) workbook and copies the values of every
// sheet into a new xlsx document. Values that parse as numbers are stored as
// numbers; everything else is stored as text. Styles are not carried over.
func ImportLegacy(r io.ReadSeeker, charset string) (f *excelize.File, err error) {
	// extrame/xls panics on some malformed streams.
	defer func() {
		if p := recover(); p != nil {
			f, err = nil, fmt.Errorf("read legacy workbook: %v", p)
		}
	}()

	book, err := xls.OpenReader(r, charset)
	if err != nil {
		return nil, err
	}
	if book == nil || book.NumSheets() == 0 {
		return nil, ErrNoSheets
	}

	f = excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	renamed := false

	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}

		if !renamed {
			if err := f.SetSheetName(defaultSheet, ws.Name); err != nil {
				f.Close()
				return nil, err
			}
			renamed = true
		} else if _, err := f.NewSheet(ws.Name); err != nil {
			f.Close()
			return nil, err
		}

		if err := copyLegacySheet(f, ws); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", ws.Name, err)
		}
	}

	if !renamed {
		f.Close()
		return nil, ErrNoSheets
	}
	return f, nil
}

// copyLegacySheet writes every non-empty cell of ws into the sheet of the
// same name in f.
func copyLegacySheet(f *excelize.File, ws *xls.WorkSheet) error {
	for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
		row := legacyRow(ws, rowIdx)
		if row == nil {
			continue
		}

		for colIdx := row.FirstCol(); colIdx <= row.LastCol(); colIdx++ {
			value := row.Col(colIdx)
			if value == "" {
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ws.Name, cellName, parseValue(value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// legacyRow returns row i of ws, or nil when the sheet has no such row.
// The reader panics on an index missing from its row map.
func legacyRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}
