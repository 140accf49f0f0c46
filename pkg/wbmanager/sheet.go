package wbmanager

import (
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/parser"
)

// Sheet is one named tab within a Workbook.
type Sheet struct {
	wb   *Workbook
	name string
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Workbook returns the workbook owning the sheet.
func (s *Sheet) Workbook() *Workbook {
	return s.wb
}

// Info computes the current bounds of the sheet.
func (s *Sheet) Info() (models.SheetInfo, error) {
	return parser.SheetBounds(s.wb.file, s.name)
}

// Row returns the row at the 0-based index. The row need not exist yet;
// setting a cell creates it.
func (s *Sheet) Row(index int) *Row {
	return &Row{sheet: s, index: index}
}

// Margins returns the print margins of the sheet.
func (s *Sheet) Margins() (models.PageMargins, error) {
	return parser.GetPageMargins(s.wb.file, s.name)
}

// SetMargins sets the print margins of the sheet.
func (s *Sheet) SetMargins(m models.PageMargins) error {
	return parser.SetPageMargins(s.wb.file, s.name, m)
}

// NarrowMargins sets half-inch margins on all four sides.
func (s *Sheet) NarrowMargins() error {
	return s.SetMargins(models.NarrowMargins())
}

// AutoSizeColumns sizes every column that has a cell in the first row of
// the sheet to its content. Call it after the sheet is filled in.
func (s *Sheet) AutoSizeColumns() error {
	n, err := s.Row(0).CellCount()
	if err != nil {
		return err
	}
	return s.AutoSizeColumn(columnRange(0, n)...)
}

// AutoSizeColumn sizes the given 0-based columns to their content.
func (s *Sheet) AutoSizeColumn(cols ...int) error {
	return parser.AutoSizeColumns(s.wb.file, s.name, cols)
}

func columnRange(from, to int) []int {
	cols := make([]int, 0, to-from)
	for col := from; col < to; col++ {
		cols = append(cols, col)
	}
	return cols
}
