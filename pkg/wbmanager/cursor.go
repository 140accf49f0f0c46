package wbmanager

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
)

// Cursor walks the data rows of one sheet, skipping empty rows and comment
// rows. A comment row is a row whose first cell is text starting with the
// workbook's comment marker.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	sheet   *Sheet
	info    models.SheetInfo
	current int
	row     *Row
	marker  string
	log     logrus.FieldLogger
	err     error

	// pending is the index of a row added by AppendRow that has not been
	// counted as physical yet, or -1.
	pending int
}

// NewCursor returns a cursor over s positioned on its first non-empty row,
// which is normally the header.
func NewCursor(s *Sheet) (*Cursor, error) {
	c := &Cursor{}
	if err := c.Select(s); err != nil {
		return nil, err
	}
	return c, nil
}

// Select points the cursor at another sheet and recomputes its bounds.
func (c *Cursor) Select(s *Sheet) error {
	c.sheet = s
	c.marker = s.wb.opts.CommentMarker
	c.log = s.wb.log.WithField("sheet", s.name)
	return c.Recompute()
}

// Recompute recalculates the sheet bounds and rewinds the cursor to the first
// non-empty row, or to -1 with no current row when the sheet is empty. Call
// it after inserting or deleting rows.
func (c *Cursor) Recompute() error {
	info, err := c.sheet.Info()
	if err != nil {
		return err
	}

	c.info = info
	c.err = nil
	c.pending = -1
	if info.Empty() {
		c.current = -1
		c.row = nil
		return nil
	}
	c.current = info.FirstRow
	c.row = c.sheet.Row(info.FirstRow)
	return nil
}

// NextRow advances to the next data row after the current one. It returns
// false when the sheet is exhausted or a read fails; Err tells them apart.
func (c *Cursor) NextRow() (*Row, bool) {
	if c.err != nil {
		return nil, false
	}
	c.settle()

	for idx := c.current + 1; idx <= c.info.LastRow; idx++ {
		row := c.sheet.Row(idx)
		first, err := row.Cell(0)
		if err != nil {
			c.err = err
			return nil, false
		}
		c.current = idx

		switch first.Kind {
		case models.CellNumeric:
		case models.CellText:
			if strings.HasPrefix(first.Text, c.marker) {
				c.log.WithField("row", row.Number()).Debug("skipping comment row")
				continue
			}
		default:
			continue
		}

		c.row = row
		return row, true
	}

	c.row = nil
	return nil, false
}

// Err returns the read error that stopped NextRow, if any.
func (c *Cursor) Err() error {
	return c.err
}

// AppendRow adds a row immediately after the last non-empty row of the sheet
// and makes it the current row. The row becomes part of the sheet once a
// cell in it is set, and is then included in the physical row count.
func (c *Cursor) AppendRow() (*Row, error) {
	info, err := c.sheet.Info()
	if err != nil {
		return nil, err
	}

	idx := info.LastRow + 1
	if info.FirstRow < 0 {
		info.FirstRow = idx
	}
	info.LastRow = idx

	c.info = info
	c.current = idx
	c.row = c.sheet.Row(idx)
	c.pending = idx
	return c.row, nil
}

// settle counts the row added by AppendRow once a cell has been set in it.
func (c *Cursor) settle() {
	if c.pending < 0 {
		return
	}
	n, err := c.sheet.Row(c.pending).CellCount()
	if err != nil || n == 0 {
		return
	}
	c.info.PhysicalRows++
	c.pending = -1
}

// Usable reports whether the sheet has at least minRows non-empty rows and a
// current row. On failure one complaint is added to log. A minRows of zero
// or less means DefaultMinRows.
func (c *Cursor) Usable(log *Complaints, minRows int) bool {
	if minRows <= 0 {
		minRows = DefaultMinRows
	}
	c.settle()
	if c.row == nil || c.info.PhysicalRows < minRows {
		where := c.sheet.name
		if name := c.sheet.wb.Name(); name != "" {
			where += " of " + name
		}
		log.Addf("Work sheet %s must have %d or more rows", where, minRows)
		return false
	}
	return true
}

// FitColumnsToLabels sizes the columns spanned by the current row to their
// content. It is meant for a sheet whose only row is the column headings.
func (c *Cursor) FitColumnsToLabels() error {
	if c.row == nil {
		return nil
	}
	values, err := c.row.Values()
	if err != nil {
		return err
	}

	first := 0
	for first < len(values) && values[first] == "" {
		first++
	}
	return c.sheet.AutoSizeColumn(columnRange(first, len(values))...)
}

// Sheet returns the sheet the cursor walks.
func (c *Cursor) Sheet() *Sheet { return c.sheet }

// Info returns the sheet bounds computed by the last Recompute, counting a
// row added by AppendRow once it holds a cell.
func (c *Cursor) Info() models.SheetInfo {
	c.settle()
	return c.info
}

// Row returns the current row, or nil when there is none.
func (c *Cursor) Row() *Row { return c.row }

// RowIndex returns the 0-based index of the current row, -1 for an empty sheet.
func (c *Cursor) RowIndex() int { return c.current }

// SheetName implements Position.
func (c *Cursor) SheetName() string { return c.sheet.name }

// RowNumber implements Position. It is 1-based.
func (c *Cursor) RowNumber() int { return c.current + 1 }

func (c *Cursor) String() string {
	return fmt.Sprintf("Sheet %s fr %d lr %d", c.sheet.name, c.info.FirstRow, c.info.LastRow)
}
