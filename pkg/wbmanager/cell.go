package wbmanager

import (
	"strconv"

	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
)

// Cell is a classified snapshot of one cell. Read its value through
// TextValue or NumericValue, which fail on a kind mismatch.
type Cell struct {
	models.CellValue

	// Sheet is the name of the sheet holding the cell.
	Sheet string
	// Ref is the A1-style reference of the cell.
	Ref string
	// Col and Row are 0-based.
	Col int
	Row int
}

// TextValue returns the value of a text cell.
func (c Cell) TextValue() (string, error) {
	if c.Kind != models.CellText {
		return "", c.mismatch(models.CellText)
	}
	return c.Text, nil
}

// NumericValue returns the value of a numeric cell.
func (c Cell) NumericValue() (float64, error) {
	if c.Kind != models.CellNumeric {
		return 0, c.mismatch(models.CellNumeric)
	}
	return c.Number, nil
}

// IsBlank reports whether the cell holds no value.
func (c Cell) IsBlank() bool {
	return c.Kind == models.CellBlank
}

// String renders the value for display regardless of kind.
func (c Cell) String() string {
	switch c.Kind {
	case models.CellText:
		return c.Text
	case models.CellNumeric:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return c.Raw
	}
}

func (c Cell) mismatch(want models.CellKind) error {
	return &CellError{Sheet: c.Sheet, Ref: c.Ref, Want: want, Got: c.Kind}
}
