package parser

import (
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
	"github.com/xuri/excelize/v2"
)

// SetPageMargins applies left, right, top and bottom print margins to a sheet.
func SetPageMargins(f *excelize.File, sheetName string, m models.PageMargins) error {
	return f.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
		Left:   &m.Left,
		Right:  &m.Right,
		Top:    &m.Top,
		Bottom: &m.Bottom,
	})
}

// GetPageMargins returns the print margins of a sheet.
func GetPageMargins(f *excelize.File, sheetName string) (models.PageMargins, error) {
	opts, err := f.GetPageMargins(sheetName)
	if err != nil {
		return models.PageMargins{}, err
	}

	var m models.PageMargins
	if opts.Left != nil {
		m.Left = *opts.Left
	}
	if opts.Right != nil {
		m.Right = *opts.Right
	}
	if opts.Top != nil {
		m.Top = *opts.Top
	}
	if opts.Bottom != nil {
		m.Bottom = *opts.Bottom
	}
	return m, nil
}
