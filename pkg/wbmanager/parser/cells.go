package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
	"github.com/xuri/excelize/v2"
)

// ReadCell classifies the cell at the given 1-based column and row.
// A missing cell is reported as models.CellBlank, not as an error.
func ReadCell(f *excelize.File, sheetName string, col, row int) (models.CellValue, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.CellValue{}, err
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.CellValue{}, err
	}

	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.CellValue{}, err
	}

	if raw == "" {
		// A formula that was never calculated has no cached value.
		formula, err := f.GetCellFormula(sheetName, cellName)
		if err != nil {
			return models.CellValue{}, err
		}
		if formula != "" {
			return models.CellValue{Kind: models.CellOther, Raw: formula}, nil
		}
	}

	return classifyCell(cellType, raw), nil
}

// classifyCell maps the codec's cell type and raw value onto a CellKind.
// Numbers written without a type attribute report CellTypeUnset, so an
// untyped cell holding a parseable value is numeric.
func classifyCell(cellType excelize.CellType, raw string) models.CellValue {
	if raw == "" {
		return models.CellValue{Kind: models.CellBlank}
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.CellValue{Kind: models.CellText, Text: raw, Raw: raw}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return models.CellValue{Kind: models.CellNumeric, Number: n, Raw: raw}
		}
	}

	return models.CellValue{Kind: models.CellOther, Raw: raw}
}

// decimalLiteral matches a plain decimal number: optional sign, no leading
// zeros, optional fraction and exponent.
var decimalLiteral = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Only plain decimal literals are converted, so text such as "007",
// "0x1p4" or "infinity" stays text.
func parseValue(s string) interface{} {
	if !decimalLiteral.MatchString(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
