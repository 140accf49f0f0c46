// Package models defines data structures for workbook inspection.
package models

// CellKind classifies a cell before any value is extracted from it.
type CellKind int

const (
	// CellBlank is a missing cell or a cell without a stored value.
	CellBlank CellKind = iota
	// CellNumeric is a number, including dates stored as serial numbers.
	CellNumeric
	// CellText is a shared string, inline string or string formula result.
	CellText
	// CellOther is a boolean, error or ISO date cell.
	CellOther
)

// String returns the lower-case kind name.
func (k CellKind) String() string {
	switch k {
	case CellBlank:
		return "blank"
	case CellNumeric:
		return "numeric"
	case CellText:
		return "text"
	case CellOther:
		return "other"
	default:
		return "unknown"
	}
}

// CellValue is a classified cell value. Only the field matching Kind is set.
type CellValue struct {
	// Kind is the classification of the cell.
	Kind CellKind `json:"kind"`
	// Number is the value of a numeric cell.
	Number float64 `json:"number,omitempty"`
	// Text is the value of a text cell.
	Text string `json:"text,omitempty"`
	// Raw is the stored value as reported by the codec.
	Raw string `json:"raw,omitempty"`
}
