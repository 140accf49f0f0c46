// Package parser provides helpers over an excelize document: cell
// classification, sheet bounds, column sizing, page setup and legacy import.
package parser

import (
	"strings"

	"golang.org/x/text/width"
)

// MaxColumnWidth is the widest column the xlsx format allows, in characters.
const MaxColumnWidth = 255

// columnPadding is added to measured text so content clears the cell border.
const columnPadding = 2

// TextWidth returns the display width of s in character units.
// Wide and fullwidth East Asian runes count twice. For multi-line text the
// widest line is measured.
func TextWidth(s string) float64 {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		n := 0
		for _, r := range line {
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				n += 2
			default:
				n++
			}
		}
		if n > widest {
			widest = n
		}
	}
	return float64(widest)
}

// ColumnWidth returns a width that fits the widest of values, capped at
// MaxColumnWidth. It returns 0 when every value is empty.
func ColumnWidth(values []string) float64 {
	var widest float64
	for _, v := range values {
		if w := TextWidth(v); w > widest {
			widest = w
		}
	}
	if widest == 0 {
		return 0
	}
	if widest+columnPadding > MaxColumnWidth {
		return MaxColumnWidth
	}
	return widest + columnPadding
}
