package models

// SheetInfo represents the shape of a single sheet.
type SheetInfo struct {
	// Name is the sheet (tab) name.
	Name string `json:"name"`
	// Index is the 0-based position of the sheet in the workbook.
	Index int `json:"index"`
	// FirstRow is the 0-based index of the first non-empty row, -1 if none.
	FirstRow int `json:"first_row"`
	// LastRow is the 0-based index of the last non-empty row, -1 if none.
	LastRow int `json:"last_row"`
	// PhysicalRows is the number of non-empty rows.
	PhysicalRows int `json:"physical_rows"`
}

// Empty reports whether the sheet has no non-empty rows.
func (s SheetInfo) Empty() bool {
	return s.PhysicalRows == 0
}
