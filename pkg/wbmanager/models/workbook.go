package models

// WorkbookInfo represents workbook-level metadata with per-sheet shapes.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Format is the format the workbook was read from ("xls" or "xlsx").
	Format string `json:"format"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}
