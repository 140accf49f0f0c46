package wbmanager

import (
	"path/filepath"
	"strings"
)

// Format is a spreadsheet file generation.
type Format string

const (
	// FormatXLS is the legacy binary (BIFF) format. It is read-only here.
	FormatXLS Format = "xls"
	// FormatXLSX is the Office Open XML format.
	FormatXLSX Format = "xlsx"
)

// ExcelFileExts lists the accepted workbook extensions.
var ExcelFileExts = []Format{FormatXLS, FormatXLSX}

// ExcelFileExt returns the format named by the extension of name, matched
// case-insensitively. Names whose only dot is the leading one are rejected.
func ExcelFileExt(name string) (Format, bool) {
	base := filepath.Base(name)
	ix := strings.LastIndex(base, ".")
	if ix <= 0 {
		return "", false
	}

	ext := base[ix+1:]
	for _, format := range ExcelFileExts {
		if strings.EqualFold(string(format), ext) {
			return format, true
		}
	}
	return "", false
}

// NewFileType gives name the extension ext. An existing extension is
// stripped unless it already is ext; an empty ext just strips it.
func NewFileType(name, ext string) string {
	if ext == "" || !strings.HasSuffix(name, "."+ext) {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// OutputName derives the name of a rewritten workbook: name without its
// extension, then suffix, then the extension of format.
func OutputName(name, suffix string, format Format) string {
	return NewFileType(name, "") + suffix + "." + string(format)
}
