package wbmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcelFileExt(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		ok     bool
	}{
		{"report.xls", FormatXLS, true},
		{"report.XLSX", FormatXLSX, true},
		{"dir.v2/report.Xls", FormatXLS, true},
		{"report.csv", "", false},
		{"report", "", false},
		{".xlsx", "", false},
		{"dir.xlsx/report", "", false},
	}

	for _, tt := range tests {
		format, ok := ExcelFileExt(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.format, format, tt.name)
	}
}

func TestNewFileType(t *testing.T) {
	tests := []struct {
		name, ext, expected string
	}{
		{"report.xls", "xlsx", "report.xlsx"},
		{"report.xlsx", "xlsx", "report.xlsx"},
		{"report", "", "report"},
		{"report.xls", "", "report"},
		{"report", "xls", "report.xls"},
		{"dir.v2/report", "", "dir.v2/report"},
		{"archive.tar.gz", "", "archive.tar"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NewFileType(tt.name, tt.ext), "%s + %q", tt.name, tt.ext)
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "data/reportNew.xlsx", OutputName("data/report.xls", "New", FormatXLSX))
	assert.Equal(t, "reportNew.xlsx", OutputName("report.xlsx", "New", FormatXLSX))
	assert.Equal(t, "report.xlsx", OutputName("report.xlsx", "", FormatXLSX))
}
