package wbmanager

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
)

func TestOpenStages(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		setup    func() string
		op       string
		sentinel error
	}{
		{
			name:     "missing file",
			setup:    func() string { return filepath.Join(dir, "missing.xlsx") },
			op:       "read",
			sentinel: ErrFileNotFound,
		},
		{
			name: "wrong extension",
			setup: func() string {
				path := filepath.Join(dir, "notes.txt")
				require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
				return path
			},
			op:       "check",
			sentinel: ErrInvalidExtension,
		},
		{
			name: "corrupt xlsx",
			setup: func() string {
				path := filepath.Join(dir, "corrupt.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))
				return path
			},
			op:       "parse",
			sentinel: ErrInvalidFormat,
		},
		{
			name: "corrupt xls",
			setup: func() string {
				path := filepath.Join(dir, "corrupt.XLS")
				require.NoError(t, os.WriteFile(path, []byte("not an OLE container"), 0o644))
				return path
			},
			op:       "parse",
			sentinel: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup()
			wb, err := Open(path, quietOptions())
			require.Error(t, err)
			assert.Nil(t, wb)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			var wbErr *WorkbookError
			require.True(t, errors.As(err, &wbErr))
			assert.Equal(t, tt.op, wbErr.Op)
			assert.Equal(t, path, wbErr.Path)
		})
	}
}

func TestOpenSaveReopen(t *testing.T) {
	wb := newTestWorkbook(t, [][]any{{"Name", "Qty"}, {"apple", 3}})
	dir := t.TempDir()
	wb.Path = filepath.Join(dir, "stock.xlsx")

	out := wb.OutputPath("New")
	assert.Equal(t, filepath.Join(dir, "stockNew.xlsx"), out)
	require.NoError(t, wb.SaveAs(out))

	reopened, err := Open(out, quietOptions())
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, FormatXLSX, reopened.Format)
	assert.Equal(t, "stockNew.xlsx", reopened.Name())

	info, err := reopened.Info()
	require.NoError(t, err)
	assert.Equal(t, models.WorkbookInfo{
		BookName: "stockNew.xlsx",
		Format:   "xlsx",
		Sheets: []models.SheetInfo{
			{Name: "Sheet1", Index: 0, FirstRow: 0, LastRow: 1, PhysicalRows: 2},
		},
	}, info)
}

func TestSaveAsRejectsUnknownExtension(t *testing.T) {
	wb := newTestWorkbook(t, [][]any{{"a"}})
	err := wb.SaveAs(filepath.Join(t.TempDir(), "out.xls"))
	require.Error(t, err)

	var wbErr *WorkbookError
	require.True(t, errors.As(err, &wbErr))
	assert.Equal(t, "write", wbErr.Op)
}

func TestSheetSelection(t *testing.T) {
	wb := New(quietOptions())
	defer wb.Close()

	sheet, err := wb.SheetAt(0, false)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet.Name())
	assert.Same(t, wb, sheet.Workbook())

	_, err = wb.SheetAt(3, false)
	assert.ErrorIs(t, err, ErrSheetNotFound)
	_, err = wb.SheetAt(-1, false)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	created, err := wb.SheetAt(3, true)
	require.NoError(t, err)
	assert.Equal(t, "Sheet2", created.Name())

	_, err = wb.SheetByName("Orders", false)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	orders, err := wb.SheetByName("Orders", true)
	require.NoError(t, err)
	assert.Equal(t, "Orders", orders.Name())

	again, err := wb.SheetByName("Orders", true)
	require.NoError(t, err)
	assert.Equal(t, "Orders", again.Name())
	assert.Equal(t, []string{"Sheet1", "Sheet2", "Orders"}, wb.SheetNames())
}

func TestOpenReaderUnknownFormat(t *testing.T) {
	_, err := OpenReader(nil, Format("ods"), quietOptions())
	assert.ErrorIs(t, err, ErrInvalidExtension)
}

func TestSheetMarginsAndWidths(t *testing.T) {
	wb := newTestWorkbook(t, [][]any{{"Id", "Description"}, {1, "a much longer description"}})
	sheet, err := wb.SheetAt(0, false)
	require.NoError(t, err)

	require.NoError(t, sheet.NarrowMargins())
	margins, err := sheet.Margins()
	require.NoError(t, err)
	assert.Equal(t, models.NarrowMargins(), margins)

	require.NoError(t, sheet.AutoSizeColumns())
	width, err := wb.File().GetColWidth("Sheet1", "B")
	require.NoError(t, err)
	assert.Equal(t, float64(len("a much longer description")+2), width)
}

func TestOpenLegacyRoundTrip(t *testing.T) {
	wb, err := Open(filepath.Join("parser", "testdata", "orders.xls"), quietOptions())
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, FormatXLS, wb.Format)
	assert.Equal(t, []string{"Orders", "Notes"}, wb.SheetNames())
	assert.Equal(t, filepath.Join("parser", "testdata", "ordersNew.xlsx"), wb.OutputPath("New"))

	sheet, err := wb.SheetByName("Orders", false)
	require.NoError(t, err)
	c, err := NewCursor(sheet)
	require.NoError(t, err)

	row, ok := c.NextRow()
	require.True(t, ok)
	assert.Equal(t, 2, row.Index())
	row, ok = c.NextRow()
	require.True(t, ok)
	assert.Equal(t, 4, row.Index())
	require.NoError(t, row.SetCell(0, "done"))

	out := filepath.Join(t.TempDir(), filepath.Base(wb.OutputPath("New")))
	require.NoError(t, wb.SaveAs(out))

	reopened, err := Open(out, quietOptions())
	require.NoError(t, err)
	defer reopened.Close()

	saved, err := reopened.SheetByName("Orders", false)
	require.NoError(t, err)
	cell, err := saved.Row(4).Cell(0)
	require.NoError(t, err)
	text, err := cell.TextValue()
	require.NoError(t, err)
	assert.Equal(t, "done", text)

	code, err := saved.Row(2).Cell(2)
	require.NoError(t, err)
	text, err = code.TextValue()
	require.NoError(t, err)
	assert.Equal(t, "007", text)
}
