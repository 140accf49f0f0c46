package wbmanager

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietOptions() Options {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return Options{Logger: logger}
}

// newTestWorkbook builds a workbook whose first sheet holds rows, one slice
// per row starting at row 0. A nil row is left empty.
func newTestWorkbook(t *testing.T, rows [][]any) *Workbook {
	t.Helper()

	wb := New(quietOptions())
	t.Cleanup(func() { wb.Close() })

	sheet, err := wb.SheetAt(0, false)
	require.NoError(t, err)
	for idx, values := range rows {
		for col, v := range values {
			if v == nil {
				continue
			}
			require.NoError(t, sheet.Row(idx).SetCell(col, v))
		}
	}
	return wb
}

func newTestCursor(t *testing.T, rows [][]any) *Cursor {
	t.Helper()

	sheet, err := newTestWorkbook(t, rows).SheetAt(0, false)
	require.NoError(t, err)
	c, err := NewCursor(sheet)
	require.NoError(t, err)
	return c
}
