package wbmanager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColumnMap(t *testing.T) {
	c := newTestCursor(t, [][]any{{"Name", nil, "Qty", 2024, "Name"}})

	m, err := BuildColumnMap(c.Row())
	require.NoError(t, err)

	col, ok := m.Index("Qty")
	assert.True(t, ok)
	assert.Equal(t, 2, col)

	col, ok = m.Index("2024")
	assert.True(t, ok)
	assert.Equal(t, 3, col)

	// the last occurrence of a repeated header wins
	col, ok = m.Index("Name")
	assert.True(t, ok)
	assert.Equal(t, 4, col)
	assert.Equal(t, []string{"Name"}, m.Duplicates())
	assert.Equal(t, []string{"Name", "Qty", "2024"}, m.Names())
	assert.Equal(t, 3, m.Len())
}

func TestMissing(t *testing.T) {
	m := NewColumnMap([]string{"A", "B"})

	assert.Equal(t, []string{"C"}, m.Missing("A", "B", "C"))
	assert.Equal(t, []string{"Z", "Y"}, m.Missing("Z", "A", "Y"))

	none := m.Missing()
	assert.NotNil(t, none)
	assert.Empty(t, none)

	none = m.Missing("B", "A")
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Empty(t, NewColumnMap(nil).Missing())
}

func TestLookupUnknownColumn(t *testing.T) {
	m := NewColumnMap([]string{"A"})

	_, err := m.Lookup("B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColumn))
	var colErr *ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "B", colErr.Name)
}

func TestSetNamedColumnValue(t *testing.T) {
	c := newTestCursor(t, [][]any{
		{"Name", "Status", "Note"},
		{"apple", "new"},
	})
	m, err := BuildColumnMap(c.Row())
	require.NoError(t, err)

	row, ok := c.NextRow()
	require.True(t, ok)

	require.NoError(t, SetNamedColumnValue(m, row, "Status", "done"))
	cell, err := row.Cell(1)
	require.NoError(t, err)
	assert.Equal(t, "done", cell.String())

	// blank cells are not created
	require.NoError(t, SetNamedColumnValue(m, row, "Note", "added"))
	cell, err = row.Cell(2)
	require.NoError(t, err)
	assert.True(t, cell.IsBlank())

	err = SetNamedColumnValue(m, row, "Missing", "x")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
