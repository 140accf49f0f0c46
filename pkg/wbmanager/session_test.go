package wbmanager

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCheck(t *testing.T) {
	s := NewSession(quietOptions().Logger)
	assert.NotEqual(t, uuid.Nil, s.ID)

	assert.NoError(t, s.Check(nil, nil))
	assert.True(t, s.Clean())

	assert.NoError(t, s.Check(&ColumnError{Name: "Qty"}, fixedPosition{"Orders", 2}))
	assert.NoError(t, s.Check(&CellError{Sheet: "Orders", Ref: "B3"}, nil))
	assert.False(t, s.Clean())
	assert.Equal(t, []string{
		`Sheet Orders row 2 unknown column "Qty"`,
		"cell Orders!B3: expected blank value, got blank",
	}, s.Complaints.Lines())

	other := errors.New("disk on fire")
	assert.Equal(t, other, s.Check(other, nil))
	assert.Equal(t, 2, s.Complaints.Len())
}

func TestSessionRequireColumns(t *testing.T) {
	s := NewSession(quietOptions().Logger)
	m := NewColumnMap([]string{"A", "B", "A"})

	assert.True(t, s.RequireColumns(m, "A", "B"))
	assert.True(t, s.Clean())

	assert.False(t, s.RequireColumns(m, "A", "C", "D"))
	assert.False(t, s.RequireDistinctColumns(m))
	assert.Equal(t, []string{
		"Missing required columns:\tC\tD",
		"Duplicate column names:\tA",
	}, s.Complaints.Lines())

	assert.True(t, s.RequireDistinctColumns(NewColumnMap([]string{"X"})))
}

func TestSessionCommit(t *testing.T) {
	s := NewSession(nil)
	called := false
	require.NoError(t, s.Commit(func() error {
		called = true
		return nil
	}))
	assert.True(t, called)

	s.Complaints.Add("row 3 is broken")
	called = false
	err := s.Commit(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrUnclean)
	assert.False(t, called)
}
