package wbmanager

import "github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"

// ColumnMap maps column header names to 0-based column indexes. It is
// read-only once built. When a header name repeats, the last occurrence
// wins and the name is reported by Duplicates.
type ColumnMap struct {
	index      map[string]int
	names      []string
	duplicates []string
}

// BuildColumnMap builds a ColumnMap from the non-empty cells of header.
func BuildColumnMap(header *Row) (*ColumnMap, error) {
	values, err := header.Values()
	if err != nil {
		return nil, err
	}
	return NewColumnMap(values), nil
}

// NewColumnMap builds a ColumnMap from header values in column order.
// Empty values are skipped but still occupy their column.
func NewColumnMap(headers []string) *ColumnMap {
	m := &ColumnMap{index: make(map[string]int, len(headers))}
	for col, name := range headers {
		if name == "" {
			continue
		}
		if _, seen := m.index[name]; seen {
			m.duplicates = append(m.duplicates, name)
		} else {
			m.names = append(m.names, name)
		}
		m.index[name] = col
	}
	return m
}

// Index returns the column of name.
func (m *ColumnMap) Index(name string) (int, bool) {
	col, ok := m.index[name]
	return col, ok
}

// Lookup returns the column of name, or a *ColumnError.
func (m *ColumnMap) Lookup(name string) (int, error) {
	col, ok := m.index[name]
	if !ok {
		return 0, &ColumnError{Name: name}
	}
	return col, nil
}

// Has reports whether name is a known column.
func (m *ColumnMap) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Len returns the number of distinct column names.
func (m *ColumnMap) Len() int {
	return len(m.index)
}

// Names returns the distinct column names in order of first appearance.
func (m *ColumnMap) Names() []string {
	return append([]string(nil), m.names...)
}

// Duplicates returns every repeated header name, once per repetition.
func (m *ColumnMap) Duplicates() []string {
	return append([]string(nil), m.duplicates...)
}

// Missing returns, in the order given, every name that is not a column.
// The result is never nil; it is empty when nothing is missing.
func (m *ColumnMap) Missing(names ...string) []string {
	missing := []string{}
	for _, name := range names {
		if !m.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// SetNamedColumnValue overwrites the cell of row under the column name.
// Blank cells are left alone: this only replaces existing values. An
// unknown name yields a *ColumnError.
func SetNamedColumnValue(m *ColumnMap, row *Row, name string, value any) error {
	col, err := m.Lookup(name)
	if err != nil {
		return err
	}

	cell, err := row.Cell(col)
	if err != nil {
		return err
	}
	if cell.Kind == models.CellBlank {
		return nil
	}
	return row.SetCell(col, value)
}
