package wbmanager

import (
	"errors"
	"fmt"

	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidExtension indicates a file name without an .xls or .xlsx extension.
var ErrInvalidExtension = errors.New("invalid file extension")

// ErrInvalidFormat indicates the input could not be parsed as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrSheetNotFound indicates a sheet selection that matched nothing.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnknownColumn indicates a column name absent from a ColumnMap.
var ErrUnknownColumn = errors.New("unknown column")

// ErrUnexpectedCellType indicates a cell read as the wrong kind.
var ErrUnexpectedCellType = errors.New("unexpected cell type")

// ErrUnclean indicates a session that recorded complaints.
var ErrUnclean = errors.New("session has complaints")

// WorkbookError represents a failure at one stage of reading or writing a
// workbook file.
type WorkbookError struct {
	Path string
	Op   string // "read", "check", "open", "parse", "write"
	Err  error
}

func (e *WorkbookError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s workbook: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s workbook %s: %v", e.Op, e.Path, e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// CellError reports a cell whose kind differs from the one requested.
type CellError struct {
	Sheet string
	Ref   string
	Want  models.CellKind
	Got   models.CellKind
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s!%s: expected %s value, got %s", e.Sheet, e.Ref, e.Want, e.Got)
}

func (e *CellError) Unwrap() error {
	return ErrUnexpectedCellType
}

// ColumnError reports a column name missing from a ColumnMap.
type ColumnError struct {
	Name string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Name)
}

func (e *ColumnError) Unwrap() error {
	return ErrUnknownColumn
}
