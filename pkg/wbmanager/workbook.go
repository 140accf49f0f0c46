package wbmanager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook is an in-memory spreadsheet document. Legacy (.xls) files are
// imported into the same xlsx representation, so every workbook is written
// back as xlsx.
type Workbook struct {
	// Path is the file the workbook was opened from. Empty for new or
	// streamed workbooks.
	Path string
	// Format is the format the workbook was read from.
	Format Format

	file *excelize.File
	opts Options
	log  logrus.FieldLogger
}

// Open reads the workbook at path. Each failing stage is reported as a
// *WorkbookError: "read" when the file cannot be found, "check" for an
// unsupported extension, "open" when the file cannot be opened and "parse"
// when its contents are not a workbook.
func Open(path string, opts Options) (*Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrFileNotFound
		}
		return nil, &WorkbookError{Path: path, Op: "read", Err: err}
	}
	if info.IsDir() {
		return nil, &WorkbookError{Path: path, Op: "read", Err: errors.New("is a directory")}
	}

	format, ok := ExcelFileExt(path)
	if !ok {
		return nil, &WorkbookError{Path: path, Op: "check", Err: ErrInvalidExtension}
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, &WorkbookError{Path: path, Op: "open", Err: err}
	}
	defer fh.Close()

	wb, err := OpenReader(fh, format, opts)
	if err != nil {
		var wbErr *WorkbookError
		if errors.As(err, &wbErr) {
			wbErr.Path = path
		}
		return nil, err
	}
	wb.Path = path

	wb.log.WithFields(logrus.Fields{
		"path":   path,
		"format": format,
		"sheets": len(wb.file.GetSheetList()),
	}).Debug("opened workbook")
	return wb, nil
}

// OpenReader reads a workbook of the given format from r.
func OpenReader(r io.Reader, format Format, opts Options) (*Workbook, error) {
	opts = opts.withDefaults()

	var (
		f   *excelize.File
		err error
	)
	switch format {
	case FormatXLSX:
		f, err = excelize.OpenReader(r, excelize.Options{Password: opts.Password})
	case FormatXLS:
		// The BIFF reader needs to seek.
		data, readErr := io.ReadAll(r)
		if readErr != nil {
			return nil, &WorkbookError{Op: "open", Err: readErr}
		}
		f, err = parser.ImportLegacy(bytes.NewReader(data), opts.Charset)
	default:
		return nil, &WorkbookError{Op: "check", Err: fmt.Errorf("%w: %q", ErrInvalidExtension, format)}
	}
	if err != nil {
		return nil, &WorkbookError{Op: "parse", Err: fmt.Errorf("%w: %w", ErrInvalidFormat, err)}
	}

	return &Workbook{Format: format, file: f, opts: opts, log: opts.Logger}, nil
}

// New returns a blank xlsx workbook with a single empty sheet.
func New(opts Options) *Workbook {
	opts = opts.withDefaults()
	return &Workbook{Format: FormatXLSX, file: excelize.NewFile(), opts: opts, log: opts.Logger}
}

// File exposes the underlying excelize document.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// Name returns the base name of the workbook file.
func (w *Workbook) Name() string {
	if w.Path == "" {
		return ""
	}
	return filepath.Base(w.Path)
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// SheetAt returns the sheet at the 0-based index. When there is no such sheet
// and create is true, a new blank sheet is appended and returned instead;
// otherwise the error wraps ErrSheetNotFound.
func (w *Workbook) SheetAt(index int, create bool) (*Sheet, error) {
	names := w.file.GetSheetList()
	if index >= 0 && index < len(names) {
		return &Sheet{wb: w, name: names[index]}, nil
	}
	if !create {
		return nil, fmt.Errorf("%w: index %d", ErrSheetNotFound, index)
	}
	return w.createSheet(w.freeSheetName())
}

// SheetByName returns the named sheet, creating it when absent and create is
// true. Otherwise a missing sheet yields an error wrapping ErrSheetNotFound.
func (w *Workbook) SheetByName(name string, create bool) (*Sheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx >= 0 {
		return &Sheet{wb: w, name: w.file.GetSheetName(idx)}, nil
	}
	if !create {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return w.createSheet(name)
}

func (w *Workbook) createSheet(name string) (*Sheet, error) {
	if _, err := w.file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.log.WithField("sheet", name).Info("created sheet")
	return &Sheet{wb: w, name: name}, nil
}

// freeSheetName returns the first "SheetN" name not already taken.
func (w *Workbook) freeSheetName() string {
	taken := make(map[string]bool)
	for _, name := range w.file.GetSheetList() {
		taken[name] = true
	}
	for n := len(taken) + 1; ; n++ {
		name := fmt.Sprintf("Sheet%d", n)
		if !taken[name] {
			return name
		}
	}
}

// Info returns the workbook metadata with the bounds of every sheet.
func (w *Workbook) Info() (models.WorkbookInfo, error) {
	info := models.WorkbookInfo{
		BookName: w.Name(),
		Format:   string(w.Format),
	}
	for _, name := range w.file.GetSheetList() {
		sheet, err := parser.SheetBounds(w.file, name)
		if err != nil {
			return models.WorkbookInfo{}, fmt.Errorf("sheet %q: %w", name, err)
		}
		info.Sheets = append(info.Sheets, sheet)
	}
	return info, nil
}

// OutputPath returns where a rewritten copy of the workbook goes: next to
// the original, with suffix appended to the base name and an xlsx extension.
func (w *Workbook) OutputPath(suffix string) string {
	return OutputName(w.Path, suffix, FormatXLSX)
}

// Write serializes the workbook as xlsx to out.
func (w *Workbook) Write(out io.Writer) error {
	if err := w.file.Write(out); err != nil {
		return &WorkbookError{Path: w.Path, Op: "write", Err: err}
	}
	return nil
}

// SaveAs writes the workbook as xlsx to path.
func (w *Workbook) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return &WorkbookError{Path: path, Op: "write", Err: err}
	}
	w.log.WithField("path", path).Info("wrote workbook")
	return nil
}

// Close releases the resources held by the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}
