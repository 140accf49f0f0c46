// Package main provides the CLI entry point for wbmanager.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/wbmanager-go/internal/config"
	"github.com/ukaji3/wbmanager-go/internal/logging"
	"github.com/ukaji3/wbmanager-go/pkg/wbmanager"
)

// flags holds the raw command-line values. Only flags the user set are
// applied over the loaded configuration.
type flags struct {
	configPath    string
	sheet         string
	sheetIndex    int
	advance       int
	column        int
	value         string
	suffix        string
	outputDir     string
	require       []string
	minRows       int
	autoSize      bool
	narrowMargins bool
	charset       string
	logLevel      string
	logFormat     string
	report        bool
}

func main() {
	// A missing .env file is fine; variables already set win.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "wbmanager [flags] file...",
		Short: "Mark a row in Excel workbooks and save a copy",
		Long: `wbmanager opens each .xls or .xlsx file, steps over data rows of the
selected sheet (skipping empty and comment rows), writes a value into the row
it lands on and saves the result next to the input as <name>New.xlsx.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&f.sheet, "sheet", "", "Sheet name to process (default: sheet at --sheet-index)")
	fs.IntVar(&f.sheetIndex, "sheet-index", 0, "0-based index of the sheet to process")
	fs.IntVar(&f.advance, "advance", 2, "Number of rows to step over before writing")
	fs.IntVar(&f.column, "column", 0, "0-based column to write")
	fs.StringVar(&f.value, "value", "Done Donner Donnest", "Text to write")
	fs.StringVar(&f.suffix, "suffix", "New", "Suffix appended to the output file name")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "Directory for output files (default: next to the input)")
	fs.StringSliceVar(&f.require, "require", nil, "Required column header (repeatable)")
	fs.IntVar(&f.minRows, "min-rows", wbmanager.DefaultMinRows, "Rows a sheet needs to be processed")
	fs.BoolVar(&f.autoSize, "autosize", false, "Size columns to their content")
	fs.BoolVar(&f.narrowMargins, "narrow-margins", false, "Set half-inch print margins")
	fs.StringVar(&f.charset, "charset", wbmanager.DefaultCharset, "Text encoding of legacy .xls files")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log format: text, json")
	fs.BoolVar(&f.report, "report", false, "Print all complaints at the end")

	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	if len(args) == 0 {
		return errors.New("must pass files on command line")
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, f, cfg); err != nil {
		return err
	}

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	logger.WithFields(logrus.Fields{
		"files":   len(args),
		"sheet":   cfg.Sheet.Name,
		"advance": cfg.Demo.Advance,
	}).Debug("configuration loaded")

	p := &processor{
		cfg: cfg,
		out: cmd.OutOrStdout(),
		log: logger,
		opts: wbmanager.Options{
			CommentMarker: cfg.Sheet.CommentMarker,
			Charset:       cfg.Sheet.Charset,
			Logger:        logger,
		},
		report: &wbmanager.Complaints{},
	}
	for _, fn := range args {
		p.process(fn)
	}

	if f.report && p.report.Len() > 0 {
		fmt.Fprint(p.out, p.report.RenderText())
	}
	return nil
}

// applyFlags copies every flag set on the command line over cfg and
// validates the result.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) error {
	set := cmd.Flags().Changed

	if set("sheet") {
		cfg.Sheet.Name = f.sheet
	}
	if set("sheet-index") {
		cfg.Sheet.Index = f.sheetIndex
	}
	if set("advance") {
		cfg.Demo.Advance = f.advance
	}
	if set("column") {
		cfg.Demo.Column = f.column
	}
	if set("value") {
		cfg.Demo.Value = f.value
	}
	if set("suffix") {
		cfg.Output.Suffix = f.suffix
	}
	if set("output-dir") {
		cfg.Output.Dir = f.outputDir
	}
	if set("require") {
		cfg.Sheet.RequiredColumns = f.require
	}
	if set("min-rows") {
		cfg.Sheet.MinRows = f.minRows
	}
	if set("autosize") {
		cfg.Output.AutoSize = f.autoSize
	}
	if set("narrow-margins") {
		cfg.Output.NarrowMargins = f.narrowMargins
	}
	if set("charset") {
		cfg.Sheet.Charset = f.charset
	}
	if set("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if set("log-format") {
		cfg.Logging.Format = f.logFormat
	}

	return cfg.Validate()
}

// processor handles one file at a time. Failures are printed and the run
// continues with the next file.
type processor struct {
	cfg    *config.Config
	out    io.Writer
	log    logrus.FieldLogger
	opts   wbmanager.Options
	report *wbmanager.Complaints
}

func (p *processor) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *processor) process(fn string) {
	wb, err := wbmanager.Open(fn, p.opts)
	if err != nil {
		p.openFailed(fn, err)
		return
	}
	defer wb.Close()

	sheet, err := p.selectSheet(wb)
	if err != nil {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}

	cursor, err := wbmanager.NewCursor(sheet)
	if err != nil {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}

	session := wbmanager.NewSession(p.log.WithField("path", fn))
	defer p.collect(fn, session)

	if len(p.cfg.Sheet.RequiredColumns) > 0 {
		if !cursor.Usable(session.Complaints, p.cfg.Sheet.MinRows) {
			p.skip(fn, session)
			return
		}
		columns, err := wbmanager.BuildColumnMap(cursor.Row())
		if err != nil {
			p.printf("Issue with file %s: %v", fn, err)
			return
		}
		session.RequireColumns(columns, p.cfg.Sheet.RequiredColumns...)
		if !session.Clean() {
			p.skip(fn, session)
			return
		}
	}

	row, err := p.advance(cursor)
	if err != nil {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}
	if row == nil {
		session.Complaints.Addf("Sheet %s has fewer than %d data rows", sheet.Name(), p.cfg.Demo.Advance)
		p.skip(fn, session)
		return
	}

	if err := row.SetCell(p.cfg.Demo.Column, p.cfg.Demo.Value); err != nil {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}
	cell, err := row.Cell(p.cfg.Demo.Column)
	if err != nil {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}
	text, err := cell.TextValue()
	if err := session.Check(err, cursor); err != nil {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}
	p.printf("Row %d of %s set to %s", cursor.RowNumber(), cursor.SheetName(), text)

	if err := p.finish(sheet); err != nil {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}

	out := p.outputPath(wb)
	err = session.Commit(func() error { return wb.SaveAs(out) })
	switch {
	case errors.Is(err, wbmanager.ErrUnclean):
		p.skip(fn, session)
	case err != nil:
		p.printf("Issue writing file %s %v", out, err)
	default:
		p.printf("Wrote new spread sheet %s", out)
	}
}

func (p *processor) openFailed(fn string, err error) {
	var wbErr *wbmanager.WorkbookError
	if !errors.As(err, &wbErr) {
		p.printf("Issue with file %s: %v", fn, err)
		return
	}

	switch wbErr.Op {
	case "read":
		p.printf("Cannot read file %s", fn)
	case "check":
		p.printf("Invalid file extension for %s. Please supply an .xls or .xlsx file.", fn)
	case "open":
		p.printf("Issue with file %s %v", fn, wbErr.Err)
	default:
		p.printf("Cannot create workbook for file %s %v", fn, wbErr.Err)
	}
}

func (p *processor) selectSheet(wb *wbmanager.Workbook) (*wbmanager.Sheet, error) {
	if p.cfg.Sheet.Name != "" {
		return wb.SheetByName(p.cfg.Sheet.Name, false)
	}
	return wb.SheetAt(p.cfg.Sheet.Index, false)
}

// advance steps the cursor over the configured number of rows and returns
// the row it lands on, or nil when the sheet runs out first.
func (p *processor) advance(cursor *wbmanager.Cursor) (*wbmanager.Row, error) {
	var row *wbmanager.Row
	for i := 0; i < p.cfg.Demo.Advance; i++ {
		next, ok := cursor.NextRow()
		if !ok {
			return nil, cursor.Err()
		}
		row = next
	}
	return row, nil
}

func (p *processor) finish(sheet *wbmanager.Sheet) error {
	if p.cfg.Output.AutoSize {
		if err := sheet.AutoSizeColumns(); err != nil {
			return err
		}
	}
	if p.cfg.Output.NarrowMargins {
		if err := sheet.NarrowMargins(); err != nil {
			return err
		}
	}
	return nil
}

func (p *processor) outputPath(wb *wbmanager.Workbook) string {
	out := wb.OutputPath(p.cfg.Output.Suffix)
	if p.cfg.Output.Dir != "" {
		out = filepath.Join(p.cfg.Output.Dir, filepath.Base(out))
	}
	return out
}

func (p *processor) skip(fn string, session *wbmanager.Session) {
	p.printf("Skipping %s:", fn)
	fmt.Fprint(p.out, session.Complaints.RenderText())
}

// collect copies the complaints of a finished file into the run report.
func (p *processor) collect(fn string, session *wbmanager.Session) {
	for _, line := range session.Complaints.Lines() {
		p.report.Addf("%s: %s", filepath.Base(fn), line)
	}
}
