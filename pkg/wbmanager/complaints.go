package wbmanager

import (
	"fmt"
	"strings"
)

// LineBreak terminates each line of a rendered complaint report.
const LineBreak = "<br>\n"

// Position locates a complaint within a workbook.
type Position interface {
	SheetName() string
	// RowNumber is 1-based.
	RowNumber() int
}

// Complaints accumulates human-readable problems found during one processing
// session. It is append-only. The zero value is ready to use.
type Complaints struct {
	lines []string
}

// Add appends one complaint.
func (l *Complaints) Add(msg string) {
	l.lines = append(l.lines, msg)
}

// Addf appends one formatted complaint.
func (l *Complaints) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// AddAt appends one complaint prefixed with the sheet name and row number.
func (l *Complaints) AddAt(pos Position, msg string) {
	l.Addf("Sheet %s row %d %s", pos.SheetName(), pos.RowNumber(), msg)
}

// AddBatch appends one complaint listing items after reason, tab separated.
func (l *Complaints) AddBatch(reason string, items []string) {
	var b strings.Builder
	b.WriteString(reason)
	b.WriteString(":")
	for _, item := range items {
		b.WriteString("\t")
		b.WriteString(item)
	}
	l.Add(b.String())
}

// Len returns the number of complaints.
func (l *Complaints) Len() int {
	return len(l.lines)
}

// Lines returns a copy of the complaints in the order they were added.
func (l *Complaints) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Render returns the report with every line terminated by LineBreak.
func (l *Complaints) Render() string {
	return l.render(LineBreak)
}

// RenderText returns the report as plain newline-terminated lines.
func (l *Complaints) RenderText() string {
	return l.render("\n")
}

func (l *Complaints) render(sep string) string {
	var b strings.Builder
	for _, line := range l.lines {
		b.WriteString(line)
		b.WriteString(sep)
	}
	return b.String()
}
