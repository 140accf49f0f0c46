// Package wbmanager opens, walks, validates and rewrites Excel workbooks.
package wbmanager

import "github.com/sirupsen/logrus"

const (
	// DefaultCommentMarker marks a text first cell as a comment row.
	DefaultCommentMarker = "#"
	// DefaultCharset decodes the text of legacy workbooks.
	DefaultCharset = "utf-8"
	// DefaultMinRows is one header row plus at least one data row.
	DefaultMinRows = 2
)

// Options configures how workbooks are opened and walked.
type Options struct {
	// CommentMarker is the prefix that makes a row a comment row when its
	// first cell is text. Defaults to DefaultCommentMarker.
	CommentMarker string
	// Charset decodes strings of legacy (.xls) workbooks.
	// Defaults to DefaultCharset.
	Charset string
	// Password opens an encrypted xlsx workbook.
	Password string
	// Logger receives diagnostics. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		CommentMarker: DefaultCommentMarker,
		Charset:       DefaultCharset,
		Logger:        logrus.StandardLogger(),
	}
}

func (o Options) withDefaults() Options {
	if o.CommentMarker == "" {
		o.CommentMarker = DefaultCommentMarker
	}
	if o.Charset == "" {
		o.Charset = DefaultCharset
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}
