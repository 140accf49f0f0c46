package wbmanager

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is one processing pass over one or more sheets. It owns the
// complaint log; callers record every problem first and commit changes only
// when the pass came out clean.
type Session struct {
	ID         uuid.UUID
	Complaints *Complaints

	log logrus.FieldLogger
}

// NewSession starts a session. A nil logger means the logrus standard logger.
func NewSession(logger logrus.FieldLogger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New()
	return &Session{
		ID:         id,
		Complaints: &Complaints{},
		log:        logger.WithField("session_id", id.String()),
	}
}

// Logger returns the session logger, tagged with the session id.
func (s *Session) Logger() logrus.FieldLogger {
	return s.log
}

// Clean reports whether no complaint has been recorded.
func (s *Session) Clean() bool {
	return s.Complaints.Len() == 0
}

// Check turns unknown-column and unexpected-cell-type failures into
// complaints located at pos (which may be nil) and returns nil for them.
// Any other error is returned unchanged.
func (s *Session) Check(err error, pos Position) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUnknownColumn) && !errors.Is(err, ErrUnexpectedCellType) {
		return err
	}

	if pos != nil {
		s.Complaints.AddAt(pos, err.Error())
	} else {
		s.Complaints.Add(err.Error())
	}
	s.log.WithError(err).Debug("recorded complaint")
	return nil
}

// RequireColumns records one complaint listing every name missing from m.
// It reports whether all names are present.
func (s *Session) RequireColumns(m *ColumnMap, names ...string) bool {
	missing := m.Missing(names...)
	if len(missing) == 0 {
		return true
	}
	s.Complaints.AddBatch("Missing required columns", missing)
	return false
}

// RequireDistinctColumns records one complaint listing repeated header names.
func (s *Session) RequireDistinctColumns(m *ColumnMap) bool {
	dups := m.Duplicates()
	if len(dups) == 0 {
		return true
	}
	s.Complaints.AddBatch("Duplicate column names", dups)
	return false
}

// Commit runs fn only when the session is clean. Otherwise fn is skipped and
// the returned error wraps ErrUnclean.
func (s *Session) Commit(fn func() error) error {
	if n := s.Complaints.Len(); n > 0 {
		s.log.WithField("complaints", n).Warn("not committing")
		return fmt.Errorf("%w: %d complaints", ErrUnclean, n)
	}
	return fn()
}
