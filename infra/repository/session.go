package repository

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type opKind string

const (
	opInsert opKind = "insert"
	opUpdate opKind = "update"
	opDelete opKind = "delete"
)

// operation is a mutation recorded against a session that is applied when
// the unit of work commits.
type operation struct {
	kind  opKind
	table string
	apply func(tx *gorm.DB) error
}

// session holds the database handle and the staged operations of one unit
// of work. It is not safe for concurrent use.
type session struct {
	id      uuid.UUID
	db      *gorm.DB
	logger  *slog.Logger
	pending []operation
	closed  bool
}

func newSession(db *gorm.DB, logger *slog.Logger) *session {
	id := uuid.New()
	return &session{
		id:     id,
		db:     db,
		logger: logger.With("session_id", id.String()),
	}
}

func (s *session) stage(kind opKind, table string, apply func(tx *gorm.DB) error) error {
	if s.closed {
		return repository.ErrSessionClosed
	}
	s.pending = append(s.pending, operation{kind: kind, table: table, apply: apply})
	s.logger.Debug("staged operation", "op", kind, "table", table, "pending", len(s.pending))
	return nil
}

// drain hands the staged operations to the caller and empties the session.
func (s *session) drain() []operation {
	ops := s.pending
	s.pending = nil
	return ops
}

// apply runs ops in order against tx and stops at the first failure.
func apply(tx *gorm.DB, ops []operation) error {
	for i, op := range ops {
		if err := op.apply(tx); err != nil {
			return fmt.Errorf("%s %s (operation %d of %d): %w", op.kind, op.table, i+1, len(ops), err)
		}
	}
	return nil
}

// requireRows turns a write that matched no row into domain.ErrNotFound.
func requireRows(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
