package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/repository"
	"gorm.io/gorm"
)

type constructor func(*session) any

// registry lists every entity a unit of work can hand out a repository for,
// keyed by table name.
var registry = map[string]constructor{
	account.TableName: func(s *session) any { return newRepository[account.Account, int](s) },
	user.TableName:    func(s *session) any { return newRepository[user.User, int](s) },
}

// UoW is the GORM unit of work. Repositories obtained from it share one
// session, and SaveChanges applies their staged operations inside a single
// database transaction.
type UoW struct {
	s        *session
	repos    map[string]any
	registry map[string]constructor
}

// NewUoW opens a unit of work on db. It does not touch the schema; use a
// Factory for that.
func NewUoW(db *gorm.DB, logger *slog.Logger) *UoW {
	return &UoW{
		s:        newSession(db, logger),
		repos:    make(map[string]any),
		registry: registry,
	}
}

// SessionID identifies the unit of work in logs.
func (u *UoW) SessionID() string {
	return u.s.id.String()
}

// Repository returns the cached repository for entity, creating it on first use.
func (u *UoW) Repository(entity string) (any, error) {
	if u.s.closed {
		return nil, repository.ErrSessionClosed
	}
	if repo, ok := u.repos[entity]; ok {
		return repo, nil
	}
	newRepo, ok := u.registry[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnsupportedEntity, entity)
	}
	repo := newRepo(u.s)
	u.repos[entity] = repo
	return repo, nil
}

// SaveChanges applies every staged operation in one transaction. On failure
// the transaction is rolled back and the error is mapped to a domain error.
// The staged operations are discarded either way.
func (u *UoW) SaveChanges(ctx context.Context) error {
	if u.s.closed {
		return repository.ErrSessionClosed
	}
	ops := u.s.drain()
	if len(ops) == 0 {
		return nil
	}

	err := u.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return apply(tx, ops)
	})
	if err != nil {
		u.s.logger.Error("save changes failed", "operations", len(ops), "error", err)
		return MapGormErrorToDomain(err)
	}
	u.s.logger.Debug("changes saved", "operations", len(ops))
	return nil
}

// Close releases the session. Operations that were never saved are dropped.
func (u *UoW) Close() error {
	if u.s.closed {
		return nil
	}
	if dropped := len(u.s.drain()); dropped > 0 {
		u.s.logger.Warn("closing session with unsaved operations", "dropped", dropped)
	}
	u.s.closed = true
	u.repos = nil
	return nil
}

// Factory opens units of work against one database handle. The schema is
// migrated on the first call to New; a migration failure is returned from
// every later call. Factory is safe for concurrent use.
type Factory struct {
	db     *gorm.DB
	logger *slog.Logger

	once       sync.Once
	migrateErr error
}

// NewFactory returns a Factory for db.
func NewFactory(db *gorm.DB, logger *slog.Logger) *Factory {
	return &Factory{db: db, logger: logger}
}

// New opens a fresh unit of work.
func (f *Factory) New() (repository.UnitOfWork, error) {
	f.once.Do(func() {
		f.migrateErr = Migrate(f.db)
		if f.migrateErr != nil {
			f.logger.Error("schema migration failed", "error", f.migrateErr)
		}
	})
	if f.migrateErr != nil {
		return nil, f.migrateErr
	}
	return NewUoW(f.db, f.logger), nil
}
