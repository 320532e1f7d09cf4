package repository

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSessionClosed is returned when a repository is used after its unit
	// of work has been closed.
	ErrSessionClosed = errors.New("session is closed")

	// ErrUnsupportedEntity is returned when no repository is registered for
	// the requested entity.
	ErrUnsupportedEntity = errors.New("unsupported entity")

	// ErrInvalidQuery is returned when a query names something other than a
	// plain column or relation identifier.
	ErrInvalidQuery = errors.New("invalid query")
)

// UnitOfWork is a session-scoped coordinator. Every repository it hands out
// stages mutations against the same session, and SaveChanges applies all of
// them as one atomic transaction.
//
// A UnitOfWork is request scoped and not safe for concurrent use.
type UnitOfWork interface {
	// Repository returns the repository registered for the entity's table
	// name. Repeated calls return the same instance.
	Repository(entity string) (any, error)

	// SaveChanges commits every staged operation in staging order. Staged
	// operations are discarded after the attempt whether it succeeded or not.
	SaveChanges(ctx context.Context) error

	// Close releases the session. It is safe to call more than once.
	Close() error
}

// UnitOfWorkFactory opens a fresh unit of work.
type UnitOfWorkFactory func() (UnitOfWork, error)

// GetRepository returns the typed repository for T from uow.
//
//	accounts, err := repository.GetRepository[account.Account, int](uow)
func GetRepository[T Entity, K Key](uow UnitOfWork) (Repository[T, K], error) {
	var zero T
	name := zero.TableName()
	repo, err := uow.Repository(name)
	if err != nil {
		return nil, err
	}
	typed, ok := repo.(Repository[T, K])
	if !ok {
		return nil, fmt.Errorf("%w: %s has an unexpected repository type %T", ErrUnsupportedEntity, name, repo)
	}
	return typed, nil
}
