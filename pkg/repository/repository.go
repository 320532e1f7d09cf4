package repository

import (
	"context"
)

// Key constrains the primary key types a repository can be addressed by.
type Key interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Entity is implemented by every persisted type. The table name doubles as
// the key a unit of work caches repositories under.
type Entity interface {
	TableName() string
}

// Repository is a per-entity facade over point lookup, filtered query and
// staged mutation.
//
// Reads go to the store immediately. Mutations are recorded against the
// owning session and become durable only when the unit of work commits.
type Repository[T any, K Key] interface {
	// Get returns the entity with the given primary key or domain.ErrNotFound.
	Get(ctx context.Context, id K) (*T, error)

	// Find returns every entity matching the options. No options returns all rows.
	Find(ctx context.Context, opts ...QueryOption) ([]*T, error)

	// Insert stages a new row. The store assigns the identity on commit and
	// writes it back into entity, so the ID is final only after SaveChanges.
	Insert(entity *T) (*T, error)

	// Update stages a full overwrite of the row identified by entity's key.
	// Relations are not cascaded.
	Update(entity *T) error

	// Delete stages removal of the row identified by entity's key.
	Delete(entity *T) error

	// DeleteRange stages removal of every entity. An empty slice stages nothing.
	DeleteRange(entities []*T) error
}
