// Package lock defines the mutual-exclusion contract used to serialize
// balance changes on a single account.
package lock

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotAcquired is returned when a lock could not be taken before the
// context ended.
var ErrNotAcquired = errors.New("lock not acquired")

// Unlock releases a held lock. Calling it more than once is a no-op.
type Unlock func()

// Locker hands out exclusive locks by key.
type Locker interface {
	// Lock blocks until key is held or ctx is done.
	Lock(ctx context.Context, key string) (Unlock, error)
}

// AccountKey is the lock key guarding one account.
func AccountKey(accountID int) string {
	return fmt.Sprintf("account:%d", accountID)
}

// Noop never blocks. It is used when locking is disabled.
type Noop struct{}

// Lock implements Locker.
func (Noop) Lock(context.Context, string) (Unlock, error) {
	return func() {}, nil
}
