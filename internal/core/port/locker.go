package port

import (
	"context"
	"errors"
	"time"
)

// ErrTransitionInProgress is returned by Locker.TryLock when the key is
// already held.
var ErrTransitionInProgress = errors.New("a transition is already in progress for this entity")

// Locker serialises transitions of one entity across requests and server
// instances.
type Locker interface {
	// TryLock acquires key for at most ttl without waiting. It returns
	// ErrTransitionInProgress when the key is held. The returned function
	// releases the lock.
	TryLock(ctx context.Context, key string, ttl time.Duration) (func(), error)
}
