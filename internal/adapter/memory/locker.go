package memory

import (
	"context"
	"sync"
	"time"

	"campaign-manager/internal/core/port"
)

// Locker implements port.Locker for a single server process.
type Locker struct {
	mu    sync.Mutex
	held  map[string]uint64
	seq   uint64
	clock func() time.Time
	until map[string]time.Time
}

func NewLocker() *Locker {
	return &Locker{
		held:  make(map[string]uint64),
		until: make(map[string]time.Time),
		clock: time.Now,
	}
}

// TryLock acquires key unless another holder has it and its ttl has not
// expired.
func (l *Locker) TryLock(_ context.Context, key string, ttl time.Duration) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if _, ok := l.held[key]; ok && now.Before(l.until[key]) {
		return nil, port.ErrTransitionInProgress
	}
	l.seq++
	token := l.seq
	l.held[key] = token
	l.until[key] = now.Add(ttl)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		// an expired lock may have been taken over; only release our own
		if l.held[key] == token {
			delete(l.held, key)
			delete(l.until, key)
		}
	}, nil
}
