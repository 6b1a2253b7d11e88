package redislock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"campaign-manager/internal/core/port"
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Locker implements port.Locker on Redis so that several server instances
// share one set of transition locks.
type Locker struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewLocker returns a Locker storing keys under prefix.
func NewLocker(client *redis.Client, prefix string, logger *slog.Logger) *Locker {
	return &Locker{client: client, prefix: prefix, logger: logger}
}

// TryLock sets key with NX and a ttl. A held key yields
// port.ErrTransitionInProgress.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	full := l.prefix + key
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, full, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", full, err)
	}
	if !ok {
		return nil, port.ErrTransitionInProgress
	}
	return func() {
		// the request context may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{full}, token).Err(); err != nil {
			l.logger.Warn("release lock", slog.String("key", full), slog.Any("error", err))
		}
	}, nil
}
