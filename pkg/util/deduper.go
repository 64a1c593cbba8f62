package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper suppresses duplicate event deliveries with a redis SetNX lock.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce tries to acquire a dedup lock for a handler + guest ID.
// Returns true the first time, false for a duplicate. When redis is
// unavailable it allows processing rather than dropping the event.
func (d *Deduper) AcquireOnce(ctx context.Context, handler string, guestID int) bool {
	key := fmt.Sprintf("dedup:%s:%d", handler, guestID)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing processing",
				zap.String("handler", handler),
				zap.Int("guest_id", guestID),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Info("Skipped duplicated event",
			zap.String("handler", handler),
			zap.Int("guest_id", guestID),
			zap.String("dedup_key", key),
		)
	}

	return ok
}
