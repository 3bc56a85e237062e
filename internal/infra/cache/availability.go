package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// AvailabilityCache memoizes computed day availability per barber and date.
// Entries live under one hash key per barber/date (field = service duration)
// so a write for that day invalidates every cached duration at once.
//
// Everything here is best effort: a redis outage degrades to recomputation.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl, log: log}
}

func dayKey(barberID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", barberID, date)
}

func (c *AvailabilityCache) Get(ctx context.Context, barberID uint, date string, durationMin int) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	payload, err := c.rdb.HGet(ctx, dayKey(barberID, date), fmt.Sprint(durationMin)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("availability cache read failed")
		}
		return nil, false
	}
	return payload, true
}

func (c *AvailabilityCache) Put(ctx context.Context, barberID uint, date string, durationMin int, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}

	key := dayKey(barberID, date)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, fmt.Sprint(durationMin), payload)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warn().Err(err).Msg("availability cache write failed")
	}
}

// Invalidate drops every cached duration for the barber's day. Called on any
// write that touches that day's bookings.
func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, dayKey(barberID, date)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache invalidation failed")
	}
}
