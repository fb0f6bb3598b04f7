package cache

import (
	"context"
	"log/slog"
	"time"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "slotgen:"

func NewRedisClient(cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, errs.New("redis addr is empty")
	}

	opts := &goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrapf(err, "redis ping %s", cfg.Addr)
	}
	return rdb, nil
}

// RedisSlotCache marks "slots for this service were generated on this date".
// Every failure reads as a miss so generation runs again; generation is idempotent.
type RedisSlotCache struct {
	rdb      goredis.Cmdable
	location *time.Location
	clock    clock.Clock
}

func NewRedisSlotCache(rdb goredis.Cmdable, loc *time.Location, clk clock.Clock) *RedisSlotCache {
	if loc == nil {
		loc = time.UTC
	}
	return &RedisSlotCache{rdb: rdb, location: loc, clock: clk}
}

func Key(serviceID uuid.UUID, day calendar.Date) string {
	return keyPrefix + serviceID.String() + ":" + day.String()
}

// TTL runs until the next midnight in loc, never less than a minute.
func TTL(now time.Time, day calendar.Date, loc *time.Location) time.Duration {
	ttl := day.AddDays(1).At(0, loc).Sub(now)
	if ttl < time.Minute {
		return time.Minute
	}
	return ttl
}

func (c *RedisSlotCache) Generated(ctx context.Context, serviceID uuid.UUID, today calendar.Date) bool {
	n, err := c.rdb.Exists(ctx, Key(serviceID, today)).Result()
	if err != nil {
		slog.Warn("slot cache lookup failed", slog.String("service_id", serviceID.String()), slog.Any("error", err))
		return false
	}
	return n > 0
}

func (c *RedisSlotCache) MarkGenerated(ctx context.Context, serviceID uuid.UUID, today calendar.Date) {
	ttl := TTL(c.clock.Now(), today, c.location)
	if err := c.rdb.Set(ctx, Key(serviceID, today), "1", ttl).Err(); err != nil {
		slog.Warn("slot cache write failed", slog.String("service_id", serviceID.String()), slog.Any("error", err))
	}
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, serviceIDs ...uuid.UUID) {
	for _, id := range serviceIDs {
		var keys []string
		iter := c.rdb.Scan(ctx, 0, keyPrefix+id.String()+":*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			slog.Warn("slot cache scan failed", slog.String("service_id", id.String()), slog.Any("error", err))
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			slog.Warn("slot cache invalidation failed", slog.String("service_id", id.String()), slog.Any("error", err))
		}
	}
}

// NopSlotCache never remembers anything, so every read regenerates.
type NopSlotCache struct{}

func (NopSlotCache) Generated(context.Context, uuid.UUID, calendar.Date) bool { return false }
func (NopSlotCache) MarkGenerated(context.Context, uuid.UUID, calendar.Date)  {}
func (NopSlotCache) Invalidate(context.Context, ...uuid.UUID)                 {}
