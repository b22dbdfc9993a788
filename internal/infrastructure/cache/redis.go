// Package cache is the Redis-backed store for search and recommendation
// results. Every operation degrades to a miss or a no-op when Redis is not
// reachable so requests fall through to PostgreSQL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"jobhunt/internal/config"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned by operations whose result cannot be faked
// when Redis is down, so lock callers proceed without the lock.
var ErrUnavailable = errors.New("redis unavailable")

const (
	defaultTTL     = 600 * time.Second
	defaultLockTTL = 30 * time.Second
	dialCheck      = 2 * time.Second

	scanCount   = 200
	unlinkBatch = 100
)

type Redis struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *log.Logger

	warned atomic.Bool
}

// NewRedis never fails: when the server cannot be reached the returned cache
// is a no-op and callers fall through to the database.
func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	r := &Redis{ttl: cfg.TTL, logger: logger}
	if r.ttl <= 0 {
		r.ttl = defaultTTL
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialCheck)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		r.degraded(err)
		return r
	}

	r.rdb = rdb
	return r
}

func (r *Redis) up() bool {
	return r != nil && r.rdb != nil
}

// degraded logs the first Redis failure only and hands err back.
func (r *Redis) degraded(err error) error {
	if r != nil && r.logger != nil && r.warned.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
	return err
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.up() {
		return ErrUnavailable
	}
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if !r.up() {
		return nil
	}
	return r.rdb.Close()
}

// GetJSON decodes the value at key into out and reports whether it was there.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.up() {
		return false, nil
	}

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, r.degraded(err)
	case len(raw) == 0:
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key; ttl <= 0 uses the configured TTL.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.up() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return r.degraded(err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if !r.up() {
		return nil
	}
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return r.degraded(err)
	}
	return nil
}

// DeleteByPattern unlinks every key matching pattern, scanning
// incrementally so large keyspaces do not block the server.
func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if !r.up() || pattern == "" {
		return nil
	}

	batch := make([]string, 0, unlinkBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := r.rdb.Unlink(ctx, batch...).Err()
		batch = batch[:0]
		return err
	}

	iter := r.rdb.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) < unlinkBatch {
			continue
		}
		if err := flush(); err != nil {
			return r.degraded(err)
		}
	}
	if err := iter.Err(); err != nil {
		return r.degraded(err)
	}
	if err := flush(); err != nil {
		return r.degraded(err)
	}
	return nil
}

// SetIfNotExists is SETNX with expiry, used as a short-lived lock.
func (r *Redis) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if !r.up() {
		return false, ErrUnavailable
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	ok, err := r.rdb.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, r.degraded(err)
	}
	return ok, nil
}
