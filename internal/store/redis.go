package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jest/internal/engine"
)

// DefaultTTL bounds how long an abandoned game's snapshot is kept.
const DefaultTTL = 24 * time.Hour

// RedisStore keeps snapshots under "jest:snapshot:{gameID}".
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to addr, which is either host:port or a redis:// URL.
func NewRedisStore(addr string, db int) *RedisStore {
	var opt *redis.Options
	if u, err := redis.ParseURL(addr); err == nil {
		opt = u
	} else {
		opt = &redis.Options{Addr: addr, DB: db}
	}
	return &RedisStore{client: redis.NewClient(opt), ttl: DefaultTTL}
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func snapshotKey(gameID string) string {
	return "jest:snapshot:" + gameID
}

// Ping checks the connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Save(ctx context.Context, gameID string, s *engine.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", gameID, err)
	}
	if err := r.client.Set(ctx, snapshotKey(gameID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot %s: %w", gameID, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, gameID string) (*engine.Snapshot, error) {
	data, err := r.client.Get(ctx, snapshotKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", gameID, err)
	}
	return decode(gameID, data)
}

func (r *RedisStore) Delete(ctx context.Context, gameID string) error {
	if err := r.client.Del(ctx, snapshotKey(gameID)).Err(); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", gameID, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
