package blobstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps blobs as plain Redis string values with no TTL.
type RedisStore struct {
	Rdb *redis.Client
}

// NewRedisStore connects using a redis URL (redis://...).
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{Rdb: redis.NewClient(opt)}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.Rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, blob []byte) error {
	return s.Rdb.Set(ctx, key, blob, 0).Err()
}

// Ping reports whether the Redis backend is reachable (health probe).
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Rdb.Ping(ctx).Err()
}
