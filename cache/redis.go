package cache

import (
	"context"
	"time"

	"api/metrics"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisStore backs the cache capability with a shared redis instance so
// multiple API replicas see the same read cache and the same invalidations
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore connects to redis at addr. It pings once and returns an error
// if the instance is unreachable.
func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client, ctx: ctx}, nil
}

func (s *RedisStore) Get(key string) ([]byte, bool) {
	value, err := s.client.Get(s.ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).Warn("redis get failed")
		}
		metrics.CacheMisses.Inc()
		return nil, false
	}
	metrics.CacheHits.Inc()
	return value, true
}

func (s *RedisStore) Set(key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(s.ctx, key, value, ttl).Err(); err != nil {
		log.WithError(err).Warn("redis set failed")
	}
}

func (s *RedisStore) Invalidate(key string) {
	if err := s.client.Del(s.ctx, key).Err(); err != nil {
		log.WithError(err).Warn("redis del failed")
	}
}
