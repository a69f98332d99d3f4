package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/models"
)

const redisKeyPrefix = "session:"

// RedisStore keeps session snapshots in Redis, one JSON-encoded snapshot
// per token key. Expiry is handled by the key TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, token string) (*models.User, error) {
	key := redisKeyPrefix + token

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read session from redis", "error", err)
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("failed to decode session snapshot", "error", err)
		return nil, err
	}

	return &user, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, user *models.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := redisKeyPrefix + token
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.Errorw("failed to write session to redis", "error", err)
		return err
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		logger.Log.Errorw("failed to delete session from redis", "error", err)
		return err
	}
	return nil
}
