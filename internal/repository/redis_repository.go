package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/redis"

	"github.com/ezioding/email-reminder/internal/model"
)

// RedisRepository caches single-reminder reads. Failures here are advisory;
// callers always have the Postgres store behind it.
type RedisRepository struct {
	redisClient *redis.Client
	expiration  time.Duration
}

func NewRedisRepository(redisClient *redis.Client, expiration time.Duration) *RedisRepository {
	return &RedisRepository{redisClient: redisClient, expiration: expiration}
}

func cacheKey(id uuid.UUID) string {
	return "reminder:" + id.String()
}

func (r *RedisRepository) Save(ctx context.Context, reminder *model.Reminder) error {
	data, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("redis: marshal reminder: %w", err)
	}
	key := cacheKey(reminder.ID)
	if err := r.redisClient.SetWithExpiration(ctx, key, data, r.expiration); err != nil {
		return fmt.Errorf("redis: set key %s: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, id uuid.UUID) (*model.Reminder, error) {
	data, err := r.redisClient.Get(ctx, cacheKey(id))
	if err != nil {
		return nil, err
	}
	var reminder model.Reminder
	if err = json.Unmarshal([]byte(data), &reminder); err != nil {
		return nil, fmt.Errorf("redis: unmarshal reminder: %w", err)
	}
	return &reminder, nil
}

func (r *RedisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, cacheKey(id)); err != nil {
		return fmt.Errorf("redis: delete reminder %s: %w", id, err)
	}
	return nil
}
