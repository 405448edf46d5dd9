package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"inventory-system/internal/entities"
)

// HistoryCacheInterface guarda el historial reconstruido por service tag.
// Toda transición exitosa debe invalidar la entrada del tag movido.
type HistoryCacheInterface interface {
	GetHistory(ctx context.Context, tag string) ([]entities.HistoryEvent, bool, error)
	SetHistory(ctx context.Context, tag string, events []entities.HistoryEvent, ttl time.Duration) error
	Invalidate(ctx context.Context, tag string) error
}

const historyKeyPrefix = "historial:"

// RedisHistoryCache implementa la caché de historial sobre Redis.
type RedisHistoryCache struct {
	client *redis.Client
}

func NewRedisHistoryCache(client *redis.Client) HistoryCacheInterface {
	return &RedisHistoryCache{client: client}
}

func (r *RedisHistoryCache) GetHistory(ctx context.Context, tag string) ([]entities.HistoryEvent, bool, error) {
	raw, err := r.client.Get(ctx, historyKeyPrefix+tag).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var events []entities.HistoryEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		// Una entrada corrupta se trata como cache miss.
		return nil, false, nil
	}
	return events, true, nil
}

func (r *RedisHistoryCache) SetHistory(ctx context.Context, tag string, events []entities.HistoryEvent, ttl time.Duration) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, historyKeyPrefix+tag, raw, ttl).Err()
}

func (r *RedisHistoryCache) Invalidate(ctx context.Context, tag string) error {
	return r.client.Del(ctx, historyKeyPrefix+tag).Err()
}
