package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_safety_system/internal/models"
)

const crimeVersionKey = "crime:ledger_version"

// RedisCrimeCache кеширует вычисленные криминальные сигналы в Redis.
// Ключ включает версию леджера: каждый успешный append инкрементирует
// версию, чем разом инвалидирует все закешированные сигналы (любой запрос
// мог пересекаться с точкой нового инцидента). Устаревшие ключи
// доживают свой TTL.
type RedisCrimeCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisCrimeCache создает кеш криминальных сигналов
func NewRedisCrimeCache(client *redis.Client, ttl time.Duration) *RedisCrimeCache {
	return &RedisCrimeCache{
		redisClient: client,
		ttl:         ttl,
	}
}

func (c *RedisCrimeCache) key(ctx context.Context, q models.GeoQuery) (string, error) {
	version, err := c.redisClient.Get(ctx, crimeVersionKey).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("failed to get ledger version: %w", err)
		}
		version = 0
	}
	return fmt.Sprintf("crime:v%d:%.4f:%.4f:%.2f", version, q.Latitude, q.Longitude, q.RadiusKm), nil
}

// Get пытается получить криминальный сигнал из кеша. Промах - (nil, nil).
func (c *RedisCrimeCache) Get(ctx context.Context, q models.GeoQuery) (*models.CrimeSignal, error) {
	key, err := c.key(ctx, q)
	if err != nil {
		return nil, err
	}

	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get crime signal from cache: %w", err)
	}

	signal := &models.CrimeSignal{}
	if err := json.Unmarshal(val, signal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal crime signal from cache: %w", err)
	}
	return signal, nil
}

// Set сохраняет криминальный сигнал под текущей версией леджера
func (c *RedisCrimeCache) Set(ctx context.Context, q models.GeoQuery, signal models.CrimeSignal) error {
	key, err := c.key(ctx, q)
	if err != nil {
		return err
	}

	val, err := json.Marshal(signal)
	if err != nil {
		return fmt.Errorf("failed to marshal crime signal for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set crime signal in cache: %w", err)
	}
	return nil
}

// BumpVersion инвалидирует все закешированные криминальные сигналы
func (c *RedisCrimeCache) BumpVersion(ctx context.Context) error {
	if err := c.redisClient.Incr(ctx, crimeVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump ledger version: %w", err)
	}
	return nil
}
