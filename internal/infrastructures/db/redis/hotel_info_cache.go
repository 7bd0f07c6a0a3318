package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

type HotelInfoCache struct {
	redis *redis.Client
}

func NewHotelInfoCache(redis *redis.Client) *HotelInfoCache {
	return &HotelInfoCache{redis: redis}
}

func hotelInfoKey(query models.HotelInfoQuery) string {
	return fmt.Sprintf("hotelinfo:%s", query.CacheKey())
}

func (c *HotelInfoCache) Get(ctx context.Context, query models.HotelInfoQuery) ([]models.HotelInfo, error) {
	if query.CacheKey() == "" {
		return nil, derr.ErrHotelInfoNotFound
	}

	data, err := c.redis.Get(ctx, hotelInfoKey(query)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, derr.ErrHotelInfoNotFound
		}
		return nil, fmt.Errorf("redis get hotel info: %w", err)
	}

	var hotels []models.HotelInfo
	if err := json.Unmarshal([]byte(data), &hotels); err != nil {
		return nil, fmt.Errorf("unmarshal cached hotel info: %w", err)
	}

	return hotels, nil
}

func (c *HotelInfoCache) Set(ctx context.Context, query models.HotelInfoQuery, hotels []models.HotelInfo, ttl time.Duration) error {
	if ttl <= 0 || query.CacheKey() == "" {
		return nil
	}

	data, err := json.Marshal(hotels)
	if err != nil {
		return fmt.Errorf("marshal hotel info for cache: %w", err)
	}

	if err := c.redis.Set(ctx, hotelInfoKey(query), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set hotel info: %w", err)
	}

	return nil
}
