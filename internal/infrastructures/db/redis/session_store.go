package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/db/model"
	"github.com/redis/go-redis/v9"
)

type SessionStore struct {
	redis *redis.Client
}

func NewSessionStore(redis *redis.Client) *SessionStore {
	return &SessionStore{redis: redis}
}

func sessionKey(key string) string {
	return fmt.Sprintf("session:%s", key)
}

func (s *SessionStore) GetToken(ctx context.Context, key string) (string, error) {
	data, err := s.redis.Get(ctx, sessionKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", derr.ErrSessionNotFound
		}
		return "", fmt.Errorf("redis get session: %w", err)
	}

	var session model.SessionData
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return "", fmt.Errorf("unmarshal cached session: %w", err)
	}
	if session.Token == "" {
		return "", derr.ErrSessionNotFound
	}

	return session.Token, nil
}

func (s *SessionStore) SaveToken(ctx context.Context, key, token string, ttl time.Duration) error {
	if ttl <= 0 || token == "" {
		return nil
	}

	now := time.Now().UTC()
	data, err := json.Marshal(model.SessionData{
		Key:       key,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("marshal session for cache: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	return nil
}

func (s *SessionStore) DeleteToken(ctx context.Context, key string) error {
	if err := s.redis.Del(ctx, sessionKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
