package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

const defaultRefreshTTL = 7 * 24 * time.Hour

// SessionStore persists refresh tokens in Redis.
// Key format: refresh:<token> → user email, expiring after the refresh TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultRefreshTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) SaveRefresh(ctx context.Context, token, email string) error {
	if err := s.client.Set(ctx, s.key(token), email, s.ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// LookupRefresh returns the email bound to token. An unknown or expired token
// yields domain.ErrInvalidToken.
func (s *SessionStore) LookupRefresh(ctx context.Context, token string) (string, error) {
	email, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("lookup refresh token: %w", err)
	}
	return email, nil
}

func (s *SessionStore) DeleteRefresh(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *SessionStore) key(token string) string {
	return "refresh:" + token
}
