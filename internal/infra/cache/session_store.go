package cache

import (
	"context"
	"fmt"
	"time"

	"galassia/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// sessionStore implements service.SessionStore on Redis. Each user holds one
// current refresh token; rotating replaces it and logout deletes it.
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore is the constructor for sessionStore. Without Redis, tokens
// cannot be revoked early and validation falls back to signature checks only.
func NewSessionStore(client *redis.Client) service.SessionStore {
	return &sessionStore{
		client: client,
	}
}

func refreshTokenKey(userID uuid.UUID) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

// SaveRefreshToken records the user's current refresh token.
func (s *sessionStore) SaveRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Set(ctx, refreshTokenKey(userID), token, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save refresh token")
	}

	return nil
}

// ValidateRefreshToken reports whether the token is the user's current one.
func (s *sessionStore) ValidateRefreshToken(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	if s.client == nil {
		return true, nil
	}

	stored, err := s.client.Get(ctx, refreshTokenKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to read refresh token")
	}

	return stored == token, nil
}

// RevokeRefreshToken drops the user's refresh token on logout.
func (s *sessionStore) RevokeRefreshToken(ctx context.Context, userID uuid.UUID) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Del(ctx, refreshTokenKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}
