package cache

import (
	"context"
	"errors"
	"time"

	"courseplatform/services/auth-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const refreshTTL = 7 * 24 * time.Hour

type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

func refreshKey(token string) string {
	return "refresh_token:" + token
}

func (c *TokenCache) SaveRefresh(ctx context.Context, userID string, refreshToken string) error {
	return c.client.Set(ctx, refreshKey(refreshToken), userID, refreshTTL).Err()
}

// TakeRefresh атомарно забирает refresh-токен: второй вызов с тем же токеном получит ErrTokenRevoked.
func (c *TokenCache) TakeRefresh(ctx context.Context, refreshToken string) (string, error) {
	val, err := c.client.GetDel(ctx, refreshKey(refreshToken)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrTokenRevoked
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *TokenCache) DeleteRefresh(ctx context.Context, refreshToken string) error {
	return c.client.Del(ctx, refreshKey(refreshToken)).Err()
}
