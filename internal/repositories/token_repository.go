package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/factura-dev/invoicing-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// TokenRepository tracks revoked bearer tokens by their jti. A revoked entry
// only needs to outlive the token itself, so it is stored with a TTL equal
// to the token's remaining validity.
type TokenRepository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type tokenRepository struct {
	client *redis.Client
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func NewTokenRepo(client *redis.Client) TokenRepository {
	return &tokenRepository{client: client}
}

func revokedKey(jti string) string {
	return "revoked_token:" + jti
}

func (r *tokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to deny.
		return nil
	}

	return r.client.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

func (r *tokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	result, err := r.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}

	return result > 0, nil
}
