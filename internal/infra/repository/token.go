package repository

import (
	"context"
	"errors"
	"time"

	"cashback-tracker/internal/infra"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix   = "token:"   // cpf -> token, for reuse on repeat logins
	sessionKeyPrefix = "session:" // token -> cpf, for bearer validation
)

// TokenStore keeps opaque login tokens in redis. Expiry is delegated to
// the key TTL, so an expired token simply stops resolving.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Get returns the reseller's unexpired token, or "" when none exists.
func (s *TokenStore) Get(ctx context.Context, cpf string) (string, error) {
	token, err := s.client.Get(ctx, tokenKeyPrefix+cpf).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to read token", err)
	}
	return token, nil
}

func (s *TokenStore) Save(ctx context.Context, cpf, token string, ttl time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+cpf, token, ttl)
	pipe.Set(ctx, sessionKeyPrefix+token, cpf, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to save token", err)
	}
	return nil
}

// ResolveCPF maps a bearer token back to its reseller.
func (s *TokenStore) ResolveCPF(ctx context.Context, token string) (string, error) {
	cpf, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", infra.WrapRepoErr("token not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to resolve token", err)
	}
	return cpf, nil
}
