package usecase

import (
	"context"
	"errors"
)

var ErrTokenValidation = errors.New("token validation failed")

// TokenValidator resolves opaque bearer tokens for middleware.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type tokenValidatorImpl struct {
	tokens TokenStore
}

func NewTokenValidator(tokens TokenStore) TokenValidator {
	return &tokenValidatorImpl{tokens: tokens}
}

// ValidateToken returns the CPF the token was issued to. Expired tokens
// have already fallen out of the store and resolve to not-found.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, token string) (string, error) {
	cpf, err := t.tokens.ResolveCPF(ctx, token)
	if err != nil {
		return "", ErrTokenValidation
	}
	return cpf, nil
}
