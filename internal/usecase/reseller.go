package usecase

import (
	"context"
	"errors"
	"time"

	"cashback-tracker/internal/domain/reseller"
	"cashback-tracker/internal/infra"
	"cashback-tracker/internal/pkg/clock"
	"cashback-tracker/internal/pkg/errs"
	"cashback-tracker/internal/pkg/password"
	"cashback-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrResellerNotFound   = errors.New("reseller not found")
	ErrInvalidCredentials = errors.New("invalid cpf or password")
	ErrTokenIssuance      = errors.New("token issuance failed")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ResellerRepository interface {
	FindByCPF(ctx context.Context, cpf string) (*queries.ResellerView, string, error)
	Create(ctx context.Context, entity *reseller.Reseller) error
	IsPreApproved(ctx context.Context, cpf string) (bool, error)
}

type TokenStore interface {
	Get(ctx context.Context, cpf string) (string, error)
	Save(ctx context.Context, cpf, token string, ttl time.Duration) error
	ResolveCPF(ctx context.Context, token string) (string, error)
}

type RegisterResellerInput struct {
	Name     string
	CPF      string
	Email    string
	Password string
}

type ResellerUseCase interface {
	Register(ctx context.Context, input RegisterResellerInput) (*queries.ResellerView, error)
	Login(ctx context.Context, cpf, plainPassword string) (string, error)
}

type resellerUseCaseImpl struct {
	resellerRepo ResellerRepository
	tokens       TokenStore
	clock        clock.Clock
	tokenTTL     time.Duration
}

func NewResellerUseCase(resellerRepo ResellerRepository, tokens TokenStore, clk clock.Clock, tokenTTL time.Duration) ResellerUseCase {
	return &resellerUseCaseImpl{
		resellerRepo: resellerRepo,
		tokens:       tokens,
		clock:        clk,
		tokenTTL:     tokenTTL,
	}
}

// Register is idempotent: registering an already-known CPF returns the
// existing record without touching the store.
func (r *resellerUseCaseImpl) Register(ctx context.Context, input RegisterResellerInput) (*queries.ResellerView, error) {
	entity, err := r.buildReseller(input)
	if err != nil {
		return nil, err
	}

	existing, _, err := r.resellerRepo.FindByCPF(ctx, entity.CPF().Value())
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := r.resellerRepo.Create(ctx, entity); err != nil {
		// A concurrent registration won the unique-index race; treat it
		// the same as finding the record up front.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, _, findErr := r.resellerRepo.FindByCPF(ctx, entity.CPF().Value())
			if findErr != nil {
				return nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
			}
			return existing, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.ResellerView{
		ID:        entity.ID(),
		CPF:       entity.CPF().Value(),
		Name:      entity.Name().Value(),
		Email:     entity.Email().Value(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (r *resellerUseCaseImpl) buildReseller(input RegisterResellerInput) (*reseller.Reseller, error) {
	cpfVO, err := reseller.NewCPF(input.CPF)
	if err != nil {
		return nil, err
	}
	nameVO, err := reseller.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	emailVO, err := reseller.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	return reseller.NewReseller(cpfVO, nameVO, emailVO, hash, r.clock.Now()), nil
}

// Login verifies credentials and returns an opaque token. An unexpired
// token from an earlier login is reused; otherwise a new one is minted
// with the configured TTL.
func (r *resellerUseCaseImpl) Login(ctx context.Context, cpf, plainPassword string) (string, error) {
	view, hash, err := r.resellerRepo.FindByCPF(ctx, cpf)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := r.tokens.Get(ctx, view.CPF)
	if err != nil {
		return "", errs.Mark(err, ErrTokenIssuance)
	}
	if token != "" {
		return token, nil
	}

	token = uuid.NewString()
	if err := r.tokens.Save(ctx, view.CPF, token, r.tokenTTL); err != nil {
		return "", errs.Mark(err, ErrTokenIssuance)
	}

	return token, nil
}
