package repository

import (
	"context"
	"errors"

	"cashback-tracker/internal/domain/reseller"
	"cashback-tracker/internal/infra"
	"cashback-tracker/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type ResellerRepository struct {
	pool *pgxpool.Pool
}

func NewResellerRepository(pool *pgxpool.Pool) *ResellerRepository {
	return &ResellerRepository{pool: pool}
}

// FindByCPF returns the reseller view and its password hash.
func (r *ResellerRepository) FindByCPF(ctx context.Context, cpf string) (*queries.ResellerView, string, error) {
	const q = `
		SELECT id, cpf, name, email, password_hash, created_at
		FROM resellers
		WHERE cpf = $1`

	var (
		view         queries.ResellerView
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, q, cpf).Scan(
		&view.ID, &view.CPF, &view.Name, &view.Email, &passwordHash, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("reseller not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find reseller by cpf", err)
	}

	return &view, passwordHash, nil
}

func (r *ResellerRepository) Create(ctx context.Context, entity *reseller.Reseller) error {
	const q = `
		INSERT INTO resellers (id, cpf, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, q,
		entity.ID(),
		entity.CPF().Value(),
		entity.Name().Value(),
		entity.Email().Value(),
		entity.PasswordHash(),
		entity.CreatedAt(),
	)
	if err != nil {
		// The unique index on cpf is the arbiter for concurrent
		// registrations of the same identifier.
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("reseller already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create reseller", err)
	}

	return nil
}

func (r *ResellerRepository) IsPreApproved(ctx context.Context, cpf string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM preapproved_resellers WHERE cpf = $1)`

	var preApproved bool
	if err := r.pool.QueryRow(ctx, q, cpf).Scan(&preApproved); err != nil {
		return false, infra.WrapRepoErr("failed to check pre-approval", err)
	}

	return preApproved, nil
}

// UpsertPreApproved seeds allowlist entries at startup. Re-seeding an
// existing CPF is a no-op.
func (r *ResellerRepository) UpsertPreApproved(ctx context.Context, cpfs []string) error {
	const q = `INSERT INTO preapproved_resellers (cpf) VALUES ($1) ON CONFLICT (cpf) DO NOTHING`

	for _, cpf := range cpfs {
		if _, err := r.pool.Exec(ctx, q, cpf); err != nil {
			return infra.WrapRepoErr("failed to seed pre-approved reseller", err)
		}
	}

	return nil
}
