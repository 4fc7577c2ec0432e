package repository

import (
	"context"
	"errors"
	"time"

	"cashback-tracker/internal/domain/purchase"
	"cashback-tracker/internal/infra"
	"cashback-tracker/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PurchaseRepository struct {
	pool *pgxpool.Pool
}

func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// Monetary columns travel as text so numeric(12,2) round-trips into
// decimal without a float detour.
const purchaseColumns = `id, code, reseller_cpf, value::text, purchased_at, status, created_at`

func scanPurchase(row pgx.Row) (*queries.PurchaseView, error) {
	var (
		view      queries.PurchaseView
		rawValue  string
		rawStatus string
	)
	if err := row.Scan(
		&view.ID, &view.Code, &view.ResellerCPF, &rawValue,
		&view.PurchasedAt, &rawStatus, &view.CreatedAt,
	); err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return nil, err
	}
	view.Value = value

	// A status outside the domain set means the row was written past the
	// application; refuse to serve it.
	status, err := purchase.NewStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	view.Status = status.String()

	return &view, nil
}

func (r *PurchaseRepository) FindByCode(ctx context.Context, code string) (*queries.PurchaseView, error) {
	const q = `SELECT ` + purchaseColumns + ` FROM purchases WHERE code = $1`

	view, err := scanPurchase(r.pool.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find purchase by code", err)
	}

	return view, nil
}

func (r *PurchaseRepository) Create(ctx context.Context, entity *purchase.Purchase) (*queries.PurchaseView, error) {
	const q = `
		INSERT INTO purchases (id, code, reseller_cpf, value, purchased_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + purchaseColumns

	view, err := scanPurchase(r.pool.QueryRow(ctx, q,
		entity.ID(),
		entity.Code().Value(),
		entity.ResellerCPF().Value(),
		entity.Value().Amount().StringFixed(2),
		entity.PurchasedAt(),
		entity.Status().String(),
		entity.CreatedAt(),
	))
	if err != nil {
		// The unique index on code is the arbiter when the same code is
		// submitted concurrently; the race loser lands here.
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("purchase already recorded", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create purchase", err)
	}

	return view, nil
}

// PageByReseller returns purchases in storage order (creation order,
// tie-broken by id for a stable page boundary).
func (r *PurchaseRepository) PageByReseller(ctx context.Context, cpf string, offset, limit int) ([]*queries.PurchaseView, error) {
	const q = `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE reseller_cpf = $1
		ORDER BY created_at, id
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, q, cpf, offset, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases", err)
	}
	defer rows.Close()

	views := make([]*queries.PurchaseView, 0, limit)
	for rows.Next() {
		view, err := scanPurchase(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan purchase row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate purchase rows", err)
	}

	return views, nil
}

func (r *PurchaseRepository) CountByReseller(ctx context.Context, cpf string) (int64, error) {
	const q = `SELECT count(*) FROM purchases WHERE reseller_cpf = $1`

	var total int64
	if err := r.pool.QueryRow(ctx, q, cpf).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count purchases", err)
	}

	return total, nil
}

// SumValueInRange aggregates purchase values in [start, end).
func (r *PurchaseRepository) SumValueInRange(ctx context.Context, cpf string, start, end time.Time) (decimal.Decimal, error) {
	const q = `
		SELECT COALESCE(SUM(value), 0)::text
		FROM purchases
		WHERE reseller_cpf = $1 AND purchased_at >= $2 AND purchased_at < $3`

	var rawTotal string
	if err := r.pool.QueryRow(ctx, q, cpf, start, end).Scan(&rawTotal); err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum purchase values", err)
	}

	total, err := decimal.NewFromString(rawTotal)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to parse purchase value sum", err)
	}

	return total, nil
}
