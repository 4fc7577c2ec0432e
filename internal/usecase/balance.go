package usecase

import (
	"context"
	"errors"

	"cashback-tracker/internal/infra"
	"cashback-tracker/internal/pkg/errs"
	"cashback-tracker/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var ErrLedgerUnavailable = errors.New("accumulated cashback ledger unavailable")

type LedgerClient interface {
	AccumulatedCredit(ctx context.Context, cpf string) (decimal.Decimal, error)
}

type BalanceUseCase interface {
	AccumulatedCashback(ctx context.Context, cpf string) (*queries.BalanceView, error)
}

type balanceUseCaseImpl struct {
	resellerRepo ResellerRepository
	ledger       LedgerClient
}

func NewBalanceUseCase(resellerRepo ResellerRepository, ledger LedgerClient) BalanceUseCase {
	return &balanceUseCaseImpl{
		resellerRepo: resellerRepo,
		ledger:       ledger,
	}
}

// AccumulatedCashback reports the balance held by the external ledger.
// The reseller must exist locally; the ledger call itself is a single
// attempt with no retry.
func (b *balanceUseCaseImpl) AccumulatedCashback(ctx context.Context, cpf string) (*queries.BalanceView, error) {
	view, _, err := b.resellerRepo.FindByCPF(ctx, cpf)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResellerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	balance, err := b.ledger.AccumulatedCredit(ctx, view.CPF)
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerUnavailable)
	}

	return &queries.BalanceView{CPF: view.CPF, Balance: balance}, nil
}
