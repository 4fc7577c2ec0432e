package usecase

import (
	"context"
	"errors"
	"time"

	"cashback-tracker/internal/domain/cashback"
	"cashback-tracker/internal/domain/purchase"
	"cashback-tracker/internal/domain/reseller"
	"cashback-tracker/internal/infra"
	"cashback-tracker/internal/pkg/clock"
	"cashback-tracker/internal/pkg/errs"
	"cashback-tracker/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var ErrDuplicatePurchase = errors.New("purchase already recorded")

// PageSize is the fixed page length for purchase listings.
const PageSize = 100

type PurchaseRepository interface {
	FindByCode(ctx context.Context, code string) (*queries.PurchaseView, error)
	Create(ctx context.Context, entity *purchase.Purchase) (*queries.PurchaseView, error)
	PageByReseller(ctx context.Context, cpf string, offset, limit int) ([]*queries.PurchaseView, error)
	CountByReseller(ctx context.Context, cpf string) (int64, error)
	SumValueInRange(ctx context.Context, cpf string, start, end time.Time) (decimal.Decimal, error)
}

type SubmitPurchaseInput struct {
	Code        string
	ResellerCPF string
	Value       decimal.Decimal
	PurchasedAt time.Time
}

type PurchaseUseCase interface {
	Submit(ctx context.Context, input SubmitPurchaseInput) (*queries.PurchaseView, error)
	ListPage(ctx context.Context, cpf string, offset int) (*queries.PurchasePageView, error)
	MonthlyPercentage(ctx context.Context, cpf string, year int, month time.Month) (int, error)
}

type purchaseUseCaseImpl struct {
	purchaseRepo PurchaseRepository
	resellerRepo ResellerRepository
	clock        clock.Clock
}

func NewPurchaseUseCase(purchaseRepo PurchaseRepository, resellerRepo ResellerRepository, clk clock.Clock) PurchaseUseCase {
	return &purchaseUseCaseImpl{
		purchaseRepo: purchaseRepo,
		resellerRepo: resellerRepo,
		clock:        clk,
	}
}

// Submit runs the admission pipeline: reseller existence, duplicate
// code, pre-approval, then a single insert. Steps before the insert are
// pure reads, so a rejected submission leaves the store untouched.
func (u *purchaseUseCaseImpl) Submit(ctx context.Context, input SubmitPurchaseInput) (*queries.PurchaseView, error) {
	entity, err := u.buildPurchase(input)
	if err != nil {
		return nil, err
	}
	cpf := entity.ResellerCPF().Value()

	if _, _, err := u.resellerRepo.FindByCPF(ctx, cpf); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResellerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := u.purchaseRepo.FindByCode(ctx, entity.Code().Value()); err == nil {
		return nil, ErrDuplicatePurchase
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	preApproved, err := u.resellerRepo.IsPreApproved(ctx, cpf)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if preApproved {
		entity.Approve()
	}

	view, err := u.purchaseRepo.Create(ctx, entity)
	if err != nil {
		// Concurrent submission of the same code: the pre-check passed
		// for both, the unique index decided, the loser reports a
		// duplicate like any other.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePurchase
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (u *purchaseUseCaseImpl) buildPurchase(input SubmitPurchaseInput) (*purchase.Purchase, error) {
	code, err := purchase.NewCode(input.Code)
	if err != nil {
		return nil, err
	}
	cpfVO, err := reseller.NewCPF(input.ResellerCPF)
	if err != nil {
		return nil, err
	}
	value, err := purchase.NewValue(input.Value)
	if err != nil {
		return nil, err
	}

	return purchase.NewPurchase(code, cpfVO, value, input.PurchasedAt, u.clock.Now()), nil
}

// ListPage returns one fixed-size page of the reseller's purchases in
// storage order, each annotated with its month's cashback, plus the full
// count. An unknown reseller simply yields an empty page.
func (u *purchaseUseCaseImpl) ListPage(ctx context.Context, cpf string, offset int) (*queries.PurchasePageView, error) {
	if offset < 0 {
		offset = 0
	}

	total, err := u.purchaseRepo.CountByReseller(ctx, cpf)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	page, err := u.purchaseRepo.PageByReseller(ctx, cpf, offset, PageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	annotated, err := u.annotate(ctx, page)
	if err != nil {
		return nil, err
	}

	return &queries.PurchasePageView{Purchases: annotated, Total: total}, nil
}

// MonthlyPercentage sums the reseller's purchases in the given calendar
// month and maps the total onto the tier table. Absence of purchases is
// the lowest tier, not an error.
func (u *purchaseUseCaseImpl) MonthlyPercentage(ctx context.Context, cpf string, year int, month time.Month) (int, error) {
	start, end := cashback.MonthRange(year, month)

	total, err := u.purchaseRepo.SumValueInRange(ctx, cpf, start, end)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return cashback.PercentageFor(total), nil
}

type monthKey struct {
	cpf   string
	year  int
	month time.Month
}

// annotate computes cashback per purchase, memoizing the percentage per
// (reseller, year, month) so a page full of same-month purchases costs
// one aggregation query. Keyed by reseller too, not just month, so the
// memo stays correct even for a mixed-reseller batch. Output order
// matches input order.
func (u *purchaseUseCaseImpl) annotate(ctx context.Context, page []*queries.PurchaseView) ([]*queries.PurchaseWithCashbackView, error) {
	memo := make(map[monthKey]int)
	annotated := make([]*queries.PurchaseWithCashbackView, 0, len(page))

	for _, view := range page {
		// Bucket by the UTC month so the key agrees with the UTC sum
		// window; pgx hands timestamptz back in local time.
		ts := view.PurchasedAt.UTC()
		key := monthKey{
			cpf:   view.ResellerCPF,
			year:  ts.Year(),
			month: ts.Month(),
		}

		percentage, ok := memo[key]
		if !ok {
			var err error
			percentage, err = u.MonthlyPercentage(ctx, key.cpf, key.year, key.month)
			if err != nil {
				return nil, err
			}
			memo[key] = percentage
		}

		annotated = append(annotated, &queries.PurchaseWithCashbackView{
			PurchaseView:       *view,
			CashbackPercentage: percentage,
			CashbackValue:      cashback.ValueFor(view.Value, percentage),
		})
	}

	return annotated, nil
}
