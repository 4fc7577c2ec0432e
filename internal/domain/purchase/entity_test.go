//go:build unit

package purchase_test

import (
	"testing"
	"time"

	"cashback-tracker/internal/domain/purchase"
	"cashback-tracker/internal/domain/reseller"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type purchaseSnapshot struct {
	Code        string
	ResellerCPF string
	Value       decimal.Decimal
	PurchasedAt time.Time
	Status      purchase.Status
	CreatedAt   time.Time
}

func snapshot(p *purchase.Purchase) purchaseSnapshot {
	return purchaseSnapshot{
		Code:        p.Code().Value(),
		ResellerCPF: p.ResellerCPF().Value(),
		Value:       p.Value().Amount(),
		PurchasedAt: p.PurchasedAt(),
		Status:      p.Status(),
		CreatedAt:   p.CreatedAt(),
	}
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func buildPurchase(t *testing.T, rawValue string, purchasedAt, now time.Time) *purchase.Purchase {
	t.Helper()

	code, err := purchase.NewCode("42")
	require.NoError(t, err)
	cpfVO, err := reseller.NewCPF("67976752006")
	require.NoError(t, err)
	value, err := purchase.NewValue(decimal.RequireFromString(rawValue))
	require.NoError(t, err)

	return purchase.NewPurchase(code, cpfVO, value, purchasedAt, now)
}

func TestNewPurchase(t *testing.T) {
	purchasedAt := time.Date(2020, time.January, 15, 10, 0, 0, 0, time.UTC)
	now := time.Date(2020, time.January, 16, 9, 0, 0, 0, time.UTC)

	p := buildPurchase(t, "100.50", purchasedAt, now)

	want := purchaseSnapshot{
		Code:        "42",
		ResellerCPF: "67976752006",
		Value:       decimal.RequireFromString("100.50"),
		PurchasedAt: purchasedAt,
		Status:      purchase.StatusUnderReview,
		CreatedAt:   now,
	}
	if diff := cmp.Diff(want, snapshot(p), decimalComparer); diff != "" {
		t.Errorf("purchase mismatch (-want +got):\n%s", diff)
	}
	require.NotEqual(t, p.ID().String(), "00000000-0000-0000-0000-000000000000")
}

func TestPurchaseApprove(t *testing.T) {
	now := time.Date(2020, time.January, 16, 9, 0, 0, 0, time.UTC)
	p := buildPurchase(t, "10", now, now)

	require.Equal(t, purchase.StatusUnderReview, p.Status())
	p.Approve()
	require.Equal(t, purchase.StatusApproved, p.Status())
}
