package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResellerView represents read-optimized reseller data
type ResellerView struct {
	ID        uuid.UUID `json:"id"`
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PurchaseView represents read-optimized purchase data
type PurchaseView struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	ResellerCPF string          `json:"reseller_cpf"`
	Value       decimal.Decimal `json:"value"`
	PurchasedAt time.Time       `json:"purchased_at"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PurchaseWithCashbackView is a PurchaseView annotated with the cashback
// computed for its calendar month. Derived on read, never stored.
type PurchaseWithCashbackView struct {
	PurchaseView
	CashbackPercentage int             `json:"cashback_percentage"`
	CashbackValue      decimal.Decimal `json:"cashback_value"`
}

// PurchasePageView is one page of annotated purchases plus the full
// per-reseller count, independent of pagination.
type PurchasePageView struct {
	Purchases []*PurchaseWithCashbackView `json:"purchases"`
	Total     int64                       `json:"total"`
}

// BalanceView is the accumulated cashback reported by the external ledger.
type BalanceView struct {
	CPF     string          `json:"cpf"`
	Balance decimal.Decimal `json:"balance"`
}
