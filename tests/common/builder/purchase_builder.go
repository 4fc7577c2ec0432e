//go:build unit || e2e

package builder

import (
	"time"

	"cashback-tracker/internal/domain/purchase"
	"cashback-tracker/internal/handler/dto/request"
	"cashback-tracker/internal/usecase"
	"cashback-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	Code        string
	ResellerCPF string
	Value       string
	PurchasedAt time.Time
	Status      string
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		Code:        "21",
		ResellerCPF: "86342733775",
		Value:       "100",
		PurchasedAt: time.Date(2020, time.January, 15, 10, 0, 0, 0, time.UTC),
		Status:      purchase.StatusUnderReview.String(),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) BuildSubmitInput() usecase.SubmitPurchaseInput {
	return usecase.SubmitPurchaseInput{
		Code:        b.Code,
		ResellerCPF: b.ResellerCPF,
		Value:       decimal.RequireFromString(b.Value),
		PurchasedAt: b.PurchasedAt,
	}
}

func (b *PurchaseBuilder) BuildView() *queries.PurchaseView {
	return &queries.PurchaseView{
		ID:          uuid.New(),
		Code:        b.Code,
		ResellerCPF: b.ResellerCPF,
		Value:       decimal.RequireFromString(b.Value),
		PurchasedAt: b.PurchasedAt,
		Status:      b.Status,
		CreatedAt:   time.Now(),
	}
}

func (b *PurchaseBuilder) BuildCreateRequestDTO() request.CreatePurchaseRequest {
	value, _ := decimal.RequireFromString(b.Value).Float64()
	return request.CreatePurchaseRequest{
		Code:        b.Code,
		ResellerCPF: b.ResellerCPF,
		Value:       &value,
		PurchasedAt: b.PurchasedAt,
	}
}
