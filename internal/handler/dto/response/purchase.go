package response

import (
	"time"

	"cashback-tracker/internal/usecase/queries"
)

type PurchaseResponse struct {
	Code        string    `json:"codigo"`
	ResellerCPF string    `json:"cpf_revendedor"`
	Value       float64   `json:"valor"`
	PurchasedAt time.Time `json:"data"`
	Status      string    `json:"status"`
}

func FromPurchaseView(v *queries.PurchaseView) *PurchaseResponse {
	return &PurchaseResponse{
		Code:        v.Code,
		ResellerCPF: v.ResellerCPF,
		Value:       v.Value.InexactFloat64(),
		PurchasedAt: v.PurchasedAt,
		Status:      v.Status,
	}
}

type PurchaseWithCashbackResponse struct {
	PurchaseResponse
	CashbackPercentage int     `json:"percentual_cashback"`
	CashbackValue      float64 `json:"valor_cashback"`
}

type PurchasePageResponse struct {
	Purchases []*PurchaseWithCashbackResponse `json:"compras"`
	Total     int64                           `json:"total"`
}

func FromPurchasePageView(page *queries.PurchasePageView) *PurchasePageResponse {
	items := make([]*PurchaseWithCashbackResponse, len(page.Purchases))
	for i, p := range page.Purchases {
		items[i] = &PurchaseWithCashbackResponse{
			PurchaseResponse:   *FromPurchaseView(&p.PurchaseView),
			CashbackPercentage: p.CashbackPercentage,
			CashbackValue:      p.CashbackValue.InexactFloat64(),
		}
	}
	return &PurchasePageResponse{Purchases: items, Total: page.Total}
}
