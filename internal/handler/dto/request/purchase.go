package request

import "time"

type CreatePurchaseRequest struct {
	Code        string    `json:"codigo" binding:"required,min=1,max=50"`
	ResellerCPF string    `json:"cpf_revendedor" binding:"required"`
	Value       *float64  `json:"valor" binding:"required,gte=0"`
	PurchasedAt time.Time `json:"data" binding:"required"`
}
