package response

import (
	"time"

	"cashback-tracker/internal/usecase/queries"
)

type ResellerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"criado_em"`
}

func FromResellerView(v *queries.ResellerView) *ResellerResponse {
	return &ResellerResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		CPF:       v.CPF,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
}

type BalanceResponse struct {
	CPF     string  `json:"cpf"`
	Balance float64 `json:"saldo"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		CPF:     v.CPF,
		Balance: v.Balance.InexactFloat64(),
	}
}
