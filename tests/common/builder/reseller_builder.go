//go:build unit || e2e

package builder

import (
	"time"

	"cashback-tracker/internal/handler/dto/request"
	"cashback-tracker/internal/usecase"
	"cashback-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResellerBuilder struct {
	Name     string
	CPF      string
	Email    string
	Password string
}

func NewResellerBuilder() *ResellerBuilder {
	return &ResellerBuilder{
		Name:     "Maria Silva",
		CPF:      "67976752006",
		Email:    "maria@example.com",
		Password: "segredo99",
	}
}

func (b *ResellerBuilder) With(mutate func(*ResellerBuilder)) *ResellerBuilder {
	mutate(b)
	return b
}

func (b *ResellerBuilder) BuildRegisterInput() usecase.RegisterResellerInput {
	return usecase.RegisterResellerInput{
		Name:     b.Name,
		CPF:      b.CPF,
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *ResellerBuilder) BuildView() *queries.ResellerView {
	return &queries.ResellerView{
		ID:        uuid.New(),
		CPF:       b.CPF,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: time.Now(),
	}
}

func (b *ResellerBuilder) BuildCreateRequestDTO() request.CreateResellerRequest {
	return request.CreateResellerRequest{
		Name:     b.Name,
		CPF:      b.CPF,
		Password: b.Password,
		Email:    b.Email,
	}
}

func (b *ResellerBuilder) BuildLoginRequestDTO() request.LoginRequest {
	return request.LoginRequest{
		CPF:      b.CPF,
		Password: b.Password,
	}
}
