package reseller

import (
	"time"

	"github.com/google/uuid"
)

// Reseller is an account that records purchases and earns cashback.
// The CPF is globally unique in the directory; registration with an
// existing CPF is a no-op at the usecase layer.
type Reseller struct {
	id           uuid.UUID
	cpf          CPF
	name         Name
	email        Email
	passwordHash string
	createdAt    time.Time
}

func NewReseller(cpf CPF, name Name, email Email, passwordHash string, now time.Time) *Reseller {
	return &Reseller{
		id:           uuid.New(),
		cpf:          cpf,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
	}
}

func (r *Reseller) ID() uuid.UUID        { return r.id }
func (r *Reseller) CPF() CPF             { return r.cpf }
func (r *Reseller) Name() Name           { return r.name }
func (r *Reseller) Email() Email         { return r.email }
func (r *Reseller) PasswordHash() string { return r.passwordHash }
func (r *Reseller) CreatedAt() time.Time { return r.createdAt }
