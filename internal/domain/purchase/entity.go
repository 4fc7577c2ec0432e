package purchase

import (
	"time"

	"cashback-tracker/internal/domain/reseller"

	"github.com/google/uuid"
)

// Purchase is an append-only transaction record. It starts under review
// and may be approved exactly once, before it is first persisted.
type Purchase struct {
	id          uuid.UUID
	code        Code
	resellerCPF reseller.CPF
	value       Value
	purchasedAt time.Time
	status      Status
	createdAt   time.Time
}

func NewPurchase(code Code, resellerCPF reseller.CPF, value Value, purchasedAt, now time.Time) *Purchase {
	return &Purchase{
		id:          uuid.New(),
		code:        code,
		resellerCPF: resellerCPF,
		value:       value,
		purchasedAt: purchasedAt,
		status:      StatusUnderReview,
		createdAt:   now,
	}
}

// Approve marks the purchase as auto-approved for a pre-approved
// reseller. Only meaningful before the purchase is persisted.
func (p *Purchase) Approve() {
	p.status = StatusApproved
}

func (p *Purchase) ID() uuid.UUID             { return p.id }
func (p *Purchase) Code() Code                { return p.code }
func (p *Purchase) ResellerCPF() reseller.CPF { return p.resellerCPF }
func (p *Purchase) Value() Value              { return p.value }
func (p *Purchase) PurchasedAt() time.Time    { return p.purchasedAt }
func (p *Purchase) Status() Status            { return p.status }
func (p *Purchase) CreatedAt() time.Time      { return p.createdAt }
