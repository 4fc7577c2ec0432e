package purchase

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode  = errors.New("code must be between 1 and 50 characters")
	ErrInvalidValue = errors.New("value must be non-negative")
)

// Code is the globally unique purchase identifier supplied by the caller.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if len(s) < 1 || len(s) > 50 {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) Value() string {
	return c.value
}

// Value is the purchase's monetary value.
type Value struct {
	amount decimal.Decimal
}

func NewValue(d decimal.Decimal) (Value, error) {
	if d.IsNegative() {
		return Value{}, ErrInvalidValue
	}
	return Value{amount: d}, nil
}

func (v Value) Amount() decimal.Decimal {
	return v.amount
}
