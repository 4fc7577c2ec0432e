package reseller

import (
	"errors"
	"regexp"
	"strings"

	"cashback-tracker/internal/pkg/cpf"
)

var (
	ErrInvalidCPF   = errors.New("invalid cpf")
	ErrInvalidName  = errors.New("name must be between 2 and 100 characters")
	ErrInvalidEmail = errors.New("invalid email format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CPF is the reseller's unique identity key, stored as the bare 11 digits.
type CPF struct {
	value string
}

func NewCPF(s string) (CPF, error) {
	normalized, err := cpf.Normalize(s)
	if err != nil {
		return CPF{}, ErrInvalidCPF
	}
	return CPF{value: normalized}, nil
}

func (c CPF) Value() string {
	return c.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 100 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
