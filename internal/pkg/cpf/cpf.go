// Package cpf validates Brazilian individual taxpayer identifiers
// (11 digits, two mod-11 check digits).
package cpf

import "errors"

var ErrInvalid = errors.New("invalid cpf")

// Valid reports whether s is a well-formed CPF. Non-digit characters
// (dots, dashes) are ignored, so both "679.767.520-06" and
// "67976752006" are accepted.
func Valid(s string) bool {
	digits := make([]int, 0, 11)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) != 11 {
		return false
	}

	// CPFs with all digits equal (111.111.111-11 etc.) pass the check
	// digit computation but are not issued.
	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	for i := 9; i < 11; i++ {
		sum := 0
		for num := 0; num < i; num++ {
			sum += digits[num] * ((i + 1) - num)
		}
		digit := ((sum * 10) % 11) % 10
		if digit != digits[i] {
			return false
		}
	}

	return true
}

// Normalize strips formatting characters and returns the bare 11 digits.
func Normalize(s string) (string, error) {
	out := make([]byte, 0, 11)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	if !Valid(string(out)) {
		return "", ErrInvalid
	}
	return string(out), nil
}
