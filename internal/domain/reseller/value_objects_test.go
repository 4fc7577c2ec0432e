//go:build unit

package reseller_test

import (
	"strings"
	"testing"

	"cashback-tracker/internal/domain/reseller"

	"github.com/stretchr/testify/require"
)

func TestNewCPF(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare digits", input: "67976752006", want: "67976752006"},
		{name: "formatted input is normalized", input: "679.767.520-06", want: "67976752006"},
		{name: "bad check digit", input: "67976752005", wantErr: true},
		{name: "too short", input: "123", wantErr: true},
		{name: "all equal digits", input: "11111111111", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reseller.NewCPF(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, reseller.ErrInvalidCPF)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, got.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain name", input: "Maria Silva", want: "Maria Silva"},
		{name: "surrounding whitespace is trimmed", input: "  Ana  ", want: "Ana"},
		{name: "two chars is the floor", input: "Jo", want: "Jo"},
		{name: "one char", input: "J", wantErr: true},
		{name: "101 chars", input: strings.Repeat("a", 101), wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reseller.NewName(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, reseller.ErrInvalidName)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, got.Value())
		})
	}
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain address", input: "maria@example.com"},
		{name: "subdomain and plus tag", input: "maria+tag@mail.example.com"},
		{name: "missing at sign", input: "maria.example.com", wantErr: true},
		{name: "missing tld", input: "maria@example", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reseller.NewEmail(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, reseller.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
		})
	}
}
