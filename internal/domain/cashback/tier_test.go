//go:build unit

package cashback_test

import (
	"testing"
	"time"

	"cashback-tracker/internal/domain/cashback"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentageFor(t *testing.T) {
	cases := []struct {
		name  string
		total string
		want  int
	}{
		{name: "no purchases", total: "0", want: 10},
		{name: "below low ceiling", total: "999.99", want: 10},
		{name: "exactly 1000", total: "1000.00", want: 10},
		{name: "just above 1000", total: "1000.01", want: 15},
		{name: "exactly 1500", total: "1500.00", want: 15},
		{name: "just above 1500", total: "1500.01", want: 20},
		{name: "well above 1500", total: "10000", want: 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			total := decimal.RequireFromString(c.total)
			assert.Equal(t, c.want, cashback.PercentageFor(total))
		})
	}
}

func TestValueFor(t *testing.T) {
	cases := []struct {
		name       string
		value      string
		percentage int
		want       string
	}{
		{name: "ten percent of 1.1", value: "1.1", percentage: 10, want: "0.11"},
		{name: "twenty percent of 22.1", value: "22.1", percentage: 20, want: "4.42"},
		{name: "fifteen percent of 1200", value: "1200", percentage: 15, want: "180"},
		{name: "rounds half up", value: "0.25", percentage: 10, want: "0.03"},
		{name: "zero value", value: "0", percentage: 10, want: "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			value := decimal.RequireFromString(c.value)
			got := cashback.ValueFor(value, c.percentage)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"got %s, want %s", got, c.want)
		})
	}
}

func TestMonthRange(t *testing.T) {
	start, end := cashback.MonthRange(2020, time.January)

	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC), end)

	t.Run("year rollover", func(t *testing.T) {
		start, end := cashback.MonthRange(2019, time.December)
		assert.Equal(t, time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), end)
	})
}
