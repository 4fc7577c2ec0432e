// Package cashback holds the tier table applied to a reseller's monthly
// purchase total. Thresholds are fixed business constants, not policy.
package cashback

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	tierLowCeiling = decimal.NewFromInt(1000)
	tierMidCeiling = decimal.NewFromInt(1500)
	oneHundred     = decimal.NewFromInt(100)
)

// PercentageFor returns the cashback percentage for a calendar month's
// total purchase value. A month with no purchases (total zero) falls in
// the lowest tier.
func PercentageFor(monthTotal decimal.Decimal) int {
	switch {
	case monthTotal.LessThanOrEqual(tierLowCeiling):
		return 10
	case monthTotal.LessThanOrEqual(tierMidCeiling):
		return 15
	default:
		return 20
	}
}

// ValueFor computes round(value * percentage / 100, 2).
func ValueFor(value decimal.Decimal, percentage int) decimal.Decimal {
	return value.Mul(decimal.NewFromInt(int64(percentage))).Div(oneHundred).Round(2)
}

// MonthRange returns the half-open interval [first day of month, first
// day of next month) in UTC. A purchase timestamped exactly at month
// start counts; one at the next month's start does not.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
