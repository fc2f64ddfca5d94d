package types

import "github.com/shopspring/decimal"

// RoundCurrency applies the two-decimal rounding used everywhere a rupee
// amount leaves the aggregation layer. Rounding happens exactly once,
// here; report formatters serialize the result verbatim.
func RoundCurrency(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatCurrency renders a rupee amount with exactly two decimals.
func FormatCurrency(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPercent renders a percentage with one decimal, matching the
// dashboard's repeat-rate and success-rate figures.
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}
