// Package money keeps all monetary rounding behind one decimal-backed helper
// so ledger amounts are always fixed to 2 places.
package money

import "github.com/shopspring/decimal"

// Round rounds v half-up to 2 decimal places.
func Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Add returns a+b rounded to 2 decimal places.
func Add(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Sub returns a-b rounded to 2 decimal places.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Split returns the per-person share of total divided count ways, rounded to
// 2 decimal places. Rounding drift is accepted, not redistributed.
func Split(total float64, count int) float64 {
	f, _ := decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(count))).Round(2).Float64()
	return f
}
