// AngelaMos | 2026
// numeric.go

package core

import "github.com/shopspring/decimal"

// Numeric describes a NUMERIC(Precision, Scale) column. Values are rounded
// the way Postgres stores them, half away from zero, so what a caller gets
// back matches what a later read returns.
type Numeric struct {
	Precision int32
	Scale     int32
}

var (
	Money    = Numeric{Precision: 10, Scale: 2}
	SizeCm   = Numeric{Precision: 8, Scale: 2}
	WeightKg = Numeric{Precision: 8, Scale: 3}
)

func (n Numeric) Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(n.Scale).InexactFloat64()
}

// Times multiplies v by count without binary rounding error and rounds the
// product to the column scale.
func (n Numeric) Times(v float64, count int) float64 {
	return decimal.NewFromFloat(v).
		Mul(decimal.NewFromInt(int64(count))).
		Round(n.Scale).
		InexactFloat64()
}

// Fits reports whether v, once rounded, fits the column's integer digits.
func (n Numeric) Fits(v float64) bool {
	limit := decimal.New(1, n.Precision-n.Scale)
	return decimal.NewFromFloat(v).Round(n.Scale).Abs().LessThan(limit)
}
