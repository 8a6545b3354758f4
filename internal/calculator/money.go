package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// tolerance is one cent. Balances within it of zero count as settled.
var tolerance = decimal.New(1, -2)

func toDecimal(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// withinTolerance reports whether |d| is below one cent.
func withinTolerance(d decimal.Decimal) bool {
	return d.Abs().LessThan(tolerance)
}
