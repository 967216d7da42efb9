package amount

import "github.com/shopspring/decimal"

// Column shapes of the schema: money is NUMERIC(12,2), quantities NUMERIC(12,3).
const (
	precision     = 12
	MoneyScale    = 2
	QuantityScale = 3
)

// Fits reports whether d is stored in a NUMERIC(12, scale) column without
// rounding or overflow. Trailing zeros beyond the scale are accepted.
func Fits(d decimal.Decimal, scale int32) bool {
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, precision-scale))
}

func IsMoney(d decimal.Decimal) bool {
	return Fits(d, MoneyScale)
}

func IsQuantity(d decimal.Decimal) bool {
	return Fits(d, QuantityScale)
}
