package ptr

import "github.com/shopspring/decimal"

func String(s string) *string {
	return &s
}

func Decimal(d decimal.Decimal) *decimal.Decimal {
	return &d
}
