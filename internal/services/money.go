package service

import (
	"github.com/shopspring/decimal"
)

func money(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount)
}

func lineTotal(unitPrice float64, quantity int) decimal.Decimal {
	return money(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}

func toFloat(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}
