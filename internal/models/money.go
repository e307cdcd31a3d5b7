package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money columns are numeric(18,2) and interest columns numeric(9,4). Values
// that do not fit are rejected up front instead of being rounded or
// overflowing in the database.
const (
	MoneyScale    = 2
	InterestScale = 4
)

var (
	maxMoney    = decimal.New(1, 18-MoneyScale)
	maxInterest = decimal.New(1, 9-InterestScale)
)

// CheckMoney validates an amount or balance against the money column.
func CheckMoney(field string, d decimal.Decimal) error {
	return checkNumeric(field, d, MoneyScale, maxMoney)
}

// CheckInterest validates a loan interest rate against the interest column.
func CheckInterest(d decimal.Decimal) error {
	return checkNumeric("interest", d, InterestScale, maxInterest)
}

func checkNumeric(field string, d decimal.Decimal, scale int32, limit decimal.Decimal) error {
	if !d.Equal(d.Round(scale)) {
		return Invalid(fmt.Sprintf("%s must have at most %d decimal places", field, scale))
	}
	if d.Abs().GreaterThanOrEqual(limit) {
		return Invalid(fmt.Sprintf("%s must be less than %s", field, limit))
	}
	return nil
}
