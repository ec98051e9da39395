package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func FormatAmountWithCurrency(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), currency)
}

func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return amount, nil
}
