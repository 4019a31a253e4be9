package utils

import (
	"fmt"
	"strconv"
)

// StrToInt converts a string to an int.
// Returns 0 and an error if the conversion fails.
func StrToInt(s string) (int, error) {
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return num, nil
}

// FormatMoney renders an amount with two decimals and a currency code,
// e.g. "12.50 EUR".
func FormatMoney(amount float64, currencyCode string) string {
	if currencyCode == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currencyCode)
}
