package utils

import (
	"fmt"
	"strings"
)

// zeroDecimalCurrencies have no minor unit; their amounts are stored as-is.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
}

// FormatAmount renders a stored minor-unit ticket price for the admin list
// views, e.g. FormatAmount(1550, "usd") == "USD 15.50".
func FormatAmount(minorUnits int64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = "USD"
	}
	if zeroDecimalCurrencies[code] {
		return fmt.Sprintf("%s %d", code, minorUnits)
	}
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s %s%d.%02d", code, sign, minorUnits/100, minorUnits%100)
}
