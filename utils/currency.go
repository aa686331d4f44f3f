package utils

import (
	"fmt"
	"strings"
)

// FormatINR renders an amount for invoices, e.g. 3000 -> "Rs 3,000.00".
// Core PDF fonts cannot draw the rupee sign, hence the "Rs" prefix.
func FormatINR(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	out := strings.Join(groups, ",") + "." + decimalPart
	if negative {
		out = "-" + out
	}
	return "Rs " + out
}
