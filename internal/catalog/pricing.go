package catalog

import (
	"fmt"
	"strings"
)

// Unlock pricing shown on the preview CTA and the payment screen.
const (
	PriceOld = 12.0
	PriceNew = 5.5
)

// FormatBRL renders a price in Brazilian real notation (comma decimal).
func FormatBRL(value float64) string {
	return "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", value), ".", ",")
}
