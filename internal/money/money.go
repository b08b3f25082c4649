// Package money holds the integer currency unit used for prices and totals.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bazaar-be/internal/locale"
)

// Amount is a whole-rupee amount. There is no fractional currency.
type Amount int64

// Times returns a multiplied by qty.
func (a Amount) Times(qty int) Amount {
	return a * Amount(qty)
}

// Format renders the amount with digit grouping and the localized currency label,
// e.g. "Rs. 399,999".
func Format(a Amount, tag language.Tag) string {
	if locale.IsUrdu(tag) {
		return message.NewPrinter(language.Urdu).Sprintf("%d روپے", int64(a))
	}
	return message.NewPrinter(language.English).Sprintf("Rs. %d", int64(a))
}
