package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the currency label used when none is configured.
const DefaultCurrency = "MVR"

var printer = message.NewPrinter(language.English)

// Format renders a whole-unit amount with thousands separators, e.g. "MVR 1,250".
// Negative amounts put the sign before the currency: "-MVR 300".
func Format(currency string, amount int) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	if amount < 0 {
		return printer.Sprintf("-%s %d", currency, -amount)
	}
	return printer.Sprintf("%s %d", currency, amount)
}

// Hours renders a fractional number of hours with one decimal place, e.g. "3.5".
func Hours(h float64) string {
	return printer.Sprintf("%.1f", h)
}

// Pay renders a fractional pay estimate rounded to whole units, e.g. "MVR 1,650".
func Pay(currency string, amount float64) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return printer.Sprintf("%s %.0f", currency, amount)
}
