package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders whole dollars with US digit grouping, e.g. $1,234.
func FormatUSD(amount int64) string {
	if amount < 0 {
		return usdPrinter.Sprintf("-$%d", -amount)
	}
	return usdPrinter.Sprintf("$%d", amount)
}
