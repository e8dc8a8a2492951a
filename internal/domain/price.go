package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.Korean)

// FormatPrice форматирует цену в корейской локали: 12000 -> "12,000원"
func FormatPrice(price int64) string {
	return pricePrinter.Sprintf("%d원", price)
}
