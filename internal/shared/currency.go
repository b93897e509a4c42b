package shared

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount as Indonesian Rupiah with no fraction digits,
// e.g. Rp62.500.000. Rupiah amounts in this system are whole units.
func FormatIDR(amount decimal.Decimal) string {
	v, _ := amount.Round(0).Float64()
	return idrPrinter.Sprintf("Rp%v", number.Decimal(v, number.MaxFractionDigits(0)))
}
