package report

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormat renders fee amounts as localized currency, e.g. "$1,234.50".
//
// The symbol is the currency's narrow symbol in the given locale and the
// amount uses the locale's grouping and decimal separators with two
// fraction digits. Negative amounts are wrapped in parentheses, the way
// accounting reports show credits.
type MoneyFormat struct {
	printer *message.Printer
	symbol  string
}

// NewMoneyFormat creates a MoneyFormat for the given locale and currency.
func NewMoneyFormat(tag language.Tag, unit currency.Unit) *MoneyFormat {
	p := message.NewPrinter(tag)
	return &MoneyFormat{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}
}

// DefaultMoneyFormat formats US dollars for the en-US locale.
func DefaultMoneyFormat() *MoneyFormat {
	return NewMoneyFormat(language.AmericanEnglish, currency.USD)
}

// Format renders amount with the currency symbol.
func (m *MoneyFormat) Format(amount float64) string {
	if amount < 0 {
		return "(" + m.symbol + m.printer.Sprintf("%.2f", -amount) + ")"
	}
	return m.symbol + m.printer.Sprintf("%.2f", amount)
}

// Symbol returns the currency symbol used by Format.
func (m *MoneyFormat) Symbol() string {
	return m.symbol
}
