// Package report turns a reconciled loan table into the dashboard, institution
// listing and collateral views, and formats their numbers for display.
package report

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrNoData is returned by every view when no disbursement table was uploaded.
var ErrNoData = errors.New("no loan data, please upload a disbursement file")

// ErrNoCollateral is returned by Collateral when the table has no 담보종류 column.
var ErrNoCollateral = errors.New("no collateral data")

// Eok is 억 (10^8), the unit dashboard totals are shown in.
var Eok = decimal.NewFromInt(100000000)

var printer = message.NewPrinter(language.Korean)

// FormatWon renders an amount in won with thousands separators and no decimals.
func FormatWon(d decimal.Decimal) string {
	return printer.Sprintf("%.0f", d.Round(0).InexactFloat64())
}

// FormatEok renders an amount in units of 억원 with one decimal.
func FormatEok(d decimal.Decimal) string {
	return printer.Sprintf("%.1f 억원", ToEok(d).InexactFloat64())
}

// FormatRate renders a percentage with one decimal and a percent sign.
func FormatRate(d decimal.Decimal) string {
	return printer.Sprintf("%.1f%%", d.InexactFloat64())
}

// ToEok converts won to 억원.
func ToEok(d decimal.Decimal) decimal.Decimal {
	return d.Div(Eok)
}
