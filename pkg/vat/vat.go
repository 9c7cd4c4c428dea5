// Package vat splits VAT-inclusive (gross) amounts into net and tax parts.
package vat

import "github.com/shopspring/decimal"

// StandardRatePercent is the Croatian standard VAT rate.
const StandardRatePercent = 25

// Places is the number of decimal places every amount is rounded to.
const Places = 2

var hundred = decimal.NewFromInt(100)

// Breakdown is a gross amount split into its net and tax parts.
type Breakdown struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Gross decimal.Decimal `json:"gross"`
}

// Calculate splits gross at the standard rate.
func Calculate(gross decimal.Decimal) Breakdown {
	return CalculateAt(gross, decimal.NewFromInt(StandardRatePercent))
}

// CalculateAt splits gross at ratePercent. Net is gross divided by
// (1 + rate) rounded half-up to two places, tax is the rounded remainder.
// Gross is normalized to two places first so Net + Tax == Gross.
func CalculateAt(gross, ratePercent decimal.Decimal) Breakdown {
	gross = Round(gross)
	divisor := hundred.Add(ratePercent).Div(hundred)
	net := gross.DivRound(divisor, Places)
	tax := Round(gross.Sub(net))

	return Breakdown{
		Net:   net,
		Tax:   tax,
		Gross: gross,
	}
}

// Round rounds half away from zero to two places, which is half-up for
// the non-negative amounts handled here.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}
