package entity

import "github.com/shopspring/decimal"

// LineItem is a single priced position on an invoice. Amounts are VAT
// inclusive in GrossAmount and rounded to two places.
type LineItem struct {
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	UnitPriceNet   decimal.Decimal `json:"unit_price_net"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
}

// OrderTotals sums the already rounded line items.
type OrderTotals struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Gross decimal.Decimal `json:"gross"`
}
