package fira

import "github.com/shopspring/decimal"

const (
	WebshopTypeCustom   = "CUSTOM"
	WebshopEventCreated = "order_created"
)

// WebshopOrder is the body of POST /api/v1/webshop/order/custom.
type WebshopOrder struct {
	WebshopOrderID string     `json:"webshopOrderId"`
	WebshopType    string     `json:"webshopType"`
	WebshopEvent   string     `json:"webshopEvent"`
	InvoiceType    string     `json:"invoiceType"`
	PaymentType    string     `json:"paymentType"`
	Currency       string     `json:"currency"`
	TaxesIncluded  bool       `json:"taxesIncluded"`
	BillingAddress Address    `json:"billingAddress"`
	LineItems      []LineItem `json:"lineItems"`
	Netto          float64    `json:"netto"`
	TaxValue       float64    `json:"taxValue"`
	Brutto         float64    `json:"brutto"`
	InternalNote   string     `json:"internalNote"`
}

// Address is FIRA's billing address shape. Optional fields are sent as
// empty strings, never omitted.
type Address struct {
	Name      string `json:"name"`
	Company   string `json:"company"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	OIB       string `json:"oib"`
	VATNumber string `json:"vatNumber"`
	Email     string `json:"email"`
}

// LineItem is one order position. Price is the net unit price.
type LineItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	VAT         float64 `json:"vat"`
	Netto       float64 `json:"netto"`
	TaxValue    float64 `json:"taxValue"`
	Brutto      float64 `json:"brutto"`
}

// Amount converts a two-place decimal to the JSON number FIRA expects.
func Amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
