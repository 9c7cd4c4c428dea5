package entity

import (
	"github.com/sangkips/confreg-invoicing/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// DefaultCountry is used when billing data carries no country
const DefaultCountry = "HR"

// Addon is an optional extra booked with a ticket (gala dinner, workshop...)
type Addon struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// BillingInfo holds the invoice recipient. Company, TaxID and VATNumber are optional.
type BillingInfo struct {
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	TaxID     string `json:"tax_id,omitempty"`
	VATNumber string `json:"vat_number,omitempty"`
	Email     string `json:"email"`
}

// RegistrationOrder is a conference registration ready to be invoiced.
// It is built per request and never persisted.
type RegistrationOrder struct {
	InvoiceNumber string           `json:"invoice_number"`
	TicketName    string           `json:"ticket_name"`
	TicketPrice   decimal.Decimal  `json:"ticket_price"`
	Addons        []Addon          `json:"addons"`
	Billing       BillingInfo      `json:"billing"`
	InvoiceType   enum.InvoiceType `json:"invoice_type"`
	PaymentType   enum.PaymentType `json:"payment_type"`
}
