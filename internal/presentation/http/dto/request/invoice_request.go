package request

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/confreg-invoicing/internal/domain/entity"
	"github.com/sangkips/confreg-invoicing/internal/domain/enum"
	"github.com/sangkips/confreg-invoicing/pkg/apperror"
	"github.com/shopspring/decimal"
)

// AddonRequest is one optional extra booked with the ticket
type AddonRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// BillingRequest carries the invoice recipient. Fields are taken as-is.
type BillingRequest struct {
	Name      string `json:"name"`
	Company   string `json:"company"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	TaxID     string `json:"tax_id"`
	VATNumber string `json:"vat_number"`
	Email     string `json:"email"`
}

// InvoiceRequest is the request body for previewing or submitting an invoice.
type InvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number"`
	TicketName    string           `json:"ticket_name"`
	TicketPrice   decimal.Decimal  `json:"ticket_price"`
	Addons        []AddonRequest   `json:"addons"`
	Billing       BillingRequest   `json:"billing"`
	InvoiceType   enum.InvoiceType `json:"invoice_type"`
	PaymentType   enum.PaymentType `json:"payment_type"`
}

// Validate rejects negative prices
func (r *InvoiceRequest) Validate() error {
	var fields []apperror.FieldError

	if r.TicketPrice.IsNegative() {
		fields = append(fields, apperror.FieldError{Field: "ticket_price", Message: "must not be negative"})
	}
	for i, addon := range r.Addons {
		if addon.Price.IsNegative() {
			fields = append(fields, apperror.FieldError{
				Field:   fmt.Sprintf("addons[%d].price", i),
				Message: "must not be negative",
			})
		}
	}

	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// ToEntity converts the request into a registration order. A missing
// invoice number is replaced by a generated one.
func (r *InvoiceRequest) ToEntity() *entity.RegistrationOrder {
	invoiceNo := r.InvoiceNumber
	if invoiceNo == "" {
		invoiceNo = NewInvoiceNumber()
	}

	addons := make([]entity.Addon, 0, len(r.Addons))
	for _, a := range r.Addons {
		addons = append(addons, entity.Addon{Name: a.Name, Price: a.Price})
	}

	return &entity.RegistrationOrder{
		InvoiceNumber: invoiceNo,
		TicketName:    r.TicketName,
		TicketPrice:   r.TicketPrice,
		Addons:        addons,
		Billing: entity.BillingInfo{
			Name:      r.Billing.Name,
			Company:   r.Billing.Company,
			Address:   r.Billing.Address,
			City:      r.Billing.City,
			Zip:       r.Billing.Zip,
			Country:   r.Billing.Country,
			TaxID:     r.Billing.TaxID,
			VATNumber: r.Billing.VATNumber,
			Email:     r.Billing.Email,
		},
		InvoiceType: r.InvoiceType,
		PaymentType: r.PaymentType,
	}
}

// NewInvoiceNumber generates a registration number
func NewInvoiceNumber() string {
	return fmt.Sprintf("REG-%s", uuid.New().String()[:8])
}
