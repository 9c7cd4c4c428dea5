package service

import (
	"fmt"

	"github.com/sangkips/confreg-invoicing/internal/domain/entity"
	"github.com/sangkips/confreg-invoicing/pkg/fira"
	"github.com/sangkips/confreg-invoicing/pkg/vat"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured
const DefaultCurrency = "EUR"

// BuildLineItems turns the ticket and its addons into VAT-split line items.
// The ticket comes first, addons follow in the given order; anything priced
// at zero is left out.
func BuildLineItems(ticketName string, ticketPrice decimal.Decimal, addons []entity.Addon) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(addons)+1)

	if ticketPrice.IsPositive() {
		items = append(items, newLineItem(ticketName, ticketPrice))
	}

	for _, addon := range addons {
		if !addon.Price.IsPositive() {
			continue
		}
		items = append(items, newLineItem(addon.Name, addon.Price))
	}

	return items
}

func newLineItem(description string, gross decimal.Decimal) entity.LineItem {
	b := vat.Calculate(gross)
	return entity.LineItem{
		Description:    description,
		Quantity:       1,
		UnitPriceNet:   b.Net,
		TaxRatePercent: decimal.NewFromInt(vat.StandardRatePercent),
		NetAmount:      b.Net,
		TaxAmount:      b.Tax,
		GrossAmount:    b.Gross,
	}
}

// SumTotals adds up the rounded line amounts and rounds each sum again.
// The result can differ by a cent from rounding the unrounded sums.
func SumTotals(items []entity.LineItem) entity.OrderTotals {
	net, tax, gross := decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range items {
		net = net.Add(item.NetAmount)
		tax = tax.Add(item.TaxAmount)
		gross = gross.Add(item.GrossAmount)
	}

	return entity.OrderTotals{
		Net:   vat.Round(net),
		Tax:   vat.Round(tax),
		Gross: vat.Round(gross),
	}
}

// BuildOrder maps a registration onto FIRA's custom webshop order.
func BuildOrder(order *entity.RegistrationOrder, currency string) *fira.WebshopOrder {
	if currency == "" {
		currency = DefaultCurrency
	}

	items := BuildLineItems(order.TicketName, order.TicketPrice, order.Addons)
	totals := SumTotals(items)

	lineItems := make([]fira.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, fira.LineItem{
			Name:        item.Description,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       fira.Amount(item.UnitPriceNet),
			VAT:         item.TaxRatePercent.InexactFloat64(),
			Netto:       fira.Amount(item.NetAmount),
			TaxValue:    fira.Amount(item.TaxAmount),
			Brutto:      fira.Amount(item.GrossAmount),
		})
	}

	return &fira.WebshopOrder{
		WebshopOrderID: order.InvoiceNumber,
		WebshopType:    fira.WebshopTypeCustom,
		WebshopEvent:   fira.WebshopEventCreated,
		InvoiceType:    order.InvoiceType.String(),
		PaymentType:    order.PaymentType.String(),
		Currency:       currency,
		TaxesIncluded:  true,
		BillingAddress: BuildBillingAddress(order.Billing),
		LineItems:      lineItems,
		Netto:          fira.Amount(totals.Net),
		TaxValue:       fira.Amount(totals.Tax),
		Brutto:         fira.Amount(totals.Gross),
		InternalNote:   RegistrationNote(order.InvoiceNumber),
	}
}

// BuildBillingAddress maps billing data to FIRA's address. The invoice is
// addressed to the company when one is given, otherwise to the person.
func BuildBillingAddress(b entity.BillingInfo) fira.Address {
	name := b.Company
	if name == "" {
		name = b.Name
	}

	country := b.Country
	if country == "" {
		country = entity.DefaultCountry
	}

	return fira.Address{
		Name:      name,
		Company:   b.Company,
		Address1:  b.Address,
		City:      b.City,
		ZipCode:   b.Zip,
		Country:   country,
		OIB:       b.TaxID,
		VATNumber: b.VATNumber,
		Email:     b.Email,
	}
}

// RegistrationNote is the human readable note attached to every order
func RegistrationNote(invoiceNumber string) string {
	return fmt.Sprintf("Conference registration, invoice no. %s", invoiceNumber)
}
