package service

import (
	"strings"
	"testing"

	"github.com/sangkips/confreg-invoicing/internal/domain/entity"
	"github.com/sangkips/confreg-invoicing/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildLineItems_OmitsZeroPriced(t *testing.T) {
	items := BuildLineItems("Conference pass", dec("100"), []entity.Addon{
		{Name: "Gala", Price: dec("50")},
		{Name: "Workshop", Price: dec("0")},
	})

	if len(items) != 2 {
		t.Fatalf("Expected 2 line items, got %d", len(items))
	}
	if items[0].Description != "Conference pass" {
		t.Errorf("Expected ticket first, got %q", items[0].Description)
	}
	if items[1].Description != "Gala" {
		t.Errorf("Expected Gala second, got %q", items[1].Description)
	}

	if !items[0].NetAmount.Equal(dec("80")) || !items[0].TaxAmount.Equal(dec("20")) {
		t.Errorf("Unexpected ticket split: net %s tax %s", items[0].NetAmount, items[0].TaxAmount)
	}
	if !items[1].NetAmount.Equal(dec("40")) || !items[1].TaxAmount.Equal(dec("10")) {
		t.Errorf("Unexpected addon split: net %s tax %s", items[1].NetAmount, items[1].TaxAmount)
	}
}

func TestBuildLineItems_ZeroTicket(t *testing.T) {
	items := BuildLineItems("Speaker pass", decimal.Zero, []entity.Addon{
		{Name: "Gala", Price: dec("50")},
	})

	if len(items) != 1 || items[0].Description != "Gala" {
		t.Fatalf("Expected only the addon, got %+v", items)
	}
}

func TestBuildLineItems_Invariants(t *testing.T) {
	addons := []entity.Addon{
		{Name: "A", Price: dec("0.01")},
		{Name: "B", Price: dec("10.01")},
		{Name: "C", Price: dec("33.33")},
		{Name: "D", Price: dec("199.99")},
	}
	items := BuildLineItems("Ticket", dec("349.50"), addons)

	for _, item := range items {
		if item.Quantity != 1 {
			t.Errorf("%s: expected quantity 1, got %d", item.Description, item.Quantity)
		}
		if !item.TaxRatePercent.Equal(dec("25")) {
			t.Errorf("%s: expected rate 25, got %s", item.Description, item.TaxRatePercent)
		}
		if !item.NetAmount.Add(item.TaxAmount).Equal(item.GrossAmount) {
			t.Errorf("%s: net %s + tax %s != gross %s", item.Description, item.NetAmount, item.TaxAmount, item.GrossAmount)
		}
		if want := item.GrossAmount.DivRound(dec("1.25"), 2); !item.NetAmount.Equal(want) {
			t.Errorf("%s: expected net %s, got %s", item.Description, want, item.NetAmount)
		}
		if !item.UnitPriceNet.Equal(item.NetAmount) {
			t.Errorf("%s: unit price %s != net %s", item.Description, item.UnitPriceNet, item.NetAmount)
		}
	}
}

func TestSumTotals(t *testing.T) {
	items := BuildLineItems("Ticket", dec("100"), []entity.Addon{{Name: "Gala", Price: dec("50")}})
	totals := SumTotals(items)

	if !totals.Net.Equal(dec("120")) || !totals.Tax.Equal(dec("30")) || !totals.Gross.Equal(dec("150")) {
		t.Errorf("Unexpected totals %+v", totals)
	}
}

// Totals are summed from per-line rounded amounts. For three one-cent items
// that gives 0.03 net / 0.00 tax, while splitting the unrounded sums would
// give 0.02 net / 0.01 tax. The per-line figures are what FIRA receives.
func TestSumTotals_DoubleRounding(t *testing.T) {
	cent := dec("0.01")
	items := BuildLineItems("Ticket", cent, []entity.Addon{
		{Name: "A", Price: cent},
		{Name: "B", Price: cent},
	})
	totals := SumTotals(items)

	if !totals.Net.Equal(dec("0.03")) {
		t.Errorf("Expected net 0.03, got %s", totals.Net)
	}
	if !totals.Tax.Equal(dec("0")) {
		t.Errorf("Expected tax 0.00, got %s", totals.Tax)
	}
	if !totals.Gross.Equal(dec("0.03")) {
		t.Errorf("Expected gross 0.03, got %s", totals.Gross)
	}

	unroundedNet, unroundedTax := decimal.Zero, decimal.Zero
	for range items {
		n := cent.Div(dec("1.25"))
		unroundedNet = unroundedNet.Add(n)
		unroundedTax = unroundedTax.Add(cent.Sub(n))
	}
	if unroundedNet.Round(2).Equal(totals.Net) {
		t.Errorf("Expected unrounded net %s to differ from %s", unroundedNet.Round(2), totals.Net)
	}
	if unroundedTax.Round(2).Equal(totals.Tax) {
		t.Errorf("Expected unrounded tax %s to differ from %s", unroundedTax.Round(2), totals.Tax)
	}
}

func TestBuildOrder(t *testing.T) {
	order := &entity.RegistrationOrder{
		InvoiceNumber: "2025-0042",
		TicketName:    "Early bird",
		TicketPrice:   dec("100"),
		Addons: []entity.Addon{
			{Name: "Gala", Price: dec("50")},
			{Name: "Workshop", Price: dec("0")},
		},
		Billing: entity.BillingInfo{
			Name:    "Ana Horvat",
			Company: "Horvat d.o.o.",
			Address: "Ilica 1",
			City:    "Zagreb",
			Zip:     "10000",
			TaxID:   "12345678901",
			Email:   "ana@example.com",
		},
		InvoiceType: enum.InvoiceTypeRegular,
		PaymentType: enum.PaymentTypeCard,
	}

	got := BuildOrder(order, "")

	if got.WebshopOrderID != "2025-0042" {
		t.Errorf("Expected webshop order id 2025-0042, got %q", got.WebshopOrderID)
	}
	if got.Currency != DefaultCurrency {
		t.Errorf("Expected currency %s, got %s", DefaultCurrency, got.Currency)
	}
	if got.InvoiceType != "REGULAR" || got.PaymentType != "CARD" {
		t.Errorf("Unexpected types %s / %s", got.InvoiceType, got.PaymentType)
	}
	if !got.TaxesIncluded {
		t.Error("Expected taxes to be included")
	}
	if len(got.LineItems) != 2 {
		t.Fatalf("Expected 2 line items, got %d", len(got.LineItems))
	}
	if got.LineItems[0].Price != 80 || got.LineItems[0].VAT != 25 || got.LineItems[0].Brutto != 100 {
		t.Errorf("Unexpected first line item %+v", got.LineItems[0])
	}
	if got.Netto != 120 || got.TaxValue != 30 || got.Brutto != 150 {
		t.Errorf("Unexpected totals %v / %v / %v", got.Netto, got.TaxValue, got.Brutto)
	}
	if !strings.Contains(got.InternalNote, "2025-0042") {
		t.Errorf("Expected note to contain the invoice number, got %q", got.InternalNote)
	}

	addr := got.BillingAddress
	if addr.Name != "Horvat d.o.o." {
		t.Errorf("Expected company as name, got %q", addr.Name)
	}
	if addr.Country != "HR" {
		t.Errorf("Expected default country HR, got %q", addr.Country)
	}
	if addr.OIB != "12345678901" || addr.VATNumber != "" {
		t.Errorf("Unexpected tax identifiers %q / %q", addr.OIB, addr.VATNumber)
	}
}

func TestBuildOrder_Defaults(t *testing.T) {
	order := &entity.RegistrationOrder{
		InvoiceNumber: "7",
		TicketName:    "Student",
		TicketPrice:   dec("25"),
		Billing: entity.BillingInfo{
			Name:    "Ivo Ivić",
			Country: "SI",
		},
	}

	got := BuildOrder(order, "USD")

	if got.InvoiceType != "FISCAL" {
		t.Errorf("Expected FISCAL, got %s", got.InvoiceType)
	}
	if got.PaymentType != "BANK_TRANSFER" {
		t.Errorf("Expected BANK_TRANSFER, got %s", got.PaymentType)
	}
	if got.Currency != "USD" {
		t.Errorf("Expected USD, got %s", got.Currency)
	}

	addr := got.BillingAddress
	if addr.Name != "Ivo Ivić" {
		t.Errorf("Expected personal name, got %q", addr.Name)
	}
	if addr.Company != "" || addr.Address1 != "" || addr.City != "" || addr.ZipCode != "" || addr.OIB != "" {
		t.Errorf("Expected empty optional fields, got %+v", addr)
	}
	if addr.Country != "SI" {
		t.Errorf("Expected given country SI, got %q", addr.Country)
	}
}
