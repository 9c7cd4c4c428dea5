package enum

import (
	"encoding/json"
	"testing"
)

func TestInvoiceType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected InvoiceType
	}{
		{`"FISCAL"`, InvoiceTypeFiscal},
		{`"REGULAR"`, InvoiceTypeRegular},
		{`""`, InvoiceTypeFiscal},
		{`"unknown"`, InvoiceTypeFiscal},
		{`1`, InvoiceTypeRegular},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got InvoiceType
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPaymentType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected PaymentType
	}{
		{`"BANK_TRANSFER"`, PaymentTypeBankTransfer},
		{`"CARD"`, PaymentTypeCard},
		{`"CASH"`, PaymentTypeCash},
		{`""`, PaymentTypeBankTransfer},
		{`2`, PaymentTypeCash},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got PaymentType
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestString_OutOfRange(t *testing.T) {
	if got := InvoiceType(9).String(); got != "FISCAL" {
		t.Errorf("Expected FISCAL, got %s", got)
	}
	if got := PaymentType(-1).String(); got != "BANK_TRANSFER" {
		t.Errorf("Expected BANK_TRANSFER, got %s", got)
	}
}
