package enum

import (
	"encoding/json"
)

// InvoiceType selects the kind of document FIRA issues for an order
type InvoiceType int

const (
	InvoiceTypeFiscal  InvoiceType = 0
	InvoiceTypeRegular InvoiceType = 1
)

func (t InvoiceType) String() string {
	names := [...]string{"FISCAL", "REGULAR"}
	if int(t) < 0 || int(t) >= len(names) {
		return "FISCAL"
	}
	return names[t]
}

func (t InvoiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *InvoiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = InvoiceType(i)
		return nil
	}
	switch str {
	case "REGULAR":
		*t = InvoiceTypeRegular
	default:
		*t = InvoiceTypeFiscal
	}
	return nil
}
