package enum

import (
	"encoding/json"
)

// PaymentType represents how the registration is paid
type PaymentType int

const (
	PaymentTypeBankTransfer PaymentType = 0
	PaymentTypeCard         PaymentType = 1
	PaymentTypeCash         PaymentType = 2
)

func (p PaymentType) String() string {
	names := [...]string{"BANK_TRANSFER", "CARD", "CASH"}
	if int(p) < 0 || int(p) >= len(names) {
		return "BANK_TRANSFER"
	}
	return names[p]
}

func (p PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentType(i)
		return nil
	}
	switch str {
	case "CARD":
		*p = PaymentTypeCard
	case "CASH":
		*p = PaymentTypeCash
	default:
		*p = PaymentTypeBankTransfer
	}
	return nil
}
