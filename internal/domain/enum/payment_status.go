package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the payment state of a bill. It is a pure
// function of (total, paidAmount) and is recomputed on every write.
type PaymentStatus int

const (
	PaymentStatusPending       PaymentStatus = 0
	PaymentStatusPartiallyPaid PaymentStatus = 1
	PaymentStatusPaid          PaymentStatus = 2
)

// PaymentStatusFor derives the status from a bill's total and paid amount.
// Paid wins when paidAmount covers the total, including the zero-total case.
func PaymentStatusFor(total, paidAmount int64) PaymentStatus {
	switch {
	case paidAmount >= total:
		return PaymentStatusPaid
	case paidAmount > 0:
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusPending
	}
}

func (s PaymentStatus) String() string {
	return [...]string{"Pending", "Partially Paid", "Paid"}[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = PaymentStatusPending
	case "Partially Paid":
		*s = PaymentStatusPartiallyPaid
	case "Paid":
		*s = PaymentStatusPaid
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
