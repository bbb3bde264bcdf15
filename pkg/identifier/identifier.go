// Package identifier generates the shop's human-facing record identifiers.
// Row primary keys are UUIDs; these ids are what appears on printed bills
// and order slips.
package identifier

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

const (
	digits   = "0123456789"
	alphanum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// NewCustomerID builds a customer id of the form CUST-XXX-dd/mm/yyyy-XXXX
// where XXX is derived from the customer's name and the date is the
// creation date.
func NewCustomerID(name string, at time.Time) string {
	return "CUST-" + namePrefix(name) + "-" + at.Format("02/01/2006") + "-" + randomFrom(digits, 4)
}

// NewItemID builds a catalog item id of the form ITEM- plus 7 alphanumerics.
func NewItemID() string {
	return "ITEM-" + randomFrom(alphanum, 7)
}

// NewOrderID builds a work order id of the form AARI- plus 6 digits.
func NewOrderID() string {
	return "AARI-" + randomFrom(digits, 6)
}

// namePrefix takes the first three letters of the name, uppercased, padding
// with X when the name is too short.
func namePrefix(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) && r < 128 {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() == 3 {
				break
			}
		}
	}
	for b.Len() < 3 {
		b.WriteByte('X')
	}
	return b.String()
}

func randomFrom(charset string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
