package identifier

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	customerIDRe = regexp.MustCompile(`^CUST-[A-Z]{3}-\d{2}/\d{2}/\d{4}-\d{4}$`)
	itemIDRe     = regexp.MustCompile(`^ITEM-[A-Za-z0-9]{7}$`)
	orderIDRe    = regexp.MustCompile(`^AARI-\d{6}$`)
)

func TestNewCustomerID(t *testing.T) {
	at := time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

	id := NewCustomerID("Priya", at)
	assert.Regexp(t, customerIDRe, id)
	assert.Contains(t, id, "CUST-PRI-15/08/2025-")
}

func TestNewCustomerIDNamePrefix(t *testing.T) {
	at := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		prefix string
	}{
		{"Priya", "PRI"},
		{"priya", "PRI"},
		{"Al", "ALX"},      // short name padded with X
		{"J", "JXX"},
		{"", "XXX"},
		{"R. Kumar", "RKU"}, // punctuation and spaces skipped
		{"  anu  ", "ANU"},
	}

	for _, tt := range tests {
		id := NewCustomerID(tt.name, at)
		assert.Contains(t, id, "CUST-"+tt.prefix+"-02/01/2025-", "name %q", tt.name)
		assert.Regexp(t, customerIDRe, id)
	}
}

func TestNewItemID(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, itemIDRe, NewItemID())
	}
}

func TestNewOrderID(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, orderIDRe, NewOrderID())
	}
}
