package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyalworks/tailorshop-api/pkg/apperror"
)

func TestCustomerIDPattern(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"CUST-PRI-15/08/2025-1234", true},
		{"CUST-XXX-01/01/2025-0000", true},
		{"CUST-PR-15/08/2025-1234", false},   // prefix too short
		{"CUST-PRIY-15/08/2025-1234", false}, // prefix too long
		{"CUST-pri-15/08/2025-1234", false},  // lowercase prefix
		{"CUST-PRI-15-08-2025-1234", false},  // wrong date separator
		{"CUST-PRI-15/08/2025-123", false},   // short suffix
		{"ITEM-PRI-15/08/2025-1234", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CustomerID(tt.id), "id %q", tt.id)
	}
}

func TestItemIDPattern(t *testing.T) {
	assert.True(t, ItemID("ITEM-Ab12Cd3"))
	assert.True(t, ItemID("ITEM-0000000"))
	assert.False(t, ItemID("ITEM-Ab12Cd"))   // too short
	assert.False(t, ItemID("ITEM-Ab12Cd34")) // too long
	assert.False(t, ItemID("ITEM-Ab12Cd!"))  // non-alphanumeric
	assert.False(t, ItemID("item-Ab12Cd3"))
}

func TestOrderIDPattern(t *testing.T) {
	assert.True(t, OrderID("AARI-123456"))
	assert.False(t, OrderID("AARI-12345"))
	assert.False(t, OrderID("AARI-1234567"))
	assert.False(t, OrderID("AARI-12345a"))
}

func TestPhonePattern(t *testing.T) {
	assert.True(t, Phone("+919876543210"))
	assert.True(t, Phone("+916000000000"))
	assert.False(t, Phone("+915876543210")) // starts below 6
	assert.False(t, Phone("9876543210"))    // no prefix
	assert.False(t, Phone("+91987654321"))  // nine digits
	assert.False(t, Phone("+9198765432100"))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "+919876543210"},
		{"919876543210", "+919876543210"},
		{"+919876543210", "+919876543210"},
		{"  9876543210  ", "+919876543210"},
		{"", ""},
		// A bare 10-digit number starting 91 keeps its digits
		{"9187654321", "+919187654321"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestStructProducesFieldErrors(t *testing.T) {
	type form struct {
		CustomerID string `validate:"required,customerid"`
		Phone      string `validate:"required,inphone"`
	}

	err := Struct(&form{CustomerID: "bogus", Phone: "+919876543210"})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "CustomerID", appErr.Errors[0].Field)

	assert.NoError(t, Struct(&form{
		CustomerID: "CUST-PRI-15/08/2025-1234",
		Phone:      "+919876543210",
	}))
}
