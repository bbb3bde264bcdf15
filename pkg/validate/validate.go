package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/seyalworks/tailorshop-api/pkg/apperror"
)

// Canonical identifier and phone formats. These patterns are the single
// source of truth for input validation; nothing else in the codebase
// re-checks the same rules.
var (
	customerIDPattern = regexp.MustCompile(`^CUST-[A-Z]{3}-\d{2}/\d{2}/\d{4}-\d{4}$`)
	itemIDPattern     = regexp.MustCompile(`^ITEM-[A-Za-z0-9]{7}$`)
	orderIDPattern    = regexp.MustCompile(`^AARI-\d{6}$`)
	phonePattern      = regexp.MustCompile(`^\+91[6-9]\d{9}$`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	val.RegisterValidation("customerid", func(fl validator.FieldLevel) bool {
		return customerIDPattern.MatchString(fl.Field().String())
	})
	val.RegisterValidation("itemid", func(fl validator.FieldLevel) bool {
		return itemIDPattern.MatchString(fl.Field().String())
	})
	val.RegisterValidation("orderid", func(fl validator.FieldLevel) bool {
		return orderIDPattern.MatchString(fl.Field().String())
	})
	val.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return val
}

// CustomerID reports whether s is a well-formed customer identifier.
func CustomerID(s string) bool { return customerIDPattern.MatchString(s) }

// ItemID reports whether s is a well-formed catalog item identifier.
func ItemID(s string) bool { return itemIDPattern.MatchString(s) }

// OrderID reports whether s is a well-formed work order identifier.
func OrderID(s string) bool { return orderIDPattern.MatchString(s) }

// Phone reports whether s is a well-formed Indian mobile number.
func Phone(s string) bool { return phonePattern.MatchString(s) }

// NormalizePhone ensures the number carries the +91 prefix. Applied on every
// customer save before validation.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+91") {
		return s
	}
	if strings.HasPrefix(s, "91") && len(s) == 12 {
		return "+" + s
	}
	return "+91" + s
}

// Struct validates a request struct against its validate tags and converts
// any violations into a 400 AppError carrying per-field messages.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewBadRequestError("Invalid request body")
	}

	fieldErrors := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperror.NewValidationError(fieldErrors)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "customerid":
		return "must match CUST-XXX-dd/mm/yyyy-XXXX"
	case "itemid":
		return "must match ITEM- followed by 7 alphanumerics"
	case "orderid":
		return "must match AARI- followed by 6 digits"
	case "inphone":
		return "must be +91 followed by 10 digits starting 6-9"
	case "min":
		return "is below the minimum of " + fe.Param()
	case "max":
		return "is above the maximum of " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "dive":
		return "contains an invalid element"
	default:
		return "is invalid"
	}
}
