package checkout

import (
	"regexp"

	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	zipPattern   = regexp.MustCompile(`^\d{5,6}$`)
)

// ValidateShippingDetails checks the details form. An empty slice means
// the form may advance to the payment step.
func ValidateShippingDetails(d models.ShippingDetails) []global.ValidationError {
	var errs []global.ValidationError

	if d.Name == "" {
		errs = append(errs, global.ValidationError{
			Field: "name", Message: "Full name is required", Code: "required",
		})
	}
	if d.Email == "" || !emailPattern.MatchString(d.Email) {
		errs = append(errs, global.ValidationError{
			Field: "email", Message: "A valid email is required", Code: "invalid_format",
		})
	}
	if d.Phone == "" || !phonePattern.MatchString(d.Phone) {
		errs = append(errs, global.ValidationError{
			Field: "phone", Message: "A valid 10-digit phone number is required", Code: "invalid_format",
		})
	}
	if d.Address == "" {
		errs = append(errs, global.ValidationError{
			Field: "address", Message: "Address is required", Code: "required",
		})
	}
	if d.City == "" {
		errs = append(errs, global.ValidationError{
			Field: "city", Message: "City is required", Code: "required",
		})
	}
	if d.Zip == "" || !zipPattern.MatchString(d.Zip) {
		errs = append(errs, global.ValidationError{
			Field: "zip", Message: "A valid postal code is required", Code: "invalid_format",
		})
	}

	return errs
}

// PaymentMethods the storefront accepts.
var PaymentMethods = []string{"gpay", "phonepe", "paytm", "card"}

func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
