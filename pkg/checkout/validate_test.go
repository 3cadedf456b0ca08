package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floraform.ca/storefront/pkg/models"
)

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "5551234567",
		Address: "1 Main St",
		City:    "Springfield",
		Zip:     "12345",
	}
}

func TestValidShippingDetailsPass(t *testing.T) {
	assert.Empty(t, ValidateShippingDetails(validShipping()))
}

func TestInvalidEmailProducesFieldError(t *testing.T) {
	d := validShipping()
	d.Email = "not-an-email"

	errs := ValidateShippingDetails(d)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestPhoneMustBeExactlyTenDigits(t *testing.T) {
	for _, phone := range []string{"", "123", "12345678901", "555-123-456"} {
		d := validShipping()
		d.Phone = phone

		errs := ValidateShippingDetails(d)
		require.Len(t, errs, 1, "phone %q should fail", phone)
		assert.Equal(t, "phone", errs[0].Field)
	}
}

func TestZipAcceptsFiveOrSixDigits(t *testing.T) {
	for _, zip := range []string{"12345", "123456"} {
		d := validShipping()
		d.Zip = zip
		assert.Empty(t, ValidateShippingDetails(d), "zip %q should pass", zip)
	}

	for _, zip := range []string{"1234", "1234567", "ABCDE"} {
		d := validShipping()
		d.Zip = zip

		errs := ValidateShippingDetails(d)
		require.Len(t, errs, 1, "zip %q should fail", zip)
		assert.Equal(t, "zip", errs[0].Field)
	}
}

func TestEmptyFormReportsEveryField(t *testing.T) {
	errs := ValidateShippingDetails(models.ShippingDetails{})
	require.Len(t, errs, 6)

	seen := make(map[string]bool)
	for _, e := range errs {
		seen[e.Field] = true
	}
	for _, field := range []string{"name", "email", "phone", "address", "city", "zip"} {
		assert.True(t, seen[field], "missing error for %s", field)
	}
}

func TestPaymentMethodSet(t *testing.T) {
	for _, m := range PaymentMethods {
		assert.True(t, IsValidPaymentMethod(m))
	}
	assert.False(t, IsValidPaymentMethod("cheque"))
	assert.False(t, IsValidPaymentMethod(""))
}
