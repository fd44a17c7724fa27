package services

import (
	"errors"
	"nutcha-shop/models"
	"reflect"
	"regexp"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// newCheckoutValidator configures a validator with the step-local rules:
// 4-digit postal code, 16-digit card number (spaces already stripped),
// MM/YY expiry with month 01-12, and 3-4 digit CVV. Error keys follow the
// json tag of the failing field.
func newCheckoutValidator() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerRegex(v, "postal", `^[0-9]{4}$`)
	registerRegex(v, "card", `^[0-9]{16}$`)
	registerRegex(v, "expiry", `^(0[1-9]|1[0-2])/[0-9]{2}$`)
	registerRegex(v, "cvv", `^[0-9]{3,4}$`)

	return v
}

func registerRegex(v *validatorv10.Validate, tag, pattern string) {
	re := regexp.MustCompile(pattern)
	_ = v.RegisterValidation(tag, func(fl validatorv10.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
}

// fieldErrors converts validator output into the field-keyed map the client
// renders inline. Validation failures never abort the process.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = messageFor(fe)
		}
	} else {
		out["form"] = err.Error()
	}
	return out
}

func messageFor(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return labelFor(fe.Field()) + " is required"
	case "postal":
		return "Postal code must be exactly 4 digits"
	case "card":
		return "Card number must be 16 digits"
	case "expiry":
		return "Expiry date must be in MM/YY format"
	case "cvv":
		return "CVV must be 3 or 4 digits"
	}
	return labelFor(fe.Field()) + " is invalid"
}

func labelFor(field string) string {
	switch field {
	case "full_name":
		return "Full name"
	case "email":
		return "Email"
	case "phone":
		return "Phone"
	case "address":
		return "Address"
	case "city":
		return "City"
	case "postal_code":
		return "Postal code"
	case "card_number":
		return "Card number"
	case "expiry_date":
		return "Expiry date"
	case "cvv":
		return "CVV"
	case "name_on_card":
		return "Name on card"
	}
	return field
}

// All fields are trimmed before emptiness checks; the card number also has
// its inner spaces stripped before the digit count is applied.

func trimBilling(form *models.BillingDetails) {
	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Address = strings.TrimSpace(form.Address)
}

func trimShipping(form *models.ShippingDetails) {
	form.FullName = strings.TrimSpace(form.FullName)
	form.Address = strings.TrimSpace(form.Address)
	form.City = strings.TrimSpace(form.City)
	form.PostalCode = strings.TrimSpace(form.PostalCode)
}

func trimPayment(form *models.PaymentDetails) {
	form.CardNumber = strings.ReplaceAll(strings.TrimSpace(form.CardNumber), " ", "")
	form.ExpiryDate = strings.TrimSpace(form.ExpiryDate)
	form.CVV = strings.TrimSpace(form.CVV)
	form.NameOnCard = strings.TrimSpace(form.NameOnCard)
}
