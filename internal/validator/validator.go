package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"time"
	"unicode"

	"github.com/evently/event-booking-api/api"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

// Exported message formats so tests can assert on exact issues.
const (
	ErrRequired    = "is required"
	ErrEmail       = "must be a valid email address"
	ErrMinValue    = "must be at least %s"
	ErrMaxLength   = "must be at most %s characters long"
	ErrFutureDate  = "must be a date in the future"
	ErrNonNegative = "must be zero or greater"
	ErrPositive    = "must be greater than zero"
	ErrCarYear     = "must be a valid car model year"
	ErrPassword    = "must be 8-25 characters long and include upper and lower case letters, " +
		"a number and a special character (!@#$%^&*)"
)

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("password", validatePassword)
	v.RegisterValidation("future_date", validateFutureDate)
	v.RegisterValidation("payment_method", validatePaymentMethod)
	v.RegisterValidation("booking_status", validateBookingStatus)
	v.RegisterValidation("dish_type", validateDishType)
	v.RegisterValidation("car_year", validateCarYear)
	v.RegisterValidation("decimal_positive", validateDecimalPositive)
	v.RegisterValidation("decimal_non_negative", validateDecimalNonNegative)

	return v
}

func validateFutureDate(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return date.After(time.Now())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	method, ok := fl.Field().Interface().(api.PaymentMethod)
	if !ok {
		return false
	}

	switch method {
	case api.DEBITCARD, api.CREDITCARD, api.EASYPAISA, api.JAZZCASH, api.OTHER:
		return true
	}

	return false
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(api.BookingStatus)
	if !ok {
		return false
	}

	switch status {
	case api.PENDING, api.CONFIRMED, api.DECLINED:
		return true
	}

	return false
}

func validateDishType(fl validator.FieldLevel) bool {
	dishType, ok := fl.Field().Interface().(api.DishType)
	if !ok {
		return false
	}

	switch dishType {
	case api.STARTER, api.MAIN, api.DESSERT:
		return true
	}

	return false
}

// Cars did not exist before 1886. Next year's models are already sold.
func validateCarYear(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())

	return year >= 1886 && year <= time.Now().Year()+1
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return decimal.Decimal{}, false
		}
		field = field.Elem()
	}

	d, ok := field.Interface().(decimal.Decimal)

	return d, ok
}

func validateDecimalPositive(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}

	return d.IsPositive()
}

func validateDecimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}

	return !d.IsNegative()
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages.
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min", "gte":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "future_date":
		return ErrFutureDate
	case "decimal_non_negative":
		return ErrNonNegative
	case "decimal_positive":
		return ErrPositive
	case "car_year":
		return ErrCarYear
	case "password":
		return ErrPassword
	case "payment_method", "booking_status", "dish_type":
		return fmt.Sprintf("must be a valid %s", err.Field())
	default:
		return "is invalid"
	}
}
