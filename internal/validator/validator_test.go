package validator

import (
	"testing"
	"time"

	"github.com/evently/event-booking-api/api"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	v := NewValidator()

	type input struct {
		Password string `validate:"password"`
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "Test123!@#", false},
		{"too short", "Te1!", true},
		{"too long", "Test123!@#Test123!@#Test123!@#", true},
		{"no uppercase", "test123!@#", true},
		{"no lowercase", "TEST123!@#", true},
		{"no digit", "TestTest!@#", true},
		{"no special character", "TestTest123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(input{Password: tt.password})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFutureDate(t *testing.T) {
	v := NewValidator()

	type input struct {
		Date time.Time `validate:"future_date"`
	}

	assert.NoError(t, v.Struct(input{Date: time.Now().Add(time.Hour)}))
	assert.Error(t, v.Struct(input{Date: time.Now().Add(-time.Hour)}))
}

func TestValidateEnums(t *testing.T) {
	v := NewValidator()

	type input struct {
		Method api.PaymentMethod `validate:"omitempty,payment_method"`
		Status api.BookingStatus `validate:"omitempty,booking_status"`
		Dish   api.DishType      `validate:"omitempty,dish_type"`
	}

	assert.NoError(t, v.Struct(input{Method: api.JAZZCASH, Status: api.CONFIRMED, Dish: api.DESSERT}))
	assert.Error(t, v.Struct(input{Method: "cash"}))
	assert.Error(t, v.Struct(input{Status: "cancelled"}))
	assert.Error(t, v.Struct(input{Dish: "snack"}))
}

func TestValidateCarYear(t *testing.T) {
	v := NewValidator()

	type input struct {
		Year int `validate:"car_year"`
	}

	assert.NoError(t, v.Struct(input{Year: 1990}))
	assert.NoError(t, v.Struct(input{Year: time.Now().Year() + 1}))
	assert.Error(t, v.Struct(input{Year: 1885}))
	assert.Error(t, v.Struct(input{Year: time.Now().Year() + 2}))
}

func TestValidateDecimals(t *testing.T) {
	v := NewValidator()

	type input struct {
		Amount   decimal.Decimal  `validate:"decimal_non_negative"`
		Discount *decimal.Decimal `validate:"omitempty,decimal_positive"`
	}

	positive := decimal.NewFromInt(5)
	negative := decimal.NewFromInt(-5)

	assert.NoError(t, v.Struct(input{Amount: decimal.Zero, Discount: &positive}))
	assert.Error(t, v.Struct(input{Amount: negative}))
	assert.Error(t, v.Struct(input{Amount: decimal.Zero, Discount: &decimal.Zero}))
	assert.Error(t, v.Struct(input{Amount: decimal.Zero, Discount: &negative}))
}

func TestValidationMessage(t *testing.T) {
	v := NewValidator()

	type input struct {
		Email    string            `validate:"required,email"`
		Password string            `validate:"password"`
		Guests   int               `validate:"min=1"`
		Method   api.PaymentMethod `validate:"payment_method"`
	}

	err := v.Struct(input{Guests: -1, Method: "cash"})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	messages := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		messages[fieldErr.Field()] = ValidationMessage(fieldErr)
	}

	assert.Equal(t, ErrRequired, messages["Email"])
	assert.Equal(t, ErrPassword, messages["Password"])
	assert.Equal(t, "must be at least 1", messages["Guests"])
	assert.Equal(t, "must be a valid Method", messages["Method"])
}
