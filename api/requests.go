package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateVenueReviewRequest struct {
	VenueRating     float64 `json:"venue_rating" validate:"required,gte=1,lte=5"`
	VenueReviewText string  `json:"venue_review_text" validate:"required,max=1000"`
}

type CreatePromoRequest struct {
	PromoName     string          `json:"promo_name" validate:"required,max=255"`
	PromoExpiry   time.Time       `json:"promo_expiry" validate:"required,future_date"`
	PromoDiscount decimal.Decimal `json:"promo_discount" validate:"decimal_positive"`
}

// CreateVenueForm is decoded from the multipart form of POST /venues.
// The image part is handled separately by the handler.
type CreateVenueForm struct {
	VenueName        string          `validate:"required,max=255"`
	VenueAddress     string          `validate:"required,max=255"`
	VenueCapacity    int             `validate:"gte=1"`
	VenuePricePerDay decimal.Decimal `validate:"decimal_non_negative"`
}

type CreateCateringForm struct {
	CateringName        string `validate:"required,max=255"`
	CateringDescription string `validate:"required,max=1000"`
}

type CreateDishForm struct {
	DishName           string          `validate:"required,max=255"`
	DishDescription    string          `validate:"required,max=1000"`
	DishType           DishType        `validate:"required,dish_type"`
	DishCostPerServing decimal.Decimal `validate:"decimal_non_negative"`
}

type CreateDecorationForm struct {
	DecorationName        string          `validate:"required,max=255"`
	DecorationDescription string          `validate:"required,max=255"`
	DecorationPrice       decimal.Decimal `validate:"decimal_non_negative"`
}

type CreateCarForm struct {
	CarMake        string          `validate:"required,max=255"`
	CarModel       string          `validate:"required,max=255"`
	CarYear        int             `validate:"car_year"`
	CarRentalPrice decimal.Decimal `validate:"decimal_non_negative"`
	CarQuantity    int             `validate:"gte=0"`
}

type CreateBookingPayload struct {
	BookingEventDate  time.Time      `json:"booking_event_date" validate:"required,future_date"`
	BookingGuestCount int            `json:"booking_guest_count" validate:"required,gte=1"`
	BookingStatus     *BookingStatus `json:"booking_status" validate:"omitempty,booking_status"`
	UserId            uuid.UUID      `json:"user_id" validate:"required"`
	VenueId           uuid.UUID      `json:"venue_id" validate:"required"`
	CateringId        *uuid.UUID     `json:"catering_id"`
	DecorationId      *uuid.UUID     `json:"decoration_id"`
	PromoId           *uuid.UUID     `json:"promo_id"`
}

type CreatePaymentPayload struct {
	AmountPayed   decimal.Decimal `json:"amount_payed" validate:"decimal_non_negative"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"decimal_non_negative"`
	PaymentMethod PaymentMethod   `json:"payment_method" validate:"required,payment_method"`
	Discount      decimal.Decimal `json:"discount" validate:"decimal_non_negative"`
}

type CreateBookingRequest struct {
	Booking CreateBookingPayload `json:"booking" validate:"required"`
	Payment CreatePaymentPayload `json:"payment" validate:"required"`
}

// UpdateBookingPayload carries partial updates: nil fields are left untouched.
type UpdateBookingPayload struct {
	BookingEventDate  *time.Time     `json:"booking_event_date" validate:"omitempty,future_date"`
	BookingGuestCount *int           `json:"booking_guest_count" validate:"omitempty,gte=1"`
	BookingStatus     *BookingStatus `json:"booking_status" validate:"omitempty,booking_status"`
	VenueId           *uuid.UUID     `json:"venue_id"`
	CateringId        *uuid.UUID     `json:"catering_id"`
	DecorationId      *uuid.UUID     `json:"decoration_id"`
	PromoId           *uuid.UUID     `json:"promo_id"`
}

type UpdatePaymentPayload struct {
	AmountPayed   *decimal.Decimal `json:"amount_payed" validate:"omitempty,decimal_non_negative"`
	TotalAmount   *decimal.Decimal `json:"total_amount" validate:"omitempty,decimal_non_negative"`
	PaymentMethod *PaymentMethod   `json:"payment_method" validate:"omitempty,payment_method"`
	Discount      *decimal.Decimal `json:"discount" validate:"omitempty,decimal_non_negative"`
}

type UpdateBookingRequest struct {
	Booking UpdateBookingPayload `json:"booking"`
	Payment UpdatePaymentPayload `json:"payment"`
}
