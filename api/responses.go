package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserResponse struct {
	UserId   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}

type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type VenueReviewResponse struct {
	VenueReviewId        uuid.UUID     `json:"venue_review_id"`
	VenueId              uuid.UUID     `json:"venue_id"`
	User                 *UserResponse `json:"user,omitempty"`
	VenueReviewText      string        `json:"venue_review_text"`
	VenueRating          float64       `json:"venue_rating"`
	VenueReviewCreatedAt time.Time     `json:"venue_review_created_at"`
}

type VenueResponse struct {
	VenueId          uuid.UUID             `json:"venue_id"`
	VenueName        string                `json:"venue_name"`
	VenueAddress     string                `json:"venue_address"`
	VenueCapacity    int                   `json:"venue_capacity"`
	VenuePricePerDay decimal.Decimal       `json:"venue_price_per_day"`
	VenueImage       *string               `json:"venue_image"`
	VenueReviews     []VenueReviewResponse `json:"venue_reviews"`
}

type CateringMenuItemResponse struct {
	CateringId uuid.UUID `json:"catering_id"`
	DishId     uuid.UUID `json:"dish_id"`
}

type CateringResponse struct {
	CateringId          uuid.UUID                  `json:"catering_id"`
	CateringName        string                     `json:"catering_name"`
	CateringDescription string                     `json:"catering_description"`
	CateringImage       *string                    `json:"catering_image"`
	CateringMenuItems   []CateringMenuItemResponse `json:"catering_menu_items"`
}

type DishResponse struct {
	DishId             uuid.UUID       `json:"dish_id"`
	DishName           string          `json:"dish_name"`
	DishDescription    string          `json:"dish_description"`
	DishType           DishType        `json:"dish_type"`
	DishCostPerServing decimal.Decimal `json:"dish_cost_per_serving"`
	DishImage          *string         `json:"dish_image"`
}

type DecorationResponse struct {
	DecorationId          uuid.UUID       `json:"decoration_id"`
	DecorationName        string          `json:"decoration_name"`
	DecorationPrice       decimal.Decimal `json:"decoration_price"`
	DecorationDescription string          `json:"decoration_description"`
	DecorationImage       *string         `json:"decoration_image"`
}

type CarResponse struct {
	CarId          uuid.UUID       `json:"car_id"`
	CarMake        string          `json:"car_make"`
	CarModel       string          `json:"car_model"`
	CarYear        int             `json:"car_year"`
	CarRentalPrice decimal.Decimal `json:"car_rental_price"`
	CarImage       *string         `json:"car_image"`
	CarQuantity    int             `json:"car_quantity"`
}

type CarReservationResponse struct {
	CarReservationId uuid.UUID `json:"car_reservation_id"`
	CarId            uuid.UUID `json:"car_id"`
	BookingId        uuid.UUID `json:"booking_id"`
}

type PromoResponse struct {
	PromoId       uuid.UUID       `json:"promo_id"`
	PromoName     string          `json:"promo_name"`
	PromoExpiry   time.Time       `json:"promo_expiry"`
	PromoDiscount decimal.Decimal `json:"promo_discount"`
}

type PaymentResponse struct {
	PaymentId     uuid.UUID       `json:"payment_id"`
	AmountPayed   decimal.Decimal `json:"amount_payed"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Discount      decimal.Decimal `json:"discount"`
}

type BookingResponse struct {
	BookingId         uuid.UUID                `json:"booking_id"`
	BookingDate       time.Time                `json:"booking_date"`
	BookingEventDate  time.Time                `json:"booking_event_date"`
	BookingGuestCount int                      `json:"booking_guest_count"`
	BookingStatus     BookingStatus            `json:"booking_status"`
	User              UserResponse             `json:"user"`
	Venue             VenueResponse            `json:"venue"`
	Payment           PaymentResponse          `json:"payment"`
	Catering          *CateringResponse        `json:"catering"`
	Decoration        *DecorationResponse      `json:"decoration"`
	CarReservations   []CarReservationResponse `json:"car_reservations"`
	Promo             *PromoResponse           `json:"promo"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Metadata *Metadata         `json:"metadata,omitempty"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
