package integration_test

import (
	"context"
	"time"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *BaseSuite) createUser() *domain.User {
	user := &domain.User{
		Username: "user-" + uuid.NewString()[:8],
		Email:    uuid.NewString() + "@example.com",
	}
	s.Require().NoError(user.Password.Set("Test123!@#"))
	s.Require().NoError(s.users.Create(context.Background(), user))

	return user
}

func (s *BaseSuite) createVenue(capacity int) *domain.Venue {
	venue := &domain.Venue{
		Name:        "Venue " + uuid.NewString()[:8],
		Address:     "12 Garden Road",
		Capacity:    capacity,
		PricePerDay: decimal.NewFromInt(1000),
	}
	s.Require().NoError(s.venues.Create(context.Background(), venue))

	return venue
}

func (s *BaseSuite) createCar(quantity int) *domain.Car {
	car := &domain.Car{
		Make:        "Toyota",
		Model:       "Corolla",
		Year:        2022,
		RentalPrice: decimal.NewFromInt(150),
		Quantity:    quantity,
	}
	s.Require().NoError(s.cars.Create(context.Background(), car))

	return car
}

// newBooking builds an unsaved booking for the given user and venue with an
// event date far enough in the future to avoid colliding with other tests.
func newBooking(user *domain.User, venue *domain.Venue, eventDate time.Time) (*domain.Booking, *domain.Payment) {
	booking := &domain.Booking{
		EventDate:  eventDate,
		GuestCount: 10,
		Status:     domain.BookingStatusPending,
		UserID:     user.ID,
		VenueID:    venue.ID,
	}
	payment := &domain.Payment{
		AmountPayed: decimal.NewFromInt(500),
		TotalAmount: decimal.NewFromInt(1000),
		Discount:    decimal.Zero,
		Method:      domain.PaymentMethodJazzcash,
	}

	return booking, payment
}

func (s *BaseSuite) createBooking(user *domain.User, venue *domain.Venue, eventDate time.Time) *domain.Booking {
	booking, payment := newBooking(user, venue, eventDate)
	s.Require().NoError(s.bookings.CreateWithPayment(context.Background(), booking, payment))

	return booking
}

// uniqueEventDate hands out a distinct future day per call so bookings in
// unrelated tests never trip the venue-day unique index. The mid-morning
// hour keeps intra-day offsets within the same calendar day.
var eventDaySeq = 0

func uniqueEventDate() time.Time {
	eventDaySeq++
	day := time.Now().UTC().AddDate(0, 0, 30+eventDaySeq)

	return time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC)
}
