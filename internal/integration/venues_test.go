package integration_test

import (
	"context"
	"testing"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type VenuesSuite struct {
	BaseSuite
}

func TestVenuesSuite(t *testing.T) {
	suite.Run(t, new(VenuesSuite))
}

func (s *VenuesSuite) TestDeleteVenueCascadesBookings() {
	ctx := context.Background()

	user := s.createUser()
	venue := s.createVenue(50)
	car := s.createCar(2)

	booking := s.createBooking(user, venue, uniqueEventDate())

	_, err := s.cars.Reserve(ctx, car.ID, booking.ID)
	s.Require().NoError(err)
	_, err = s.cars.Reserve(ctx, car.ID, booking.ID)
	s.Require().NoError(err)

	deleted, err := s.venues.Delete(ctx, venue.ID)
	s.Require().NoError(err)
	s.Equal(venue.ID, deleted.ID)

	_, err = s.venues.GetById(ctx, venue.ID)
	s.ErrorIs(err, domain.ErrRecordNotFound)

	_, err = s.bookings.GetById(ctx, booking.ID)
	s.ErrorIs(err, domain.ErrRecordNotFound)

	var count int

	s.Require().NoError(s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM payments WHERE booking_id = $1`, booking.ID).Scan(&count))
	s.Equal(0, count)

	s.Require().NoError(s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM car_reservations WHERE booking_id = $1`, booking.ID).Scan(&count))
	s.Equal(0, count)

	// Both reserved units are back in the pool.
	got, err := s.cars.GetById(ctx, car.ID)
	s.Require().NoError(err)
	s.Equal(2, got.Quantity)
}

func (s *VenuesSuite) TestDeleteUnknownVenue() {
	_, err := s.venues.Delete(context.Background(), uuid.New())
	s.ErrorIs(err, domain.ErrRecordNotFound)
}
