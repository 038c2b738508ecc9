package integration_test

import (
	"context"
	"testing"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CateringsSuite struct {
	BaseSuite
}

func TestCateringsSuite(t *testing.T) {
	suite.Run(t, new(CateringsSuite))
}

func (s *CateringsSuite) createCatering() *domain.Catering {
	catering := &domain.Catering{
		Name:        "Catering " + uuid.NewString()[:8],
		Description: "Full service catering",
	}
	s.Require().NoError(s.caterings.Create(context.Background(), catering))

	return catering
}

func (s *CateringsSuite) createDish() *domain.Dish {
	dish := &domain.Dish{
		Name:           "Dish " + uuid.NewString()[:8],
		Description:    "Chargrilled",
		Type:           domain.DishTypeMain,
		CostPerServing: decimal.NewFromInt(12),
	}
	s.Require().NoError(s.caterings.CreateDish(context.Background(), dish))

	return dish
}

func (s *CateringsSuite) TestMenuItemLifecycle() {
	ctx := context.Background()

	catering := s.createCatering()
	dish := s.createDish()

	item, err := s.caterings.AddMenuItem(ctx, catering.ID, dish.ID)
	s.Require().NoError(err)
	s.Equal(catering.ID, item.CateringID)
	s.Equal(dish.ID, item.DishID)

	// Linking the same dish twice is a conflict.
	_, err = s.caterings.AddMenuItem(ctx, catering.ID, dish.ID)
	s.ErrorIs(err, domain.ErrDuplicateMenuItem)

	got, err := s.caterings.GetById(ctx, catering.ID)
	s.Require().NoError(err)
	s.Len(got.MenuItems, 1)

	s.Require().NoError(s.caterings.RemoveMenuItem(ctx, catering.ID, dish.ID))
	s.ErrorIs(s.caterings.RemoveMenuItem(ctx, catering.ID, dish.ID), domain.ErrRecordNotFound)
}

func (s *CateringsSuite) TestAddMenuItemUnknownReferences() {
	ctx := context.Background()

	catering := s.createCatering()
	dish := s.createDish()

	_, err := s.caterings.AddMenuItem(ctx, uuid.New(), dish.ID)
	s.ErrorIs(err, domain.ErrRecordNotFound)

	_, err = s.caterings.AddMenuItem(ctx, catering.ID, uuid.New())
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *CateringsSuite) TestDeleteCateringDetachesBookings() {
	ctx := context.Background()

	user := s.createUser()
	venue := s.createVenue(50)
	catering := s.createCatering()

	booking, payment := newBooking(user, venue, uniqueEventDate())
	booking.CateringID = &catering.ID
	s.Require().NoError(s.bookings.CreateWithPayment(ctx, booking, payment))

	_, err := s.caterings.Delete(ctx, catering.ID)
	s.Require().NoError(err)

	// The booking survives with the catering reference cleared.
	got, err := s.bookings.GetById(ctx, booking.ID)
	s.Require().NoError(err)
	s.Nil(got.CateringID)
	s.Nil(got.Catering)
}
