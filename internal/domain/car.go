package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Car describes one rentable car model. Quantity is the number of units
// currently available for new reservations, not the provisioned fleet size.
type Car struct {
	ID          uuid.UUID
	Make        string
	Model       string
	Year        int
	RentalPrice decimal.Decimal
	Quantity    int
	ImageURL    *string
}

// CarReservation allocates one unit of a car to a booking.
type CarReservation struct {
	ID        uuid.UUID
	CarID     uuid.UUID
	BookingID uuid.UUID
}

type CarRepository interface {
	Create(ctx context.Context, car *Car) error
	GetById(ctx context.Context, id uuid.UUID) (*Car, error)
	GetAll(ctx context.Context) ([]Car, error)
	Delete(ctx context.Context, id uuid.UUID) (*Car, error)

	// Reserve allocates one unit of the car to the booking, decrementing the
	// car's available quantity. Returns ErrCarNotAvailable when no unit is
	// left and ErrRecordNotFound when the car or booking does not exist.
	Reserve(ctx context.Context, carId, bookingId uuid.UUID) (*CarReservation, error)

	// ReleaseReservation deletes the reservation and returns its unit to the
	// car's available quantity. Both happen in the same transaction.
	ReleaseReservation(ctx context.Context, reservationId uuid.UUID) (*CarReservation, error)

	GetAllReservations(ctx context.Context) ([]CarReservation, error)
}
