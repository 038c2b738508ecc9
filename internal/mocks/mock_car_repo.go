package mocks

import (
	"context"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
)

type MockCarRepo struct {
	domain.CarRepository
	CreateFunc             func(ctx context.Context, car *domain.Car) error
	GetByIdFunc            func(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	GetAllFunc             func(ctx context.Context) ([]domain.Car, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	ReserveFunc            func(ctx context.Context, carId, bookingId uuid.UUID) (*domain.CarReservation, error)
	ReleaseReservationFunc func(ctx context.Context, reservationId uuid.UUID) (*domain.CarReservation, error)
	GetAllReservationsFunc func(ctx context.Context) ([]domain.CarReservation, error)
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	return m.CreateFunc(ctx, car)
}

func (m *MockCarRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockCarRepo) GetAll(ctx context.Context) ([]domain.Car, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockCarRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	return m.DeleteFunc(ctx, id)
}

func (m *MockCarRepo) Reserve(ctx context.Context, carId, bookingId uuid.UUID) (*domain.CarReservation, error) {
	return m.ReserveFunc(ctx, carId, bookingId)
}

func (m *MockCarRepo) ReleaseReservation(ctx context.Context, reservationId uuid.UUID) (*domain.CarReservation, error) {
	return m.ReleaseReservationFunc(ctx, reservationId)
}

func (m *MockCarRepo) GetAllReservations(ctx context.Context) ([]domain.CarReservation, error) {
	return m.GetAllReservationsFunc(ctx)
}
