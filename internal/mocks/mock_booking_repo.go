package mocks

import (
	"context"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateWithPaymentFunc func(ctx context.Context, booking *domain.Booking, payment *domain.Payment) error
	GetByIdFunc           func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetAllFunc            func(ctx context.Context, pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error)
	GetAllByUserIdFunc    func(ctx context.Context, userId uuid.UUID) ([]domain.Booking, error)
	UpdateWithPaymentFunc func(ctx context.Context, id uuid.UUID, bookingPatch domain.BookingPatch, paymentPatch domain.PaymentPatch) (*domain.Booking, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

func (m *MockBookingRepo) CreateWithPayment(ctx context.Context, booking *domain.Booking, payment *domain.Payment) error {
	return m.CreateWithPaymentFunc(ctx, booking, payment)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockBookingRepo) GetAllByUserId(ctx context.Context, userId uuid.UUID) ([]domain.Booking, error) {
	return m.GetAllByUserIdFunc(ctx, userId)
}

func (m *MockBookingRepo) UpdateWithPayment(
	ctx context.Context,
	id uuid.UUID,
	bookingPatch domain.BookingPatch,
	paymentPatch domain.PaymentPatch) (*domain.Booking, error) {

	return m.UpdateWithPaymentFunc(ctx, id, bookingPatch, paymentPatch)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return m.DeleteFunc(ctx, id)
}
