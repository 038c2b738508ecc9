package mocks

import (
	"context"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
)

type MockPromoRepo struct {
	domain.PromoRepository
	CreateFunc  func(ctx context.Context, promo *domain.Promo) error
	GetByIdFunc func(ctx context.Context, id uuid.UUID) (*domain.Promo, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Promo, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) (*domain.Promo, error)
}

func (m *MockPromoRepo) Create(ctx context.Context, promo *domain.Promo) error {
	return m.CreateFunc(ctx, promo)
}

func (m *MockPromoRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Promo, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockPromoRepo) GetAll(ctx context.Context) ([]domain.Promo, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockPromoRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Promo, error) {
	return m.DeleteFunc(ctx, id)
}
