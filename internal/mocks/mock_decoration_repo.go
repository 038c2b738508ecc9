package mocks

import (
	"context"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
)

type MockDecorationRepo struct {
	domain.DecorationRepository
	CreateFunc  func(ctx context.Context, decoration *domain.Decoration) error
	GetByIdFunc func(ctx context.Context, id uuid.UUID) (*domain.Decoration, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Decoration, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) (*domain.Decoration, error)
}

func (m *MockDecorationRepo) Create(ctx context.Context, decoration *domain.Decoration) error {
	return m.CreateFunc(ctx, decoration)
}

func (m *MockDecorationRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Decoration, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockDecorationRepo) GetAll(ctx context.Context) ([]domain.Decoration, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockDecorationRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Decoration, error) {
	return m.DeleteFunc(ctx, id)
}
