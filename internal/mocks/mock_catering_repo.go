package mocks

import (
	"context"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
)

type MockCateringRepo struct {
	domain.CateringRepository
	CreateFunc         func(ctx context.Context, catering *domain.Catering) error
	GetByIdFunc        func(ctx context.Context, id uuid.UUID) (*domain.Catering, error)
	GetAllFunc         func(ctx context.Context) ([]domain.Catering, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (*domain.Catering, error)
	CreateDishFunc     func(ctx context.Context, dish *domain.Dish) error
	GetDishByIdFunc    func(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	GetAllDishesFunc   func(ctx context.Context) ([]domain.Dish, error)
	DeleteDishFunc     func(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	AddMenuItemFunc    func(ctx context.Context, cateringId, dishId uuid.UUID) (*domain.CateringMenuItem, error)
	RemoveMenuItemFunc func(ctx context.Context, cateringId, dishId uuid.UUID) error
}

func (m *MockCateringRepo) Create(ctx context.Context, catering *domain.Catering) error {
	return m.CreateFunc(ctx, catering)
}

func (m *MockCateringRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Catering, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockCateringRepo) GetAll(ctx context.Context) ([]domain.Catering, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockCateringRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Catering, error) {
	return m.DeleteFunc(ctx, id)
}

func (m *MockCateringRepo) CreateDish(ctx context.Context, dish *domain.Dish) error {
	return m.CreateDishFunc(ctx, dish)
}

func (m *MockCateringRepo) GetDishById(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	return m.GetDishByIdFunc(ctx, id)
}

func (m *MockCateringRepo) GetAllDishes(ctx context.Context) ([]domain.Dish, error) {
	return m.GetAllDishesFunc(ctx)
}

func (m *MockCateringRepo) DeleteDish(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	return m.DeleteDishFunc(ctx, id)
}

func (m *MockCateringRepo) AddMenuItem(ctx context.Context, cateringId, dishId uuid.UUID) (*domain.CateringMenuItem, error) {
	return m.AddMenuItemFunc(ctx, cateringId, dishId)
}

func (m *MockCateringRepo) RemoveMenuItem(ctx context.Context, cateringId, dishId uuid.UUID) error {
	return m.RemoveMenuItemFunc(ctx, cateringId, dishId)
}
