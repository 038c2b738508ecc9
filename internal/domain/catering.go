package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DishType string

const (
	DishTypeStarter DishType = "starter"
	DishTypeMain    DishType = "main"
	DishTypeDessert DishType = "dessert"
)

type Catering struct {
	ID          uuid.UUID
	Name        string
	Description string
	ImageURL    *string
	MenuItems   []CateringMenuItem
}

type Dish struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Type           DishType
	CostPerServing decimal.Decimal
	ImageURL       *string
}

// CateringMenuItem links a dish to a catering menu. The pair is unique.
type CateringMenuItem struct {
	CateringID uuid.UUID
	DishID     uuid.UUID
}

type CateringRepository interface {
	Create(ctx context.Context, catering *Catering) error
	GetById(ctx context.Context, id uuid.UUID) (*Catering, error)
	GetAll(ctx context.Context) ([]Catering, error)
	Delete(ctx context.Context, id uuid.UUID) (*Catering, error)

	CreateDish(ctx context.Context, dish *Dish) error
	GetDishById(ctx context.Context, id uuid.UUID) (*Dish, error)
	GetAllDishes(ctx context.Context) ([]Dish, error)
	DeleteDish(ctx context.Context, id uuid.UUID) (*Dish, error)

	AddMenuItem(ctx context.Context, cateringId, dishId uuid.UUID) (*CateringMenuItem, error)
	RemoveMenuItem(ctx context.Context, cateringId, dishId uuid.UUID) error
}
