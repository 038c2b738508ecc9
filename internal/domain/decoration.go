package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Decoration struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    *string
}

type DecorationRepository interface {
	Create(ctx context.Context, decoration *Decoration) error
	GetById(ctx context.Context, id uuid.UUID) (*Decoration, error)
	GetAll(ctx context.Context) ([]Decoration, error)
	Delete(ctx context.Context, id uuid.UUID) (*Decoration, error)
}
