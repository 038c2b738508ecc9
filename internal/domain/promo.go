package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Promo struct {
	ID       uuid.UUID
	Name     string
	Expiry   time.Time
	Discount decimal.Decimal
}

type PromoRepository interface {
	Create(ctx context.Context, promo *Promo) error
	GetById(ctx context.Context, id uuid.UUID) (*Promo, error)
	GetAll(ctx context.Context) ([]Promo, error)
	Delete(ctx context.Context, id uuid.UUID) (*Promo, error)
}
