package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Venue struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Capacity    int
	PricePerDay decimal.Decimal
	ImageURL    *string
	Reviews     []VenueReview
}

type VenueReview struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	UserID    uuid.UUID
	Text      string
	Rating    float64
	CreatedAt time.Time
	User      *User
}

type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetById(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetAll(ctx context.Context) ([]Venue, error)

	// Delete removes the venue and every booking made for it, returning
	// reserved car units to their pools first.
	Delete(ctx context.Context, id uuid.UUID) (*Venue, error)

	CreateReview(ctx context.Context, review *VenueReview) error
	GetReviewsByVenueId(ctx context.Context, venueId uuid.UUID) ([]VenueReview, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}
