package mocks

import (
	"context"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
)

type MockVenueRepo struct {
	domain.VenueRepository
	CreateFunc              func(ctx context.Context, venue *domain.Venue) error
	GetByIdFunc             func(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
	GetAllFunc              func(ctx context.Context) ([]domain.Venue, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
	CreateReviewFunc        func(ctx context.Context, review *domain.VenueReview) error
	GetReviewsByVenueIdFunc func(ctx context.Context, venueId uuid.UUID) ([]domain.VenueReview, error)
	DeleteReviewFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockVenueRepo) Create(ctx context.Context, venue *domain.Venue) error {
	return m.CreateFunc(ctx, venue)
}

func (m *MockVenueRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockVenueRepo) GetAll(ctx context.Context) ([]domain.Venue, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockVenueRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	return m.DeleteFunc(ctx, id)
}

func (m *MockVenueRepo) CreateReview(ctx context.Context, review *domain.VenueReview) error {
	return m.CreateReviewFunc(ctx, review)
}

func (m *MockVenueRepo) GetReviewsByVenueId(ctx context.Context, venueId uuid.UUID) ([]domain.VenueReview, error) {
	return m.GetReviewsByVenueIdFunc(ctx, venueId)
}

func (m *MockVenueRepo) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return m.DeleteReviewFunc(ctx, id)
}
