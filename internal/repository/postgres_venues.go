package repository

import (
	"context"
	"errors"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresVenueRepository struct {
	db *pgxpool.Pool
}

func NewPostgresVenueRepository(db *pgxpool.Pool) *PostgresVenueRepository {
	return &PostgresVenueRepository{
		db: db,
	}
}

func (p *PostgresVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `
		INSERT INTO venues (name, address, capacity, price_per_day, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return p.db.QueryRow(ctx,
		query,
		venue.Name,
		venue.Address,
		venue.Capacity,
		venue.PricePerDay,
		venue.ImageURL).Scan(&venue.ID)
}

func (p *PostgresVenueRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	query := `
		SELECT id, name, address, capacity, price_per_day, image_url
		FROM venues
		WHERE id = $1`

	var venue domain.Venue

	err := p.db.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.Capacity,
		&venue.PricePerDay,
		&venue.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	venue.Reviews, err = p.GetReviewsByVenueId(ctx, id)
	if err != nil {
		return nil, err
	}

	return &venue, nil
}

func (p *PostgresVenueRepository) GetAll(ctx context.Context) ([]domain.Venue, error) {
	query := `
		SELECT id, name, address, capacity, price_per_day, image_url
		FROM venues
		ORDER BY name, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0)
	venueIndex := make(map[uuid.UUID]int)

	for rows.Next() {
		var venue domain.Venue

		err = rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Address,
			&venue.Capacity,
			&venue.PricePerDay,
			&venue.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		venue.Reviews = make([]domain.VenueReview, 0)
		venueIndex[venue.ID] = len(venues)
		venues = append(venues, venue)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(venues) == 0 {
		return venues, nil
	}

	reviews, err := p.queryReviews(ctx, `
		SELECT r.id, r.venue_id, r.user_id, r.review_text, r.rating, r.created_at,
			u.username, u.email, u.is_admin
		FROM venue_reviews r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}

	for _, review := range reviews {
		if i, ok := venueIndex[review.VenueID]; ok {
			venues[i].Reviews = append(venues[i].Reviews, review)
		}
	}

	return venues, nil
}

// Delete removes the venue together with its bookings. Car units reserved
// through those bookings go back to their pools before the booking rows (and
// their payments and reservations) are removed.
func (p *PostgresVenueRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	venue, err := p.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	err = runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			UPDATE cars c
			SET quantity = c.quantity + r.units
			FROM (
				SELECT cr.car_id, COUNT(*) AS units
				FROM car_reservations cr
				JOIN bookings b ON b.id = cr.booking_id
				WHERE b.venue_id = $1
				GROUP BY cr.car_id
			) r
			WHERE c.id = r.car_id`, id)
		if err != nil {
			return err
		}

		// Payments and car reservations cascade with their bookings.
		_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE venue_id = $1`, id)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return venue, nil
}

func (p *PostgresVenueRepository) CreateReview(ctx context.Context, review *domain.VenueReview) error {
	query := `
		INSERT INTO venue_reviews (venue_id, user_id, review_text, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		review.VenueID,
		review.UserID,
		review.Text,
		review.Rating).Scan(&review.ID, &review.CreatedAt)

	if err != nil && isForeignKeyViolation(err) {
		return domain.ErrRecordNotFound
	}

	return err
}

func (p *PostgresVenueRepository) GetReviewsByVenueId(ctx context.Context, venueId uuid.UUID) ([]domain.VenueReview, error) {
	return p.queryReviews(ctx, `
		SELECT r.id, r.venue_id, r.user_id, r.review_text, r.rating, r.created_at,
			u.username, u.email, u.is_admin
		FROM venue_reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.venue_id = $1
		ORDER BY r.created_at DESC`, venueId)
}

func (p *PostgresVenueRepository) queryReviews(ctx context.Context, query string, args ...any) ([]domain.VenueReview, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.VenueReview, 0)

	for rows.Next() {
		var (
			review domain.VenueReview
			user   domain.User
		)

		err = rows.Scan(
			&review.ID,
			&review.VenueID,
			&review.UserID,
			&review.Text,
			&review.Rating,
			&review.CreatedAt,
			&user.Username,
			&user.Email,
			&user.IsAdmin,
		)
		if err != nil {
			return nil, err
		}

		user.ID = review.UserID
		review.User = &user

		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (p *PostgresVenueRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM venue_reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
