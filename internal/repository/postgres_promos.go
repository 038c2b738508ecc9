package repository

import (
	"context"
	"errors"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPromoRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPromoRepository(db *pgxpool.Pool) *PostgresPromoRepository {
	return &PostgresPromoRepository{
		db: db,
	}
}

func (p *PostgresPromoRepository) Create(ctx context.Context, promo *domain.Promo) error {
	query := `
		INSERT INTO promos (name, expiry, discount)
		VALUES ($1, $2, $3)
		RETURNING id`

	return p.db.QueryRow(ctx,
		query,
		promo.Name,
		promo.Expiry,
		promo.Discount).Scan(&promo.ID)
}

func (p *PostgresPromoRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Promo, error) {
	query := `
		SELECT id, name, expiry, discount
		FROM promos
		WHERE id = $1`

	var promo domain.Promo

	err := p.db.QueryRow(ctx, query, id).Scan(
		&promo.ID,
		&promo.Name,
		&promo.Expiry,
		&promo.Discount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &promo, nil
}

func (p *PostgresPromoRepository) GetAll(ctx context.Context) ([]domain.Promo, error) {
	query := `
		SELECT id, name, expiry, discount
		FROM promos
		ORDER BY expiry, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promos := make([]domain.Promo, 0)

	for rows.Next() {
		var promo domain.Promo

		err = rows.Scan(
			&promo.ID,
			&promo.Name,
			&promo.Expiry,
			&promo.Discount,
		)
		if err != nil {
			return nil, err
		}

		promos = append(promos, promo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return promos, nil
}

func (p *PostgresPromoRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Promo, error) {
	promo, err := p.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = p.db.Exec(ctx, `DELETE FROM promos WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return promo, nil
}
