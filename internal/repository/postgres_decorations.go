package repository

import (
	"context"
	"errors"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDecorationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDecorationRepository(db *pgxpool.Pool) *PostgresDecorationRepository {
	return &PostgresDecorationRepository{
		db: db,
	}
}

func (p *PostgresDecorationRepository) Create(ctx context.Context, decoration *domain.Decoration) error {
	query := `
		INSERT INTO decorations (name, description, price, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return p.db.QueryRow(ctx,
		query,
		decoration.Name,
		decoration.Description,
		decoration.Price,
		decoration.ImageURL).Scan(&decoration.ID)
}

func (p *PostgresDecorationRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Decoration, error) {
	query := `
		SELECT id, name, description, price, image_url
		FROM decorations
		WHERE id = $1`

	var decoration domain.Decoration

	err := p.db.QueryRow(ctx, query, id).Scan(
		&decoration.ID,
		&decoration.Name,
		&decoration.Description,
		&decoration.Price,
		&decoration.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &decoration, nil
}

func (p *PostgresDecorationRepository) GetAll(ctx context.Context) ([]domain.Decoration, error) {
	query := `
		SELECT id, name, description, price, image_url
		FROM decorations
		ORDER BY name, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decorations := make([]domain.Decoration, 0)

	for rows.Next() {
		var decoration domain.Decoration

		err = rows.Scan(
			&decoration.ID,
			&decoration.Name,
			&decoration.Description,
			&decoration.Price,
			&decoration.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		decorations = append(decorations, decoration)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return decorations, nil
}

func (p *PostgresDecorationRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Decoration, error) {
	decoration, err := p.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = p.db.Exec(ctx, `DELETE FROM decorations WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return decoration, nil
}
