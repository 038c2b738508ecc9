package repository

import (
	"context"
	"errors"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCateringRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCateringRepository(db *pgxpool.Pool) *PostgresCateringRepository {
	return &PostgresCateringRepository{
		db: db,
	}
}

func (p *PostgresCateringRepository) Create(ctx context.Context, catering *domain.Catering) error {
	query := `
		INSERT INTO caterings (name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id`

	return p.db.QueryRow(ctx,
		query,
		catering.Name,
		catering.Description,
		catering.ImageURL).Scan(&catering.ID)
}

func (p *PostgresCateringRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Catering, error) {
	query := `
		SELECT id, name, description, image_url
		FROM caterings
		WHERE id = $1`

	var catering domain.Catering

	err := p.db.QueryRow(ctx, query, id).Scan(
		&catering.ID,
		&catering.Name,
		&catering.Description,
		&catering.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	catering.MenuItems, err = p.getMenuItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return &catering, nil
}

func (p *PostgresCateringRepository) GetAll(ctx context.Context) ([]domain.Catering, error) {
	query := `
		SELECT id, name, description, image_url
		FROM caterings
		ORDER BY name, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	caterings := make([]domain.Catering, 0)
	cateringIndex := make(map[uuid.UUID]int)

	for rows.Next() {
		var catering domain.Catering

		err = rows.Scan(
			&catering.ID,
			&catering.Name,
			&catering.Description,
			&catering.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		catering.MenuItems = make([]domain.CateringMenuItem, 0)
		cateringIndex[catering.ID] = len(caterings)
		caterings = append(caterings, catering)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(caterings) == 0 {
		return caterings, nil
	}

	items, err := p.queryMenuItems(ctx, `
		SELECT catering_id, dish_id
		FROM catering_menu_items
		ORDER BY catering_id, dish_id`)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if i, ok := cateringIndex[item.CateringID]; ok {
			caterings[i].MenuItems = append(caterings[i].MenuItems, item)
		}
	}

	return caterings, nil
}

func (p *PostgresCateringRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Catering, error) {
	catering, err := p.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = p.db.Exec(ctx, `DELETE FROM caterings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return catering, nil
}

func (p *PostgresCateringRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	query := `
		INSERT INTO dishes (name, description, dish_type, cost_per_serving, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return p.db.QueryRow(ctx,
		query,
		dish.Name,
		dish.Description,
		dish.Type,
		dish.CostPerServing,
		dish.ImageURL).Scan(&dish.ID)
}

func (p *PostgresCateringRepository) GetDishById(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	query := `
		SELECT id, name, description, dish_type, cost_per_serving, image_url
		FROM dishes
		WHERE id = $1`

	var dish domain.Dish

	err := p.db.QueryRow(ctx, query, id).Scan(
		&dish.ID,
		&dish.Name,
		&dish.Description,
		&dish.Type,
		&dish.CostPerServing,
		&dish.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &dish, nil
}

func (p *PostgresCateringRepository) GetAllDishes(ctx context.Context) ([]domain.Dish, error) {
	query := `
		SELECT id, name, description, dish_type, cost_per_serving, image_url
		FROM dishes
		ORDER BY name, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := make([]domain.Dish, 0)

	for rows.Next() {
		var dish domain.Dish

		err = rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.Description,
			&dish.Type,
			&dish.CostPerServing,
			&dish.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		dishes = append(dishes, dish)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dishes, nil
}

func (p *PostgresCateringRepository) DeleteDish(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	dish, err := p.GetDishById(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = p.db.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return dish, nil
}

// AddMenuItem links an existing dish to a catering menu. A duplicate link
// yields domain.ErrDuplicateMenuItem, a missing catering or dish yields
// domain.ErrRecordNotFound.
func (p *PostgresCateringRepository) AddMenuItem(ctx context.Context, cateringId, dishId uuid.UUID) (*domain.CateringMenuItem, error) {
	query := `
		INSERT INTO catering_menu_items (catering_id, dish_id)
		VALUES ($1, $2)`

	_, err := p.db.Exec(ctx, query, cateringId, dishId)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrDuplicateMenuItem
		case isForeignKeyViolation(err):
			return nil, domain.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &domain.CateringMenuItem{CateringID: cateringId, DishID: dishId}, nil
}

func (p *PostgresCateringRepository) RemoveMenuItem(ctx context.Context, cateringId, dishId uuid.UUID) error {
	query := `
		DELETE FROM catering_menu_items
		WHERE catering_id = $1 AND dish_id = $2`

	tag, err := p.db.Exec(ctx, query, cateringId, dishId)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresCateringRepository) getMenuItems(ctx context.Context, cateringId uuid.UUID) ([]domain.CateringMenuItem, error) {
	return p.queryMenuItems(ctx, `
		SELECT catering_id, dish_id
		FROM catering_menu_items
		WHERE catering_id = $1
		ORDER BY dish_id`, cateringId)
}

func (p *PostgresCateringRepository) queryMenuItems(ctx context.Context, query string, args ...any) ([]domain.CateringMenuItem, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CateringMenuItem, 0)

	for rows.Next() {
		var item domain.CateringMenuItem

		if err = rows.Scan(&item.CateringID, &item.DishID); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
