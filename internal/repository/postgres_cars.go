package repository

import (
	"context"
	"errors"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCarRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCarRepository(db *pgxpool.Pool) *PostgresCarRepository {
	return &PostgresCarRepository{
		db: db,
	}
}

func (p *PostgresCarRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO cars (make, model, year, rental_price, quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return p.db.QueryRow(ctx,
		query,
		car.Make,
		car.Model,
		car.Year,
		car.RentalPrice,
		car.Quantity,
		car.ImageURL).Scan(&car.ID)
}

func (p *PostgresCarRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	query := `
		SELECT id, make, model, year, rental_price, quantity, image_url
		FROM cars
		WHERE id = $1`

	var car domain.Car

	err := p.db.QueryRow(ctx, query, id).Scan(
		&car.ID,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.RentalPrice,
		&car.Quantity,
		&car.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &car, nil
}

func (p *PostgresCarRepository) GetAll(ctx context.Context) ([]domain.Car, error) {
	query := `
		SELECT id, make, model, year, rental_price, quantity, image_url
		FROM cars
		ORDER BY make, model`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]domain.Car, 0)

	for rows.Next() {
		var car domain.Car

		err = rows.Scan(
			&car.ID,
			&car.Make,
			&car.Model,
			&car.Year,
			&car.RentalPrice,
			&car.Quantity,
			&car.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		cars = append(cars, car)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cars, nil
}

func (p *PostgresCarRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	car, err := p.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = p.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return car, nil
}

func (p *PostgresCarRepository) Reserve(ctx context.Context, carId, bookingId uuid.UUID) (*domain.CarReservation, error) {
	reservation := domain.CarReservation{
		CarID:     carId,
		BookingID: bookingId,
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Atomic conditional decrement. Zero rows means the car either does
		// not exist or has no unit left; both map to "not available".
		tag, err := tx.Exec(ctx, `
			UPDATE cars
			SET quantity = quantity - 1
			WHERE id = $1 AND quantity > 0`, carId)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrCarNotAvailable
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO car_reservations (car_id, booking_id)
			VALUES ($1, $2)
			RETURNING id`, carId, bookingId).Scan(&reservation.ID)

		if err != nil && isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (p *PostgresCarRepository) ReleaseReservation(ctx context.Context, reservationId uuid.UUID) (*domain.CarReservation, error) {
	reservation := domain.CarReservation{
		ID: reservationId,
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			DELETE FROM car_reservations
			WHERE id = $1
			RETURNING car_id, booking_id`, reservationId).Scan(&reservation.CarID, &reservation.BookingID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE cars
			SET quantity = quantity + 1
			WHERE id = $1`, reservation.CarID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (p *PostgresCarRepository) GetAllReservations(ctx context.Context) ([]domain.CarReservation, error) {
	query := `
		SELECT id, car_id, booking_id
		FROM car_reservations
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.CarReservation, 0)

	for rows.Next() {
		var reservation domain.CarReservation

		err = rows.Scan(&reservation.ID, &reservation.CarID, &reservation.BookingID)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
