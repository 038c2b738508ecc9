package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evently/event-booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// bookingColumns is the joined projection shared by every aggregate read.
const bookingColumns = `
	b.id, b.booking_date, b.event_date, b.guest_count, b.status,
	b.user_id, b.venue_id, b.catering_id, b.decoration_id, b.promo_id,
	u.username, u.email, u.is_admin,
	v.name, v.address, v.capacity, v.price_per_day, v.image_url,
	p.id, p.amount_payed, p.total_amount, p.discount, p.method,
	c.name, c.description, c.image_url,
	d.name, d.description, d.price, d.image_url,
	pr.name, pr.expiry, pr.discount
`

const bookingJoins = `
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN venues v ON v.id = b.venue_id
	JOIN payments p ON p.booking_id = b.id
	LEFT JOIN caterings c ON c.id = b.catering_id
	LEFT JOIN decorations d ON d.id = b.decoration_id
	LEFT JOIN promos pr ON pr.id = b.promo_id
`

func (p *PostgresBookingRepository) CreateWithPayment(
	ctx context.Context,
	booking *domain.Booking,
	payment *domain.Payment) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var capacity int

		err := tx.QueryRow(ctx, `SELECT capacity FROM venues WHERE id = $1`, booking.VenueID).Scan(&capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		if booking.GuestCount > capacity {
			return domain.ErrCapacityExceeded
		}

		// Early collision check. Non-authoritative: the unique index on
		// (venue_id, date(event_date)) closes the race at commit time.
		var taken bool

		err = tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE venue_id = $1 AND date(event_date) = date($2)
			)`, booking.VenueID, booking.EventDate).Scan(&taken)
		if err != nil {
			return err
		}

		if taken {
			return domain.ErrVenueAlreadyBooked
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO bookings (event_date, guest_count, status, user_id, venue_id, catering_id, decoration_id, promo_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, booking_date`,
			booking.EventDate,
			booking.GuestCount,
			booking.Status,
			booking.UserID,
			booking.VenueID,
			booking.CateringID,
			booking.DecorationID,
			booking.PromoID).Scan(&booking.ID, &booking.BookingDate)

		if err != nil {
			switch {
			case isUniqueViolation(err):
				return domain.ErrVenueAlreadyBooked
			case isForeignKeyViolation(err):
				return domain.ErrRecordNotFound
			}

			return err
		}

		payment.BookingID = booking.ID

		return tx.QueryRow(ctx, `
			INSERT INTO payments (booking_id, amount_payed, total_amount, discount, method)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			payment.BookingID,
			payment.AmountPayed,
			payment.TotalAmount,
			payment.Discount,
			payment.Method).Scan(&payment.ID)
	})
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return p.getById(ctx, p.db, id)
}

func (p *PostgresBookingRepository) getById(ctx context.Context, q queryer, id uuid.UUID) (*domain.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `WHERE b.id = $1`

	row := q.QueryRow(ctx, query, id)

	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	err = hydrateRelations(ctx, q, []*domain.Booking{booking})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// bookingSortColumns whitelists the sortable columns of the admin listing.
var bookingSortColumns = map[string]string{
	"booking_date": "b.booking_date",
	"event_date":   "b.event_date",
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	sortColumn, ok := bookingSortColumns[pagination.SortColumn()]
	if !ok {
		sortColumn = "b.booking_date"
	}

	query := fmt.Sprintf(`SELECT COUNT(*) OVER(),%s%sORDER BY %s %s, b.id LIMIT $1 OFFSET $2`,
		bookingColumns, bookingJoins, sortColumn, pagination.SortDirection())

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	totalRecords := 0

	for rows.Next() {
		booking, err := scanBookingWithCount(rows, &totalRecords)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	err = hydrateRelations(ctx, p.db, bookings)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return deref(bookings), metadata, nil
}

func (p *PostgresBookingRepository) GetAllByUserId(ctx context.Context, userId uuid.UUID) ([]domain.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `WHERE b.user_id = $1 ORDER BY b.booking_date DESC`

	rows, err := p.db.Query(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	err = hydrateRelations(ctx, p.db, bookings)
	if err != nil {
		return nil, err
	}

	return deref(bookings), nil
}

func (p *PostgresBookingRepository) UpdateWithPayment(
	ctx context.Context,
	id uuid.UUID,
	bookingPatch domain.BookingPatch,
	paymentPatch domain.PaymentPatch) (*domain.Booking, error) {

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var (
			venueID    uuid.UUID
			eventDate  time.Time
			guestCount int
		)

		err := tx.QueryRow(ctx, `
			SELECT venue_id, event_date, guest_count
			FROM bookings
			WHERE id = $1
			FOR UPDATE`, id).Scan(&venueID, &eventDate, &guestCount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		newVenueID := venueID
		if bookingPatch.VenueID != nil {
			newVenueID = *bookingPatch.VenueID
		}

		newEventDate := eventDate
		if bookingPatch.EventDate != nil {
			newEventDate = *bookingPatch.EventDate
		}

		newGuestCount := guestCount
		if bookingPatch.GuestCount != nil {
			newGuestCount = *bookingPatch.GuestCount
		}

		venueChanged := newVenueID != venueID
		dayChanged := !sameDay(newEventDate, eventDate)

		// Moving the booking to another venue or day must honor the same
		// invariants as creation.
		if venueChanged || dayChanged {
			var taken bool

			err = tx.QueryRow(ctx, `
				SELECT EXISTS (
					SELECT 1 FROM bookings
					WHERE venue_id = $1 AND date(event_date) = date($2) AND id <> $3
				)`, newVenueID, newEventDate, id).Scan(&taken)
			if err != nil {
				return err
			}

			if taken {
				return domain.ErrVenueAlreadyBooked
			}
		}

		if venueChanged || bookingPatch.GuestCount != nil {
			var capacity int

			err = tx.QueryRow(ctx, `SELECT capacity FROM venues WHERE id = $1`, newVenueID).Scan(&capacity)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrRecordNotFound
				}

				return err
			}

			if newGuestCount > capacity {
				return domain.ErrCapacityExceeded
			}
		}

		if !bookingPatch.IsZero() {
			// Optional references can be repointed but not cleared: a nil
			// patch field leaves the stored value. Removing a catering,
			// decoration or promo goes through deleting that record, which
			// sets the reference NULL.
			_, err = tx.Exec(ctx, `
				UPDATE bookings
				SET event_date = $1,
					guest_count = $2,
					status = COALESCE($3, status),
					venue_id = $4,
					catering_id = COALESCE($5, catering_id),
					decoration_id = COALESCE($6, decoration_id),
					promo_id = COALESCE($7, promo_id)
				WHERE id = $8`,
				newEventDate,
				newGuestCount,
				bookingPatch.Status,
				newVenueID,
				bookingPatch.CateringID,
				bookingPatch.DecorationID,
				bookingPatch.PromoID,
				id)
			if err != nil {
				switch {
				case isUniqueViolation(err):
					return domain.ErrVenueAlreadyBooked
				case isForeignKeyViolation(err):
					return domain.ErrRecordNotFound
				}

				return err
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE payments
			SET amount_payed = COALESCE($1, amount_payed),
				total_amount = COALESCE($2, total_amount),
				discount = COALESCE($3, discount),
				method = COALESCE($4, method)
			WHERE booking_id = $5`,
			paymentPatch.AmountPayed,
			paymentPatch.TotalAmount,
			paymentPatch.Discount,
			paymentPatch.Method,
			id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return p.GetById(ctx, id)
}

func (p *PostgresBookingRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking *domain.Booking

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var err error

		booking, err = p.getById(ctx, tx, id)
		if err != nil {
			return err
		}

		// Return every reserved unit to its car's pool before the cascade
		// removes the reservation rows.
		_, err = tx.Exec(ctx, `
			UPDATE cars c
			SET quantity = c.quantity + r.units
			FROM (
				SELECT car_id, COUNT(*) AS units
				FROM car_reservations
				WHERE booking_id = $1
				GROUP BY car_id
			) r
			WHERE c.id = r.car_id`, id)
		if err != nil {
			return err
		}

		// Payment and car reservation rows go with the booking via ON DELETE
		// CASCADE.
		_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func deref(bookings []*domain.Booking) []domain.Booking {
	out := make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		out[i] = *b
	}

	return out
}

// scanBooking reads one row of the shared joined projection.
func scanBooking(row pgx.Row) (*domain.Booking, error) {
	return scanBookingInto(row, nil)
}

func scanBookingWithCount(row pgx.Row, totalRecords *int) (*domain.Booking, error) {
	return scanBookingInto(row, totalRecords)
}

func scanBookingInto(row pgx.Row, totalRecords *int) (*domain.Booking, error) {
	var (
		booking domain.Booking

		cateringName  *string
		cateringDesc  *string
		cateringImage *string

		decorationName  *string
		decorationDesc  *string
		decorationPrice *decimal.Decimal
		decorationImage *string

		promoName     *string
		promoExpiry   *time.Time
		promoDiscount *decimal.Decimal
	)

	dest := []any{
		&booking.ID, &booking.BookingDate, &booking.EventDate, &booking.GuestCount, &booking.Status,
		&booking.UserID, &booking.VenueID, &booking.CateringID, &booking.DecorationID, &booking.PromoID,
		&booking.User.Username, &booking.User.Email, &booking.User.IsAdmin,
		&booking.Venue.Name, &booking.Venue.Address, &booking.Venue.Capacity, &booking.Venue.PricePerDay, &booking.Venue.ImageURL,
		&booking.Payment.ID, &booking.Payment.AmountPayed, &booking.Payment.TotalAmount, &booking.Payment.Discount, &booking.Payment.Method,
		&cateringName, &cateringDesc, &cateringImage,
		&decorationName, &decorationDesc, &decorationPrice, &decorationImage,
		&promoName, &promoExpiry, &promoDiscount,
	}

	if totalRecords != nil {
		dest = append([]any{totalRecords}, dest...)
	}

	err := row.Scan(dest...)
	if err != nil {
		return nil, err
	}

	booking.User.ID = booking.UserID
	booking.Venue.ID = booking.VenueID
	booking.Payment.BookingID = booking.ID

	if booking.CateringID != nil {
		booking.Catering = &domain.Catering{
			ID:          *booking.CateringID,
			Name:        *cateringName,
			Description: *cateringDesc,
			ImageURL:    cateringImage,
		}
	}

	if booking.DecorationID != nil {
		booking.Decoration = &domain.Decoration{
			ID:          *booking.DecorationID,
			Name:        *decorationName,
			Description: *decorationDesc,
			Price:       *decorationPrice,
			ImageURL:    decorationImage,
		}
	}

	if booking.PromoID != nil {
		booking.Promo = &domain.Promo{
			ID:       *booking.PromoID,
			Name:     *promoName,
			Expiry:   *promoExpiry,
			Discount: *promoDiscount,
		}
	}

	return &booking, nil
}

// hydrateRelations batch-loads the owned car reservations and the catering
// menu items of the given bookings.
func hydrateRelations(ctx context.Context, q queryer, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Booking, len(bookings))
	bookingIDs := make([]uuid.UUID, 0, len(bookings))
	cateringIDs := make([]uuid.UUID, 0)

	for _, b := range bookings {
		b.CarReservations = make([]domain.CarReservation, 0)
		byID[b.ID] = b
		bookingIDs = append(bookingIDs, b.ID)

		if b.Catering != nil {
			b.Catering.MenuItems = make([]domain.CateringMenuItem, 0)
			cateringIDs = append(cateringIDs, b.Catering.ID)
		}
	}

	rows, err := q.Query(ctx, `
		SELECT id, car_id, booking_id
		FROM car_reservations
		WHERE booking_id = ANY($1)
		ORDER BY id`, bookingIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var reservation domain.CarReservation

		err = rows.Scan(&reservation.ID, &reservation.CarID, &reservation.BookingID)
		if err != nil {
			return err
		}

		booking := byID[reservation.BookingID]
		booking.CarReservations = append(booking.CarReservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	if len(cateringIDs) == 0 {
		return nil
	}

	menuRows, err := q.Query(ctx, `
		SELECT catering_id, dish_id
		FROM catering_menu_items
		WHERE catering_id = ANY($1)`, cateringIDs)
	if err != nil {
		return err
	}
	defer menuRows.Close()

	menuByCatering := make(map[uuid.UUID][]domain.CateringMenuItem)

	for menuRows.Next() {
		var item domain.CateringMenuItem

		err = menuRows.Scan(&item.CateringID, &item.DishID)
		if err != nil {
			return err
		}

		menuByCatering[item.CateringID] = append(menuByCatering[item.CateringID], item)
	}

	if err = menuRows.Err(); err != nil {
		return err
	}

	for _, b := range bookings {
		if b.Catering != nil {
			if items, ok := menuByCatering[b.Catering.ID]; ok {
				b.Catering.MenuItems = items
			}
		}
	}

	return nil
}
