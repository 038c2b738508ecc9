package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDeclined  BookingStatus = "declined"
)

type PaymentMethod string

const (
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodEasypaisa  PaymentMethod = "easypaisa"
	PaymentMethodJazzcash   PaymentMethod = "jazzcash"
	PaymentMethodOther      PaymentMethod = "other"
)

type Payment struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	AmountPayed decimal.Decimal
	TotalAmount decimal.Decimal
	Discount    decimal.Decimal
	Method      PaymentMethod
}

// Booking is the aggregate root. It exclusively owns its Payment and its
// CarReservations and only references the user, venue and optional extras.
type Booking struct {
	ID           uuid.UUID
	BookingDate  time.Time
	EventDate    time.Time
	GuestCount   int
	Status       BookingStatus
	UserID       uuid.UUID
	VenueID      uuid.UUID
	CateringID   *uuid.UUID
	DecorationID *uuid.UUID
	PromoID      *uuid.UUID

	User            User
	Venue           Venue
	Payment         Payment
	Catering        *Catering
	Decoration      *Decoration
	Promo           *Promo
	CarReservations []CarReservation
}

// BookingPatch carries partial-update fields for a booking. Nil means the
// field was absent from the request and must be left untouched. The optional
// references can be repointed but not cleared through a patch; detaching one
// happens when the referenced record itself is deleted.
type BookingPatch struct {
	EventDate    *time.Time
	GuestCount   *int
	Status       *BookingStatus
	VenueID      *uuid.UUID
	CateringID   *uuid.UUID
	DecorationID *uuid.UUID
	PromoID      *uuid.UUID
}

func (p BookingPatch) IsZero() bool {
	return p.EventDate == nil && p.GuestCount == nil && p.Status == nil &&
		p.VenueID == nil && p.CateringID == nil && p.DecorationID == nil && p.PromoID == nil
}

type PaymentPatch struct {
	AmountPayed *decimal.Decimal
	TotalAmount *decimal.Decimal
	Discount    *decimal.Decimal
	Method      *PaymentMethod
}

type BookingRepository interface {
	// CreateWithPayment inserts the booking and its payment as one atomic
	// unit. The venue-day collision and capacity checks run inside the same
	// transaction; a unique index violation at commit time is reported as
	// ErrVenueAlreadyBooked.
	CreateWithPayment(ctx context.Context, booking *Booking, payment *Payment) error

	// GetById returns the fully hydrated aggregate.
	GetById(ctx context.Context, id uuid.UUID) (*Booking, error)

	GetAll(ctx context.Context, pagination Pagination) ([]Booking, *Metadata, error)
	GetAllByUserId(ctx context.Context, userId uuid.UUID) ([]Booking, error)

	// UpdateWithPayment applies both patches in one transaction, re-running
	// the collision check when the venue or event date change.
	UpdateWithPayment(ctx context.Context, id uuid.UUID, bookingPatch BookingPatch, paymentPatch PaymentPatch) (*Booking, error)

	// Delete removes the booking, cascading to its payment and reservations,
	// after returning every reserved car unit to its pool. The pre-deletion
	// aggregate is returned.
	Delete(ctx context.Context, id uuid.UUID) (*Booking, error)
}
