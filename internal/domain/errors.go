package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrVenueAlreadyBooked = errors.New("venue is already reserved for that day")
	ErrCapacityExceeded   = errors.New("guest count exceeds venue capacity")
	ErrCarNotAvailable    = errors.New("car not available")
	ErrDuplicateMenuItem  = errors.New("dish already exists in catering menu")
)
