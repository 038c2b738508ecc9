package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
	"github.com/evently/event-booking-api/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CarsTestSuite struct {
	suite.Suite
	app         *application
	carRepo     *mocks.MockCarRepo
	bookingRepo *mocks.MockBookingRepo
}

func (s *CarsTestSuite) SetupTest() {
	s.carRepo = &mocks.MockCarRepo{}
	s.bookingRepo = &mocks.MockBookingRepo{}
	s.app = newTestApplication(func(a *application) {
		a.carRepo = s.carRepo
		a.bookingRepo = s.bookingRepo
	})
}

func TestCarsSuite(t *testing.T) {
	suite.Run(t, new(CarsTestSuite))
}

func (s *CarsTestSuite) TestReserveCar() {
	ownerId := uuid.New()
	carId := uuid.New()
	booking := testBookingAggregate(ownerId)

	tests := []struct {
		name           string
		userId         uuid.UUID
		isAdmin        bool
		bookingErr     error
		reserveErr     error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "booking not found",
			userId:     ownerId,
			bookingErr: domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "another user's booking",
			userId:     uuid.New(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:           "no unit left",
			userId:         ownerId,
			reserveErr:     domain.ErrCarNotAvailable,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Car not available",
		},
		{
			name:       "car does not exist",
			userId:     ownerId,
			reserveErr: domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "database error",
			userId:     ownerId,
			reserveErr: errors.New("connection lost"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "successful reservation",
			userId:     ownerId,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "admin can reserve for any booking",
			userId:     uuid.New(),
			isAdmin:    true,
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			reservation := &domain.CarReservation{
				ID:        uuid.New(),
				CarID:     carId,
				BookingID: booking.ID,
			}

			s.bookingRepo.GetByIdFunc = func(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
				if tt.bookingErr != nil {
					return nil, tt.bookingErr
				}

				return booking, nil
			}
			s.carRepo.ReserveFunc = func(ctx context.Context, gotCarId, gotBookingId uuid.UUID) (*domain.CarReservation, error) {
				s.Equal(carId, gotCarId)
				s.Equal(booking.ID, gotBookingId)

				if tt.reserveErr != nil {
					return nil, tt.reserveErr
				}

				return reservation, nil
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/cars/"+carId.String()+"/"+booking.ID.String(), nil)
			r = asUser(r, tt.userId, tt.isAdmin)
			r = withURLParams(r, map[string]string{
				"carID":     carId.String(),
				"bookingID": booking.ID.String(),
			})

			s.app.ReserveCar(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantErrMessage != "" {
				checkErrorMessage(s.T(), w, tt.wantErrMessage)
			}

			if tt.wantStatus == http.StatusCreated {
				var resp api.CarReservationResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
				s.Equal(reservation.ID, resp.CarReservationId)
				s.Equal(carId, resp.CarId)
				s.Equal(booking.ID, resp.BookingId)
			}
		})
	}
}

func (s *CarsTestSuite) TestReleaseCarReservation() {
	userId := uuid.New()
	reservationId := uuid.New()

	tests := []struct {
		name       string
		releaseErr error
		wantStatus int
	}{
		{
			name:       "reservation not found",
			releaseErr: domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "successful release",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.carRepo.ReleaseReservationFunc = func(ctx context.Context, id uuid.UUID) (*domain.CarReservation, error) {
				s.Equal(reservationId, id)

				if tt.releaseErr != nil {
					return nil, tt.releaseErr
				}

				return &domain.CarReservation{ID: id}, nil
			}

			w, r := executeRequest(s.T(), http.MethodDelete, "/cars/reservations/"+reservationId.String(), nil)
			r = asUser(r, userId, false)
			r = withURLParams(r, map[string]string{"reservationID": reservationId.String()})

			s.app.ReleaseCarReservation(w, r)

			s.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (s *CarsTestSuite) TestGetCars() {
	s.carRepo.GetAllFunc = func(ctx context.Context) ([]domain.Car, error) {
		return []domain.Car{
			{ID: uuid.New(), Make: "Toyota", Model: "Corolla", Year: 2022, Quantity: 3},
		}, nil
	}

	w, r := executeRequest(s.T(), http.MethodGet, "/cars", nil)

	s.app.GetCars(w, r)

	s.Equal(http.StatusOK, w.Code)

	var resp []api.CarResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Len(resp, 1)
	s.Equal("Toyota", resp[0].CarMake)
	s.Equal(3, resp[0].CarQuantity)
}
