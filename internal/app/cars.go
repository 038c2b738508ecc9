package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
	"github.com/evently/event-booking-api/internal/media"
)

func (app *application) GetCars(w http.ResponseWriter, r *http.Request) {
	cars, err := app.carRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CarResponse, 0, len(cars))
	for i := range cars {
		resp = append(resp, toCarResponse(&cars[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "carID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	car, err := app.carRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toCarResponse(car), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateCar(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	year, err := formInt(r, "car_year")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	quantity, err := formInt(r, "car_quantity")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rentalPrice, err := formDecimal(r, "car_rental_price")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := api.CreateCarForm{
		CarMake:        r.FormValue("car_make"),
		CarModel:       r.FormValue("car_model"),
		CarYear:        year,
		CarRentalPrice: rentalPrice,
		CarQuantity:    quantity,
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	imageURL, err := app.saveImagePart(r, "car_image")
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImageType) {
			app.badRequestResponse(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	car := domain.Car{
		Make:        form.CarMake,
		Model:       form.CarModel,
		Year:        form.CarYear,
		RentalPrice: form.CarRentalPrice,
		Quantity:    form.CarQuantity,
		ImageURL:    imageURL,
	}

	err = app.carRepo.Create(r.Context(), &car)
	if err != nil {
		app.cleanupImage(imageURL)
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCarResponse(&car), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "carID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	car, err := app.carRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.cleanupImage(car.ImageURL)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) ReserveCar(w http.ResponseWriter, r *http.Request) {
	carId, err := app.readUUIDParam(r, "carID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bookingId, err := app.readUUIDParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if booking.UserID != app.contextGetUserId(r) && !app.contextGetIsAdmin(r) {
		app.forbiddenResponse(w, r)
		return
	}

	reservation, err := app.carRepo.Reserve(r.Context(), carId, bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCarNotAvailable):
			app.errorResponse(w, r, http.StatusNotFound, "Car not available")
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCarReservationResponse(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ReleaseCarReservation(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "reservationID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err = app.carRepo.ReleaseReservation(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) GetCarReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := app.carRepo.GetAllReservations(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CarReservationResponse, 0, len(reservations))
	for i := range reservations {
		resp = append(resp, toCarReservationResponse(&reservations[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCarResponse(car *domain.Car) api.CarResponse {
	return api.CarResponse{
		CarId:          car.ID,
		CarMake:        car.Make,
		CarModel:       car.Model,
		CarYear:        car.Year,
		CarRentalPrice: car.RentalPrice,
		CarImage:       car.ImageURL,
		CarQuantity:    car.Quantity,
	}
}

func toCarReservationResponse(reservation *domain.CarReservation) api.CarReservationResponse {
	return api.CarReservationResponse{
		CarReservationId: reservation.ID,
		CarId:            reservation.CarID,
		BookingId:        reservation.BookingID,
	}
}
