package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
)

func (app *application) GetBookings(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	pagination := domain.Pagination{
		Page:     readInt(qs, "page", 1),
		PageSize: readInt(qs, "pageSize", 20),
		Sort:     readString(qs, "sort", "-booking_date"),
	}

	if pagination.Page < 1 || pagination.PageSize < 1 || pagination.PageSize > 100 {
		app.badRequestResponse(w, r, errors.New("invalid pagination parameters"))
		return
	}

	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: toBookingResponses(bookings),
		Metadata: toMetadataResponse(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.GetAllByUserId(r.Context(), app.contextGetUserId(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: toBookingResponses(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := app.bookingForRequest(w, r)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	// Non-admins can only book for themselves.
	if input.Booking.UserId != app.contextGetUserId(r) && !app.contextGetIsAdmin(r) {
		app.forbiddenResponse(w, r)
		return
	}

	status := domain.BookingStatusPending
	if input.Booking.BookingStatus != nil {
		status = domain.BookingStatus(*input.Booking.BookingStatus)
	}

	booking := domain.Booking{
		EventDate:    input.Booking.BookingEventDate,
		GuestCount:   input.Booking.BookingGuestCount,
		Status:       status,
		UserID:       input.Booking.UserId,
		VenueID:      input.Booking.VenueId,
		CateringID:   input.Booking.CateringId,
		DecorationID: input.Booking.DecorationId,
		PromoID:      input.Booking.PromoId,
	}

	payment := domain.Payment{
		AmountPayed: input.Payment.AmountPayed,
		TotalAmount: input.Payment.TotalAmount,
		Discount:    input.Payment.Discount,
		Method:      domain.PaymentMethod(input.Payment.PaymentMethod),
	}

	err = app.bookingRepo.CreateWithPayment(r.Context(), &booking, &payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVenueAlreadyBooked):
			app.badRequestResponse(w, r, errors.New("venue is already booked for this date"))
		case errors.Is(err, domain.ErrCapacityExceeded):
			app.badRequestResponse(w, r, errors.New("guest count exceeds venue capacity"))
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.bookingRepo.GetById(r.Context(), booking.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sendBookingConfirmation(created)

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := app.bookingForRequest(w, r)
	if !ok {
		return
	}

	var input api.UpdateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	bookingPatch := domain.BookingPatch{
		EventDate:    input.Booking.BookingEventDate,
		GuestCount:   input.Booking.BookingGuestCount,
		Status:       (*domain.BookingStatus)(input.Booking.BookingStatus),
		VenueID:      input.Booking.VenueId,
		CateringID:   input.Booking.CateringId,
		DecorationID: input.Booking.DecorationId,
		PromoID:      input.Booking.PromoId,
	}

	paymentPatch := domain.PaymentPatch{
		AmountPayed: input.Payment.AmountPayed,
		TotalAmount: input.Payment.TotalAmount,
		Discount:    input.Payment.Discount,
		Method:      (*domain.PaymentMethod)(input.Payment.PaymentMethod),
	}

	updated, err := app.bookingRepo.UpdateWithPayment(r.Context(), booking.ID, bookingPatch, paymentPatch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVenueAlreadyBooked):
			app.badRequestResponse(w, r, errors.New("venue is already booked for this date"))
		case errors.Is(err, domain.ErrCapacityExceeded):
			app.badRequestResponse(w, r, errors.New("guest count exceeds venue capacity"))
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := app.bookingForRequest(w, r)
	if !ok {
		return
	}

	_, err := app.bookingRepo.Delete(r.Context(), booking.ID)
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

// bookingForRequest loads the booking named by the URL and enforces the
// owner-or-admin policy. It writes the error response itself on failure.
func (app *application) bookingForRequest(w http.ResponseWriter, r *http.Request) (*domain.Booking, bool) {
	id, err := app.readUUIDParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	if booking.UserID != app.contextGetUserId(r) && !app.contextGetIsAdmin(r) {
		app.forbiddenResponse(w, r)
		return nil, false
	}

	return booking, true
}

func (app *application) sendBookingConfirmation(booking *domain.Booking) {
	email := booking.User.Email
	logger := app.logger

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during sending confirmation mail", "panic", err)
			}
		}()

		data := map[string]any{
			"venueName": booking.Venue.Name,
			"eventDate": booking.EventDate.Format("02 Jan 2006 15:04"),
			"bookingID": booking.ID,
			"status":    booking.Status,
		}

		err := app.mailer.Send(email, "booking_confirmation.tmpl", data)
		if err != nil {
			logger.Error("failed to send confirmation email", "error", err)
		}
	}()
}

func toBookingResponses(bookings []domain.Booking) []api.BookingResponse {
	resp := make([]api.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}

	return resp
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	resp := api.BookingResponse{
		BookingId:         booking.ID,
		BookingDate:       booking.BookingDate,
		BookingEventDate:  booking.EventDate,
		BookingGuestCount: booking.GuestCount,
		BookingStatus:     api.BookingStatus(booking.Status),
		User:              toUserResponse(&booking.User),
		Venue:             toVenueResponse(&booking.Venue),
		Payment:           toPaymentResponse(&booking.Payment),
		CarReservations:   make([]api.CarReservationResponse, 0, len(booking.CarReservations)),
	}

	if booking.Catering != nil {
		catering := toCateringResponse(booking.Catering)
		resp.Catering = &catering
	}

	if booking.Decoration != nil {
		decoration := toDecorationResponse(booking.Decoration)
		resp.Decoration = &decoration
	}

	if booking.Promo != nil {
		promo := toPromoResponse(booking.Promo)
		resp.Promo = &promo
	}

	for i := range booking.CarReservations {
		resp.CarReservations = append(resp.CarReservations, toCarReservationResponse(&booking.CarReservations[i]))
	}

	return resp
}

func toPaymentResponse(payment *domain.Payment) api.PaymentResponse {
	return api.PaymentResponse{
		PaymentId:     payment.ID,
		AmountPayed:   payment.AmountPayed,
		TotalAmount:   payment.TotalAmount,
		PaymentMethod: api.PaymentMethod(payment.Method),
		Discount:      payment.Discount,
	}
}
