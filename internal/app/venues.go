package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
	"github.com/evently/event-booking-api/internal/media"
)

func (app *application) GetVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := app.venueRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.VenueResponse, 0, len(venues))
	for i := range venues {
		resp = append(resp, toVenueResponse(&venues[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	venue, err := app.venueRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toVenueResponse(venue), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateVenue(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	capacity, err := formInt(r, "venue_capacity")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	pricePerDay, err := formDecimal(r, "venue_price_per_day")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := api.CreateVenueForm{
		VenueName:        r.FormValue("venue_name"),
		VenueAddress:     r.FormValue("venue_address"),
		VenueCapacity:    capacity,
		VenuePricePerDay: pricePerDay,
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	imageURL, err := app.saveImagePart(r, "venue_image")
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImageType) {
			app.badRequestResponse(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	venue := domain.Venue{
		Name:        form.VenueName,
		Address:     form.VenueAddress,
		Capacity:    form.VenueCapacity,
		PricePerDay: form.VenuePricePerDay,
		ImageURL:    imageURL,
		Reviews:     make([]domain.VenueReview, 0),
	}

	err = app.venueRepo.Create(r.Context(), &venue)
	if err != nil {
		app.cleanupImage(imageURL)
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toVenueResponse(&venue), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	venue, err := app.venueRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.cleanupImage(venue.ImageURL)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) GetVenueReviews(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reviews, err := app.venueRepo.GetReviewsByVenueId(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.VenueReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, toVenueReviewResponse(&reviews[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateVenueReview(w http.ResponseWriter, r *http.Request) {
	venueId, err := app.readUUIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateVenueReviewRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	review := domain.VenueReview{
		VenueID: venueId,
		UserID:  app.contextGetUserId(r),
		Text:    input.VenueReviewText,
		Rating:  input.VenueRating,
	}

	err = app.venueRepo.CreateReview(r.Context(), &review)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toVenueReviewResponse(&review), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteVenueReview(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.venueRepo.DeleteReview(r.Context(), id)
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

func toVenueResponse(venue *domain.Venue) api.VenueResponse {
	reviews := make([]api.VenueReviewResponse, 0, len(venue.Reviews))
	for i := range venue.Reviews {
		reviews = append(reviews, toVenueReviewResponse(&venue.Reviews[i]))
	}

	return api.VenueResponse{
		VenueId:          venue.ID,
		VenueName:        venue.Name,
		VenueAddress:     venue.Address,
		VenueCapacity:    venue.Capacity,
		VenuePricePerDay: venue.PricePerDay,
		VenueImage:       venue.ImageURL,
		VenueReviews:     reviews,
	}
}

func toVenueReviewResponse(review *domain.VenueReview) api.VenueReviewResponse {
	resp := api.VenueReviewResponse{
		VenueReviewId:        review.ID,
		VenueId:              review.VenueID,
		VenueReviewText:      review.Text,
		VenueRating:          review.Rating,
		VenueReviewCreatedAt: review.CreatedAt,
	}

	if review.User != nil {
		user := toUserResponse(review.User)
		resp.User = &user
	}

	return resp
}
