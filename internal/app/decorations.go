package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
	"github.com/evently/event-booking-api/internal/media"
)

func (app *application) GetDecorations(w http.ResponseWriter, r *http.Request) {
	decorations, err := app.decorationRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.DecorationResponse, 0, len(decorations))
	for i := range decorations {
		resp = append(resp, toDecorationResponse(&decorations[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetDecoration(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "decorationID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	decoration, err := app.decorationRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toDecorationResponse(decoration), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateDecoration(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	price, err := formDecimal(r, "decoration_price")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := api.CreateDecorationForm{
		DecorationName:        r.FormValue("decoration_name"),
		DecorationDescription: r.FormValue("decoration_description"),
		DecorationPrice:       price,
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	imageURL, err := app.saveImagePart(r, "decoration_image")
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImageType) {
			app.badRequestResponse(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	decoration := domain.Decoration{
		Name:        form.DecorationName,
		Description: form.DecorationDescription,
		Price:       form.DecorationPrice,
		ImageURL:    imageURL,
	}

	err = app.decorationRepo.Create(r.Context(), &decoration)
	if err != nil {
		app.cleanupImage(imageURL)
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toDecorationResponse(&decoration), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteDecoration(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "decorationID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	decoration, err := app.decorationRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.cleanupImage(decoration.ImageURL)

	w.WriteHeader(http.StatusNoContent)
}

func toDecorationResponse(decoration *domain.Decoration) api.DecorationResponse {
	return api.DecorationResponse{
		DecorationId:          decoration.ID,
		DecorationName:        decoration.Name,
		DecorationPrice:       decoration.Price,
		DecorationDescription: decoration.Description,
		DecorationImage:       decoration.ImageURL,
	}
}
