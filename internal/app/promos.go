package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
)

func (app *application) GetPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := app.promoRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.PromoResponse, 0, len(promos))
	for i := range promos {
		resp = append(resp, toPromoResponse(&promos[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetPromo(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "promoID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	promo, err := app.promoRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPromoResponse(promo), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePromoRequest

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

	promo := domain.Promo{
		Name:     input.PromoName,
		Expiry:   input.PromoExpiry,
		Discount: input.PromoDiscount,
	}

	err = app.promoRepo.Create(r.Context(), &promo)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPromoResponse(&promo), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeletePromo(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "promoID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err = app.promoRepo.Delete(r.Context(), id)
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

func toPromoResponse(promo *domain.Promo) api.PromoResponse {
	return api.PromoResponse{
		PromoId:       promo.ID,
		PromoName:     promo.Name,
		PromoExpiry:   promo.Expiry,
		PromoDiscount: promo.Discount,
	}
}
