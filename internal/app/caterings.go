package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
	"github.com/evently/event-booking-api/internal/media"
)

func (app *application) GetCaterings(w http.ResponseWriter, r *http.Request) {
	caterings, err := app.cateringRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CateringResponse, 0, len(caterings))
	for i := range caterings {
		resp = append(resp, toCateringResponse(&caterings[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCatering(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "cateringID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	catering, err := app.cateringRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toCateringResponse(catering), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateCatering(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := api.CreateCateringForm{
		CateringName:        r.FormValue("catering_name"),
		CateringDescription: r.FormValue("catering_description"),
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	imageURL, err := app.saveImagePart(r, "catering_image")
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImageType) {
			app.badRequestResponse(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	catering := domain.Catering{
		Name:        form.CateringName,
		Description: form.CateringDescription,
		ImageURL:    imageURL,
		MenuItems:   make([]domain.CateringMenuItem, 0),
	}

	err = app.cateringRepo.Create(r.Context(), &catering)
	if err != nil {
		app.cleanupImage(imageURL)
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCateringResponse(&catering), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteCatering(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "cateringID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	catering, err := app.cateringRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.cleanupImage(catering.ImageURL)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) GetDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := app.cateringRepo.GetAllDishes(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.DishResponse, 0, len(dishes))
	for i := range dishes {
		resp = append(resp, toDishResponse(&dishes[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetDish(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "dishID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dish, err := app.cateringRepo.GetDishById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toDishResponse(dish), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateDish(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	costPerServing, err := formDecimal(r, "dish_cost_per_serving")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := api.CreateDishForm{
		DishName:           r.FormValue("dish_name"),
		DishDescription:    r.FormValue("dish_description"),
		DishType:           api.DishType(r.FormValue("dish_type")),
		DishCostPerServing: costPerServing,
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	imageURL, err := app.saveImagePart(r, "dish_image")
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImageType) {
			app.badRequestResponse(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	dish := domain.Dish{
		Name:           form.DishName,
		Description:    form.DishDescription,
		Type:           domain.DishType(form.DishType),
		CostPerServing: form.DishCostPerServing,
		ImageURL:       imageURL,
	}

	err = app.cateringRepo.CreateDish(r.Context(), &dish)
	if err != nil {
		app.cleanupImage(imageURL)
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toDishResponse(&dish), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "dishID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dish, err := app.cateringRepo.DeleteDish(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.cleanupImage(dish.ImageURL)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) AddCateringMenuItem(w http.ResponseWriter, r *http.Request) {
	cateringId, err := app.readUUIDParam(r, "cateringID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dishId, err := app.readUUIDParam(r, "dishID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.cateringRepo.AddMenuItem(r.Context(), cateringId, dishId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateMenuItem):
			app.badRequestResponse(w, r, errors.New("dish is already on the menu"))
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.CateringMenuItemResponse{
		CateringId: item.CateringID,
		DishId:     item.DishID,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RemoveCateringMenuItem(w http.ResponseWriter, r *http.Request) {
	cateringId, err := app.readUUIDParam(r, "cateringID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dishId, err := app.readUUIDParam(r, "dishID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.cateringRepo.RemoveMenuItem(r.Context(), cateringId, dishId)
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

func toCateringResponse(catering *domain.Catering) api.CateringResponse {
	items := make([]api.CateringMenuItemResponse, 0, len(catering.MenuItems))
	for _, item := range catering.MenuItems {
		items = append(items, api.CateringMenuItemResponse{
			CateringId: item.CateringID,
			DishId:     item.DishID,
		})
	}

	return api.CateringResponse{
		CateringId:          catering.ID,
		CateringName:        catering.Name,
		CateringDescription: catering.Description,
		CateringImage:       catering.ImageURL,
		CateringMenuItems:   items,
	}
}

func toDishResponse(dish *domain.Dish) api.DishResponse {
	return api.DishResponse{
		DishId:             dish.ID,
		DishName:           dish.Name,
		DishDescription:    dish.Description,
		DishType:           api.DishType(dish.Type),
		DishCostPerServing: dish.CostPerServing,
		DishImage:          dish.ImageURL,
	}
}
