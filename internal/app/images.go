package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/internal/media"
	"github.com/go-chi/chi/v5"
)

func (app *application) GetImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "imageName")

	path, err := app.media.Resolve(name)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrImageNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	http.ServeFile(w, r, path)
}
