package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("event-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.cors.trustedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)
	r.Get("/images/{imageName}", app.GetImage)

	r.Post("/signup", app.RegisterUser)
	r.Post("/login", app.Login)
	r.Post("/logout", app.Logout)

	r.Route("/users", func(r chi.Router) {
		r.With(app.requireAdmin).Get("/", app.GetUsers)
		r.With(app.requireAuthentication).Get("/me", app.GetCurrentUser)
	})

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", app.GetVenues)
		r.Get("/{venueID}", app.GetVenue)
		r.With(app.requireAdmin).Post("/", app.CreateVenue)
		r.With(app.requireAdmin).Delete("/{venueID}", app.DeleteVenue)

		r.Get("/{venueID}/reviews", app.GetVenueReviews)
		r.With(app.requireUser).Post("/{venueID}/reviews", app.CreateVenueReview)
		r.With(app.requireAdmin).Delete("/reviews/{reviewID}", app.DeleteVenueReview)
	})

	r.Route("/caterings", func(r chi.Router) {
		r.Get("/", app.GetCaterings)
		r.Get("/{cateringID}", app.GetCatering)
		r.With(app.requireAdmin).Post("/", app.CreateCatering)
		r.With(app.requireAdmin).Delete("/{cateringID}", app.DeleteCatering)

		r.With(app.requireAdmin).Post("/{cateringID}/dishes/{dishID}", app.AddCateringMenuItem)
		r.With(app.requireAdmin).Delete("/{cateringID}/dishes/{dishID}", app.RemoveCateringMenuItem)
	})

	r.Route("/dishes", func(r chi.Router) {
		r.Get("/", app.GetDishes)
		r.Get("/{dishID}", app.GetDish)
		r.With(app.requireAdmin).Post("/", app.CreateDish)
		r.With(app.requireAdmin).Delete("/{dishID}", app.DeleteDish)
	})

	r.Route("/decorations", func(r chi.Router) {
		r.Get("/", app.GetDecorations)
		r.Get("/{decorationID}", app.GetDecoration)
		r.With(app.requireAdmin).Post("/", app.CreateDecoration)
		r.With(app.requireAdmin).Delete("/{decorationID}", app.DeleteDecoration)
	})

	r.Route("/cars", func(r chi.Router) {
		r.Get("/", app.GetCars)
		r.Get("/{carID}", app.GetCar)
		r.With(app.requireAdmin).Post("/", app.CreateCar)
		r.With(app.requireAdmin).Delete("/{carID}", app.DeleteCar)

		r.With(app.requireAdmin).Get("/reservations", app.GetCarReservations)
		r.With(app.requireAuthentication).Post("/{carID}/{bookingID}", app.ReserveCar)
		r.With(app.requireAuthentication).Delete("/reservations/{reservationID}", app.ReleaseCarReservation)
	})

	r.Route("/promos", func(r chi.Router) {
		r.Get("/", app.GetPromos)
		r.Get("/{promoID}", app.GetPromo)
		r.With(app.requireAdmin).Post("/", app.CreatePromo)
		r.With(app.requireAdmin).Delete("/{promoID}", app.DeletePromo)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.With(app.requireAdmin).Get("/", app.GetBookings)
		r.With(app.requireAuthentication).Get("/me", app.GetMyBookings)
		r.With(app.requireAuthentication).Get("/{bookingID}", app.GetBooking)
		r.With(app.requireAuthentication).Post("/", app.CreateBooking)
		r.With(app.requireAuthentication).Patch("/{bookingID}", app.UpdateBooking)
		r.With(app.requireAuthentication).Delete("/{bookingID}", app.DeleteBooking)
	})

	return r
}
