package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/mailer"
	"github.com/evently/event-booking-api/internal/mocks"
	"github.com/evently/event-booking-api/internal/validator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func newTestApplication(opts ...func(*application)) *application {
	app := &application{
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:         mailer.NewMockMailer(),
		userRepo:       &mocks.MockUserRepo{},
		venueRepo:      &mocks.MockVenueRepo{},
		cateringRepo:   &mocks.MockCateringRepo{},
		decorationRepo: &mocks.MockDecorationRepo{},
		carRepo:        &mocks.MockCarRepo{},
		promoRepo:      &mocks.MockPromoRepo{},
		bookingRepo:    &mocks.MockBookingRepo{},
		media:          &mocks.MockMediaStore{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// asUser injects the identity the auth middleware would have resolved.
func asUser(r *http.Request, userId uuid.UUID, isAdmin bool) *http.Request {
	ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
	ctx = context.WithValue(ctx, SessionKeyIsAdmin, isAdmin)

	return r.WithContext(ctx)
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func checkErrorMessage(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	var resp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if resp.Message != want {
		t.Errorf("Error message = %q, want %q", resp.Message, want)
	}
}

func checkValidationIssue(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	var resp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode validation error response: %v", err)
	}

	for _, issue := range resp.ValidationErrors {
		if issue.Issue == want {
			return
		}
	}

	t.Errorf("Expected validation issue %q not found in response", want)
}

func ptr[T any](v T) *T {
	return &v
}
