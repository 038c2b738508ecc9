package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
	"github.com/evently/event-booking-api/internal/media"
	"github.com/evently/event-booking-api/internal/mocks"
	"github.com/evently/event-booking-api/internal/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type VenuesTestSuite struct {
	suite.Suite
	app        *application
	venueRepo  *mocks.MockVenueRepo
	mediaStore *mocks.MockMediaStore
}

func (s *VenuesTestSuite) SetupTest() {
	s.venueRepo = &mocks.MockVenueRepo{}
	s.mediaStore = &mocks.MockMediaStore{}
	s.app = newTestApplication(func(a *application) {
		a.venueRepo = s.venueRepo
		a.media = s.mediaStore
	})
}

func TestVenuesSuite(t *testing.T) {
	suite.Run(t, new(VenuesTestSuite))
}

func (s *VenuesTestSuite) TestGetVenue() {
	venue := &domain.Venue{
		ID:          uuid.New(),
		Name:        "Grand Hall",
		Address:     "1 Main St",
		Capacity:    50,
		PricePerDay: decimal.NewFromInt(1000),
		Reviews:     make([]domain.VenueReview, 0),
	}

	tests := []struct {
		name       string
		venueID    string
		getErr     error
		wantStatus int
	}{
		{
			name:       "invalid venue id",
			venueID:    "42",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "venue not found",
			venueID:    uuid.NewString(),
			getErr:     domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "existing venue",
			venueID:    venue.ID.String(),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.venueRepo.GetByIdFunc = func(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
				if tt.getErr != nil {
					return nil, tt.getErr
				}

				return venue, nil
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/venues/"+tt.venueID, nil)
			r = withURLParams(r, map[string]string{"venueID": tt.venueID})

			s.app.GetVenue(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp api.VenueResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
				s.Equal(venue.ID, resp.VenueId)
				s.Equal("Grand Hall", resp.VenueName)
				s.Equal(50, resp.VenueCapacity)
			}
		})
	}
}

func (s *VenuesTestSuite) TestCreateVenueReview() {
	userId := uuid.New()
	venueId := uuid.New()

	tests := []struct {
		name           string
		input          api.CreateVenueReviewRequest
		createErr      error
		wantStatus     int
		wantValidation string
	}{
		{
			name: "rating out of range",
			input: api.CreateVenueReviewRequest{
				VenueRating:     6,
				VenueReviewText: "too good to be true",
			},
			wantStatus:     http.StatusBadRequest,
			wantValidation: "is invalid",
		},
		{
			name: "missing review text",
			input: api.CreateVenueReviewRequest{
				VenueRating: 4,
			},
			wantStatus:     http.StatusBadRequest,
			wantValidation: validator.ErrRequired,
		},
		{
			name: "venue not found",
			input: api.CreateVenueReviewRequest{
				VenueRating:     4,
				VenueReviewText: "lovely venue",
			},
			createErr:  domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "successful review",
			input: api.CreateVenueReviewRequest{
				VenueRating:     4,
				VenueReviewText: "lovely venue",
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.venueRepo.CreateReviewFunc = func(ctx context.Context, review *domain.VenueReview) error {
				if tt.createErr != nil {
					return tt.createErr
				}

				s.Equal(userId, review.UserID)
				s.Equal(venueId, review.VenueID)

				review.ID = uuid.New()
				review.CreatedAt = time.Now()

				return nil
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/venues/"+venueId.String()+"/reviews", tt.input)
			r = asUser(r, userId, false)
			r = withURLParams(r, map[string]string{"venueID": venueId.String()})

			s.app.CreateVenueReview(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantValidation != "" {
				checkValidationIssue(s.T(), w, tt.wantValidation)
			}

			if tt.wantStatus == http.StatusCreated {
				var resp api.VenueReviewResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
				s.Equal(venueId, resp.VenueId)
				s.Equal(4.0, resp.VenueRating)
				s.Equal("lovely venue", resp.VenueReviewText)
			}
		})
	}
}

// venueForm builds the multipart body CreateVenue expects, optionally with
// an image part carrying the given content type.
func venueForm(t *testing.T, name string, imageType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	fields := map[string]string{
		"venue_name":          name,
		"venue_address":       "1 Main St",
		"venue_capacity":      "50",
		"venue_price_per_day": "1000",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}

	if imageType != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="venue_image"; filename="venue.png"`)
		header.Set("Content-Type", imageType)

		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatal(err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	return body, mw.FormDataContentType()
}

func (s *VenuesTestSuite) TestCreateVenue() {
	s.Run("stores image and creates venue", func() {
		s.mediaStore.SaveFunc = func(file io.Reader, contentType string) (string, error) {
			s.Equal("image/png", contentType)
			return "abc123.png", nil
		}
		s.venueRepo.CreateFunc = func(ctx context.Context, venue *domain.Venue) error {
			venue.ID = uuid.New()
			return nil
		}

		body, contentType := venueForm(s.T(), "Grand Hall", "image/png")

		r := httptest.NewRequest(http.MethodPost, "/venues", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		s.app.CreateVenue(w, r)

		s.Equal(http.StatusCreated, w.Code)

		var resp api.VenueResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal("Grand Hall", resp.VenueName)
		s.Require().NotNil(resp.VenueImage)
		s.Equal("/images/abc123.png", *resp.VenueImage)
	})

	s.Run("rejects unsupported image type", func() {
		s.mediaStore.SaveFunc = func(file io.Reader, contentType string) (string, error) {
			return "", media.ErrUnsupportedImageType
		}

		body, contentType := venueForm(s.T(), "Grand Hall", "text/plain")

		r := httptest.NewRequest(http.MethodPost, "/venues", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		s.app.CreateVenue(w, r)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing name fails validation", func() {
		body, contentType := venueForm(s.T(), "", "")

		r := httptest.NewRequest(http.MethodPost, "/venues", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		s.app.CreateVenue(w, r)

		s.Equal(http.StatusBadRequest, w.Code)
		checkValidationIssue(s.T(), w, validator.ErrRequired)
	})

	s.Run("cleans up image when the insert fails", func() {
		deleted := ""

		s.mediaStore.SaveFunc = func(file io.Reader, contentType string) (string, error) {
			return "abc123.png", nil
		}
		s.mediaStore.DeleteFunc = func(imageURL string) error {
			deleted = imageURL
			return nil
		}
		s.venueRepo.CreateFunc = func(ctx context.Context, venue *domain.Venue) error {
			return errors.New("insert failed")
		}

		body, contentType := venueForm(s.T(), "Grand Hall", "image/png")

		r := httptest.NewRequest(http.MethodPost, "/venues", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		s.app.CreateVenue(w, r)

		s.Equal(http.StatusInternalServerError, w.Code)
		s.Equal("/images/abc123.png", deleted)
	})
}

func (s *VenuesTestSuite) TestGetImage() {
	s.Run("unknown image", func() {
		s.mediaStore.ResolveFunc = func(name string) (string, error) {
			return "", media.ErrImageNotFound
		}

		r := httptest.NewRequest(http.MethodGet, "/images/missing.png", nil)
		r = withURLParams(r, map[string]string{"imageName": "missing.png"})
		w := httptest.NewRecorder()

		s.app.GetImage(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("serves a stored image", func() {
		path := filepath.Join(s.T().TempDir(), "abc123.png")
		s.Require().NoError(os.WriteFile(path, []byte("fake image bytes"), 0o644))

		s.mediaStore.ResolveFunc = func(name string) (string, error) {
			s.Equal("abc123.png", name)
			return path, nil
		}

		r := httptest.NewRequest(http.MethodGet, "/images/abc123.png", nil)
		r = withURLParams(r, map[string]string{"imageName": "abc123.png"})
		w := httptest.NewRecorder()

		s.app.GetImage(w, r)

		s.Equal(http.StatusOK, w.Code)
		s.Equal("fake image bytes", w.Body.String())
	})
}
