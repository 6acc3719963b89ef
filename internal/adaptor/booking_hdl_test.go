package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/dto/request"
	"classroom-booking/internal/dto/response"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

type stubBookingService struct {
	createErr error
	created   *response.BookingResponse
	listErr   error
	listed    []response.BookingResponse
}

func (s *stubBookingService) Create(_ context.Context, _ entity.Caller, _ *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubBookingService) List(_ context.Context, _ entity.Caller, _ entity.ResourceKind, _ bool) ([]response.BookingResponse, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listed, nil
}

func (s *stubBookingService) Delete(_ context.Context, _ entity.ResourceKind, _ int64) error {
	return nil
}

func createBookingRequest(t *testing.T, authenticated bool) *http.Request {
	t.Helper()

	body, err := json.Marshal(request.CreateBookingRequest{
		Kind:     "classroom",
		Resource: "R101",
		Date:     "2030-01-15",
		Start:    "09:00",
		End:      "10:00",
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	if authenticated {
		r = r.WithContext(utils.SetUserContext(r.Context(), "bob", "teacher"))
	}
	return r
}

func TestCreateBookingStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"unauthenticated", fmt.Errorf("no identity: %w", apperrors.ErrUnauthenticated), http.StatusUnauthorized},
		{"forbidden", fmt.Errorf("role student: %w", apperrors.ErrForbidden), http.StatusForbidden},
		{"invalid range", fmt.Errorf("10:00 to 09:00: %w", apperrors.ErrInvalidRange), http.StatusBadRequest},
		{"past date", fmt.Errorf("2020-01-01: %w", apperrors.ErrPastDate), http.StatusBadRequest},
		{"conflict", fmt.Errorf("R101 taken: %w", apperrors.ErrConflict), http.StatusConflict},
		{"resource missing", fmt.Errorf("R999: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"storage failure", fmt.Errorf("insert: %w: connection reset", apperrors.ErrStorage), http.StatusInternalServerError},
		{"storage failure with invalid in driver text",
			fmt.Errorf("query classroom bookings: %w: %w", apperrors.ErrStorage,
				errors.New(`invalid input syntax for type integer: "abc"`)),
			http.StatusInternalServerError},
		{"unclassified", errors.New("backend hiccup"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewBookingHandler(&stubBookingService{createErr: tc.serviceErr}, zap.NewNop())

			w := httptest.NewRecorder()
			handler.CreateBooking(w, createBookingRequest(t, true))

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}

			var resp utils.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Status {
				t.Error("error response should have status=false")
			}
			if tc.wantStatus == http.StatusInternalServerError && resp.Message != "Internal server error" {
				t.Errorf("internal failure leaked its message: %q", resp.Message)
			}
		})
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	t.Parallel()

	stub := &stubBookingService{created: &response.BookingResponse{
		ID: 7, Kind: "classroom", Owner: "bob", Resource: "R101",
		Date: "2030-01-15", Start: "09:00", End: "10:00", Duration: "1h0m0s",
	}}
	handler := NewBookingHandler(stub, zap.NewNop())

	w := httptest.NewRecorder()
	handler.CreateBooking(w, createBookingRequest(t, true))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Status {
		t.Error("success response should have status=true")
	}
}

func TestCreateBookingWithoutIdentity(t *testing.T) {
	t.Parallel()

	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	w := httptest.NewRecorder()
	handler.CreateBooking(w, createBookingRequest(t, false))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCreateBookingMalformedBody(t *testing.T) {
	t.Parallel()

	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	r = r.WithContext(utils.SetUserContext(r.Context(), "bob", "teacher"))

	w := httptest.NewRecorder()
	handler.CreateBooking(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetBookingsDefaultsToClassrooms(t *testing.T) {
	t.Parallel()

	stub := &stubBookingService{listed: []response.BookingResponse{}}
	handler := NewBookingHandler(stub, zap.NewNop())

	r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r = r.WithContext(utils.SetUserContext(r.Context(), "carol", "student"))

	w := httptest.NewRecorder()
	handler.GetBookings(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
