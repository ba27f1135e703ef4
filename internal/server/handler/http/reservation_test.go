package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atinyakov/oceanview/internal/apperr"
	"github.com/atinyakov/oceanview/internal/models"
	"github.com/atinyakov/oceanview/internal/service"
	"github.com/go-chi/chi/v5"
)

// fakeReservationService implements ReservationService for testing.
type fakeReservationService struct {
	createErr error
	found     bool
	err       error
	res       models.Reservation
	bill      models.Bill
	gotNumber string
}

func (f *fakeReservationService) Create(req service.ReservationRequest) (models.Reservation, error) {
	return f.res, f.createErr
}

func (f *fakeReservationService) Get(number string) (models.Reservation, bool, error) {
	f.gotNumber = number
	return f.res, f.found, f.err
}

func (f *fakeReservationService) List() ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Reservation{f.res}, nil
}

func (f *fakeReservationService) Bill(number string) (models.Bill, bool, error) {
	f.gotNumber = number
	return f.bill, f.found, f.err
}

// withNumber attaches a chi route context carrying the {number} parameter.
func withNumber(r *http.Request, number string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("number", number)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestReservationHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeReservationService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `{`,
			service:        &fakeReservationService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Invalid request body",
		},
		{
			name:           "validation error",
			body:           `{}`,
			service:        &fakeReservationService{createErr: apperr.NewValidation("guestName", "Guest name is required")},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Guest name is required",
		},
		{
			name:           "duplicate number",
			body:           `{}`,
			service:        &fakeReservationService{createErr: apperr.ErrDuplicateKey},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Reservation number already exists",
		},
		{
			name:           "storage failure",
			body:           `{}`,
			service:        &fakeReservationService{createErr: apperr.Storage("append", errors.New("disk full"))},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "Server error",
		},
		{
			name:           "saved",
			body:           `{"reservationNumber":"R-1"}`,
			service:        &fakeReservationService{},
			expectedCode:   http.StatusOK,
			expectedSubstr: "Reservation saved successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString(tt.body))
			h := &ReservationHandler{ReservationService: tt.service}
			h.Create(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestReservationHandler_GetAndBill(t *testing.T) {
	tests := []struct {
		name           string
		number         string
		service        *fakeReservationService
		expectedCode   int
		expectedSubstr string
	}{
		{"blank number", "  ", &fakeReservationService{}, http.StatusBadRequest, "Reservation number is required"},
		{"not found", "R-9", &fakeReservationService{}, http.StatusNotFound, "Reservation not found"},
		{"storage failure", "R-1", &fakeReservationService{err: apperr.ErrStorageUnavailable}, http.StatusInternalServerError, "Server error"},
		{"found", "R-1", &fakeReservationService{found: true}, http.StatusOK, `"ok":true`},
	}

	for _, tt := range tests {
		for name, call := range map[string]func(*ReservationHandler, http.ResponseWriter, *http.Request){
			"get":  (*ReservationHandler).Get,
			"bill": (*ReservationHandler).Bill,
		} {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				req := withNumber(httptest.NewRequest(http.MethodGet, "/", nil), tt.number)
				call(&ReservationHandler{ReservationService: tt.service}, rec, req)

				if rec.Code != tt.expectedCode {
					t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
				}
				if !bytes.Contains(rec.Body.Bytes(), []byte(tt.expectedSubstr)) {
					t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
				}
			})
		}
	}
}

func TestReservationHandler_DecodesNumber(t *testing.T) {
	svc := &fakeReservationService{}
	h := &ReservationHandler{ReservationService: svc}
	req := withNumber(httptest.NewRequest(http.MethodGet, "/", nil), "R%2F7%20A")
	h.Get(httptest.NewRecorder(), req)

	if svc.gotNumber != "R/7 A" {
		t.Errorf("expected decoded number %q, got %q", "R/7 A", svc.gotNumber)
	}
}
