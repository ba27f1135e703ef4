package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/atinyakov/oceanview/internal/models"
	"github.com/atinyakov/oceanview/internal/server/response"
	"github.com/atinyakov/oceanview/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReservationService defines the reservation operations required by the
// HTTP handlers.
type ReservationService interface {
	Create(req service.ReservationRequest) (models.Reservation, error)
	Get(number string) (models.Reservation, bool, error)
	List() ([]models.Reservation, error)
	Bill(number string) (models.Bill, bool, error)
}

// ReservationHandler serves the reservation endpoints. All of them require
// a session.
type ReservationHandler struct {
	ReservationService ReservationService
	Logger             *zap.Logger
}

// ReservationResponse wraps a single reservation.
type ReservationResponse struct {
	OK          bool                   `json:"ok"`
	Reservation models.ReservationView `json:"reservation"`
}

// ReservationListResponse wraps all stored reservations.
type ReservationListResponse struct {
	OK           bool                     `json:"ok"`
	Reservations []models.ReservationView `json:"reservations"`
}

// BillResponse wraps a computed bill.
type BillResponse struct {
	OK   bool        `json:"ok"`
	Bill models.Bill `json:"bill"`
}

const (
	msgNumberRequired = "Reservation number is required"
	msgNotFound       = "Reservation not found"
	msgSaved          = "Reservation saved successfully"
)

// Create validates and stores a new reservation.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.ReservationService.Create(req); err != nil {
		h.fail(w, "create reservation", err)
		return
	}
	response.JSON(w, http.StatusOK, MessageResponse{OK: true, Message: msgSaved})
}

// Get returns the reservation named in the path.
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	number, ok := numberParam(w, r)
	if !ok {
		return
	}

	res, found, err := h.ReservationService.Get(number)
	if err != nil {
		h.fail(w, "find reservation", err)
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	response.JSON(w, http.StatusOK, ReservationResponse{OK: true, Reservation: res.View()})
}

// List returns every stored reservation in file order.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.ReservationService.List()
	if err != nil {
		h.fail(w, "list reservations", err)
		return
	}
	views := make([]models.ReservationView, 0, len(all))
	for _, res := range all {
		views = append(views, res.View())
	}
	response.JSON(w, http.StatusOK, ReservationListResponse{OK: true, Reservations: views})
}

// Bill computes the bill of the reservation named in the path.
func (h *ReservationHandler) Bill(w http.ResponseWriter, r *http.Request) {
	number, ok := numberParam(w, r)
	if !ok {
		return
	}

	bill, found, err := h.ReservationService.Bill(number)
	if err != nil {
		h.fail(w, "bill reservation", err)
		return
	}
	if !found {
		response.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	response.JSON(w, http.StatusOK, BillResponse{OK: true, Bill: bill})
}

func (h *ReservationHandler) fail(w http.ResponseWriter, op string, err error) {
	if response.FromError(w, err) == http.StatusInternalServerError {
		logError(h.Logger, op, err)
	}
}

// numberParam reads the {number} path parameter, percent-decoded. It writes
// a 400 and reports false when the parameter is blank.
func numberParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "number")
	number, err := url.PathUnescape(raw)
	if err != nil {
		number = raw
	}
	if strings.TrimSpace(number) == "" {
		response.Error(w, http.StatusBadRequest, msgNumberRequired)
		return "", false
	}
	return number, true
}
