package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/atinyakov/oceanview/internal/apperr"
	"github.com/atinyakov/oceanview/internal/models"
	"github.com/atinyakov/oceanview/internal/rates"
	"github.com/go-playground/validator/v10"
)

// ReservationRepository defines the persistence operations needed by the
// ReservationService.
type ReservationRepository interface {
	// EnsureExists creates the backing store if needed.
	EnsureExists() error
	// Add stores r, failing with apperr.ErrDuplicateKey on a reused number.
	Add(r models.Reservation) error
	// Find returns the reservation with the given number, if any.
	Find(number string) (models.Reservation, bool, error)
	// List returns every stored reservation.
	List() ([]models.Reservation, error)
}

// ReservationRequest is the raw, unvalidated input for a new reservation.
type ReservationRequest struct {
	ReservationNumber string `json:"reservationNumber" validate:"required"`
	GuestName         string `json:"guestName" validate:"required"`
	Address           string `json:"address" validate:"required"`
	ContactNumber     string `json:"contactNumber" validate:"required"`
	RoomType          string `json:"roomType" validate:"required"`
	CheckIn           string `json:"checkIn" validate:"required"`
	CheckOut          string `json:"checkOut" validate:"required"`
}

// requiredMessages are the client-facing messages for missing fields.
var requiredMessages = map[string]string{
	"ReservationNumber": "Reservation number is required",
	"GuestName":         "Guest name is required",
	"Address":           "Address is required",
	"ContactNumber":     "Contact number is required",
	"RoomType":          "Room type is required",
	"CheckIn":           "Check-in and check-out dates are required",
	"CheckOut":          "Check-in and check-out dates are required",
}

// ReservationService validates, stores and bills reservations.
type ReservationService struct {
	repo     ReservationRepository
	validate *validator.Validate
}

// NewReservationService constructs a ReservationService on top of repo.
func NewReservationService(repo ReservationRepository) *ReservationService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &ReservationService{repo: repo, validate: v}
}

// EnsureExists prepares the reservation store.
func (s *ReservationService) EnsureExists() error {
	return s.repo.EnsureExists()
}

// Create validates req and stores the resulting reservation.
// Input problems are returned as *apperr.ValidationError; a reused number as
// apperr.ErrDuplicateKey.
func (s *ReservationService) Create(req ReservationRequest) (models.Reservation, error) {
	r, err := s.Validate(req)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := s.repo.Add(r); err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

// Validate normalizes req (trimmed fields, upper-case room type) and turns it
// into a Reservation.
func (s *ReservationService) Validate(req ReservationRequest) (models.Reservation, error) {
	req = normalize(req)

	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return models.Reservation{}, err
		}
		out := make(apperr.ValidationErrors, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msg, ok := requiredMessages[fe.StructField()]
			if !ok {
				msg = fmt.Sprintf("%s is invalid", fe.Field())
			}
			out = append(out, apperr.NewValidation(fe.Field(), msg))
		}
		return models.Reservation{}, out
	}

	checkIn, err := models.ParseDate(req.CheckIn)
	if err != nil {
		return models.Reservation{}, apperr.NewValidation("checkIn", "Check-in date must be in YYYY-MM-DD format")
	}
	checkOut, err := models.ParseDate(req.CheckOut)
	if err != nil {
		return models.Reservation{}, apperr.NewValidation("checkOut", "Check-out date must be in YYYY-MM-DD format")
	}
	if !checkOut.After(checkIn) {
		return models.Reservation{}, apperr.NewValidation("checkOut", "Check-out date must be after check-in date")
	}
	if _, err := rates.RateForType(req.RoomType); err != nil {
		return models.Reservation{}, err
	}

	return models.Reservation{
		ReservationNumber: req.ReservationNumber,
		GuestName:         req.GuestName,
		Address:           req.Address,
		ContactNumber:     req.ContactNumber,
		RoomType:          req.RoomType,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
	}, nil
}

// Get returns the reservation with the given number.
func (s *ReservationService) Get(number string) (models.Reservation, bool, error) {
	return s.repo.Find(number)
}

// List returns all stored reservations.
func (s *ReservationService) List() ([]models.Reservation, error) {
	return s.repo.List()
}

// Bill computes nights × nightly rate for the reservation with the given
// number. found is false when there is no such reservation.
func (s *ReservationService) Bill(number string) (models.Bill, bool, error) {
	r, found, err := s.repo.Find(number)
	if err != nil || !found {
		return models.Bill{}, found, err
	}
	rate, err := rates.RateForType(r.RoomType)
	if err != nil {
		return models.Bill{}, true, err
	}
	nights := rates.Nights(r.CheckIn, r.CheckOut)
	return models.Bill{
		ReservationNumber: r.ReservationNumber,
		GuestName:         r.GuestName,
		RoomType:          r.RoomType,
		CheckIn:           models.FormatDate(r.CheckIn),
		CheckOut:          models.FormatDate(r.CheckOut),
		Nights:            nights,
		RatePerNight:      rate,
		Total:             nights * int64(rate),
	}, true, nil
}

func normalize(req ReservationRequest) ReservationRequest {
	req.ReservationNumber = strings.TrimSpace(req.ReservationNumber)
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.Address = strings.TrimSpace(req.Address)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	req.RoomType = strings.ToUpper(strings.TrimSpace(req.RoomType))
	req.CheckIn = strings.TrimSpace(req.CheckIn)
	req.CheckOut = strings.TrimSpace(req.CheckOut)
	return req
}
