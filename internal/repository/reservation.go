// Package repository provides flat-file persistence for reservations and
// user credentials. Each repository owns exactly one file and serializes all
// access to it through its own mutex; the file is re-read on every call and
// is the only source of truth.
package repository

import (
	"fmt"
	"sync"

	"github.com/atinyakov/oceanview/internal/apperr"
	"github.com/atinyakov/oceanview/internal/linecodec"
	"github.com/atinyakov/oceanview/internal/models"
)

// reservationFields is the number of fields of a reservation line.
const reservationFields = 7

// FileReservationRepository stores reservations one per line in
// linecodec form:
//
//	reservationNumber|guestName|address|contactNumber|roomType|checkIn|checkOut
type FileReservationRepository struct {
	// Path is the location of the reservations file.
	Path string

	mu sync.Mutex
}

// NewFileReservationRepository creates a repository backed by path.
// The file is not touched until the first call.
func NewFileReservationRepository(path string) *FileReservationRepository {
	return &FileReservationRepository{Path: path}
}

// EnsureExists creates an empty reservations file (and its directory) if it
// does not exist yet.
func (s *FileReservationRepository) EnsureExists() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ensureFile(s.Path, "")
}

// Add appends r unless a record with the same reservation number is already
// stored, in which case it returns apperr.ErrDuplicateKey.
func (s *FileReservationRepository) Add(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureFile(s.Path, ""); err != nil {
		return err
	}

	duplicate := false
	err := scanLines(s.Path, func(line string) bool {
		rec, ok := decodeReservation(line)
		if ok && rec.ReservationNumber == r.ReservationNumber {
			duplicate = true
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if duplicate {
		return fmt.Errorf("%w: %s", apperr.ErrDuplicateKey, r.ReservationNumber)
	}

	return appendLine(s.Path, encodeReservation(r))
}

// Find returns the first stored reservation with the given number.
// A missing reservation is reported through the boolean, not an error.
func (s *FileReservationRepository) Find(number string) (models.Reservation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureFile(s.Path, ""); err != nil {
		return models.Reservation{}, false, err
	}

	var (
		found models.Reservation
		ok    bool
	)
	err := scanLines(s.Path, func(line string) bool {
		rec, valid := decodeReservation(line)
		if valid && rec.ReservationNumber == number {
			found, ok = rec, true
			return false
		}
		return true
	})
	if err != nil {
		return models.Reservation{}, false, err
	}
	return found, ok, nil
}

// List returns every well-formed reservation in file order. When a number
// appears more than once only the first line counts, matching Find.
func (s *FileReservationRepository) List() ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureFile(s.Path, ""); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := make([]models.Reservation, 0)
	err := scanLines(s.Path, func(line string) bool {
		rec, ok := decodeReservation(line)
		if !ok {
			return true
		}
		if _, dup := seen[rec.ReservationNumber]; dup {
			return true
		}
		seen[rec.ReservationNumber] = struct{}{}
		out = append(out, rec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func encodeReservation(r models.Reservation) string {
	return linecodec.Encode([]string{
		r.ReservationNumber,
		r.GuestName,
		r.Address,
		r.ContactNumber,
		r.RoomType,
		models.FormatDate(r.CheckIn),
		models.FormatDate(r.CheckOut),
	})
}

// decodeReservation parses one line. Blank lines, lines with too few fields
// and lines with unparsable dates are reported as not ok.
func decodeReservation(line string) (models.Reservation, bool) {
	if linecodec.IsBlank(line) {
		return models.Reservation{}, false
	}
	parts := linecodec.Decode(line)
	if len(parts) < reservationFields {
		return models.Reservation{}, false
	}
	checkIn, err := models.ParseDate(parts[5])
	if err != nil {
		return models.Reservation{}, false
	}
	checkOut, err := models.ParseDate(parts[6])
	if err != nil {
		return models.Reservation{}, false
	}
	return models.Reservation{
		ReservationNumber: parts[0],
		GuestName:         parts[1],
		Address:           parts[2],
		ContactNumber:     parts[3],
		RoomType:          parts[4],
		CheckIn:           checkIn,
		CheckOut:          checkOut,
	}, true
}
