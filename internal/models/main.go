// Package models defines the core data structures for reservations,
// credentials and bills.
package models

import "time"

// DateLayout is the on-disk and wire format of calendar dates.
const DateLayout = "2006-01-02"

// Reservation is a single guest booking. It is written once and never
// modified; ReservationNumber is its identity.
type Reservation struct {
	// ReservationNumber is the unique key of the reservation.
	ReservationNumber string
	// GuestName is the full name of the guest.
	GuestName string
	// Address is the guest's postal address.
	Address string
	// ContactNumber is the guest's phone number.
	ContactNumber string
	// RoomType is one of the codes known to the rate table.
	RoomType string
	// CheckIn is the arrival date (UTC midnight).
	CheckIn time.Time
	// CheckOut is the departure date (UTC midnight), strictly after CheckIn.
	CheckOut time.Time
}

// Credential is a username/password pair read from the users file.
type Credential struct {
	Username string
	Password string
}

// Bill is the cost summary of a reservation.
type Bill struct {
	ReservationNumber string `json:"reservationNumber"`
	GuestName         string `json:"guestName"`
	RoomType          string `json:"roomType"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
	Nights            int64  `json:"nights"`
	RatePerNight      int    `json:"ratePerNight"`
	Total             int64  `json:"total"`
}

// ParseDate parses a YYYY-MM-DD calendar date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ReservationView is the wire form of a Reservation, with dates as
// YYYY-MM-DD strings.
type ReservationView struct {
	ReservationNumber string `json:"reservationNumber"`
	GuestName         string `json:"guestName"`
	Address           string `json:"address"`
	ContactNumber     string `json:"contactNumber"`
	RoomType          string `json:"roomType"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
}

// View converts r to its wire form.
func (r Reservation) View() ReservationView {
	return ReservationView{
		ReservationNumber: r.ReservationNumber,
		GuestName:         r.GuestName,
		Address:           r.Address,
		ContactNumber:     r.ContactNumber,
		RoomType:          r.RoomType,
		CheckIn:           FormatDate(r.CheckIn),
		CheckOut:          FormatDate(r.CheckOut),
	}
}
