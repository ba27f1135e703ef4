// Package rates holds the nightly room rate table and the night count used
// for billing.
package rates

import (
	"fmt"
	"time"

	"github.com/atinyakov/oceanview/internal/apperr"
)

// Rate is the nightly price of a room type, in minor currency units.
type Rate struct {
	RoomType     string `json:"roomType"`
	RatePerNight int    `json:"ratePerNight"`
}

const (
	Standard = "STANDARD"
	Deluxe   = "DELUXE"
	Suite    = "SUITE"
)

var table = []Rate{
	{RoomType: Standard, RatePerNight: 8000},
	{RoomType: Deluxe, RatePerNight: 12000},
	{RoomType: Suite, RatePerNight: 20000},
}

// Default returns the rate table in display order.
func Default() []Rate {
	out := make([]Rate, len(table))
	copy(out, table)
	return out
}

// RateForType returns the nightly rate of code. Codes are case-sensitive.
func RateForType(code string) (int, error) {
	for _, r := range table {
		if r.RoomType == code {
			return r.RatePerNight, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", apperr.ErrUnknownRoomType, code)
}

const secondsPerDay = 24 * 60 * 60

// Nights counts the calendar days between checkIn and checkOut.
func Nights(checkIn, checkOut time.Time) int64 {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return (out.Unix() - in.Unix()) / secondsPerDay
}
