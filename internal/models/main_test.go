package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	for _, bad := range []string{"", "2023-02-29", "2024-1-5", "05/01/2024", "2024-01-05T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestReservationView(t *testing.T) {
	in, _ := ParseDate("2024-01-10")
	out, _ := ParseDate("2024-01-13")
	r := Reservation{
		ReservationNumber: "R-1",
		GuestName:         "Kamala Perera",
		Address:           "12 Beach Rd",
		ContactNumber:     "0771234567",
		RoomType:          "STANDARD",
		CheckIn:           in,
		CheckOut:          out,
	}

	assert.Equal(t, ReservationView{
		ReservationNumber: "R-1",
		GuestName:         "Kamala Perera",
		Address:           "12 Beach Rd",
		ContactNumber:     "0771234567",
		RoomType:          "STANDARD",
		CheckIn:           "2024-01-10",
		CheckOut:          "2024-01-13",
	}, r.View())
}
