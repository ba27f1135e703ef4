package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/atinyakov/oceanview/internal/models"
	"github.com/atinyakov/oceanview/internal/rates"
)

// PrintReservation writes r as aligned label/value lines.
func PrintReservation(w io.Writer, r models.ReservationView) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reservation number:\t%s\n", r.ReservationNumber)
	fmt.Fprintf(tw, "Guest name:\t%s\n", r.GuestName)
	fmt.Fprintf(tw, "Address:\t%s\n", r.Address)
	fmt.Fprintf(tw, "Contact number:\t%s\n", r.ContactNumber)
	fmt.Fprintf(tw, "Room type:\t%s\n", r.RoomType)
	fmt.Fprintf(tw, "Check-in:\t%s\n", r.CheckIn)
	fmt.Fprintf(tw, "Check-out:\t%s\n", r.CheckOut)
	_ = tw.Flush()
}

// PrintBill writes b with the night count and the total.
func PrintBill(w io.Writer, b models.Bill) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reservation number:\t%s\n", b.ReservationNumber)
	fmt.Fprintf(tw, "Guest name:\t%s\n", b.GuestName)
	fmt.Fprintf(tw, "Room type:\t%s\n", b.RoomType)
	fmt.Fprintf(tw, "Stay:\t%s to %s\n", b.CheckIn, b.CheckOut)
	fmt.Fprintf(tw, "Nights:\t%d\n", b.Nights)
	fmt.Fprintf(tw, "Rate per night:\t%d\n", b.RatePerNight)
	fmt.Fprintf(tw, "Total:\t%d\n", b.Total)
	_ = tw.Flush()
}

// PrintReservations writes one row per reservation.
func PrintReservations(w io.Writer, list []models.ReservationView) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No reservations")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tGUEST\tROOM\tCHECK-IN\tCHECK-OUT")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ReservationNumber, r.GuestName, r.RoomType, r.CheckIn, r.CheckOut)
	}
	_ = tw.Flush()
}

// PrintRates writes the rate table.
func PrintRates(w io.Writer, list []rates.Rate) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM TYPE\tRATE PER NIGHT")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%d\n", r.RoomType, r.RatePerNight)
	}
	_ = tw.Flush()
}
