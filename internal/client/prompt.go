package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atinyakov/oceanview/internal/service"
)

// Prompter asks questions on out and reads one answer line each from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints label and returns the trimmed answer. ok is false once the
// input is exhausted.
func (p *Prompter) Ask(label string) (answer string, ok bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// Credentials asks for a username and a password.
func (p *Prompter) Credentials() (username, password string, ok bool) {
	if username, ok = p.Ask("Username: "); !ok {
		return "", "", false
	}
	if password, ok = p.Ask("Password: "); !ok {
		return "", "", false
	}
	return username, password, true
}

// Reservation asks for every reservation field in form order. Validation is
// left to the server.
func (p *Prompter) Reservation() (service.ReservationRequest, bool) {
	var req service.ReservationRequest
	fields := []struct {
		label string
		dst   *string
	}{
		{"Reservation number: ", &req.ReservationNumber},
		{"Guest name: ", &req.GuestName},
		{"Address: ", &req.Address},
		{"Contact number: ", &req.ContactNumber},
		{"Room type (STANDARD/DELUXE/SUITE): ", &req.RoomType},
		{"Check-in (YYYY-MM-DD): ", &req.CheckIn},
		{"Check-out (YYYY-MM-DD): ", &req.CheckOut},
	}
	for _, f := range fields {
		answer, ok := p.Ask(f.label)
		if !ok {
			return service.ReservationRequest{}, false
		}
		*f.dst = answer
	}
	return req, true
}
