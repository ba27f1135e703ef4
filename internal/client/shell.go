package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const shellHelp = "Available commands: login, add, show <number>, bill <number>, list, rates, help, logout, exit"

// Shell is the interactive front desk: it reads commands through a Prompter
// and prints results to out.
type Shell struct {
	API     *API
	Prompt  *Prompter
	Out     io.Writer
	BaseURL string
	// Session persists the token between runs; nil disables persistence.
	Session *SessionFile
}

// Run executes commands until "exit" or the end of input.
func (s *Shell) Run() {
	for {
		line, ok := s.Prompt.Ask("oceanview> ")
		if !ok {
			fmt.Fprintln(s.Out)
			return
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if !s.Exec(args) {
			return
		}
	}
}

// Exec runs one command and reports whether the shell should continue.
func (s *Shell) Exec(args []string) bool {
	switch args[0] {
	case "help":
		fmt.Fprintln(s.Out, shellHelp)
		if text, err := s.API.Help(); err == nil {
			fmt.Fprintln(s.Out)
			fmt.Fprint(s.Out, text)
		}
	case "login":
		s.login()
	case "logout":
		if err := s.API.Logout(); err != nil {
			s.report(err)
		} else {
			fmt.Fprintln(s.Out, "Logged out")
		}
		s.forgetSession()
	case "add":
		req, ok := s.Prompt.Reservation()
		if !ok {
			return false
		}
		msg, err := s.API.AddReservation(req)
		if err != nil {
			s.report(err)
			return true
		}
		fmt.Fprintln(s.Out, msg)
	case "show":
		number, ok := s.numberArg(args)
		if !ok {
			return true
		}
		r, err := s.API.Reservation(number)
		if err != nil {
			s.report(err)
			return true
		}
		PrintReservation(s.Out, r)
	case "bill":
		number, ok := s.numberArg(args)
		if !ok {
			return true
		}
		b, err := s.API.Bill(number)
		if err != nil {
			s.report(err)
			return true
		}
		PrintBill(s.Out, b)
	case "list":
		list, err := s.API.Reservations()
		if err != nil {
			s.report(err)
			return true
		}
		PrintReservations(s.Out, list)
	case "rates":
		list, err := s.API.Rates()
		if err != nil {
			s.report(err)
			return true
		}
		PrintRates(s.Out, list)
	case "exit", "quit":
		fmt.Fprintln(s.Out, "Bye")
		return false
	default:
		fmt.Fprintln(s.Out, "Unknown command. Type 'help' for a list of commands.")
	}
	return true
}

func (s *Shell) login() {
	username, password, ok := s.Prompt.Credentials()
	if !ok {
		return
	}
	if err := s.API.Login(username, password); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.Out, "Welcome, %s\n", username)
	if s.Session != nil {
		if err := s.Session.Save(s.BaseURL, s.API.Token()); err != nil {
			fmt.Fprintf(s.Out, "warning: session not saved: %v\n", err)
		}
	}
}

func (s *Shell) numberArg(args []string) (string, bool) {
	if len(args) < 2 {
		fmt.Fprintf(s.Out, "Usage: %s <number>\n", args[0])
		return "", false
	}
	return strings.Join(args[1:], " "), true
}

func (s *Shell) report(err error) {
	switch {
	case errors.Is(err, ErrNotLoggedIn):
		fmt.Fprintln(s.Out, "Please login first")
	case IsStatus(err, http.StatusUnauthorized):
		fmt.Fprintln(s.Out, err.Error())
		s.API.SetToken("")
		s.forgetSession()
	default:
		fmt.Fprintln(s.Out, err.Error())
	}
}

func (s *Shell) forgetSession() {
	if s.Session != nil {
		_ = s.Session.Clear()
	}
}
