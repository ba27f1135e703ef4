// Package client is a small HTTP client for the reservation API together
// with the prompts and local session file used by the interactive shell.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atinyakov/oceanview/internal/models"
	"github.com/atinyakov/oceanview/internal/rates"
	"github.com/atinyakov/oceanview/internal/service"
)

// ErrNotLoggedIn is returned by calls that need a session when the client
// holds no token.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return e.Message
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// API talks to one server and remembers the session token of the last
// successful login.
type API struct {
	baseURL string
	http    *http.Client
	token   string
}

// New returns an API for baseURL. A nil httpClient gets a default client
// with a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Token returns the current session token, empty when logged out.
func (a *API) Token() string { return a.token }

// SetToken installs a token restored from a previous run.
func (a *API) SetToken(token string) { a.token = token }

// Login opens a session and keeps its token.
func (a *API) Login(username, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := a.do(http.MethodPost, "/api/login", body, &out, false); err != nil {
		return err
	}
	a.token = out.Token
	return nil
}

// Logout ends the session on the server and forgets the token.
func (a *API) Logout() error {
	err := a.do(http.MethodPost, "/api/logout", nil, nil, false)
	a.token = ""
	return err
}

// Me returns the username of the current session.
func (a *API) Me() (string, error) {
	var out struct {
		Username string `json:"username"`
	}
	if err := a.do(http.MethodGet, "/api/me", nil, &out, true); err != nil {
		return "", err
	}
	return out.Username, nil
}

// Rates fetches the room rate table.
func (a *API) Rates() ([]rates.Rate, error) {
	var out struct {
		Rates []rates.Rate `json:"rates"`
	}
	if err := a.do(http.MethodGet, "/api/rates", nil, &out, false); err != nil {
		return nil, err
	}
	return out.Rates, nil
}

// Help fetches the usage guide.
func (a *API) Help() (string, error) {
	var out struct {
		Text string `json:"text"`
	}
	if err := a.do(http.MethodGet, "/api/help", nil, &out, false); err != nil {
		return "", err
	}
	return out.Text, nil
}

// AddReservation submits a new reservation and returns the server message.
func (a *API) AddReservation(req service.ReservationRequest) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := a.do(http.MethodPost, "/api/reservations", req, &out, true); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Reservation fetches one reservation by number.
func (a *API) Reservation(number string) (models.ReservationView, error) {
	var out struct {
		Reservation models.ReservationView `json:"reservation"`
	}
	err := a.do(http.MethodGet, "/api/reservations/"+url.PathEscape(number), nil, &out, true)
	return out.Reservation, err
}

// Reservations fetches every stored reservation.
func (a *API) Reservations() ([]models.ReservationView, error) {
	var out struct {
		Reservations []models.ReservationView `json:"reservations"`
	}
	err := a.do(http.MethodGet, "/api/reservations", nil, &out, true)
	return out.Reservations, err
}

// Bill fetches the bill of one reservation.
func (a *API) Bill(number string) (models.Bill, error) {
	var out struct {
		Bill models.Bill `json:"bill"`
	}
	err := a.do(http.MethodGet, "/api/bill/"+url.PathEscape(number), nil, &out, true)
	return out.Bill, err
}

func (a *API) do(method, path string, in, out any, auth bool) error {
	if auth && a.token == "" {
		return ErrNotLoggedIn
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, a.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &failure) != nil {
			failure.Message = strings.TrimSpace(string(data))
		}
		return &APIError{Status: resp.StatusCode, Message: failure.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
