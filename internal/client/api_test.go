package client

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/oceanview/internal/service"
)

// roundTripperFunc lets a test stand in for the server.
type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn, Timeout: time.Second}
}

func reply(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestLogin_StoresTokenAndSendsIt(t *testing.T) {
	var gotAuth string
	api := New("http://resort.test/", newTestClient(func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/api/login":
			if ct := req.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			return reply(http.StatusOK, `{"ok":true,"token":"tok-1"}`), nil
		case "/api/me":
			gotAuth = req.Header.Get("Authorization")
			return reply(http.StatusOK, `{"ok":true,"username":"admin"}`), nil
		}
		return reply(http.StatusNotFound, `{"ok":false,"message":"Not found"}`), nil
	}))

	if err := api.Login("admin", "admin"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if api.Token() != "tok-1" {
		t.Errorf("Token = %q; want tok-1", api.Token())
	}
	user, err := api.Me()
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user != "admin" {
		t.Errorf("user = %q; want admin", user)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q; want %q", gotAuth, "Bearer tok-1")
	}
}

func TestAPI_Errors(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		api := New("http://resort.test", newTestClient(func(req *http.Request) (*http.Response, error) {
			t.Fatal("no request expected")
			return nil, nil
		}))
		if _, err := api.Bill("R-1"); !errors.Is(err, ErrNotLoggedIn) {
			t.Errorf("expected ErrNotLoggedIn, got %v", err)
		}
	})

	t.Run("server message", func(t *testing.T) {
		api := New("http://resort.test", newTestClient(func(req *http.Request) (*http.Response, error) {
			return reply(http.StatusBadRequest, `{"ok":false,"message":"Reservation number already exists: R-1"}`), nil
		}))
		api.SetToken("tok")
		_, err := api.AddReservation(service.ReservationRequest{ReservationNumber: "R-1"})
		if !IsStatus(err, http.StatusBadRequest) {
			t.Fatalf("expected 400 APIError, got %v", err)
		}
		if err.Error() != "Reservation number already exists: R-1" {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("plain text body", func(t *testing.T) {
		api := New("http://resort.test", newTestClient(func(req *http.Request) (*http.Response, error) {
			return reply(http.StatusUnsupportedMediaType, "unsupported\n"), nil
		}))
		_, err := api.Rates()
		if err == nil || err.Error() != "unsupported" {
			t.Errorf("expected plain text message, got %v", err)
		}
	})

	t.Run("network failure", func(t *testing.T) {
		api := New("http://resort.test", newTestClient(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("network down")
		}))
		_, err := api.Help()
		if err == nil || !strings.Contains(err.Error(), "request failed") {
			t.Errorf("expected network failure, got %v", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		api := New("http://resort.test", newTestClient(func(req *http.Request) (*http.Response, error) {
			return reply(http.StatusOK, "not-json"), nil
		}))
		_, err := api.Rates()
		if err == nil || !strings.Contains(err.Error(), "failed to decode response") {
			t.Errorf("expected decode failure, got %v", err)
		}
	})
}

func TestReservation_EscapesNumber(t *testing.T) {
	var gotPath string
	api := New("http://resort.test", newTestClient(func(req *http.Request) (*http.Response, error) {
		gotPath = req.URL.EscapedPath()
		return reply(http.StatusOK, `{"ok":true,"reservation":{"reservationNumber":"R/1 A"}}`), nil
	}))
	api.SetToken("tok")

	r, err := api.Reservation("R/1 A")
	if err != nil {
		t.Fatalf("Reservation: %v", err)
	}
	if gotPath != "/api/reservations/R%2F1%20A" {
		t.Errorf("path = %q", gotPath)
	}
	if r.ReservationNumber != "R/1 A" {
		t.Errorf("number = %q", r.ReservationNumber)
	}
}

func TestLogout_ForgetsTokenEvenOnError(t *testing.T) {
	api := New("http://resort.test", newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}))
	api.SetToken("tok")

	if err := api.Logout(); err == nil {
		t.Error("expected error")
	}
	if api.Token() != "" {
		t.Errorf("token kept: %q", api.Token())
	}
}
