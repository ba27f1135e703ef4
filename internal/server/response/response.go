// Package response writes the JSON envelopes of the HTTP API and maps error
// kinds to status codes and client-facing messages.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/oceanview/internal/apperr"
)

// Client-facing messages for error kinds.
const (
	MsgNotLoggedIn        = "Not logged in"
	MsgSessionExpired     = "Session expired. Please login again."
	MsgInvalidCredentials = "Invalid username or password"
	MsgServerError        = "Server error"
)

// Failure is the body of every unsuccessful response.
type Failure struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// JSON writes v with the given status and disables caching.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"ok":false,"message":msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Failure{OK: false, Message: msg})
}

// Classify maps err to a status code and message. Unknown errors become a
// generic 500 so that internal details never reach the client.
func Classify(err error) (int, string) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, apperr.ErrNotAuthenticated):
		return http.StatusUnauthorized, MsgNotLoggedIn
	case errors.Is(err, apperr.ErrSessionExpired):
		return http.StatusUnauthorized, MsgSessionExpired
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return http.StatusUnauthorized, MsgInvalidCredentials
	case errors.Is(err, apperr.ErrDuplicateKey), errors.Is(err, apperr.ErrUnknownRoomType):
		return http.StatusBadRequest, capitalize(err.Error())
	default:
		return http.StatusInternalServerError, MsgServerError
	}
}

// FromError writes the response Classify chooses for err and reports the
// status it used.
func FromError(w http.ResponseWriter, err error) int {
	status, msg := Classify(err)
	Error(w, status, msg)
	return status
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
