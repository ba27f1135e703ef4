// Package http provides HTTP handlers for the session endpoints, the
// reservation desk and the informational endpoints.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/atinyakov/oceanview/internal/middleware"
	"github.com/atinyakov/oceanview/internal/server/response"
	"go.uber.org/zap"
)

// AuthService defines the session operations required by the HTTP
// handlers.
type AuthService interface {
	// Login verifies the credentials and returns a new session token.
	Login(username, password string) (string, error)
	// Logout ends the session of token. Unknown tokens are ignored.
	Logout(token string)
	// RequireUser resolves token to its username.
	RequireUser(token string) (string, error)
}

// AuthHandler handles HTTP requests for login, logout and the current
// session.
type AuthHandler struct {
	// AuthService performs the underlying session operations.
	AuthService AuthService
	// Logger records server-side failures.
	Logger *zap.Logger
}

// LoginRequest represents the JSON payload of a login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token of a successful login.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// MessageResponse is a successful response with a human-readable message.
type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// MeResponse names the user owning the presented token.
type MeResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
}

const msgCredentialsRequired = "Username and password are required"

// Login handles login requests.
// It expects a JSON body with non-empty "username" and "password" fields
// and returns a fresh bearer token on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		response.Error(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	token, err := h.AuthService.Login(username, password)
	if err != nil {
		if response.FromError(w, err) == http.StatusInternalServerError {
			logError(h.Logger, "login failed", err)
		}
		return
	}

	response.JSON(w, http.StatusOK, LoginResponse{OK: true, Token: token})
}

// Logout ends the session named by the bearer token, if any. It always
// succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.AuthService.Logout(middleware.BearerToken(r))
	response.JSON(w, http.StatusOK, MessageResponse{OK: true, Message: "Logged out"})
}

// Me returns the username of the authenticated caller. It must run behind
// middleware.SessionAuth.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, MeResponse{
		OK:       true,
		Username: middleware.GetUserFromContext(r.Context()),
	})
}

func logError(logger *zap.Logger, msg string, err error) {
	if logger == nil {
		return
	}
	logger.Error(msg, zap.Error(err))
}
