// Package service provides the session registry and the reservation
// business logic, delegating persistence to repository interfaces.
package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"github.com/atinyakov/oceanview/internal/apperr"
)

// tokenBytes is the amount of randomness in a session token.
const tokenBytes = 24

// AuthRepository defines the credential operations required by the
// authentication service.
type AuthRepository interface {
	// EnsureUsersFile creates the credential store with its default user if
	// it does not exist yet.
	EnsureUsersFile() error
	// Authenticate reports whether the username/password pair is known.
	Authenticate(username, password string) (bool, error)
}

// AuthService verifies credentials and keeps the process-wide session
// registry. Sessions live in memory only: the registry is empty when the
// service is created and is emptied by Clear at shutdown.
type AuthService struct {
	// repo checks username/password pairs.
	repo AuthRepository
	// random is the token entropy source.
	random io.Reader

	mu       sync.Mutex
	sessions map[string]string
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{
		repo:     repo,
		random:   rand.Reader,
		sessions: make(map[string]string),
	}
}

// EnsureUsersFile prepares the credential store.
func (s *AuthService) EnsureUsersFile() error {
	return s.repo.EnsureUsersFile()
}

// Login checks the credentials and, on success, registers and returns a new
// session token. Any mismatch yields apperr.ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.repo.Authenticate(username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := s.newToken()
	if err != nil {
		return "", err
	}
	s.sessions[token] = username
	return token, nil
}

// Logout ends the session of token. Unknown or empty tokens are ignored.
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// RequireUser resolves token to the username it was issued for.
func (s *AuthService) RequireUser(token string) (string, error) {
	if token == "" {
		return "", apperr.ErrNotAuthenticated
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.sessions[token]
	if !ok {
		return "", apperr.ErrSessionExpired
	}
	return user, nil
}

// Count returns the number of live sessions.
func (s *AuthService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Clear drops every session.
func (s *AuthService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.sessions)
}

// newToken returns a URL-safe token that is not currently registered.
// Callers must hold s.mu.
func (s *AuthService) newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	for {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return "", fmt.Errorf("generate session token: %w", err)
		}
		token := base64.RawURLEncoding.EncodeToString(buf)
		if _, taken := s.sessions[token]; !taken {
			return token, nil
		}
	}
}
