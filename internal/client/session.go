package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// SessionFile keeps the token of the last login between shell runs, so
// that restarting the shell against a running server does not require
// logging in again.
type SessionFile struct {
	Path string
}

type savedSession struct {
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
}

// DefaultSessionPath is ~/.oceanview/session.json, or a file in the working
// directory when no home directory is known.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".oceanview-session.json"
	}
	return filepath.Join(home, ".oceanview", "session.json")
}

// Load returns the token saved for baseURL. A missing file, or a token saved
// for another server, yields an empty token and no error.
func (s SessionFile) Load(baseURL string) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	var saved savedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		return "", err
	}
	if saved.BaseURL != baseURL {
		return "", nil
	}
	return saved.Token, nil
}

// Save records token for baseURL, readable by the owner only.
func (s SessionFile) Save(baseURL, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(savedSession{BaseURL: baseURL, Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Clear removes the session file. Removing a missing file is not an error.
func (s SessionFile) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
