package repository

import (
	"strings"
	"sync"

	"github.com/atinyakov/oceanview/internal/models"
)

// DefaultCredential is the line written to a freshly created users file.
const DefaultCredential = "admin:admin"

// FileCredentialRepository verifies logins against a users file holding one
// `username:password` line per user. Colons are not escaped, so neither part
// may contain one.
type FileCredentialRepository struct {
	// Path is the location of the users file.
	Path string

	mu sync.Mutex
}

// NewFileCredentialRepository creates a repository backed by path.
func NewFileCredentialRepository(path string) *FileCredentialRepository {
	return &FileCredentialRepository{Path: path}
}

// EnsureUsersFile creates the users file seeded with DefaultCredential if it
// does not exist. An existing file is left untouched.
func (s *FileCredentialRepository) EnsureUsersFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ensureFile(s.Path, DefaultCredential+"\n")
}

// Authenticate reports whether username and password exactly match a line
// of the users file. Comparison is case-sensitive.
func (s *FileCredentialRepository) Authenticate(username, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureFile(s.Path, DefaultCredential+"\n"); err != nil {
		return false, err
	}

	match := false
	err := scanLines(s.Path, func(line string) bool {
		c, ok := parseCredential(line)
		if ok && c.Username == username && c.Password == password {
			match = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return match, nil
}

// parseCredential splits a users file line on its first colon. Lines that
// are blank or have an empty username are not ok.
func parseCredential(line string) (models.Credential, bool) {
	line = strings.TrimSpace(line)
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return models.Credential{}, false
	}
	return models.Credential{Username: line[:idx], Password: line[idx+1:]}, true
}
