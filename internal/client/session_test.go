package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFile(t *testing.T) {
	s := SessionFile{Path: filepath.Join(t.TempDir(), "nested", "session.json")}

	token, err := s.Load("http://localhost:8080")
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("http://localhost:8080", "tok-1"))
	info, err := os.Stat(s.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = s.Load("http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	token, err = s.Load("http://localhost:9090")
	require.NoError(t, err)
	assert.Empty(t, token, "token of another server must not be reused")

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	_, err = os.Stat(s.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := SessionFile{Path: path}.Load("http://localhost:8080")
	assert.Error(t, err)
}
