package server

import (
	"errors"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListen_FreePort(t *testing.T) {
	ln, err := Listen("127.0.0.1", 0, 0)
	require.NoError(t, err)
	defer ln.Close()

	assert.NotZero(t, Port(ln))
}

func TestListen_FallsBackWhenBusy(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := Port(busy)

	ln, err := Listen("127.0.0.1", port, 20)
	if err != nil {
		// Every following port may legitimately be taken on a busy host.
		t.Skipf("no free fallback port near %d: %v", port, err)
	}
	defer ln.Close()

	got := Port(ln)
	assert.Greater(t, got, port)
	assert.LessOrEqual(t, got, port+20)
}

func TestListen_NoAttemptsLeft(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	_, err = Listen("127.0.0.1", Port(busy), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, syscall.EADDRINUSE))
}
