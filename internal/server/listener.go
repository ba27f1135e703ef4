// Package server binds the HTTP listener, falling back to the following
// ports when the preferred one is already taken.
package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
)

// Listen opens a TCP listener on host:port. When that address is in use it
// tries port+1 ... port+attempts in order and returns the first that binds.
// Errors other than "address in use" are returned immediately.
func Listen(host string, port, attempts int) (net.Listener, error) {
	first, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err == nil {
		return first, nil
	}
	if !errors.Is(err, syscall.EADDRINUSE) {
		return nil, err
	}

	for p := port + 1; p <= port+attempts && p <= 65535; p++ {
		ln, lerr := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(p)))
		if lerr == nil {
			return ln, nil
		}
		if !errors.Is(lerr, syscall.EADDRINUSE) {
			return nil, lerr
		}
	}
	return nil, fmt.Errorf("no free port in %d-%d: %w", port, port+attempts, err)
}

// Port returns the TCP port ln is bound to.
func Port(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
