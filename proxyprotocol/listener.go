package proxyprotocol

import (
	"net"
)

// Listener is a net.Listener that checks for PROXY headers on new
// connections.
type Listener struct {
	inner net.Listener
}

// NewListener returns a Listener wrapping l.
func NewListener(l net.Listener) net.Listener {
	return &Listener{inner: l}
}

// Accept waits for and returns the next connection to the listener. The
// PROXY header is not read until the connection is first used, so a slow or
// malformed client never blocks or fails Accept.
func (l *Listener) Accept() (net.Conn, error) {
	c, err := l.inner.Accept()
	if err != nil {
		return c, err
	}

	return NewConn(c), nil
}

// Close closes the listener.
func (l *Listener) Close() error {
	return l.inner.Close()
}

// Addr returns the listener's network address.
func (l *Listener) Addr() net.Addr {
	return l.inner.Addr()
}
