// Package proxyprotocol accepts connections that may be prefixed with a PROXY
// protocol (v1 or v2) header, as sent by HAProxy and most cloud load
// balancers, so that logged remote addresses are those of the real clients.
package proxyprotocol

import (
	"bufio"
	"net"
	"sync"
	"time"

	proxyproto "github.com/pires/go-proxyproto"
)

// headerTimeout is the time allowed for a client to send its PROXY header.
const headerTimeout = 5 * time.Second

// Conn is a net.Conn that reports the addresses given in a PROXY header, if
// the peer sent one.
//
// The header is read on the first call to Read, LocalAddr or RemoteAddr, on
// the caller's goroutine.
type Conn struct {
	reader *bufio.Reader
	conn   net.Conn
	once   sync.Once
	err    error
	local  net.Addr
	remote net.Addr
}

// NewConn returns a Conn wrapping nc. Connections without a header are
// passed through unchanged.
func NewConn(nc net.Conn) *Conn {
	return &Conn{
		conn:   nc,
		reader: bufio.NewReader(nc),
	}
}

// Read reads data from the connection, after the PROXY header. It returns
// the header error, if any.
func (c *Conn) Read(b []byte) (int, error) {
	c.once.Do(c.readHeader)
	if c.err != nil {
		return 0, c.err
	}
	return c.reader.Read(b)
}

// Write writes data to the connection.
func (c *Conn) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

// Close closes the connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// LocalAddr returns the destination address from the PROXY header, or the
// connection's own local address if there was no valid header.
func (c *Conn) LocalAddr() net.Addr {
	c.once.Do(c.readHeader)
	if c.local == nil {
		return c.conn.LocalAddr()
	}
	return c.local
}

// RemoteAddr returns the source address from the PROXY header, or the
// connection's own remote address if there was no valid header.
func (c *Conn) RemoteAddr() net.Addr {
	c.once.Do(c.readHeader)
	if c.remote == nil {
		return c.conn.RemoteAddr()
	}
	return c.remote
}

// SetDeadline forwards to the underlying connection.
func (c *Conn) SetDeadline(t time.Time) error {
	return c.conn.SetDeadline(t)
}

// SetReadDeadline forwards to the underlying connection.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// SetWriteDeadline forwards to the underlying connection.
func (c *Conn) SetWriteDeadline(t time.Time) error {
	return c.conn.SetWriteDeadline(t)
}

func (c *Conn) readHeader() {
	c.conn.SetReadDeadline(time.Now().Add(headerTimeout))
	defer c.conn.SetReadDeadline(time.Time{})

	header, err := proxyproto.Read(c.reader)
	switch err {
	case proxyproto.ErrNoProxyProtocol, proxyproto.ErrInvalidLength:
	case nil:
		c.local = addr(header.TransportProtocol, header.DestinationAddress, header.DestinationPort)
		c.remote = addr(header.TransportProtocol, header.SourceAddress, header.SourcePort)
	default:
		c.err = err
	}
}

// addr converts an address from a PROXY header to a net.Addr.
func addr(proto proxyproto.AddressFamilyAndProtocol, ip net.IP, port uint16) net.Addr {
	switch {
	case proto.IsUnix():
		network := "unix"
		if !proto.IsStream() {
			network = "unixgram"
		}
		return &net.UnixAddr{Net: network, Name: ip.String()}
	case !proto.IsStream() && !proto.IsUnspec():
		return &net.UDPAddr{IP: ip, Port: int(port)}
	default:
		return &net.TCPAddr{IP: ip, Port: int(port)}
	}
}
