package publish

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/icecave/appstatus/registry"
	"github.com/nats-io/nats.go"
)

// DefaultSubject is the subject reports are published on when no other is
// given.
const DefaultSubject = "appstatus.report"

// Conn is the subset of *nats.Conn used by NATSPublisher.
type Conn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes each report as a JSON Envelope on a NATS subject.
type NATSPublisher struct {
	Conn    Conn
	Subject string

	// Now returns the current time. If it is nil, time.Now is used.
	Now func() time.Time
}

// Publish encodes report and publishes it.
func (p *NATSPublisher) Publish(ctx context.Context, report registry.StatusReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	data, err := json.Marshal(Envelope{
		ID:          uuid.NewString(),
		GeneratedAt: now().UTC(),
		Report:      report,
	})
	if err != nil {
		return err
	}

	subject := p.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	return p.Conn.Publish(subject, data)
}

// Connect opens a NATS connection to url that reconnects indefinitely,
// logging connection state changes to logger.
func Connect(url, name string, logger *log.Logger) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil && logger != nil {
				logger.Printf("Disconnected from NATS: %s", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			if logger != nil {
				logger.Printf("Reconnected to NATS at %s", nc.ConnectedUrl())
			}
		}),
	)
}
