// Package publish fans generated status reports out to other systems, such as
// dashboards subscribed to a NATS subject.
package publish

import (
	"context"
	"time"

	"github.com/icecave/appstatus/registry"
)

// Publisher is an interface for sending a status report to interested
// parties once it has been served.
type Publisher interface {
	Publish(ctx context.Context, report registry.StatusReport) error
}

// Discard is a publisher that drops every report.
type Discard struct{}

// Publish does nothing.
func (Discard) Publish(context.Context, registry.StatusReport) error {
	return nil
}

// Envelope is the message format used when publishing a report.
type Envelope struct {
	ID          string                `json:"id"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Report      registry.StatusReport `json:"report"`
}
