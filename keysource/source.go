// Package keysource loads the set of monitored keys from the places it may be
// configured: the environment, a YAML file, Redis, or the built-in defaults.
package keysource

import (
	"context"

	"github.com/icecave/appstatus/registry"
)

// Source is a provider of monitored key definitions.
type Source interface {
	// Name returns a short human-readable description of the source, used in
	// log messages.
	Name() string

	// Load returns the entries defined by the source. A source that is not
	// configured returns no entries and a nil error.
	Load(ctx context.Context) ([]registry.Entry, error)
}

// Static is a source with a fixed set of entries.
type Static struct {
	Label   string
	Entries []registry.Entry
}

// Name returns the source's label.
func (s Static) Name() string {
	return s.Label
}

// Load returns the source's entries.
func (s Static) Load(context.Context) ([]registry.Entry, error) {
	return s.Entries, nil
}

// Defaults returns the built-in set of monitored keys.
func Defaults() Static {
	return Static{
		Label: "defaults",
		Entries: []registry.Entry{
			{Name: "api", Severity: "critical"},
			{Name: "filesystem", Severity: "critical"},
			{Name: "mysql", Severity: "critical"},
			{Name: "redis", Severity: "critical"},
			{Name: "rabbitmq", Severity: "critical"},
			{Name: "vpn", Severity: "high"},
			{Name: "backup", Severity: "warning"},
		},
	}
}
