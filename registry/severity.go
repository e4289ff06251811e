package registry

import (
	"fmt"
	"strings"
)

// Severity is the impact classification of a monitored key if the subsystem
// it represents becomes unhealthy.
type Severity string

const (
	// SeverityCritical indicates that an outage of the subsystem is an outage
	// of the application.
	SeverityCritical Severity = "critical"

	// SeverityHigh indicates a major loss of functionality.
	SeverityHigh Severity = "high"

	// SeverityWarning indicates a problem that needs attention but does not
	// affect users directly.
	SeverityWarning Severity = "warning"
)

// Severities lists the valid severities, most severe first.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityWarning,
}

// ParseSeverity returns the severity named by s. The comparison is
// case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid severity '%s'", s)
	}

	return sev, nil
}

// IsValid returns true if sev is one of the enumerated severities.
func (sev Severity) IsValid() bool {
	for _, s := range Severities {
		if sev == s {
			return true
		}
	}

	return false
}

func (sev Severity) String() string {
	return string(sev)
}
