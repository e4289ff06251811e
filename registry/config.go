package registry

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Entry is an unvalidated monitored key definition, as read from a
// configuration source.
type Entry struct {
	Name     string `yaml:"name"`
	Severity string `yaml:"severity"`
}

// Config is the immutable set of monitored keys and their severities.
//
// A Config is constructed once at startup and shared by reference. It is
// safe for concurrent use because it is never modified after construction.
type Config struct {
	keys       []Key
	severities map[Key]Severity
}

// NewConfig validates entries and returns the resulting configuration.
//
// The order of entries is preserved. Every problem with the entries is
// reported, not just the first.
func NewConfig(entries ...Entry) (*Config, error) {
	if len(entries) == 0 {
		return nil, errors.New("no monitored keys are configured")
	}

	config := &Config{
		keys:       make([]Key, 0, len(entries)),
		severities: make(map[Key]Severity, len(entries)),
	}

	var err error

	for _, e := range entries {
		key, keyErr := TryParseKey(e.Name)
		sev, sevErr := ParseSeverity(e.Severity)

		if keyErr != nil || sevErr != nil {
			err = multierr.Append(err, multierr.Combine(keyErr, sevErr))
			continue
		}

		if _, ok := config.severities[key]; ok {
			err = multierr.Append(err, fmt.Errorf("duplicate monitored key '%s'", key))
			continue
		}

		config.keys = append(config.keys, key)
		config.severities[key] = sev
	}

	if err != nil {
		return nil, err
	}

	return config, nil
}

// MustConfig is like NewConfig, but panics if the entries are invalid.
func MustConfig(entries ...Entry) *Config {
	config, err := NewConfig(entries...)
	if err != nil {
		panic(err)
	}

	return config
}

// Len returns the number of monitored keys.
func (config *Config) Len() int {
	return len(config.keys)
}

// Keys returns the monitored keys in configuration order.
func (config *Config) Keys() []Key {
	keys := make([]Key, len(config.keys))
	copy(keys, config.keys)
	return keys
}

// Severity returns the severity of key.
func (config *Config) Severity(key Key) (Severity, bool) {
	sev, ok := config.severities[key]
	return sev, ok
}

// Entries returns the configuration as a list of entries, in order.
func (config *Config) Entries() []Entry {
	entries := make([]Entry, len(config.keys))
	for i, key := range config.keys {
		entries[i] = Entry{
			Name:     string(key),
			Severity: string(config.severities[key]),
		}
	}

	return entries
}
