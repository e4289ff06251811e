package registry

// Registry produces key listings and simulated status reports for a fixed
// set of monitored keys.
type Registry struct {
	config *Config
	random RandomSource
}

// New returns a registry for config that draws status codes from random. If
// random is nil, DefaultSource is used. It panics if config is nil.
func New(config *Config, random RandomSource) *Registry {
	if config == nil {
		panic("registry configuration must not be nil")
	}

	if random == nil {
		random = DefaultSource
	}

	return &Registry{
		config: config,
		random: random,
	}
}

// Config returns the registry's configuration.
func (r *Registry) Config() *Config {
	return r.config
}

// ListKeys returns every monitored key with its severity.
//
// The result is built from the static configuration on each call; callers may
// modify it freely.
func (r *Registry) ListKeys() KeyList {
	list := make(KeyList, len(r.config.keys))

	for i, key := range r.config.keys {
		list[i] = KeyListItem{
			Key:  key,
			Info: KeyInfo{Severity: r.config.severities[key]},
		}
	}

	return list
}

// GetStatusReport returns a status report in which each key's status code is
// drawn uniformly and independently at random.
func (r *Registry) GetStatusReport() StatusReport {
	report := make(StatusReport, len(r.config.keys))

	for i, key := range r.config.keys {
		report[i] = ReportItem{
			Key: key,
			Status: KeyStatus{
				StatusCode: r.draw(),
				Severity:   r.config.severities[key],
			},
		}
	}

	return report
}

// draw returns a random status code. Values outside the enumeration returned
// by a misbehaving source are folded back into range.
func (r *Registry) draw() StatusCode {
	n := r.random.Intn(statusCodeCount)
	n %= statusCodeCount
	if n < 0 {
		n += statusCodeCount
	}

	return StatusCode(n)
}
