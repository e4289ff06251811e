package registry

import "strconv"

// StatusCode is the (simulated) health outcome of a monitored key.
type StatusCode int

const (
	// StatusOK means the subsystem is healthy.
	StatusOK StatusCode = iota

	// StatusFailure means the subsystem is unavailable.
	StatusFailure

	// StatusDegraded means the subsystem is available with reduced
	// functionality or performance.
	StatusDegraded

	statusCodeCount = int(iota)
)

// StatusCodes lists every status code in numeric order.
var StatusCodes = []StatusCode{
	StatusOK,
	StatusFailure,
	StatusDegraded,
}

// IsValid returns true if code is one of the enumerated status codes.
func (code StatusCode) IsValid() bool {
	return 0 <= code && int(code) < statusCodeCount
}

func (code StatusCode) String() string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusFailure:
		return "Failure"
	case StatusDegraded:
		return "Degraded"
	}

	return "StatusCode(" + strconv.Itoa(int(code)) + ")"
}
