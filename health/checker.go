package health

import (
	"fmt"

	"github.com/icecave/appstatus/registry"
)

// Checker is an interface for querying the health of the server.
type Checker interface {
	// Check returns the health-check status.
	Check() Status
}

// RegistryChecker is a checker that reports the server as healthy as long as
// it has monitored keys to report on.
type RegistryChecker struct {
	Registry *registry.Registry
}

// Check returns information about the health of the registry.
func (checker *RegistryChecker) Check() Status {
	if checker.Registry == nil {
		return Status{false, "The status registry has not been configured."}
	}

	n := checker.Registry.Config().Len()
	if n == 0 {
		return Status{false, "The status registry has no monitored keys."}
	}

	return Status{
		true,
		fmt.Sprintf("The server is accepting requests for %d monitored key(s).", n),
	}
}
