package keysource

import (
	"log"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/icecave/appstatus/registry"
)

// FromEnv returns a static source containing the keys configured by
// environment variables of the form APPSTATUS_KEY_<NAME>=<severity>.
func FromEnv(logger *log.Logger) Static {
	source := fromEnv(os.Environ())

	if logger != nil {
		for _, e := range source.Entries {
			logger.Printf(
				"Found monitored key '%s' (%s) in the environment",
				e.Name,
				e.Severity,
			)
		}
	}

	return source
}

func fromEnv(env []string) Static {
	source := Static{Label: "environment"}

	for _, e := range env {
		groups := keyPattern.FindStringSubmatch(e)
		if len(groups) == 0 {
			continue
		}

		source.Entries = append(source.Entries, registry.Entry{
			Name:     strings.ToLower(groups[nameIndex]),
			Severity: groups[severityIndex],
		})
	}

	sort.Slice(source.Entries, func(i, j int) bool {
		return source.Entries[i].Name < source.Entries[j].Name
	})

	return source
}

const (
	nameIndex = iota + 1
	severityIndex
)

var keyPattern = regexp.MustCompile(`^APPSTATUS_KEY_([^=\s]+)=\s*([^\s]*)\s*$`)
