package registry

import (
	"fmt"
	"strings"
)

// MaxKeyLength is the maximum length of a monitored key, in bytes.
const MaxKeyLength = 64

// Key is a normalized monitored key, such as "mysql" or "rabbitmq".
type Key string

// ParseKey produces a Key value from a string, or panics if it is unable to
// do so.
func ParseKey(name string) Key {
	key, err := TryParseKey(name)
	if err != nil {
		panic(err)
	}

	return key
}

// TryParseKey attempts to produce a Key value from a string.
//
// Keys are case-insensitive and are normalized to lowercase. They must begin
// with a letter or digit and may otherwise contain letters, digits, hyphens,
// underscores and periods.
func TryParseKey(name string) (Key, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if !isKeyName(normalized) {
		return "", fmt.Errorf("invalid monitored key '%s'", name)
	}

	return Key(normalized), nil
}

// isKeyName checks if the given (already lowercase) string is a valid key.
func isKeyName(name string) bool {
	if len(name) == 0 || len(name) > MaxKeyLength {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		case c == '-' || c == '_' || c == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
