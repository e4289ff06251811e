// Package probe turns the JSON feed served by the status API into Zabbix
// low-level discovery data and item values.
package probe

import (
	"encoding/json"
	"sort"
)

// Component is the information about a single monitored key in a feed.
type Component struct {
	Severity   string
	StatusCode *int
}

// UnmarshalJSON decodes a component. Values that are not JSON objects, or
// objects with unexpected member types, decode to an empty component rather
// than failing the whole feed.
func (c *Component) UnmarshalJSON(data []byte) error {
	var v struct {
		Severity   json.RawMessage `json:"severity"`
		StatusCode json.RawMessage `json:"statusCode"`
	}

	*c = Component{}

	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	var severity string
	if json.Unmarshal(v.Severity, &severity) == nil {
		c.Severity = severity
	}

	var code int
	if json.Unmarshal(v.StatusCode, &code) == nil {
		c.StatusCode = &code
	}

	return nil
}

// Feed is the decoded content of /status/keys or /status/details.
//
// Both the severity-annotated object form and a flat array of key names are
// accepted.
type Feed map[string]Component

// UnmarshalJSON decodes either form of the feed.
func (f *Feed) UnmarshalJSON(data []byte) error {
	var object map[string]Component
	if err := json.Unmarshal(data, &object); err == nil {
		*f = object
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	*f = make(Feed, len(names))
	for _, name := range names {
		(*f)[name] = Component{}
	}

	return nil
}

// Names returns the component names in the feed, sorted.
func (f Feed) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
