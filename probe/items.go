package probe

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Item is a single value to send to Zabbix.
type Item struct {
	Host  string
	Key   string
	Value string
}

// Discovery returns the low-level discovery items for feed. There is one
// item per severity, keyed aamv2.discovery[<severity>], whose value lists the
// components of that severity.
func Discovery(host string, feed Feed) ([]Item, error) {
	type macros struct {
		Component string `json:"{#COMPONENT}"`
		Severity  string `json:"{#SEVERITY}"`
	}

	bySeverity := map[string][]macros{}
	for _, name := range feed.Names() {
		sev := Severity(feed[name])
		bySeverity[sev] = append(bySeverity[sev], macros{name, sev})
	}

	var items []Item
	for _, sev := range Severities {
		components, ok := bySeverity[sev]
		if !ok {
			continue
		}

		value, err := json.Marshal(struct {
			Data []macros `json:"data"`
		}{components})
		if err != nil {
			return nil, err
		}

		items = append(items, Item{
			Host:  host,
			Key:   fmt.Sprintf("aamv2.discovery[%s]", sev),
			Value: string(value),
		})
	}

	return items, nil
}

// Metrics returns the status items for feed, keyed
// aamv2.status["<component>",<severity>]. Components without a status code
// are skipped.
func Metrics(host string, feed Feed) []Item {
	var items []Item

	for _, name := range feed.Names() {
		c := feed[name]
		if c.StatusCode == nil {
			continue
		}

		items = append(items, Item{
			Host:  host,
			Key:   fmt.Sprintf("aamv2.status[%s,%s]", strconv.Quote(name), Severity(c)),
			Value: strconv.Itoa(*c.StatusCode),
		})
	}

	return items
}
