package registry

import (
	"bytes"
	"encoding/json"
)

// KeyInfo is the published information about a monitored key.
type KeyInfo struct {
	Severity Severity `json:"severity"`
}

// KeyListItem is a single element of a KeyList.
type KeyListItem struct {
	Key  Key
	Info KeyInfo
}

// KeyList is an ordered mapping of monitored key to KeyInfo.
//
// It marshals to a JSON object whose members appear in configuration order.
type KeyList []KeyListItem

// Map returns the list as an (unordered) map.
func (list KeyList) Map() map[Key]KeyInfo {
	m := make(map[Key]KeyInfo, len(list))
	for _, item := range list {
		m[item.Key] = item.Info
	}

	return m
}

// MarshalJSON returns the JSON object representation of the list.
func (list KeyList) MarshalJSON() ([]byte, error) {
	return marshalObject(len(list), func(i int) (Key, interface{}) {
		return list[i].Key, list[i].Info
	})
}

// KeyStatus is the simulated status of a single monitored key.
type KeyStatus struct {
	StatusCode StatusCode `json:"statusCode"`
	Severity   Severity   `json:"severity"`
}

// ReportItem is a single element of a StatusReport.
type ReportItem struct {
	Key    Key
	Status KeyStatus
}

// StatusReport is an ordered mapping of monitored key to KeyStatus. It is
// constructed fresh for each request and never stored.
type StatusReport []ReportItem

// Map returns the report as an (unordered) map.
func (report StatusReport) Map() map[Key]KeyStatus {
	m := make(map[Key]KeyStatus, len(report))
	for _, item := range report {
		m[item.Key] = item.Status
	}

	return m
}

// MarshalJSON returns the JSON object representation of the report.
func (report StatusReport) MarshalJSON() ([]byte, error) {
	return marshalObject(len(report), func(i int) (Key, interface{}) {
		return report[i].Key, report[i].Status
	})
}

// marshalObject encodes n members as a JSON object, preserving their order.
func marshalObject(n int, member func(i int) (Key, interface{})) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, value := member(i)

		k, err := json.Marshal(string(key))
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
