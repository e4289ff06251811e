package probe

import (
	"bufio"
	"io"
	"strings"
)

// WriteSenderInput writes items in the input file format read by
// "zabbix_sender -i": one "<host> <key> <value>" line per item.
func WriteSenderInput(w io.Writer, items []Item) error {
	buf := bufio.NewWriter(w)

	for _, item := range items {
		buf.WriteString(senderField(item.Host))
		buf.WriteByte(' ')
		buf.WriteString(senderField(item.Key))
		buf.WriteByte(' ')
		buf.WriteString(senderField(item.Value))
		buf.WriteByte('\n')
	}

	return buf.Flush()
}

// senderField quotes s if it contains whitespace, quotes or backslashes.
// Inside quotes only '"' and '\' are escaped.
func senderField(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"\\") {
		return s
	}

	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
