package probe

// Severities are the Zabbix trigger severities, least severe first.
var Severities = []string{
	"unclassified",
	"information",
	"warning",
	"average",
	"high",
	"disaster",
}

// severityAliases maps feed severities that are not Zabbix severities to
// their Zabbix equivalent.
var severityAliases = map[string]string{
	"critical": "disaster",
}

// Severity returns the Zabbix severity for a component. Unknown or missing
// severities are "unclassified".
func Severity(c Component) string {
	if alias, ok := severityAliases[c.Severity]; ok {
		return alias
	}

	for _, s := range Severities {
		if c.Severity == s {
			return s
		}
	}

	return "unclassified"
}
