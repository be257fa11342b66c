package diag

import (
	"fmt"
	"strings"
)

// Severity orders diagnostics: Sort and AtLeast compare it numerically.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// ParseSeverity reads a --min-severity value; case is ignored and "warn" means warning.
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARN" {
		return SevWarning, nil
	}
	for sev, n := range severityNames {
		if n == name {
			return Severity(sev), nil
		}
	}
	return SevInfo, fmt.Errorf("unknown severity %q (expected: info|warning|error)", s)
}
