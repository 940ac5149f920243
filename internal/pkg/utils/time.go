package utils

import (
	"time"

	"lisagent-service/internal/pkg/constvars"
)

// ParseLisTimestamp parses the fixed YYYYMMDDhhmmss instrument format.
func ParseLisTimestamp(raw string) (time.Time, error) {
	return time.Parse(constvars.LisTimestampLayout, raw)
}

// FormatLisTimestamp renders a nullable completion time; nil yields an empty
// string rather than an error so payload building never fails on absent data.
func FormatLisTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(constvars.LisTimestampLayout)
}
