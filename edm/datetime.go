package edm

import "time"

// The canonical DateTime text is the UTC instant truncated to whole
// seconds followed by a fixed sub-second/zone suffix.
const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateTimeSuffix = ".0000000Z"
)

// FormatDateTime renders an instant in the canonical EDM DateTime form,
// e.g. "2014-11-12T13:14:15.0000000Z".
func FormatDateTime(instant time.Time) string {
	return instant.UTC().Format(dateTimeLayout) + dateTimeSuffix
}

// ParseDateTime parses RFC 3339 text, with or without fractional
// seconds, back into an instant.
func ParseDateTime(text string) (time.Time, error) {
	return time.Parse(time.RFC3339, text)
}
