package odp

import (
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/oapi-codegen/runtime/types"
)

// AssumedNaiveTimezone is the zone the API uses for timestamps sent without an offset.
const AssumedNaiveTimezone = "America/New_York"

// DateLayout is the wire layout of calendar dates.
const DateLayout = types.DateFormat

// AssumedNaiveLocation is AssumedNaiveTimezone loaded once at init.
var AssumedNaiveLocation = mustLoadLocation(AssumedNaiveTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Date is a calendar date without a time of day, encoded as YYYY-MM-DD.
type Date = types.Date

// NewDate returns a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateTime is an instant normalized to UTC. It encodes with a literal Z suffix.
type DateTime struct {
	time.Time
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeDateTime(t.Time))
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := parseDateTimeUTC(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t DateTime) String() string {
	return EncodeDateTime(t.Time)
}

// DecodeDate parses a YYYY-MM-DD string. Empty input and unparseable input both yield nil;
// the latter also logs a warning.
func DecodeDate(s string) *Date {
	return DecodeDateLayout(s, DateLayout)
}

// DecodeDateLayout is DecodeDate with a caller supplied time layout.
func DecodeDateLayout(s, layout string) *Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		warn(WarningMalformedValue, "could not parse date", "value", s, "layout", layout)
		return nil
	}
	return &Date{Time: t}
}

// EncodeDate formats d as YYYY-MM-DD, or "" for nil.
func EncodeDate(d *Date) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	DateLayout,
}

// DecodeDateTimeUTC parses an ISO-8601 timestamp and normalizes it to UTC.
// Timestamps without an offset are read as AssumedNaiveLocation wall time.
// Empty input yields nil; unparseable input yields nil and a warning.
func DecodeDateTimeUTC(s string) *DateTime {
	if s == "" {
		return nil
	}
	t, err := parseDateTimeUTC(s)
	if err != nil {
		warn(WarningMalformedValue, "could not parse datetime", "value", s)
		return nil
	}
	return &DateTime{Time: t}
}

func parseDateTimeUTC(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range offsetLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, AssumedNaiveLocation); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, firstErr
}

// EncodeDateTime formats t in UTC as RFC 3339 with a Z suffix.
func EncodeDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// DecodeYN maps "Y"/"y" to true and "N"/"n" to false. Empty input yields nil;
// any other value yields nil and a warning.
func DecodeYN(s string) *bool {
	switch s {
	case "":
		return nil
	case "Y", "y":
		v := true
		return &v
	case "N", "n":
		v := false
		return &v
	}
	warn(WarningMalformedValue, "unexpected value for Y/N flag", "value", s)
	return nil
}

// EncodeYN is the inverse of DecodeYN; nil encodes as "".
func EncodeYN(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "Y"
	default:
		return "N"
	}
}

// ToCamelCase converts snake_case to lowerCamelCase. Every segment after the first is
// title-cased, so "xml_URI" becomes "xmlUri".
func ToCamelCase(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		r := []rune(strings.ToLower(p))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func boolPtr(b bool) *bool { return &b }
