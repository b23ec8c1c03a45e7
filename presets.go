package pathmap

import (
	"slices"
	"time"

	"github.com/asaskevich/govalidator"

	"github.com/Gobd/pathmap/transform"
)

// Preset names a built-in transform usable with [Transform].
type Preset string

// The preset whitelist. Any other name is rejected at declaration.
const (
	// ISO8601 formats time.Time values as RFC 3339 strings.
	ISO8601 Preset = "iso8601"
	// Date parses date strings into a time.Time at midnight UTC. The value
	// encodes to JSON as a full RFC 3339 date-time.
	Date Preset = "date"
	// String formats any value with fmt's %v.
	String Preset = "string"
	// Int parses values into an int64.
	Int Preset = "int"
	// Float parses values into a float64.
	Float Preset = "float"
	// Snake turns CamelCase strings into snake_case.
	Snake Preset = "snake"
	// Camel turns snake_case strings into CamelCase.
	Camel Preset = "camel"
	// Trim, Lower, Upper and Title apply to every string in the value,
	// including strings nested in maps and lists.
	Trim  Preset = "trim"
	Lower Preset = "lower"
	Upper Preset = "upper"
	Title Preset = "title"
)

var presets = map[Preset]func(any) any{
	ISO8601: iso8601,
	Date:    parseDate,
	String:  toString,
	Int:     toInt,
	Float:   toFloat,
	Snake:   stringsOnly(govalidator.CamelCaseToUnderscore),
	Camel:   stringsOnly(govalidator.UnderscoreToCamelCase),
	Trim:    transform.TrimSpace,
	Lower:   transform.ToLower,
	Upper:   transform.ToUpper,
	Title:   transform.Title,
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for p := range presets {
		names = append(names, string(p))
	}
	slices.Sort(names)
	return names
}

func iso8601(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	"01/02/2006",
}

// parseDate returns the calendar date of a date string. Values that are not
// strings, or that cannot be parsed, are returned unchanged.
func parseDate(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if govalidator.IsRFC3339(s) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return midnight(t)
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t)
		}
	}
	return v
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toString(v any) any {
	if v == nil {
		return nil
	}
	return govalidator.ToString(v)
}

func toInt(v any) any {
	if v == nil {
		return nil
	}
	n, err := govalidator.ToInt(govalidator.ToString(v))
	if err != nil {
		return v
	}
	return n
}

func toFloat(v any) any {
	if v == nil {
		return nil
	}
	f, err := govalidator.ToFloat(govalidator.ToString(v))
	if err != nil {
		return v
	}
	return f
}

func stringsOnly(f func(string) string) func(any) any {
	return func(v any) any {
		return transform.StringFunc(v, f)
	}
}
