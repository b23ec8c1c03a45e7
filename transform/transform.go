package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TrimSpace runs [strings.TrimSpace] on every string in v, including strings
// nested in maps and slices.
func TrimSpace(v any) any {
	return stringFunc(v, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on every string in v.
func ToLower(v any) any {
	return stringFunc(v, strings.ToLower)
}

// ToUpper runs [strings.ToUpper] on every string in v.
func ToUpper(v any) any {
	return stringFunc(v, strings.ToUpper)
}

// Title title-cases every string in v using Unicode word boundaries.
func Title(v any) any {
	caser := cases.Title(language.Und)
	return stringFunc(v, caser.String)
}

// StringFunc applies f to every string in v.
func StringFunc(v any, f func(string) string) any {
	return stringFunc(v, f)
}

// Multi runs all given functions on v sequentially, feeding each result to
// the next.
func Multi(v any, fns ...func(any) any) any {
	for _, f := range fns {
		v = f(v)
	}
	return v
}

// stringFunc returns a copy of v with f applied to its strings. Map keys are
// left untouched and v itself is never modified.
func stringFunc(v any, f func(string) string) any {
	switch t := v.(type) {
	case string:
		return f(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringFunc(val, f)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringFunc(val, f)
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, s := range t {
			out[i] = f(s)
		}
		return out
	default:
		return v
	}
}
