// Package datapath reads and writes nested map/slice data by dot-delimited
// paths, and normalizes arbitrary Go values into that shape.
//
// Normalized data is built from map[string]any, []any and scalars only.
// Path segments address map keys; a numeric segment also indexes a slice:
//
//	datapath.Get(data, "users.0.email")
package datapath

import (
	"strconv"
	"strings"
)

// Separator delimits path segments.
const Separator = "."

// Split splits path into its segments. Blank segments are dropped.
func Split(path string) []string {
	parts := strings.Split(path, Separator)
	segs := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// Join joins segments into a path.
func Join(segs ...string) string {
	return strings.Join(segs, Separator)
}

// Get returns the value at path, or nil when any segment is missing.
func Get(data any, path string) any {
	v, _ := Lookup(data, path)
	return v
}

// Lookup returns the value at path and whether every segment was found.
// An empty path addresses data itself.
func Lookup(data any, path string) (any, bool) {
	cur := data
	for _, seg := range Split(path) {
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Pick returns the value of the first path that resolves to a non-nil value.
func Pick(data any, paths []string) any {
	for _, p := range paths {
		if v := Get(data, p); v != nil {
			return v
		}
	}
	return nil
}

// Set writes value at path inside target, creating intermediate maps.
// Intermediate values that are not maps are replaced.
func Set(target map[string]any, path string, value any) {
	segs := Split(path)
	if len(segs) == 0 {
		return
	}
	cur := target
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = value
}

// Clone returns a deep copy of normalized data. Only maps and lists are
// copied; scalar leaves such as time.Time or TextMarshaler values are shared.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}

// Merge deep-merges value over defaults and returns a new map. Keys present
// in value win; nested maps present on both sides are merged.
func Merge(defaults, value map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(value))
	for k, v := range defaults {
		out[k] = Clone(v)
	}
	for k, v := range value {
		dm, dok := out[k].(map[string]any)
		vm, vok := v.(map[string]any)
		if dok && vok {
			out[k] = Merge(dm, vm)
			continue
		}
		out[k] = v
	}
	return out
}
