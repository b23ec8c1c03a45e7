package datapath

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var (
	timeType          = reflect.TypeOf(time.Time{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Normalize returns a deep copy of v in normalized form: every keyed
// structure becomes a map[string]any (keys formatted with fmt.Sprint),
// slices and arrays become []any, pointers are followed and structs become
// maps keyed by their json names. time.Time values and structs implementing
// encoding.TextMarshaler are kept as scalars, as are []byte values.
func Normalize(v any) any {
	return normalize(reflect.ValueOf(v))
}

func normalize(rv reflect.Value) any { //nolint:revive // reflection walker is inherently complex
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem())
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		if isOpaque(rv.Type()) {
			return rv.Interface()
		}
		return normalize(rv.Elem())
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[keyString(iter.Key())] = normalize(iter.Value())
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface()
		}
		return normalizeList(rv)
	case reflect.Array:
		return normalizeList(rv)
	case reflect.Struct:
		if isOpaque(rv.Type()) {
			return rv.Interface()
		}
		out := map[string]any{}
		structFields(rv, out)
		return out
	default:
		return rv.Interface()
	}
}

func normalizeList(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = normalize(rv.Index(i))
	}
	return out
}

// isOpaque reports whether values of t are kept as scalars.
func isOpaque(t reflect.Type) bool {
	if t == timeType || t.Implements(textMarshalerType) {
		return true
	}
	return t.Kind() == reflect.Ptr && t.Elem() == timeType
}

func keyString(k reflect.Value) string {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// structFields copies the exported fields of rv into out. Untagged exported
// embedded structs are flattened into the parent.
func structFields(rv reflect.Value, out map[string]any) {
	t := rv.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		tag, opts, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag == "-" && opts == "" {
			continue
		}
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if sf.Anonymous && tag == "" {
			inner := fv
			if inner.Kind() == reflect.Ptr {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct && !isOpaque(inner.Type()) {
				structFields(inner, out)
				continue
			}
		}
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}

		key := sf.Name
		if tag != "" {
			key = tag
		}
		out[key] = normalize(fv)
	}
}
