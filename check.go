package pathmap

import (
	"reflect"
	"strings"

	"github.com/Gobd/pathmap/datapath"
)

// MissingKeys returns the json keys of the exported fields of structPtr that
// no rule of the builder writes. A rule writing a nested path such as
// "address.city" covers the "address" field. Embedded structs are expanded.
//
// Automatically excluded:
//   - json:"-"
//   - docs:"skip"
//   - pathmap:"-"  (field intentionally filled elsewhere)
//
// Use in tests to catch fields a mapping forgot:
//
//	assert.Empty(t, b.MissingKeys(&Profile{}))
//	assert.Empty(t, b.MissingKeys(&Profile{}, "CreatedAt"))
func (b *Builder) MissingKeys(structPtr any, exclude ...string) []string {
	t := reflect.TypeOf(structPtr)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	covered := map[string]bool{}
	for _, r := range b.rules.rules {
		if segs := datapath.Split(r.to); len(segs) > 0 {
			covered[segs[0]] = true
		}
	}

	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	collectUncovered(t, excl, covered, &missing)
	return missing
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}

// collectUncovered walks t recursively into embedded structs and appends the
// key of every exported field that is not covered. Unexported embedded
// structs are skipped, as they are when source data is normalized.
func collectUncovered(t reflect.Type, excl, covered map[string]bool, missing *[]string) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Tag.Get("json") == "" {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collectUncovered(inner, excl, covered, missing)
				continue
			}
		}
		if strings.Split(sf.Tag.Get("json"), ",")[0] == "-" {
			continue
		}
		if strings.Split(sf.Tag.Get("docs"), ",")[0] == "skip" || sf.Tag.Get("pathmap") == "-" {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] || covered[key] {
			continue
		}
		*missing = append(*missing, key)
	}
}
