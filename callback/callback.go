package callback

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
)

// Named marks a struct parameter as a bag of named parameters.
type Named struct{}

var (
	namedType = reflect.TypeOf(Named{})
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// ErrNotFunc is returned when the callback is not a func.
var ErrNotFunc = errors.New("callback: not a func")

// Signature describes what a func declares.
type Signature struct {
	// Positional is the number of declared positional parameters.
	// A variadic parameter does not count.
	Positional int
	Variadic   bool
	// Named lists the declared named parameters in field order.
	Named []string
	// ReturnsValue and ReturnsError describe the result list.
	ReturnsValue bool
	ReturnsError bool

	namedIndex int
	fields     []namedField
}

type namedField struct {
	name  string
	index int
}

// ArgumentError reports a candidate that could not be converted to the
// declared parameter type.
type ArgumentError struct {
	Param string
	Want  reflect.Type
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("callback: argument %s: cannot use value as %s: %v", e.Param, e.Want, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Inspect reports the signature of fn.
func Inspect(fn any) (Signature, error) {
	if fn == nil {
		return Signature{}, ErrNotFunc
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return Signature{}, fmt.Errorf("%w: got %T", ErrNotFunc, fn)
	}
	return inspectType(t)
}

func inspectType(t reflect.Type) (Signature, error) {
	sig := Signature{Variadic: t.IsVariadic(), namedIndex: -1}

	n := t.NumIn()
	if sig.Variadic {
		n--
	}
	if n > 0 && isNamedStruct(t.In(n-1)) {
		sig.namedIndex = n - 1
		sig.fields = namedFields(t.In(n - 1))
		for _, f := range sig.fields {
			sig.Named = append(sig.Named, f.name)
		}
		n--
	}
	sig.Positional = n

	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) == errorType {
			sig.ReturnsError = true
		} else {
			sig.ReturnsValue = true
		}
	case 2:
		if t.Out(1) != errorType {
			return Signature{}, fmt.Errorf("callback: second result of %s must be error", t)
		}
		sig.ReturnsValue = true
		sig.ReturnsError = true
	default:
		return Signature{}, fmt.Errorf("callback: %s returns too many values", t)
	}
	return sig, nil
}

func isNamedStruct(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous && f.Type == namedType {
			return true
		}
	}
	return false
}

func namedFields(t reflect.Type) []namedField {
	var fields []namedField
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		name := f.Tag.Get("arg")
		if name == "-" {
			continue
		}
		if name == "" {
			name = lowerFirst(f.Name)
		}
		fields = append(fields, namedField{name: name, index: i})
	}
	return fields
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// Call invokes fn with the first positional candidates it declares, padded
// with zero values, and with the named candidates whose names it declares.
//
// When fn declares named parameters but no positional ones and the first
// positional candidate is a map[string]any, that map is used as the named
// source instead of named.
func Call(fn any, positional []any, named map[string]any) (any, error) {
	sig, err := Inspect(fn)
	if err != nil {
		return nil, err
	}

	fv := reflect.ValueOf(fn)
	t := fv.Type()

	args := make([]reflect.Value, 0, sig.Positional+1)
	for i := range sig.Positional {
		var c any
		if i < len(positional) {
			c = positional[i]
		}
		v, err := coerce(c, t.In(i), fmt.Sprintf("#%d", i))
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if sig.namedIndex >= 0 {
		source := named
		if sig.Positional == 0 && len(positional) > 0 {
			if m, ok := positional[0].(map[string]any); ok {
				source = m
			}
		}
		v, err := fillNamed(t.In(sig.namedIndex), sig.fields, source)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return results(fv.Call(args), sig)
}

func fillNamed(t reflect.Type, fields []namedField, source map[string]any) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	for _, f := range fields {
		c, ok := source[f.name]
		if !ok {
			continue
		}
		fv, err := coerce(c, t.Field(f.index).Type, f.name)
		if err != nil {
			return reflect.Value{}, err
		}
		v.Field(f.index).Set(fv)
	}
	return v, nil
}

// coerce converts c to t. Assignable values are used as is; anything else
// is weakly decoded, which covers number/string conversions and maps into
// structs.
func coerce(c any, t reflect.Type, param string) (reflect.Value, error) {
	if c == nil {
		return reflect.Zero(t), nil
	}
	cv := reflect.ValueOf(c)
	if cv.Type().AssignableTo(t) {
		return cv, nil
	}

	out := reflect.New(t)
	if err := mapstructure.WeakDecode(c, out.Interface()); err != nil {
		return reflect.Value{}, &ArgumentError{Param: param, Want: t, Err: err}
	}
	return out.Elem(), nil
}

func results(out []reflect.Value, sig Signature) (any, error) {
	var (
		value any
		err   error
	)
	switch {
	case sig.ReturnsValue && sig.ReturnsError:
		value = valueOf(out[0])
		err = asError(out[1])
	case sig.ReturnsValue:
		value = valueOf(out[0])
	case sig.ReturnsError:
		err = asError(out[0])
	}
	return value, err
}

// valueOf unwraps a result, turning typed nils into an untyped nil.
func valueOf(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface()
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
