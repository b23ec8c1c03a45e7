package pathmap

import (
	"context"
	"reflect"
)

// Finalizer is implemented by output types that need to fix themselves up
// after [Builder.BuildInto] decoded the mapped data into them. Finalize runs
// on the top-level value first, then depth-first on every nested struct,
// pointer, slice element and map value that also implements it.
type Finalizer interface {
	Finalize()
}

// ContextFinalizer is like Finalizer but receives the context passed to
// [Builder.BuildIntoCtx].
type ContextFinalizer interface {
	Finalize(context.Context)
}

func finalizeRecursive(ctx context.Context, a any) {
	if a == nil {
		return
	}
	callFinalize(ctx, a)
	rv := reflect.ValueOf(a)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		walkFinalize(ctx, rv)
	}
}

func callFinalize(ctx context.Context, v any) {
	if f, ok := v.(ContextFinalizer); ok {
		f.Finalize(ctx)
		return
	}
	if f, ok := v.(Finalizer); ok {
		f.Finalize()
	}
}

func walkFinalize(ctx context.Context, rv reflect.Value) {
	for i := range rv.NumField() {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		field := rv.Field(i)
		switch field.Kind() {
		case reflect.Slice, reflect.Array:
			for j := range field.Len() {
				visitFinalize(ctx, field.Index(j))
			}
		case reflect.Map:
			iter := field.MapRange()
			for iter.Next() {
				val := iter.Value()
				if val.Kind() != reflect.Struct {
					continue
				}
				// Map values aren't addressable; copy, finalize, put back.
				cp := reflect.New(val.Type())
				cp.Elem().Set(val)
				callFinalize(ctx, cp.Interface())
				walkFinalize(ctx, cp.Elem())
				field.SetMapIndex(iter.Key(), cp.Elem())
			}
		default:
			visitFinalize(ctx, field)
		}
	}
}

func visitFinalize(ctx context.Context, v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		if v.CanAddr() {
			callFinalize(ctx, v.Addr().Interface())
		}
		walkFinalize(ctx, v)
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		callFinalize(ctx, v.Interface())
		if v.Elem().Kind() == reflect.Struct {
			walkFinalize(ctx, v.Elem())
		}
	}
}
