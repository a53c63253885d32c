package core

import (
	"fmt"
	"math"
	"reflect"

	"github.com/IsaacBreen/starfield/errors"
)

// coerce converts a construction argument into a value of type t.
func coerce(field string, v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, errors.NewArgType(field, t.String(), "nil")
	}
	return coerceValue(field, reflect.ValueOf(v), t)
}

func coerceValue(field string, rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return coerce(field, nil, t)
		}
		rv = rv.Elem()
	}

	// Sequences are always copied so an instance never aliases caller memory.
	if t.Kind() == reflect.Slice && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := range rv.Len() {
			ev, err := coerceValue(fmt.Sprintf("%s[%d]", field, i), rv.Index(i), t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	}

	if rv.Type().AssignableTo(t) {
		return rv, nil
	}

	if t.Kind() == reflect.Array && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == t.Len() {
		out := reflect.New(t).Elem()
		for i := range rv.Len() {
			ev, err := coerceValue(fmt.Sprintf("%s[%d]", field, i), rv.Index(i), t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	}

	if isNumber(rv.Kind()) && isNumber(t.Kind()) {
		if out, ok := convertNumber(rv, t); ok {
			return out, nil
		}
	}

	if rv.Kind() == t.Kind() && (t.Kind() == reflect.String || t.Kind() == reflect.Bool) {
		return rv.Convert(t), nil
	}

	if out, ok, err := buildRecord(field, rv, t); ok {
		return out, err
	}

	return reflect.Value{}, errors.NewArgType(field, t.String(), rv.Type().String())
}

// buildRecord constructs a registered record type from a generic mapping
// (keyword construction) or sequence (positional construction).
func buildRecord(field string, rv reflect.Value, t reflect.Type) (reflect.Value, bool, error) {
	target := t
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	b, ok := lookupBuilder(target)
	if !ok || !rv.CanInterface() {
		return reflect.Value{}, false, nil
	}

	var out reflect.Value
	var err error
	switch x := rv.Interface().(type) {
	case map[string]any:
		out, err = b.build(nil, x)
	case map[any]any:
		out, err = b.build(nil, stringKeys(x))
	case []any:
		out, err = b.build(x, nil)
	default:
		return reflect.Value{}, false, nil
	}
	if err != nil {
		return reflect.Value{}, true, fmt.Errorf("argument %s: %w", field, err)
	}
	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(target)
		ptr.Elem().Set(out)
		return ptr, true, nil
	}
	return out, true, nil
}

func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}
	return out
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

// convertNumber converts between numeric kinds, refusing lossy conversions:
// overflow, negative to unsigned, and non-integral floats to integers.
func convertNumber(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := reflect.New(t).Elem()
	k := rv.Kind()

	switch {
	case isInt(t.Kind()):
		var n int64
		switch {
		case isInt(k):
			n = rv.Int()
		case isUint(k):
			u := rv.Uint()
			if u > math.MaxInt64 {
				return reflect.Value{}, false
			}
			n = int64(u)
		default:
			f := rv.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, false
			}
			n = int64(f)
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, false
		}
		out.SetInt(n)
	case isUint(t.Kind()):
		var u uint64
		switch {
		case isInt(k):
			n := rv.Int()
			if n < 0 {
				return reflect.Value{}, false
			}
			u = uint64(n)
		case isUint(k):
			u = rv.Uint()
		default:
			f := rv.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return reflect.Value{}, false
			}
			u = uint64(f)
		}
		if out.OverflowUint(u) {
			return reflect.Value{}, false
		}
		out.SetUint(u)
	default:
		var f float64
		switch {
		case isInt(k):
			f = float64(rv.Int())
		case isUint(k):
			f = float64(rv.Uint())
		default:
			f = rv.Float()
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, false
		}
		out.SetFloat(f)
	}
	return out, true
}
