package jsonable

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"time"
)

// TimeStamper is the timestamp capability: values exposing a calendar
// instant are canonicalized to RFC3339 text.
type TimeStamper interface {
	Timestamp() time.Time
}

// JSONer is the custom-serialization capability: the returned value replaces
// the receiver and is canonicalized recursively.
type JSONer interface {
	ToJSON() any
}

// Canonicalize reduces v to pure interchange shapes: nil, bool, string,
// number, []any and map[string]any (struct reductions keep their codec
// representation). Capability checks run in order and the first match wins:
// timestamp, then custom serialization, then iterable sequence. Iterables
// are materialized eagerly, so an infinite sequence will not return.
func Canonicalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch x := v.(type) {
	case time.Time:
		return formatRFC3339Canonical(x), nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}
		return formatRFC3339Canonical(*x), nil
	case TimeStamper:
		return formatRFC3339Canonical(x.Timestamp()), nil
	case JSONer:
		return Canonicalize(x.ToJSON())
	case iter.Seq[any]:
		return materialize(x)
	case bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x, nil
	}
	return canonicalizeReflect(reflect.ValueOf(v))
}

var seqType = reflect.TypeOf(iter.Seq[any](nil))

func canonicalizeReflect(rv reflect.Value) (any, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			c, err := Canonicalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, conversionError(rv.Interface(), nil)
		}
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			c, err := Canonicalize(it.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[it.Key().String()] = c
		}
		return out, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			// Keep the pointer so pointer-receiver marshalers apply.
			return reduceNative(rv.Interface())
		}
		return Canonicalize(rv.Elem().Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Canonicalize(rv.Elem().Interface())
	case reflect.Struct:
		return reduceNative(rv.Interface())
	case reflect.Func:
		// Named or untyped iterator functions carry the iterable capability.
		if rv.Type().ConvertibleTo(seqType) {
			return materialize(rv.Convert(seqType).Interface().(iter.Seq[any]))
		}
	}
	return nil, conversionError(rv.Interface(), nil)
}

// materialize drains an iterable into an ordered sequence of converted
// elements. Infinite sequences will not terminate here.
func materialize(seq iter.Seq[any]) (any, error) {
	out := []any{}
	for x := range seq {
		c, err := Canonicalize(x)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// reduceNative reduces a value the base codec encodes natively (structs,
// json.Marshaler implementations) to interchange shapes by passing it
// through the codec once.
func reduceNative(v any) (any, error) {
	data, err := activeCodec().Marshal(v)
	if err != nil {
		return nil, conversionError(v, err)
	}
	var out any
	if err := activeCodec().Unmarshal(data, &out); err != nil {
		return nil, conversionError(v, err)
	}
	return out, nil
}

func conversionError(v any, cause error) error {
	return &ConversionError{
		Type:  fmt.Sprintf("%T", v),
		Repr:  fmt.Sprintf("%+v", v),
		Cause: cause,
	}
}

// formatRFC3339Canonical normalizes to UTC and formats using RFC3339Nano
// (Go trims trailing zeros).
func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
