// Package boundarytest provides assertion helpers for verifying that
// consumers respect the jsonable boundary: same observable result for the
// original argument and its round-tripped copy, and an output that is itself
// transportable.
package boundarytest

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/boundable/jsonable"
)

// Check runs the three-legged boundary contract for fn:
//
//  1. fn(input) must equal want.
//  2. fn(roundtrip(input)) must equal want.
//  3. When want is truthy, want must itself encode without error.
//
// The first failing leg is returned as an error; nil means the boundary is
// respected for this input.
func Check(fn jsonable.Consumer, input, want any) error {
	got, err := fn(input)
	if err != nil {
		return fmt.Errorf("boundarytest: consumer(input): %w", err)
	}
	if !EqualJSON(got, want) {
		return fmt.Errorf("boundarytest: consumer(input) = %v, want %v", got, want)
	}
	decoded, err := jsonable.Roundtrip(input)
	if err != nil {
		return fmt.Errorf("boundarytest: roundtrip input: %w", err)
	}
	got, err = fn(decoded)
	if err != nil {
		return fmt.Errorf("boundarytest: consumer(roundtrip(input)): %w", err)
	}
	if !EqualJSON(got, want) {
		return fmt.Errorf("boundarytest: consumer(roundtrip(input)) = %v, want %v", got, want)
	}
	if truthy(want) {
		if _, err := jsonable.Encode(want); err != nil {
			return fmt.Errorf("boundarytest: output is not transportable: %w", err)
		}
	}
	return nil
}

// Assert is Check wired into a test; the first failing leg fails the test.
func Assert(tb testing.TB, fn jsonable.Consumer, input, want any) {
	tb.Helper()
	if err := Check(fn, input, want); err != nil {
		tb.Fatal(err)
	}
}

// EqualJSON compares two values under interchange semantics: numeric kinds
// (including json.Number) compare by value, sequences elementwise, string
// maps keywise. Round-tripping turns Go ints into float64, so plain
// reflect.DeepEqual would report spurious mismatches.
func EqualJSON(a, b any) bool {
	if an, ok := asNumber(a); ok {
		bn, ok := asNumber(b)
		return ok && an == bn
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ra.Kind() {
	case reflect.Slice, reflect.Array:
		if rb.Kind() != reflect.Slice && rb.Kind() != reflect.Array {
			return false
		}
		if ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !EqualJSON(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Map:
		if rb.Kind() != reflect.Map || ra.Len() != rb.Len() {
			return false
		}
		if ra.Type().Key().Kind() != reflect.String || rb.Type().Key().Kind() != reflect.String {
			return reflect.DeepEqual(a, b)
		}
		it := ra.MapRange()
		for it.Next() {
			bv := rb.MapIndex(it.Key())
			if !bv.IsValid() || !EqualJSON(it.Value().Interface(), bv.Interface()) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func asNumber(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// truthy gates the transport leg: nil, false, zero numbers and empty
// strings/sequences/maps are not checked for serializability.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
