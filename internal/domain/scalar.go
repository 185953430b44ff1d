package domain

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Normalize converts a raw query result into a count.
//
// Scalar-find queries return a bare number, tuple-find queries return a
// nested single-cell sequence ([n] or [[n]]). Anything else, including
// non-finite numbers and unparseable text, yields 0. Normalize never panics.
func Normalize(raw any) int64 {
	f, ok := toFloat(selectScalar(raw))
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

func selectScalar(raw any) any {
	if isNumber(raw) {
		return raw
	}
	first, ok := firstElem(raw)
	if !ok {
		return 0
	}
	if inner, ok := firstElem(first); ok {
		return inner
	}
	return first
}

// firstElem returns the first element of a slice or array. ok is false when
// v is not a sequence; an empty sequence yields (nil, true).
func firstElem(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return nil, true
		}
		return rv.Index(0).Interface(), true
	default:
		return nil, false
	}
}

func isNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case json.Number:
		return parseText(string(x))
	case string:
		return parseText(x)
	case bool:
		if x {
			return 1, true
		}
		return 0, true
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

func parseText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
