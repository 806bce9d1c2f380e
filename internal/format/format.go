// Package format renders arbitrary payloads for diagnostics such as unwrap
// failures and String implementations.
//
// Example:
//
//	msg := format.Payload(map[string]int{"retries": 3}) // {"retries":3}
package format

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Payload renders v for humans. Errors and fmt.Stringer values use their own
// text, composite values without a Stringer are rendered as JSON, and all
// other values use the %v verb. It never fails: when JSON encoding is not
// possible the %+v rendering is returned instead.
//
// Example:
//
//	Payload(errors.New("boom")) // boom
//	Payload(struct{ ID int }{7}) // {"ID":7}
func Payload(v any) string {
	text, err := Text(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return text
}

// Text is the fallible form of Payload: it reports the JSON encoding error
// instead of falling back to %+v. A nil pointer renders as <nil> without
// calling its Error or String method.
func Text(v any) (string, error) {
	if Nil(v) {
		return "<nil>", nil
	}
	switch value := v.(type) {
	case string:
		return value, nil
	case error:
		return value.Error(), nil
	case fmt.Stringer:
		return value.String(), nil
	}
	if !composite(v) {
		return fmt.Sprintf("%v", v), nil
	}
	return JSON(v)
}

// Nil reports whether v is nil or a nil pointer.
func Nil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// JSON encodes v as compact JSON text.
func JSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func composite(v any) bool {
	kind := reflect.TypeOf(v).Kind()
	if kind == reflect.Pointer {
		kind = reflect.TypeOf(v).Elem().Kind()
	}
	switch kind {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
