package safe

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/charmingruby/optres/result"
)

var decoder = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseJSON decodes input into a T. input must be a string or a []byte;
// anything else fails with ErrNotText before decoding is attempted.
func ParseJSON[T any](input any) result.Result[T, error] {
	raw, err := text(input)
	if err != nil {
		return result.Err[T](err)
	}
	return decodeJSON[T](raw)
}

// StringifyJSON encodes v as compact JSON. An untyped nil fails with
// ErrUndefinedInput; values the codec cannot represent (channels, functions,
// cyclic pointers) fail with the codec error.
func StringifyJSON(v any) result.Result[string, error] {
	if v == nil {
		return result.Err[string](ErrUndefinedInput)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return result.Err[string](fmt.Errorf("safe: stringify json: %w", err))
	}
	return result.Ok[string, error](string(raw))
}

func decodeJSON[T any](raw []byte) result.Result[T, error] {
	var out T
	if err := decoder.Unmarshal(raw, &out); err != nil {
		return result.Err[T](fmt.Errorf("safe: parse json: %w", err))
	}
	return result.Ok[T, error](out)
}

func text(input any) ([]byte, error) {
	switch v := input.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotText, input)
	}
}
