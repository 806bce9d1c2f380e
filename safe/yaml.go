package safe

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/charmingruby/optres/result"
)

// ParseYAML decodes input into a T with the same input rules as ParseJSON.
func ParseYAML[T any](input any) result.Result[T, error] {
	raw, err := text(input)
	if err != nil {
		return result.Err[T](err)
	}
	var out T
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return result.Err[T](fmt.Errorf("safe: parse yaml: %w", err))
	}
	return result.Ok[T, error](out)
}

// StringifyYAML encodes v as YAML. The encoder panics on some unsupported
// types; that panic is returned as Err holding a *result.PanicError.
func StringifyYAML(v any) result.Result[string, error] {
	if v == nil {
		return result.Err[string](ErrUndefinedInput)
	}
	return result.Try(func() (string, error) {
		raw, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("safe: stringify yaml: %w", err)
		}
		return string(raw), nil
	})
}
