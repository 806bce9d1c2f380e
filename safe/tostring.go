// Package safe converts failure-prone host operations into option.Option and
// result.Result values: text rendering, JSON and YAML codecs, HTTP retrieval
// and key-value storage reads.
//
// None of the adapters panic or retry. Failures are returned as Err values and
// callers decide what to do with them.
package safe

import (
	"github.com/charmingruby/optres/internal/format"
	"github.com/charmingruby/optres/result"
)

// ToString renders v as text. Structs, maps and slices without a String
// method are encoded as JSON, and an encoding failure is returned as Err.
func ToString(v any) result.Result[string, error] {
	rendered, err := format.Text(v)
	return result.FromTuple(rendered, err)
}
