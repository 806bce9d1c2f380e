package fp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/optres/fp"
	"github.com/charmingruby/optres/option"
)

func TestPipeComposeCurry(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	assert.Equal(t, 5, fp.Curry(sum)(2)(3))

	pipeline := fp.Compose(
		func(i int) int { return i * 2 },
		func(i int) int { return i + 1 },
	)
	assert.Equal(t, 8, pipeline(3))

	final := fp.Pipe(1, func(i int) int { return i + 1 }, func(i int) int { return i * 5 })
	assert.Equal(t, 10, final)
}

func TestConstantAndNot(t *testing.T) {
	assert.Equal(t, 8080, option.None[int]().UnwrapOrElse(fp.Constant(8080)))
	empty := func(s string) bool { return s == "" }
	assert.True(t, option.Some("x").Filter(fp.Not(empty)).IsSome())
	assert.True(t, option.Some("").Filter(fp.Not(empty)).IsNone())
	assert.Equal(t, "same", fp.Identity("same"))
}
