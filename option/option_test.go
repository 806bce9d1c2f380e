package option_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/optres/option"
	"github.com/charmingruby/optres/result"
)

func TestSomeNilBehavior(t *testing.T) {
	var value any
	opt := option.Some(value)
	assert.True(t, opt.IsSome(), "Some(nil) is present")
	got, ok := opt.Get()
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestZeroValueIsNone(t *testing.T) {
	var zero option.Option[int]
	assert.True(t, zero.IsNone())
	assert.Nil(t, zero.ToPtr())
	assert.Equal(t, option.None[int](), zero)
}

func TestNoneIsShared(t *testing.T) {
	a := option.None[string]()
	b := option.Map(option.None[int](), func(int) string { return "x" })
	c := option.Some("v").Filter(func(string) bool { return false })
	assert.True(t, a == b && b == c)
}

func TestUnwrap(t *testing.T) {
	v, err := option.Some(3).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = option.None[int]().Unwrap()
	assert.ErrorIs(t, err, option.ErrUnwrapNone)
	assert.EqualError(t, err, "option: tried to unwrap, but this option is None")

	_, err = option.None[int]().Unwrap("reading port")
	assert.ErrorIs(t, err, option.ErrUnwrapNone)
	assert.EqualError(t, err, "reading port - option: tried to unwrap, but this option is None")
}

func TestUnwrapNoneIsRepeatable(t *testing.T) {
	none := option.None[int]()
	_, first := none.Unwrap()
	_, second := none.Unwrap()
	assert.Equal(t, first, second)
	assert.True(t, none.IsNone())
}

func TestMustUnwrap(t *testing.T) {
	assert.Equal(t, "x", option.Some("x").MustUnwrap())
	assert.PanicsWithError(t, "ctx - option: tried to unwrap, but this option is None", func() {
		option.None[string]().MustUnwrap("ctx")
	})
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 1, option.Some(1).UnwrapOr(5))
	assert.Equal(t, 5, option.None[int]().UnwrapOr(5))
	assert.Zero(t, option.None[int]().UnwrapOrZero())

	calls := 0
	fallback := func() int {
		calls++
		return 9
	}
	assert.Equal(t, 1, option.Some(1).UnwrapOrElse(fallback))
	assert.Zero(t, calls)
	assert.Equal(t, 9, option.None[int]().UnwrapOrElse(fallback))
	assert.Equal(t, 1, calls)
}

func TestIsSomeAnd(t *testing.T) {
	assert.True(t, option.Some(10).IsSomeAnd(func(v int) bool { return v > 5 }))
	assert.False(t, option.Some(1).IsSomeAnd(func(v int) bool { return v > 5 }))
	assert.False(t, option.None[int]().IsSomeAnd(func(int) bool {
		t.Fatal("predicate must not run on None")
		return true
	}))
}

func TestAndAndThen(t *testing.T) {
	assert.Equal(t, option.Some("b"), option.And(option.Some(1), option.Some("b")))
	assert.True(t, option.And(option.None[int](), option.Some("b")).IsNone())

	parsed := option.AndThen(option.Some("42"), func(s string) option.Option[int] {
		if s == "42" {
			return option.Some(42)
		}
		return option.None[int]()
	})
	assert.Equal(t, option.Some(42), parsed)

	skipped := option.AndThen(option.None[string](), func(string) option.Option[int] {
		t.Fatal("must not run on None")
		return option.Some(0)
	})
	assert.True(t, skipped.IsNone())
}

func TestOrAndOrElse(t *testing.T) {
	assert.Equal(t, option.Some(1), option.Some(1).Or(option.Some(2)))
	assert.Equal(t, option.Some(2), option.None[int]().Or(option.Some(2)))

	kept := option.Some(1).OrElse(func() option.Option[int] {
		t.Fatal("must not run on Some")
		return option.None[int]()
	})
	assert.Equal(t, option.Some(1), kept)
	assert.Equal(t, option.Some(7), option.None[int]().OrElse(func() option.Option[int] { return option.Some(7) }))
}

func TestMapCallCounts(t *testing.T) {
	calls := 0
	double := func(v int) int {
		calls++
		return v * 2
	}
	assert.Equal(t, option.Some(4), option.Map(option.Some(2), double))
	assert.True(t, option.Map(option.None[int](), double).IsNone())
	assert.Equal(t, 1, calls)

	noneCalls := 0
	fill := func() int {
		noneCalls++
		return 8
	}
	assert.Equal(t, option.Some(2), option.Some(2).MapNone(fill))
	assert.Zero(t, noneCalls)
	assert.Equal(t, option.Some(8), option.None[int]().MapNone(fill))
	assert.Equal(t, 1, noneCalls)
}

func TestInspect(t *testing.T) {
	var seen []string
	some := option.Some("v").
		InspectSome(func(v string) { seen = append(seen, "some:"+v) }).
		InspectNone(func() { seen = append(seen, "none") })
	none := option.None[string]().
		InspectSome(func(v string) { seen = append(seen, "some:"+v) }).
		InspectNone(func() { seen = append(seen, "none") })

	assert.Equal(t, []string{"some:v", "none"}, seen)
	assert.Equal(t, option.Some("v"), some)
	assert.True(t, none.IsNone())
}

func TestOptionFilter(t *testing.T) {
	opt := option.Some(10)
	assert.True(t, opt.Filter(func(v int) bool { return v > 10 }).IsNone())
	assert.True(t, opt.Filter(func(v int) bool { return v == 10 }).IsSome())
}

func TestToResult(t *testing.T) {
	ok := option.ToResult(option.Some(42), "missing")
	assert.Equal(t, 42, ok.MustUnwrap())

	failed := option.ToResult(option.None[int](), "missing")
	assert.Equal(t, "missing", failed.MustUnwrapErr())

	missing := errors.New("missing")
	res := option.None[int]().OkOr(missing)
	assert.ErrorIs(t, res.MustUnwrapErr(), missing)
}

func TestFromResult(t *testing.T) {
	assert.Equal(t, option.Some(5), option.FromResult(result.Ok[int, string](5)))
	assert.True(t, option.FromResult(result.Err[int]("dropped")).IsNone())
}

func TestOptionInterop(t *testing.T) {
	opt := option.FromOk(5, true)
	ptr := opt.ToPtr()
	require.NotNil(t, ptr)
	assert.Equal(t, 5, *ptr)

	assert.True(t, option.FromPtr(ptr).IsSome())
	assert.True(t, option.FromPtr[int](nil).IsNone())
	assert.True(t, option.FromOk(1, false).IsNone())

	table := map[string]int{"a": 1}
	v, found := table["b"]
	assert.True(t, option.FromOk(v, found).IsNone())
}

func TestFold(t *testing.T) {
	describe := func(o option.Option[int]) string {
		return option.Fold(o, func() string { return "empty" }, func(int) string { return "full" })
	}
	assert.Equal(t, "full", describe(option.Some(1)))
	assert.Equal(t, "empty", describe(option.None[int]()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(1)", option.Some(1).String())
	assert.Equal(t, "None", option.None[int]().String())
	assert.Equal(t, `Some(["a"])`, option.Some([]string{"a"}).String())
}

func TestIsOption(t *testing.T) {
	assert.True(t, option.IsOption(option.Some(1)))
	assert.True(t, option.IsOption(option.None[struct{}]()))
	assert.False(t, option.IsOption(1))
	assert.False(t, option.IsOption(nil))
	assert.False(t, option.IsOption(result.Ok[int, string](1)))
	assert.False(t, result.IsResult(option.Some(1)))
}
