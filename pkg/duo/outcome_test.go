package duo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestSuccess_Predicates(t *testing.T) {
	t.Parallel()
	o := Success(42)

	assert.True(t, o.IsSuccess())
	assert.False(t, o.IsFailure())
	assert.Equal(t, 42, o.Unwrap())
}

func TestFailure_Predicates(t *testing.T) {
	t.Parallel()
	o := Failure[int](errBoom)

	assert.False(t, o.IsSuccess())
	assert.True(t, o.IsFailure())
	assert.Equal(t, errBoom, o.UnwrapFailure())
}

func TestFailure_RejectsNilAtConstruction(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, ErrNilFailure.Error(), func() {
		Failure[int](nil)
	})
}

func TestFailure_RejectsTypedNil(t *testing.T) {
	t.Parallel()

	var p *testError
	var err error = p

	assert.NotNil(t, err)
	assert.PanicsWithError(t, ErrNilFailure.Error(), func() {
		Failure[int](err)
	})
}

func TestOutcome_SuccessConversion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Success(42).Success().Unwrap())
	assert.True(t, Success(42).Failure().IsNothing())

	assert.Equal(t, errBoom, Failure[int](errBoom).Failure().Unwrap())
	assert.True(t, Failure[int](errBoom).Success().IsNothing())
}

func TestOutcome_Get(t *testing.T) {
	t.Parallel()

	v, err := Success("a").Get()
	assert.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = Failure[string](errBoom).Get()
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, v)
}

func TestOutcome_AndAbsorption(t *testing.T) {
	t.Parallel()
	x := Success(7)
	f := Failure[int](errBoom)

	assert.Equal(t, x, Success(1).And(x))
	assert.Equal(t, f, f.And(x))
}

func TestOutcome_OrIdentity(t *testing.T) {
	t.Parallel()
	x := Success(7)
	f := Failure[int](errBoom)

	assert.Equal(t, x, x.Or(Success(1)))
	assert.Equal(t, x, f.Or(x))
	assert.Equal(t, f, f.Or(f))
}

func TestOutcome_AndThen(t *testing.T) {
	t.Parallel()

	out := Success(5).AndThen(func(v int) Outcome[int] {
		return Success(v * 2)
	})
	assert.Equal(t, Success(10), out)

	calls := 0
	out = Failure[int](errBoom).AndThen(func(v int) Outcome[int] {
		calls++
		return Success(v)
	})
	assert.Equal(t, Failure[int](errBoom), out)
	assert.Zero(t, calls)
}

func TestOutcome_MapComposes(t *testing.T) {
	t.Parallel()
	double := func(v int) int { return v * 2 }
	inc := func(v int) int { return v + 1 }

	composed := Success(3).Map(func(v int) int { return inc(double(v)) })
	chained := Success(3).Map(double).Map(inc)
	assert.Equal(t, composed, chained)

	calls := 0
	out := Failure[int](errBoom).Map(func(v int) int {
		calls++
		return v
	})
	assert.Equal(t, Failure[int](errBoom), out)
	assert.Zero(t, calls)
}

func TestOutcome_MapFailure(t *testing.T) {
	t.Parallel()
	wrapped := Failure[int](errBoom).MapFailure(func(err error) error {
		return errors.Join(errors.New("context"), err)
	})
	assert.True(t, wrapped.IsFailureAnd(func(err error) bool {
		return errors.Is(err, errBoom)
	}))

	s := Success(1)
	calls := 0
	assert.Equal(t, s, s.MapFailure(func(err error) error {
		calls++
		return err
	}))
	assert.Zero(t, calls)
}

func TestOutcome_MapFailureRejectsNil(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, ErrNilFailure.Error(), func() {
		Failure[int](errBoom).MapFailure(func(err error) error { return nil })
	})
}

func TestOutcome_PredicateCombinators(t *testing.T) {
	t.Parallel()
	big := func(v int) bool { return v > 10 }
	isBoom := func(err error) bool { return errors.Is(err, errBoom) }

	assert.True(t, Success(11).IsSuccessAnd(big))
	assert.False(t, Success(1).IsSuccessAnd(big))
	assert.False(t, Failure[int](errBoom).IsSuccessAnd(big))

	assert.True(t, Failure[int](errBoom).IsFailureAnd(isBoom))
	assert.False(t, Failure[int](errors.New("other")).IsFailureAnd(isBoom))
	assert.False(t, Success(1).IsFailureAnd(isBoom))
}

func TestOutcome_Inspect(t *testing.T) {
	t.Parallel()
	seen := 0
	out := Success(9).Inspect(func(v int) { seen = v })
	assert.Equal(t, Success(9), out)
	assert.Equal(t, 9, seen)

	calls := 0
	Failure[int](errBoom).Inspect(func(v int) { calls++ })
	assert.Zero(t, calls)
}

func TestOutcome_InspectFailure(t *testing.T) {
	t.Parallel()
	var seen error
	out := Failure[int](errBoom).InspectFailure(func(err error) { seen = err })
	assert.Equal(t, Failure[int](errBoom), out)
	assert.Equal(t, errBoom, seen)

	calls := 0
	Success(1).InspectFailure(func(err error) { calls++ })
	assert.Zero(t, calls)
}

func TestOutcome_UnwrapPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "duo: Unwrap called on Failure", func() {
		Failure[int](errBoom).Unwrap()
	})
	assert.PanicsWithError(t, "duo: UnwrapFailure called on Success", func() {
		Success(1).UnwrapFailure()
	})
}

func TestOutcome_Expect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Success(1).Expect("must succeed"))
	assert.Equal(t, errBoom, Failure[int](errBoom).ExpectFailure("must fail"))

	assert.PanicsWithError(t, "config should parse", func() {
		Failure[int](errBoom).Expect("config should parse")
	})
	assert.PanicsWithError(t, "lookup should miss", func() {
		Success(1).ExpectFailure("lookup should miss")
	})
}

func TestOutcome_ZeroValueViolatesInvariant(t *testing.T) {
	t.Parallel()
	var z Outcome[int]

	assert.True(t, z.IsFailure())
	assert.PanicsWithError(t, "duo: Outcome holds neither variant", func() {
		z.UnwrapFailure()
	})
	assert.PanicsWithError(t, "duo: Outcome holds neither variant", func() {
		z.Failure()
	})
}

type testError struct{}

func (*testError) Error() string { return "test error" }
