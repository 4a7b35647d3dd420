package duo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SomethingDefault(t *testing.T) {
	t.Parallel()

	out := Something(42).String()
	assert.Equal(t, "Optional\n  Something:\n    (int) 42", out)
}

func TestRender_Nothing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Optional\n  Nothing", Nothing[int]().String())
}

func TestRender_SuccessDefault(t *testing.T) {
	t.Parallel()

	out := Success("hi").String()
	assert.Equal(t, "Outcome\n  Success:\n    (string) (len=2) \"hi\"", out)
}

func TestRender_FailureNamesError(t *testing.T) {
	t.Parallel()

	out := Failure[int](errors.New("boom")).String()
	assert.Contains(t, out, "Outcome\n  Failure:")
	assert.Contains(t, out, "boom")
}

func TestRender_MultilinePayloadIndents(t *testing.T) {
	t.Parallel()
	type pair struct {
		A int
		B string
	}

	out := Something(pair{A: 1, B: "x"}).String()
	assert.Contains(t, out, "Optional\n  Something:\n    ")
	assert.Contains(t, out, "A: (int) 1")
	assert.Contains(t, out, "B: (string) (len=1) \"x\"")
}

func TestRender_PluggableStringifier(t *testing.T) {
	t.Parallel()
	quote := func(v any) string { return fmt.Sprintf("<<%v>>", v) }

	assert.Equal(t, "Outcome\n  Success:\n    <<7>>", Success(7).Render(quote))
	assert.Equal(t, "Optional\n  Something:\n    <<7>>", Something(7).Render(quote))
}

func TestRender_SetStringifierNilDegradesToCoercion(t *testing.T) {
	SetStringifier(nil)
	defer SetStringifier(spewStringify)

	assert.Equal(t, "Outcome\n  Success:\n    42", Success(42).String())
}

func TestRender_ZeroValueOutcomeDoesNotPanic(t *testing.T) {
	t.Parallel()
	var z Outcome[int]

	assert.NotPanics(t, func() { _ = z.String() })
	assert.Contains(t, z.String(), "Failure")
}
