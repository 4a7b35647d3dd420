package duo

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Stringifier renders a contained value or error for diagnostics output.
// The rendered text may span multiple lines; the container indents it
// under its variant label.
type Stringifier func(v any) string

// DisableMethods keeps spew from re-entering String on nested containers.
var spewConf = &spew.ConfigState{
	Indent:         "  ",
	SortKeys:       true,
	DisableMethods: true,
}

var defaultStringifier Stringifier = spewStringify

func spewStringify(v any) string {
	return strings.TrimRight(spewConf.Sdump(v), "\n")
}

// Coerce is the trivial Stringifier: plain fmt coercion with no type
// information. It is the degraded default when value inspection is
// switched off via SetStringifier(nil).
func Coerce(v any) string {
	return fmt.Sprintf("%v", v)
}

// SetStringifier replaces the package-wide default used by String and by
// Render(nil). Passing nil degrades the default to Coerce. Rendering is
// diagnostics only and never affects combinator behavior.
func SetStringifier(s Stringifier) {
	if s == nil {
		s = Coerce
	}
	defaultStringifier = s
}

// String renders the container as a labeled, indented diagnostics block
// using the package default Stringifier.
func (o Optional[T]) String() string {
	return o.Render(nil)
}

// Render renders the container using s, falling back to the package
// default when s is nil.
func (o Optional[T]) Render(s Stringifier) string {
	if !o.hasValue {
		return renderEmpty("Optional", o.optionalVariant())
	}
	return renderBlock("Optional", o.optionalVariant(), o.value, s)
}

// String renders the container as a labeled, indented diagnostics block
// using the package default Stringifier.
func (o Outcome[T]) String() string {
	return o.Render(nil)
}

// Render renders the container using s, falling back to the package
// default when s is nil. Unlike the combinators, Render tolerates a
// zero-value Outcome: diagnostics output must not panic.
func (o Outcome[T]) Render(s Stringifier) string {
	if o.isSuccess {
		return renderBlock("Outcome", o.outcomeVariant(), o.value, s)
	}
	return renderBlock("Outcome", o.outcomeVariant(), o.err, s)
}

func renderBlock(component, variant string, payload any, s Stringifier) string {
	if s == nil {
		s = defaultStringifier
	}

	var b strings.Builder
	b.WriteString(component)
	b.WriteString("\n  ")
	b.WriteString(variant)
	b.WriteString(":")
	for _, line := range strings.Split(s(payload), "\n") {
		b.WriteString("\n    ")
		b.WriteString(line)
	}
	return b.String()
}

func renderEmpty(component, variant string) string {
	return component + "\n  " + variant
}
