package duo

// optionalTag is satisfied by every Optional[T] instantiation and nothing
// else; it carries the active variant name for the guard and the renderer.
type optionalTag interface {
	optionalVariant() string
}

// outcomeTag is the Outcome counterpart of optionalTag.
type outcomeTag interface {
	outcomeVariant() string
}

// IsOptional reports whether v is an Optional of any payload type. Useful
// at dynamic boundaries where values arrive as any.
func IsOptional(v any) bool {
	_, ok := v.(optionalTag)
	return ok
}

// IsOutcome reports whether v is an Outcome of any payload type.
func IsOutcome(v any) bool {
	_, ok := v.(outcomeTag)
	return ok
}
