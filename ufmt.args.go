package ufmt

// formatterLookup resolves the formatter registered for a type tag.
type formatterLookup func(tag string) (Formatter, bool)

// boundArg is a positional argument prepared for substitution.
type boundArg struct {
	// text is the eagerly rendered default form used by bare {i}
	// placeholders.
	text string
	// render produces the value under a placeholder spec.
	render func(spec string) string
}

// bindArgs prepares positional arguments for substitution. The default
// form is rendered eagerly. Spec rendering consults the formatter
// registry again at render time, so on shared contexts a formatter
// registered by another goroutine mid-call is still honored.
func bindArgs(args []any, lookup formatterLookup) []boundArg {
	if len(args) == 0 {
		return nil
	}
	bound := make([]boundArg, len(args))
	for i, value := range args {
		bound[i] = bindArg(value, lookup)
	}
	return bound
}

// bindArg binds one argument. A registered formatter owns the value's
// rendering entirely; placeholder specs do not apply to its output.
func bindArg(value any, lookup formatterLookup) boundArg {
	text := Stringify(value)
	if lookup != nil {
		if f, ok := lookup(TypeTagOf(value)); ok {
			text = f.Render(value)
		}
	}
	return boundArg{
		text: text,
		render: func(spec string) string {
			if lookup != nil {
				if f, ok := lookup(TypeTagOf(value)); ok {
					return f.Render(value)
				}
			}
			return renderValue(value, spec)
		},
	}
}
