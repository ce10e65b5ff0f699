package ufmt

// Context stores named variables and custom formatters and renders
// templates against them. Variables hold their final string form:
// SetVar converts non-string values once, at store time, so every
// subsequent Format call sees a stable value.
//
// NewLocalContext creates a context for single-goroutine use,
// NewSharedContext one that is safe across goroutines. The package
// level Format and FormatStrict render without any context at all.
type Context interface {
	// Kind reports the concurrency model of the context.
	Kind() ContextKind

	// SetVar stores a variable. String values are stored verbatim.
	// Other values render through a registered formatter matching
	// their type tag when one exists, then through Stringify.
	SetVar(name string, value any)

	// ClearVar removes a variable.
	ClearVar(name string)

	// HasVar reports whether a variable is visible to the caller.
	HasVar(name string) bool

	// GetVar returns the stored string form of a variable.
	GetVar(name string) (string, bool)

	// VarNames returns the names visible to the caller in sorted order.
	VarNames() []string

	// SetFormatter registers a formatter keyed by its type tag,
	// replacing any previous formatter for that tag.
	SetFormatter(f Formatter)

	// ClearFormatter removes the formatter for a type tag.
	ClearFormatter(tag string)

	// HasFormatter reports whether a formatter is registered for a tag.
	HasFormatter(tag string) bool

	// Format renders a template. Positional placeholders {i} and
	// {i:spec} bind to args; named placeholders {name} and {name:spec}
	// bind to stored variables. Placeholders that cannot be resolved
	// stay in the output verbatim.
	Format(template string, args ...any) string

	// FormatStrict renders exactly like Format and additionally
	// returns the problems encountered, joined into one error. The
	// rendered string is always usable, with or without an error.
	FormatStrict(template string, args ...any) (string, error)
}

// Format renders a template with positional arguments and no stored
// variables. Named placeholders stay in the output verbatim.
func Format(template string, args ...any) string {
	result, _ := substitute(template, bindArgs(args, nil), nil)
	return result
}

// FormatStrict renders like Format and reports unresolved placeholders
// as an error. The rendered string is always usable.
func FormatStrict(template string, args ...any) (string, error) {
	result, issues := substitute(template, bindArgs(args, nil), nil)
	return result, issuesError(issues)
}
