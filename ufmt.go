// Package ufmt provides runtime string templating with positional and
// named placeholders, printf-style format specs, and formatting
// contexts that are safe to share across goroutines.
//
// Placeholders use single braces. {0}, {1}, ... bind to positional
// arguments; {name} binds to a variable stored on a context. Both forms
// take an optional format spec after a colon:
//
//	ufmt.Format("Hello {0}, you have {1} messages", "Alice", 5)
//	// "Hello Alice, you have 5 messages"
//
//	ufmt.Format("{0:.3f} at {1:x}", 3.14159, 255)
//	// "3.142 at ff"
//
// # Format Specs
//
// A spec is an optional alignment marker ('-' left, '^' center, right
// by default), a width, an optional '.' precision or max length, and an
// optional type character:
//
//	{0:10}      right-align in 10 columns
//	{0:-10}     left-align in 10 columns
//	{0:^10}     center in 10 columns
//	{0:.10}     truncate to 10 characters, ellipsis when it fits
//	{0:.2f}     fixed-point, two fractional digits
//	{0:08d}     zero-padded decimal
//	{0:b}       binary with 0b prefix
//
// Formatting never fails: malformed specs degrade to a best effort
// rendering and unresolvable placeholders stay in the output verbatim.
// FormatStrict additionally reports what went wrong.
//
// # Contexts
//
// Contexts store named variables and custom formatters.
//
//	ctx := ufmt.NewLocalContext()
//	ctx.SetVar("user", "Alice")
//	ctx.Format("Hello {user}")
//	// "Hello Alice"
//
// NewLocalContext is for single-goroutine use. NewSharedContext is safe
// for concurrent use: one owner goroutine writes to the shared variable
// map, every other goroutine transparently writes to a private overlay,
// so concurrent overrides never disturb each other. Shared contexts can
// be handed out by name through a ContextRegistry or the package-level
// GetOrCreateContext.
//
// # Custom Formatters
//
// A Formatter takes over rendering for one concrete type:
//
//	ctx.SetFormatter(ufmt.FormatterFor(func(b bool) string {
//		if b {
//			return "YES"
//		}
//		return "NO"
//	}))
//	ctx.Format("{0}", true)
//	// "YES"
//
// # Configuration
//
// Contexts and registries take functional options:
//
//	ctx := ufmt.NewSharedContext(
//		ufmt.WithLogger(logger),
//		ufmt.WithOwnerDesignation(),
//	)
package ufmt
