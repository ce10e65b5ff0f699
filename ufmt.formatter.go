package ufmt

import "reflect"

// Formatter renders values of one concrete type. Formatters registered
// on a context take precedence over the built-in rendering for every
// value whose type tag matches TypeTag, including values bound to
// placeholders that carry a format spec.
type Formatter interface {
	// TypeTag identifies the concrete type this formatter handles.
	TypeTag() string
	// Render converts a value to its string form.
	Render(value any) string
}

// typedFormatter adapts a strongly typed render function to Formatter.
type typedFormatter[T any] struct {
	fn func(T) string
}

// TypeTag returns the type tag of T
func (f typedFormatter[T]) TypeTag() string {
	return TypeTagFor[T]()
}

// Render invokes the wrapped function. Values of the wrong type fall
// back to the default stringification.
func (f typedFormatter[T]) Render(value any) string {
	if v, ok := value.(T); ok {
		return f.fn(v)
	}
	return Stringify(value)
}

// FormatterFor wraps fn as a Formatter for values of type T.
//
//	ctx.SetFormatter(ufmt.FormatterFor(func(b bool) string {
//		if b {
//			return "YES"
//		}
//		return "NO"
//	}))
func FormatterFor[T any](fn func(T) string) Formatter {
	return typedFormatter[T]{fn: fn}
}

// TypeTagFor returns the type tag registered for values of type T.
func TypeTagFor[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// TypeTagOf returns the type tag of a value, or StrNilValue for nil.
func TypeTagOf(value any) string {
	t := reflect.TypeOf(value)
	if t == nil {
		return StrNilValue
	}
	return t.String()
}
