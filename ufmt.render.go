package ufmt

import (
	"strconv"

	"github.com/itsatony/go-ufmt/internal"
)

// renderValue renders a value under a format spec using the built-in
// type rules. Strings and byte slices take the string path, floats and
// integers take their numeric paths, int32 values are treated as runes,
// and everything else is stringified first and then placed as a string.
func renderValue(value any, spec string) string {
	switch v := value.(type) {
	case nil:
		return internal.RenderString(StrNilValue, spec)
	case string:
		return internal.RenderString(v, spec)
	case []byte:
		return internal.RenderString(string(v), spec)
	case bool:
		return internal.RenderBool(v, spec)
	case float64:
		return internal.RenderFloat(v, spec)
	case float32:
		return internal.RenderFloat(float64(v), spec)
	case int:
		return internal.RenderInt(int64(v), spec)
	case int8:
		return internal.RenderInt(int64(v), spec)
	case int16:
		return internal.RenderInt(int64(v), spec)
	case int32:
		return internal.RenderRune(v, spec)
	case int64:
		return internal.RenderInt(v, spec)
	case uint:
		return renderUint(uint64(v), spec)
	case uint8:
		return internal.RenderInt(int64(v), spec)
	case uint16:
		return internal.RenderInt(int64(v), spec)
	case uint32:
		return internal.RenderInt(int64(v), spec)
	case uint64:
		return renderUint(v, spec)
	case uintptr:
		return renderUint(uint64(v), spec)
	default:
		return internal.RenderString(Stringify(value), spec)
	}
}

// renderUint keeps values above the signed range intact when no spec
// asks for numeric rendering. Specs reinterpret through int64; the "u"
// type character restores the unsigned value.
func renderUint(value uint64, spec string) string {
	if spec == "" {
		return strconv.FormatUint(value, 10)
	}
	return internal.RenderInt(int64(value), spec)
}
