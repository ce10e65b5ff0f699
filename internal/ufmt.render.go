package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericParseError reports a value that could not be parsed as a
// number even though its spec requested numeric rendering. The value is
// still rendered through the string path, so callers may treat this as
// advisory.
type NumericParseError struct {
	Value string
	Spec  string
}

// Error returns the error message
func (e *NumericParseError) Error() string {
	return fmt.Sprintf(ErrFmtNumericParse, e.Value, e.Spec)
}

// RenderString renders value with alignment, width, and max-length
// truncation. Truncation happens before padding. Values longer than
// MaxLen are cut to MaxLen runes when MaxLen is at most the ellipsis
// length, otherwise cut and suffixed with "...".
func RenderString(value, spec string) string {
	return renderStringSpec(value, ParseSpec(spec))
}

func renderStringSpec(value string, s Spec) string {
	runes := []rune(value)
	if s.MaxLen > 0 && len(runes) > s.MaxLen {
		if s.MaxLen <= EllipsisLen {
			value = string(runes[:s.MaxLen])
		} else {
			value = string(runes[:s.MaxLen-EllipsisLen]) + StrEllipsis
		}
		runes = []rune(value)
	}

	padding := s.Width - len(runes)
	if padding <= 0 {
		return value
	}
	switch s.Align {
	case AlignLeft:
		return value + strings.Repeat(StrPadSpace, padding)
	case AlignCenter:
		left := padding / 2
		right := padding - left
		return strings.Repeat(StrPadSpace, left) + value + strings.Repeat(StrPadSpace, right)
	default:
		return strings.Repeat(StrPadSpace, padding) + value
	}
}

// RenderFloat renders a floating-point value. An empty spec renders
// with DefaultFloatPrecision fractional digits. A float type character
// renders natively; with an explicit alignment the precision is applied
// first and the result is placed as a string, so alignment always wins
// over numeric width. Integer type characters truncate toward zero and
// delegate to RenderInt. Anything else falls back to string placement
// of the default rendering.
func RenderFloat(value float64, spec string) string {
	if spec == "" {
		return strconv.FormatFloat(value, 'f', DefaultFloatPrecision, 64)
	}
	s := ParseSpec(spec)
	switch {
	case s.IsFloat():
		if s.HasAlign {
			widthPart, precisionPart := s.SplitNumeric()
			rendered := formatFloatVerb(value, precisionPart, s.TypeChar)
			return RenderString(rendered, s.Align.Marker()+widthPart)
		}
		return formatFloatVerb(value, s.Numeric, s.TypeChar)
	case s.IsInt() || s.IsBinary():
		return RenderInt(int64(value), spec)
	default:
		return renderStringSpec(strconv.FormatFloat(value, 'f', DefaultFloatPrecision, 64), s)
	}
}

// RenderInt renders an integer value. An empty spec renders base-10
// digits. Integer type characters render natively, binary type
// characters render through RenderBinary, and float type characters
// promote the value and delegate to RenderFloat. Anything else falls
// back to string placement of the base-10 digits.
func RenderInt(value int64, spec string) string {
	if spec == "" {
		return strconv.FormatInt(value, 10)
	}
	s := ParseSpec(spec)
	switch {
	case s.IsBinary():
		if s.HasAlign {
			widthPart, _ := s.SplitNumeric()
			return RenderString(RenderBinary(value, ""), s.Align.Marker()+widthPart)
		}
		return RenderBinary(value, s.Numeric)
	case s.IsInt():
		if s.HasAlign {
			widthPart, precisionPart := s.SplitNumeric()
			rendered := formatIntVerb(value, precisionPart, s.TypeChar)
			return RenderString(rendered, s.Align.Marker()+widthPart)
		}
		return formatIntVerb(value, s.Numeric, s.TypeChar)
	case s.IsFloat():
		return RenderFloat(float64(value), spec)
	default:
		return renderStringSpec(strconv.FormatInt(value, 10), s)
	}
}

// RenderBinary renders value as "0b" binary digits. Zero renders as
// "0b0" regardless of width. A width token beginning with '0' zero-pads
// the digits after the prefix; any other width space-pads in front of
// the whole token. Negative values render their two's complement bits.
func RenderBinary(value int64, widthToken string) string {
	if value == 0 {
		return StrBinaryZero
	}
	digits := strconv.FormatUint(uint64(value), 2)
	result := StrBinaryPrefix + digits
	width := atoiPrefix(widthToken)
	if width > len(result) {
		if widthToken[0] == CharZeroPad {
			return StrBinaryPrefix + strings.Repeat(string(CharZeroPad), width-len(result)) + digits
		}
		return strings.Repeat(StrPadSpace, width-len(result)) + result
	}
	return result
}

// RenderBool renders "true" or "false" through the string path.
func RenderBool(value bool, spec string) string {
	return RenderString(strconv.FormatBool(value), spec)
}

// RenderRune renders a character. A spec ending in an integer type
// character renders the code point as a number; everything else renders
// the character itself as a one-rune string.
func RenderRune(value rune, spec string) string {
	if spec != "" && strings.IndexByte(StrRuneIntTypeChars, spec[len(spec)-1]) >= 0 {
		return RenderInt(int64(value), spec)
	}
	return RenderString(string(value), spec)
}

// ApplySpec renders a stored string value under spec. Numeric specs
// parse the value first and render through the matching numeric path.
// When the parse fails the value is rendered through the string path
// and a NumericParseError describes the mismatch; the rendered result
// is always usable.
func ApplySpec(value, spec string) (string, error) {
	if spec == "" {
		return value, nil
	}
	s := ParseSpec(spec)
	switch {
	case s.IsFloat():
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return RenderString(value, spec), &NumericParseError{Value: value, Spec: spec}
		}
		return RenderFloat(num, spec), nil
	case s.IsInt() || s.IsBinary():
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return RenderString(value, spec), &NumericParseError{Value: value, Spec: spec}
		}
		return RenderInt(num, spec), nil
	default:
		return RenderString(value, spec), nil
	}
}

// formatFloatVerb renders value through a printf float verb built from
// the numeric token. Tokens that fail sanitizing keep the type
// character but drop width and precision.
func formatFloatVerb(value float64, numeric string, typeChar byte) string {
	return fmt.Sprintf(buildVerb(numeric, typeChar), value)
}

func formatIntVerb(value int64, numeric string, typeChar byte) string {
	verbLetter, unsigned := translateIntVerb(typeChar)
	verb := buildVerb(numeric, verbLetter)
	if unsigned {
		return fmt.Sprintf(verb, uint64(value))
	}
	return fmt.Sprintf(verb, value)
}

// translateIntVerb maps an integer type character to the printf verb
// letter that renders it, and reports whether the value must be
// reinterpreted as unsigned first.
func translateIntVerb(typeChar byte) (byte, bool) {
	switch typeChar {
	case CharTypeInteger:
		return CharTypeDecimal, false
	case CharTypeUnsigned:
		return CharTypeDecimal, true
	default:
		return typeChar, false
	}
}

// buildVerb assembles "%<numeric><letter>". The numeric token is kept
// only when it is digits with at most one dot and both parts stay
// within MaxFieldWidth; otherwise it is dropped and the bare verb is
// used.
func buildVerb(numeric string, verbLetter byte) string {
	if token, ok := sanitizeNumeric(numeric); ok {
		return StrVerbPrefix + token + string(verbLetter)
	}
	return StrVerbPrefix + string(verbLetter)
}

func sanitizeNumeric(numeric string) (string, bool) {
	if numeric == "" {
		return "", true
	}
	dots := 0
	for i := 0; i < len(numeric); i++ {
		c := numeric[i]
		if c == CharSpecDot {
			dots++
			if dots > 1 {
				return "", false
			}
			continue
		}
		if !isDigit(c) {
			return "", false
		}
	}
	widthPart, precisionPart, _ := strings.Cut(numeric, string(CharSpecDot))
	if !tokenInRange(widthPart) || !tokenInRange(precisionPart) {
		return "", false
	}
	return numeric, true
}

func tokenInRange(token string) bool {
	if token == "" {
		return true
	}
	n, err := strconv.Atoi(token)
	return err == nil && n <= MaxFieldWidth
}
