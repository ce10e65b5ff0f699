package internal

import "strings"

// Spec is a parsed format specification.
//
// The grammar is permissive: malformed tokens parse as zero values
// rather than failing, so rendering always proceeds with whatever could
// be understood.
type Spec struct {
	// Align is the field alignment. Right is the default.
	Align Alignment
	// HasAlign reports whether an explicit alignment marker was present.
	HasAlign bool
	// Width is the minimum field width used when placing a string.
	Width int
	// MaxLen caps the rendered length before padding. Zero disables
	// truncation.
	MaxLen int
	// TypeChar is the trailing type character, or NoTypeChar.
	TypeChar byte
	// Numeric is the raw token between the alignment marker and the
	// type character, e.g. "8.2" in "-8.2f".
	Numeric string
}

// ParseSpec parses a format specification such as "-8.2f" or "^10".
//
// Layout: an optional alignment marker ('-' left, '^' center), a width
// token, an optional '.' followed by a precision or max-length token,
// and an optional trailing type character. The type character is the
// last byte that is neither a digit nor a dot; everything between the
// alignment marker and the type character is kept verbatim in Numeric.
func ParseSpec(spec string) Spec {
	var s Spec
	rest := spec
	if len(rest) > 0 {
		switch rest[0] {
		case CharAlignLeft:
			s.Align = AlignLeft
			s.HasAlign = true
			rest = rest[1:]
		case CharAlignCenter:
			s.Align = AlignCenter
			s.HasAlign = true
			rest = rest[1:]
		}
	}

	if dot := strings.IndexByte(rest, CharSpecDot); dot >= 0 {
		s.Width = atoiPrefix(rest[:dot])
		s.MaxLen = atoiPrefix(rest[dot+1:])
	} else {
		s.Width = atoiPrefix(rest)
	}

	s.TypeChar = NoTypeChar
	s.Numeric = rest
	for i := len(rest) - 1; i >= 0; i-- {
		c := rest[i]
		if !isDigit(c) && c != CharSpecDot {
			s.TypeChar = c
			s.Numeric = rest[:i]
			break
		}
	}
	return s
}

// IsFloat reports whether the spec requests floating-point rendering.
func (s Spec) IsFloat() bool {
	return IsFloatTypeChar(s.TypeChar)
}

// IsInt reports whether the spec requests integer rendering.
func (s Spec) IsInt() bool {
	return IsIntTypeChar(s.TypeChar)
}

// IsBinary reports whether the spec requests binary rendering.
func (s Spec) IsBinary() bool {
	return IsBinaryTypeChar(s.TypeChar)
}

// IsNumeric reports whether the spec requests any numeric rendering.
func (s Spec) IsNumeric() bool {
	return s.IsFloat() || s.IsInt() || s.IsBinary()
}

// SplitNumeric splits the numeric token at its first dot. The dot stays
// with the precision part, so "8.2" yields ("8", ".2").
func (s Spec) SplitNumeric() (widthPart, precisionPart string) {
	if dot := strings.IndexByte(s.Numeric, CharSpecDot); dot >= 0 {
		return s.Numeric[:dot], s.Numeric[dot:]
	}
	return s.Numeric, ""
}

// atoiPrefix parses the leading decimal digits of s and ignores
// anything after them. A string without a leading digit parses as zero.
// Results are capped at MaxFieldWidth so runaway specs cannot force
// unbounded padding.
func atoiPrefix(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			break
		}
		n = n*10 + int(s[i]-CharDigitZero)
		if n > MaxFieldWidth {
			return MaxFieldWidth
		}
	}
	return n
}
