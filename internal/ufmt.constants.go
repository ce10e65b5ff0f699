package internal

// Alignment selects how a rendered value is placed inside its field width
type Alignment int

// Alignment constants
const (
	AlignRight Alignment = iota
	AlignLeft
	AlignCenter
)

// Alignment name constants
const (
	AlignmentNameRight  = "right"
	AlignmentNameLeft   = "left"
	AlignmentNameCenter = "center"
)

// String returns the string representation of the alignment
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return AlignmentNameLeft
	case AlignCenter:
		return AlignmentNameCenter
	default:
		return AlignmentNameRight
	}
}

// Marker returns the spec character that selects this alignment, or an
// empty string for the right-aligned default.
func (a Alignment) Marker() string {
	switch a {
	case AlignLeft:
		return string(CharAlignLeft)
	case AlignCenter:
		return string(CharAlignCenter)
	default:
		return ""
	}
}

// Character constants for the spec grammar
const (
	CharAlignLeft   = '-'
	CharAlignCenter = '^'
	CharSpecDot     = '.'
	CharZeroPad     = '0'
	CharDigitZero   = '0'
	CharDigitNine   = '9'
)

// Type characters for floating-point rendering
const (
	CharTypeFixed      = 'f'
	CharTypeFixedUpper = 'F'
	CharTypeGeneral    = 'g'
	CharTypeGeneralUp  = 'G'
	CharTypeSci        = 'e'
	CharTypeSciUpper   = 'E'
)

// Type characters for integer rendering
const (
	CharTypeDecimal  = 'd'
	CharTypeInteger  = 'i'
	CharTypeHexLower = 'x'
	CharTypeHexUpper = 'X'
	CharTypeOctal    = 'o'
	CharTypeUnsigned = 'u'
	CharTypeBinLower = 'b'
	CharTypeBinUpper = 'B'
)

// NoTypeChar marks a spec without a trailing type character
const NoTypeChar byte = 0

// String constants for rendering
const (
	StrPadSpace     = " "
	StrEllipsis     = "..."
	StrBinaryPrefix = "0b"
	StrBinaryZero   = "0b0"
	StrVerbPrefix   = "%"
	StrTrue         = "true"
	StrFalse        = "false"
)

// Length constants
const (
	EllipsisLen     = 3
	BinaryPrefixLen = 2
)

// DefaultFloatPrecision is the fractional digit count used when a float
// is rendered without an explicit spec.
const DefaultFloatPrecision = 6

// MaxFieldWidth caps pad widths so a malicious or mistyped spec cannot
// force unbounded allocations.
const MaxFieldWidth = 1 << 16

// Type characters accepted when a spec is applied to a rune value as an
// integer code point.
const StrRuneIntTypeChars = "dxo"

// Error format string constants (for Error() methods)
const (
	ErrFmtNumericParse = "value %q does not parse for numeric spec %q"
)

// IsFloatTypeChar reports whether c selects floating-point rendering.
func IsFloatTypeChar(c byte) bool {
	switch c {
	case CharTypeFixed, CharTypeFixedUpper, CharTypeGeneral, CharTypeGeneralUp, CharTypeSci, CharTypeSciUpper:
		return true
	}
	return false
}

// IsIntTypeChar reports whether c selects integer rendering.
func IsIntTypeChar(c byte) bool {
	switch c {
	case CharTypeDecimal, CharTypeInteger, CharTypeHexLower, CharTypeHexUpper, CharTypeOctal, CharTypeUnsigned:
		return true
	}
	return false
}

// IsBinaryTypeChar reports whether c selects manual binary rendering.
func IsBinaryTypeChar(c byte) bool {
	return c == CharTypeBinLower || c == CharTypeBinUpper
}

func isDigit(c byte) bool {
	return c >= CharDigitZero && c <= CharDigitNine
}
