package ufmt

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Positional(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{
			name:     "strings and ints",
			template: "Hello {0}, you have {1} messages",
			args:     []any{"Alice", 5},
			expected: "Hello Alice, you have 5 messages",
		},
		{
			name:     "mixed types take default rendering",
			template: "User: {0}, Score: {1}, Active: {2}",
			args:     []any{"Bob", 87.5, true},
			expected: "User: Bob, Score: 87.500000, Active: true",
		},
		{
			name:     "repeated placeholder",
			template: "{0} {0}!",
			args:     []any{"hi"},
			expected: "hi hi!",
		},
		{
			name:     "out of order",
			template: "{1} before {0}",
			args:     []any{"second", "first"},
			expected: "first before second",
		},
		{
			name:     "nil argument",
			template: "value: {0}",
			args:     []any{nil},
			expected: "value: <nil>",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			args:     []any{"unused"},
			expected: "plain text",
		},
		{
			name:     "empty template",
			template: "",
			args:     []any{"x"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.args...))
		})
	}
}

func TestFormat_PositionalSpecs(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{
			name:     "float precision",
			template: "{0:.2f}",
			args:     []any{3.14159},
			expected: "3.14",
		},
		{
			name:     "zero padded int",
			template: "{0:08d}",
			args:     []any{42},
			expected: "00000042",
		},
		{
			name:     "hex",
			template: "{0:x}",
			args:     []any{255},
			expected: "ff",
		},
		{
			name:     "binary",
			template: "{0:b}",
			args:     []any{5},
			expected: "0b101",
		},
		{
			name:     "left aligned string value",
			template: "Value: {1:-8}|",
			args:     []any{"ignored", "92.3"},
			expected: "Value: 92.3    |",
		},
		{
			name:     "centered float",
			template: "{0:^8.2f}",
			args:     []any{95.7},
			expected: " 95.70  ",
		},
		{
			name:     "spec on string pads",
			template: "{0:10}",
			args:     []any{"Bob"},
			expected: "       Bob",
		},
		{
			name:     "truncation spec",
			template: "{0:.3}",
			args:     []any{"truncated"},
			expected: "tru",
		},
		{
			name:     "unusable spec falls back to plain value",
			template: "{0:invalid}",
			args:     []any{42},
			expected: "42",
		},
		{
			name:     "spec and bare placeholder for same argument",
			template: "{0:.1f} ~ {0}",
			args:     []any{2.5},
			expected: "2.5 ~ 2.500000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.args...))
		})
	}
}

func TestFormat_Degradation(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{
			name:     "missing argument stays verbatim",
			template: "Missing {1}",
			args:     []any{"only"},
			expected: "Missing {1}",
		},
		{
			name:     "unterminated placeholder stays verbatim",
			template: "Incomplete {0 placeholder",
			args:     []any{"x"},
			expected: "Incomplete {0 placeholder",
		},
		{
			name:     "named placeholder without context stays verbatim",
			template: "{name} there",
			args:     nil,
			expected: "{name} there",
		},
		{
			name:     "empty braces stay verbatim",
			template: "{} stays",
			args:     []any{"x"},
			expected: "{} stays",
		},
		{
			name:     "resolved and unresolved side by side",
			template: "{0} and {5}",
			args:     []any{"here"},
			expected: "here and {5}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.args...))
		})
	}
}

func TestFormatStrict_NoIssues(t *testing.T) {
	result, err := FormatStrict("Hello {0}", "world")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", result)
}

func TestFormatStrict_EmptyBracesAreNotAnIssue(t *testing.T) {
	result, err := FormatStrict("{} ok", "x")
	require.NoError(t, err)
	assert.Equal(t, "{} ok", result)
}

func TestFormatStrict_ArgumentRange(t *testing.T) {
	result, err := FormatStrict("Missing {2}", "a")
	assert.Equal(t, "Missing {2}", result)
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, err.Error(), ErrMsgArgumentOutOfRange)

	index, ok := customErr.GetMetadata(MetaKeyArgIndex)
	assert.True(t, ok)
	assert.Equal(t, "2", index)

	count, ok := customErr.GetMetadata(MetaKeyArgCount)
	assert.True(t, ok)
	assert.Equal(t, "1", count)

	placeholder, ok := customErr.GetMetadata(MetaKeyPlaceholder)
	assert.True(t, ok)
	assert.Equal(t, "{2}", placeholder)
}

func TestFormatStrict_Unterminated(t *testing.T) {
	result, err := FormatStrict("Incomplete {0 placeholder")
	assert.Equal(t, "Incomplete {0 placeholder", result)
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, err.Error(), ErrMsgUnterminatedPlaceholder)

	placeholder, ok := customErr.GetMetadata(MetaKeyPlaceholder)
	assert.True(t, ok)
	assert.Equal(t, "{0 placeholder", placeholder)
}

func TestFormatStrict_UnknownVariable(t *testing.T) {
	result, err := FormatStrict("{user} missing")
	assert.Equal(t, "{user} missing", result)
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, err.Error(), ErrMsgUnknownVariable)

	name, ok := customErr.GetMetadata(MetaKeyVariable)
	assert.True(t, ok)
	assert.Equal(t, "user", name)
}

func TestFormatStrict_OffsetTracksWorkingBuffer(t *testing.T) {
	// The offset reflects the buffer after earlier substitutions, not
	// the original template.
	result, err := FormatStrict("{0} {bad", "xy")
	assert.Equal(t, "xy {bad", result)
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	placeholder, ok := customErr.GetMetadata(MetaKeyPlaceholder)
	assert.True(t, ok)
	assert.Equal(t, "{bad", placeholder)

	// "xy {bad" places the opening brace at offset 3.
	offset, ok := customErr.GetMetadata(MetaKeyOffset)
	assert.True(t, ok)
	assert.Equal(t, "3", offset)
}

func TestFormatStrict_MultipleIssuesJoined(t *testing.T) {
	result, err := FormatStrict("{5} and {oops}")
	assert.Equal(t, "{5} and {oops}", result)
	require.Error(t, err)

	assert.Contains(t, err.Error(), ErrMsgArgumentOutOfRange)
	assert.Contains(t, err.Error(), ErrMsgUnknownVariable)
}
