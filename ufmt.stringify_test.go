package ufmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stamp struct {
	name string
}

func (s stamp) String() string {
	return "stamp:" + s.name
}

// failure implements both error and fmt.Stringer.
type failure struct{}

func (f failure) Error() string {
	return "failed"
}

func (f failure) String() string {
	return "stringer"
}

type point struct {
	X, Y int
}

func TestStringify_BuiltinTypes(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "<nil>"},
		{"string", "hello", "hello"},
		{"empty string", "", ""},
		{"bytes", []byte("raw"), "raw"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int8", int8(-128), "-128"},
		{"int16", int16(300), "300"},
		{"int64", int64(9000000000), "9000000000"},
		{"rune renders as character", 'A', "A"},
		{"uint", uint(42), "42"},
		{"uint8 renders numerically", uint8(200), "200"},
		{"uint16", uint16(65535), "65535"},
		{"uint32", uint32(4000000000), "4000000000"},
		{"uint64 above int64 range", uint64(18446744073709551615), "18446744073709551615"},
		{"float64", 3.14, "3.140000"},
		{"float64 whole", 2.0, "2.000000"},
		{"float32", float32(1.5), "1.500000"},
		{"negative float", -0.5, "-0.500000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stringify(tt.value))
		})
	}
}

func TestStringify_ErrorAndStringer(t *testing.T) {
	t.Run("error value", func(t *testing.T) {
		assert.Equal(t, "boom", Stringify(errors.New("boom")))
	})

	t.Run("stringer value", func(t *testing.T) {
		assert.Equal(t, "stamp:a", Stringify(stamp{name: "a"}))
	})

	t.Run("error wins over stringer", func(t *testing.T) {
		assert.Equal(t, "failed", Stringify(failure{}))
	})
}

func TestStringify_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"struct", point{X: 1, Y: 2}, "{1 2}"},
		{"struct pointer", &point{X: 1, Y: 2}, "&{1 2}"},
		{"slice", []int{1, 2, 3}, "[1 2 3]"},
		{"map", map[string]int{"a": 1}, "map[a:1]"},
		{"complex", complex(1, 2), "(1+2i)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stringify(tt.value))
		})
	}

	t.Run("nil struct pointer", func(t *testing.T) {
		var p *point
		assert.Equal(t, "<nil>", Stringify(p))
	})

	t.Run("channel renders as type tag", func(t *testing.T) {
		ch := make(chan int)
		assert.Equal(t, "[chan int]", Stringify(ch))
	})

	t.Run("func renders as type tag", func(t *testing.T) {
		fn := func() {}
		assert.Equal(t, "[func()]", Stringify(fn))
	})

	t.Run("pointer to non-composite renders as type tag", func(t *testing.T) {
		n := 42
		assert.Equal(t, "[*int]", Stringify(&n))
	})
}

func TestSetFallbackStringifier(t *testing.T) {
	t.Run("custom fallback handles unknown types", func(t *testing.T) {
		SetFallbackStringifier(func(value any) string {
			return "custom"
		})
		defer SetFallbackStringifier(nil)

		assert.Equal(t, "custom", Stringify(point{X: 1, Y: 2}))

		// Built-in conversions stay untouched.
		assert.Equal(t, "42", Stringify(42))
		assert.Equal(t, "hello", Stringify("hello"))
	})

	t.Run("nil restores the default", func(t *testing.T) {
		SetFallbackStringifier(func(value any) string {
			return "custom"
		})
		SetFallbackStringifier(nil)

		assert.Equal(t, "{1 2}", Stringify(point{X: 1, Y: 2}))
	})

	t.Run("fallback feeds stored variables", func(t *testing.T) {
		SetFallbackStringifier(func(value any) string {
			if p, ok := value.(point); ok {
				return Format("({0}, {1})", p.X, p.Y)
			}
			return "?"
		})
		defer SetFallbackStringifier(nil)

		ctx := NewLocalContext()
		ctx.SetVar("origin", point{X: 3, Y: 4})
		assert.Equal(t, "at (3, 4)", ctx.Format("at {origin}"))
	})
}
