package ufmt

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/itsatony/go-ufmt/internal"
)

var (
	fallbackMu          sync.RWMutex
	fallbackStringifier func(value any) string
)

// SetFallbackStringifier installs fn as the conversion of last resort
// for values no built-in rule covers. A nil fn restores the default,
// which prints the value deterministically and never includes memory
// addresses. The setting is process-wide.
func SetFallbackStringifier(fn func(value any) string) {
	fallbackMu.Lock()
	fallbackStringifier = fn
	fallbackMu.Unlock()
}

// Stringify converts a value to its default string form. Strings pass
// through verbatim, numbers render in their natural notation, floats
// carry six fractional digits, runes render as the character they name,
// and booleans render as "true"/"false". Values that implement error or
// fmt.Stringer use those. Everything else goes through the fallback
// stringifier.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return StrNilValue
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return string(rune(v))
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uintptr:
		return strconv.FormatUint(uint64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', internal.DefaultFloatPrecision, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', internal.DefaultFloatPrecision, 64)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fallbackString(value)
	}
}

// fallbackString converts values outside the built-in set. A custom
// fallback stringifier wins when installed; otherwise the value prints
// through the fmt default except for kinds whose default rendering is a
// memory address, which print as their bracketed type tag instead.
func fallbackString(value any) string {
	fallbackMu.RLock()
	fn := fallbackStringifier
	fallbackMu.RUnlock()
	if fn != nil {
		return fn(value)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf(FmtFallbackValue, TypeTagOf(value))
	case reflect.Pointer:
		if rv.IsNil() {
			return StrNilValue
		}
		switch rv.Elem().Kind() {
		case reflect.Struct, reflect.Array, reflect.Slice, reflect.Map:
			return fmt.Sprintf(FmtDefaultValue, value)
		default:
			return fmt.Sprintf(FmtFallbackValue, TypeTagOf(value))
		}
	default:
		return fmt.Sprintf(FmtDefaultValue, value)
	}
}
