package hashcode

import (
	"math"
	"math/big"
	"reflect"
	"unicode"
	"unicode/utf16"

	"fortio.org/safecast"
)

// Hasher wraps the HashCode method.
type Hasher interface {
	// HashCode computes the hash code of the receiver.
	HashCode() int32
}

// Of returns the hash code of a single value, or 0 if v is nil. A nil pointer
// is also an absent value and hashes to 0, even if its type implements Hasher.
//
// It is implemented for types satisfying the Hasher interface, the builtin
// bool, integer, floating-point and string types, *big.Int, []byte, []uint16,
// []string, []any, map[string]any and map[any]any. The hash codes of builtin
// values agree with the ones of the corresponding boxed JVM values. For other
// values, it returns 0 (which is OK in terms of correctness).
func Of(v any) int32 {
	switch v := v.(type) {
	case nil:
		return 0
	case Hasher:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return 0
		}
		return v.HashCode()
	case bool:
		return Bool(v)
	case int8:
		return Int(int32(v))
	case int16:
		return Int(int32(v))
	case int32:
		return Int(v)
	case int64:
		return Long(v)
	case int:
		if i, err := safecast.Conv[int32](v); err == nil {
			return Int(i)
		}
		return Long(int64(v))
	case uint8:
		// Bytes are signed, consistent with Bytes.
		return Int(int32(int8(v)))
	case uint16:
		return Int(int32(v))
	case uint32:
		return unsigned(uint64(v))
	case uint64:
		return unsigned(v)
	case uint:
		return unsigned(uint64(v))
	case float32:
		return Float32(v)
	case float64:
		return Float64(v)
	case string:
		return String(v)
	case *big.Int:
		return BigInt(v)
	case []byte:
		return Bytes(v)
	case []uint16:
		return Chars(v)
	case []string:
		if v == nil {
			return 0
		}
		return Slice(v, String)
	case []any:
		if v == nil {
			return 0
		}
		return Hash(v...)
	case map[string]any:
		var h int32
		for k, e := range v {
			h += String(k) ^ Of(e)
		}
		return h
	case map[any]any:
		var h int32
		for k, e := range v {
			h += Of(k) ^ Of(e)
		}
		return h
	default:
		return 0
	}
}

func unsigned(u uint64) int32 {
	if i, err := safecast.Conv[int32](u); err == nil {
		return Int(i)
	}
	return Long(int64(u))
}

// Int returns the hash code of a 32-bit integer, which is the integer itself.
func Int(i int32) int32 {
	return i
}

// Long returns the hash code of a 64-bit integer, which is the exclusive or of
// its two halves.
func Long(i int64) int32 {
	u := uint64(i)
	return int32(u ^ u>>32)
}

// Bool returns the hash code of a boolean.
func Bool(b bool) int32 {
	if b {
		return 1231
	}
	return 1237
}

const (
	canonicalNaN64 uint64 = 0x7ff8000000000000
	canonicalNaN32 uint32 = 0x7fc00000
)

// Float64 returns the hash code of a 64-bit float, derived from its IEEE 754
// representation. All NaN values hash the same.
func Float64(f float64) int32 {
	if math.IsNaN(f) {
		return Long(int64(canonicalNaN64))
	}
	return Long(int64(math.Float64bits(f)))
}

// Float32 returns the hash code of a 32-bit float, which is its IEEE 754
// representation. All NaN values hash the same.
func Float32(f float32) int32 {
	if math.IsNaN(float64(f)) {
		return int32(canonicalNaN32)
	}
	return int32(math.Float32bits(f))
}

// Rune returns the hash code of a single character, which is its code point.
func Rune(r rune) int32 {
	return int32(r)
}

// String returns the hash code of a string. The string is hashed as a
// sequence of UTF-16 code units with the same combinator as Chars, but
// starting from 0 instead of Init; hence String("") is 0.
func String(s string) int32 {
	var h int32
	for _, r := range s {
		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			h = Combine(Combine(h, int32(r1)), int32(r2))
		} else {
			h = Combine(h, int32(r))
		}
	}
	return h
}

// BigInt returns the hash code of an arbitrary-precision integer. The
// magnitude is hashed as a sequence of big-endian 32-bit words starting from
// 0, and the result is multiplied by the sign. A nil *big.Int hashes to 0.
func BigInt(z *big.Int) int32 {
	if z == nil {
		return 0
	}
	mag := z.Bytes()
	var h int32
	// The first word takes the leftover bytes when len(mag) is not a multiple
	// of 4.
	for first := len(mag) % 4; len(mag) > 0; first = 4 {
		if first == 0 {
			first = 4
		}
		var word uint32
		for _, b := range mag[:first] {
			word = word<<8 | uint32(b)
		}
		h = Combine(h, int32(word))
		mag = mag[first:]
	}
	return h * int32(z.Sign())
}
