// Package hashcode computes null-safe 32-bit hash codes using the classic
// multiply-by-31 combinator.
//
// The hash of a sequence is computed by starting with [Init] and folding each
// element's hash into the accumulator with [Combine]:
//
//	acc = 1
//	for each element e: acc = 31*acc + Of(e)
//
// All arithmetic wraps at 32 bits, so results are the same on every platform.
// All functions are pure and safe for concurrent use.
package hashcode

// Init is the initial value of the accumulator when hashing a sequence.
const Init int32 = 1

// Combine folds the hash h of the next element into the accumulator acc.
func Combine(acc, h int32) int32 {
	return 31*acc + h
}

// Hash returns the hash of a sequence of values, computed by folding the
// result of [Of] for each value into [Init] with [Combine].
//
// It is useful for implementing [Hasher] on types with multiple fields:
//
//	func (p Point) HashCode() int32 { return hashcode.Hash(p.X, p.Y, p.Label) }
//
// A nil slice hashes the same as an empty one, both yielding 1. Note that
// Hash(v) is not the same as Of(v).
func Hash(values ...any) int32 {
	acc := Init
	for _, v := range values {
		acc = Combine(acc, Of(v))
	}
	return acc
}

// Bytes returns the hash of a byte sequence. Each byte is folded as a signed
// 8-bit integer, so for any non-nil b, Bytes(b) is equal to Hash applied to
// the elements of b.
//
// Unlike Hash, a nil slice hashes to 0, while an empty non-nil slice hashes
// to 1.
func Bytes(b []byte) int32 {
	if b == nil {
		return 0
	}
	acc := Init
	for _, c := range b {
		acc = Combine(acc, int32(int8(c)))
	}
	return acc
}

// Chars returns the hash of a sequence of UTF-16 code units. Each code unit is
// folded as an unsigned 16-bit integer.
//
// Like Bytes, a nil slice hashes to 0, while an empty non-nil slice hashes to
// 1.
func Chars(c []uint16) int32 {
	if c == nil {
		return 0
	}
	acc := Init
	for _, u := range c {
		acc = Combine(acc, int32(u))
	}
	return acc
}

// Slice returns the hash of a typed slice, using f to hash each element. It
// follows the same rules as Hash, including hashing a nil slice to 1, but
// avoids converting each element to an interface value.
func Slice[T any](values []T, f func(T) int32) int32 {
	acc := Init
	for _, v := range values {
		acc = Combine(acc, f(v))
	}
	return acc
}
