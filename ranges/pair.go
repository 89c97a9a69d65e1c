package ranges

import "fmt"

// Pair holds two values produced together, e.g. by Zip or Enumerate.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a string representation of the pair.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MakePair creates a new pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Triple holds three values produced together by Zip3 or CartesianProduct3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// String returns a string representation of the triple.
func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// Integer is satisfied by all built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by the built-in floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by integer and floating point types.
type Number interface {
	Integer | Float
}
