package name

import "math"

// value is the constraint for payloads held by Data: anything that knows
// how to compare itself.
type value[T any] interface {
	equal(T) bool
}

// Data wraps a payload whose presence is fixed by the regime. In a concrete
// name every Data holds a value and comparisons use it. In an abstract name
// every Data is phantom: it holds nothing, compares as equal to anything,
// and predicate checks fall back to the supplied default.
//
// The regime-aware constructors below are the only way to build one, which
// keeps a tree from mixing present and phantom fields.
type Data[T value[T]] struct {
	val T
	has bool
}

// NewData wraps v for the regime R: phantom under Abs, present otherwise.
func NewData[R Regime, T value[T]](v T) Data[T] {
	if IsAbstract[R]() {
		return Data[T]{}
	}
	return Data[T]{val: v, has: true}
}

// DefaultData returns the regime's default wrapper: phantom under Abs, the
// zero payload otherwise.
func DefaultData[R Regime, T value[T]]() Data[T] {
	var zero T
	return NewData[R](zero)
}

// ApplyOr applies f to the held value, or returns fallback if phantom.
func (d Data[T]) ApplyOr(f func(T) bool, fallback bool) bool {
	if !d.has {
		return fallback
	}
	return f(d.val)
}

// IsOr reports whether the held value equals v, or returns fallback if
// phantom.
func (d Data[T]) IsOr(v T, fallback bool) bool {
	if !d.has {
		return fallback
	}
	return d.val.equal(v)
}

// EqOr reports whether two wrappers hold equal values. If either side is
// phantom the comparison cannot be decided from data alone and fallback is
// returned; in practice both sides always come from the same regime.
func (d Data[T]) EqOr(o Data[T], fallback bool) bool {
	if !d.has || !o.has {
		return fallback
	}
	return d.val.equal(o.val)
}

// UnwrapOr returns the held value, or v if phantom.
func (d Data[T]) UnwrapOr(v T) T {
	if !d.has {
		return v
	}
	return d.val
}

// Unwrap returns the held value. Calling it on a phantom wrapper is a bug
// in the caller: correct abstract-regime code never reaches it.
func (d Data[T]) Unwrap() T {
	if !d.has {
		panic("name: Unwrap called on phantom data")
	}
	return d.val
}

// Present reports whether the wrapper holds a value.
func (d Data[T]) Present() bool { return d.has }

// Vec is a point in euclidean space, used as a symmetry or dualizing
// center. Comparison is exact; tolerance-based checks are done explicitly
// where the geometry calls for them.
type Vec []float64

func (v Vec) equal(o Vec) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Dist returns the euclidean distance between two points. Points of
// different dimension are infinitely far apart.
func (v Vec) Dist(o Vec) float64 {
	if len(v) != len(o) {
		return math.Inf(1)
	}
	var sum float64
	for i := range v {
		d := v[i] - o[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Regular records whether a shape is regular and, if so, the center of its
// symmetry. The zero value means "not regular", which is the default: we
// never treat a shape as regular unless told so.
type Regular struct {
	Yes    bool
	Center Vec
}

func (r Regular) equal(o Regular) bool {
	if r.Yes != o.Yes {
		return false
	}
	if !r.Yes {
		return true
	}
	return r.Center.equal(o.Center)
}

// RegularAt builds a present "regular with this center" payload under a
// concrete regime, or a phantom under the abstract one.
func RegularAt[R Regime](center Vec) Data[Regular] {
	return NewData[R](Regular{Yes: true, Center: center})
}

// Irregular builds the regime's "not regular" payload.
func Irregular[R Regime]() Data[Regular] {
	return NewData[R](Regular{})
}

// QuadKind is the subtype of a quadrilateral that isn't fully irregular.
// These often come out of prisms and tegums and carry extra information
// about a name. Abstractly every such quadrilateral is a square.
type QuadKind int

const (
	QuadSquare QuadKind = iota
	QuadRectangle
	QuadOrthodiagonal
)

func (q QuadKind) equal(o QuadKind) bool { return q == o }

// CenterAt wraps a dualizing center for the regime R.
func CenterAt[R Regime](center Vec) Data[Vec] {
	return NewData[R](center)
}
