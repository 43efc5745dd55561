// Package name implements the canonical name algebra for polytopes.
//
// A Name is a tree describing how a polytope was built from stacked
// operations (pyramids, prisms, tegums, duals, products, compounds). The
// package provides:
//   - the Name tree itself, a closed set of node kinds
//   - structural queries (Rank, FacetCount, IsValid)
//   - rewrite constructors that fold each geometric operation into an
//     existing tree, keeping it in a unique canonical form
//   - a compact text form for persistence in geometry file headers
//
// Names come in two regimes. Abstract names describe abstract polytopes,
// where geometric degeneracy never occurs; concrete names carry actual
// centers and floating point data, and regularity or duality can fail
// depending on geometry. The regime is a compile-time type parameter, so a
// tree never mixes the two.
package name

import "github.com/polytopia/polyname/internal/config"

// Regime selects between abstract and concrete names. It is sealed: the
// only implementations are Abs, Con32 and Con64.
type Regime interface {
	abstract() bool
	eps() float64
	tag() string
}

// Abs marks a name describing an abstract polytope. All payload data is
// phantom: it holds nothing and satisfies any comparison.
type Abs struct{}

func (Abs) abstract() bool { return true }
func (Abs) eps() float64   { return config.EpsSingle }
func (Abs) tag() string    { return config.RegimeTagAbstract }

// Con32 marks a name describing a concrete polytope measured in single
// precision. Payload data always holds a value.
type Con32 struct{}

func (Con32) abstract() bool { return false }
func (Con32) eps() float64   { return config.EpsSingle }
func (Con32) tag() string    { return config.RegimeTagSingle }

// Con64 marks a name describing a concrete polytope measured in double
// precision.
type Con64 struct{}

func (Con64) abstract() bool { return false }
func (Con64) eps() float64   { return config.EpsDouble }
func (Con64) tag() string    { return config.RegimeTagDouble }

// IsAbstract reports whether the regime R is the abstract one.
func IsAbstract[R Regime]() bool {
	var r R
	return r.abstract()
}

// Eps returns the center comparison tolerance for the regime R.
func Eps[R Regime]() float64 {
	var r R
	return r.eps()
}

// Tag returns the serialization tag for the regime R.
func Tag[R Regime]() string {
	var r R
	return r.tag()
}
