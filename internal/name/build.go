package name

import "github.com/polytopia/polyname/internal/config"

// Single-base rewrite constructors. Each takes an existing name and folds
// one geometric operation into it, preferring the most specific hardcoded
// shape, promoting irregular chains in place, and re-expressing repeated
// operations through the multiproduct constructors so that a single
// operation never appears as two nested wrappers of the same kind.
//
// The abstract regime always takes the absorbing branch of the
// regular/irregular tests: abstractly a pyramid over any simplex is a
// higher simplex, regardless of geometry.

// MakePyramid builds a pyramid name over n.
func MakePyramid[R Regime](n Name[R]) Name[R] {
	switch v := n.(type) {
	case *Nullitope[R]:
		return &Point[R]{}
	case *Point[R]:
		return &Dyad[R]{}
	case *Dyad[R]:
		return &Triangle[R]{Regular: DefaultData[R, Regular]()}
	case *Triangle[R]:
		if IsAbstract[R]() || v.Regular.IsOr(Regular{}, false) {
			return MakeSimplex[R](Irregular[R](), 3)
		}
		return &Pyramid[R]{Base: n}
	case *Simplex[R]:
		if IsAbstract[R]() || v.Regular.IsOr(Regular{}, false) {
			return MakeSimplex[R](Irregular[R](), v.Rank+1)
		}
		return &Pyramid[R]{Base: n}
	case *Pyramid[R]:
		return MakeMultipyramid([]Name[R]{&Dyad[R]{}, v.Base})
	case *Multipyramid[R]:
		return MakeMultipyramid(append(v.Bases, &Point[R]{}))
	default:
		return &Pyramid[R]{Base: n}
	}
}

// MakePrism builds a prism name over n.
func MakePrism[R Regime](n Name[R]) Name[R] {
	switch v := n.(type) {
	case *Nullitope[R]:
		return n
	case *Point[R]:
		return &Dyad[R]{}
	case *Dyad[R]:
		return MakeRectangle[R]()
	case *Quadrilateral[R]:
		if !IsAbstract[R]() && v.Kind.IsOr(QuadOrthodiagonal, false) {
			return &Prism[R]{Base: n}
		}
		return MakeHyperblock[R](Irregular[R](), 3)
	case *Cuboid[R]:
		if IsAbstract[R]() || v.Regular.IsOr(Regular{}, false) {
			return MakeHyperblock[R](Irregular[R](), 4)
		}
		return &Prism[R]{Base: n}
	case *Hyperblock[R]:
		if IsAbstract[R]() || v.Regular.IsOr(Regular{}, false) {
			return MakeHyperblock[R](v.Regular, v.Rank+1)
		}
		return &Prism[R]{Base: n}
	case *Prism[R]:
		return MakeMultiprism([]Name[R]{MakeRectangle[R](), v.Base})
	case *Multiprism[R]:
		return MakeMultiprism(append(v.Bases, &Dyad[R]{}))
	default:
		return &Prism[R]{Base: n}
	}
}

// MakeTegum builds a tegum name over n.
func MakeTegum[R Regime](n Name[R]) Name[R] {
	switch v := n.(type) {
	case *Nullitope[R]:
		return n
	case *Point[R]:
		return &Dyad[R]{}
	case *Dyad[R]:
		return MakeOrthodiagonal[R]()
	case *Quadrilateral[R]:
		if !IsAbstract[R]() && v.Kind.IsOr(QuadRectangle, false) {
			return &Tegum[R]{Base: n}
		}
		return MakeOrthoplex[R](Irregular[R](), 3)
	case *Orthoplex[R]:
		if IsAbstract[R]() || v.Regular.IsOr(Regular{}, false) {
			return MakeOrthoplex[R](Irregular[R](), v.Rank+1)
		}
		return &Tegum[R]{Base: n}
	case *Tegum[R]:
		return MakeMultitegum([]Name[R]{MakeOrthodiagonal[R](), v.Base})
	case *Multitegum[R]:
		return MakeMultitegum(append(v.Bases, &Dyad[R]{}))
	default:
		return &Tegum[R]{Base: n}
	}
}

// MakeAntiprism builds an antiprism name over n.
func MakeAntiprism[R Regime](n Name[R]) Name[R] {
	switch v := n.(type) {
	case *Nullitope[R]:
		return &Point[R]{}
	case *Point[R]:
		return &Dyad[R]{}
	case *Dyad[R]:
		return MakeOrthodiagonal[R]()
	case *Simplex[R]:
		return MakeOrthoplex[R](Irregular[R](), v.Rank+1)
	default:
		return &Antiprism[R]{Base: n}
	}
}

// regularDual keeps regularity across a dual exactly when it survives:
// always in the abstract regime, and concretely only when the dualizing
// center agrees with the recorded center within the regime tolerance.
func regularDual[R Regime](regular Data[Regular], center Data[Vec]) Data[Regular] {
	holds := regular.ApplyOr(func(r Regular) bool {
		if !r.Yes {
			return true
		}
		return center.Unwrap().Dist(r.Center) < Eps[R]()
	}, true)
	if holds {
		return regular
	}
	return Irregular[R]()
}

// MakeDual builds the dual of n about a center.
//
// Abstractly, duality distributes through pyramids, prisms, tegums and
// their multiproducts; a concrete dual can fail depending on geometry, so
// in the concrete regime those cases stay wrapped and the computation is
// deferred to the polytope layer.
func MakeDual[R Regime](n Name[R], center Data[Vec]) Name[R] {
	switch v := n.(type) {
	case *Nullitope[R], *Point[R], *Dyad[R]:
		// Self-dual.
		return n
	case *Triangle[R]:
		return &Triangle[R]{Regular: regularDual[R](v.Regular, center)}
	case *Quadrilateral[R]:
		if v.Kind.IsOr(QuadOrthodiagonal, true) {
			return MakePolygon[R](DefaultData[R, Regular](), 4)
		}
		return MakeOrthodiagonal[R]()
	case *Polygon[R]:
		return &Polygon[R]{Regular: regularDual[R](v.Regular, center), N: v.N}
	case *Simplex[R]:
		return MakeSimplex[R](regularDual[R](v.Regular, center), v.Rank)
	case *Cuboid[R]:
		return MakeOrthoplex[R](regularDual[R](v.Regular, center), 3)
	case *Hyperblock[R]:
		return MakeOrthoplex[R](regularDual[R](v.Regular, center), v.Rank)
	case *Orthoplex[R]:
		return MakeHyperblock[R](regularDual[R](v.Regular, center), v.Rank)
	case *Dual[R]:
		// A dual of a dual about the same center is an involution. With
		// mismatched centers there is no simpler symbolic form; the best
		// remaining description is the inner base's facet count and rank,
		// when those fit a generic name. Outside the generic bounds the
		// name stays wrapped.
		if center.EqOr(v.Center, true) {
			return v.Base
		}
		if fc, ok := FacetCount(v.Base); ok && fc >= config.MinGenericFacets {
			if rank, ok := Rank(v.Base); ok && rank <= config.MaxGenericRank {
				return MakeGeneric[R](fc, rank)
			}
		}
		return &Dual[R]{Base: n, Center: center}
	case *Pyramid[R]:
		if IsAbstract[R]() {
			return &Pyramid[R]{Base: MakeDual(v.Base, center)}
		}
		return &Dual[R]{Base: n, Center: center}
	case *Prism[R]:
		if IsAbstract[R]() {
			return &Tegum[R]{Base: MakeDual(v.Base, center)}
		}
		return &Dual[R]{Base: n, Center: center}
	case *Tegum[R]:
		if IsAbstract[R]() {
			return &Prism[R]{Base: MakeDual(v.Base, center)}
		}
		return &Dual[R]{Base: n, Center: center}
	case *Antiprism[R]:
		return &Antitegum[R]{Base: v.Base, Center: center}
	case *Antitegum[R]:
		if center.EqOr(v.Center, true) {
			return &Antiprism[R]{Base: v.Base}
		}
		return &Dual[R]{Base: n, Center: center}
	case *Multipyramid[R]:
		if IsAbstract[R]() {
			return MakeMultipyramid(dualBases(v.Bases, center))
		}
		return &Dual[R]{Base: n, Center: center}
	case *Multiprism[R]:
		if IsAbstract[R]() {
			return MakeMultitegum(dualBases(v.Bases, center))
		}
		return &Dual[R]{Base: n, Center: center}
	case *Multitegum[R]:
		if IsAbstract[R]() {
			return MakeMultiprism(dualBases(v.Bases, center))
		}
		return &Dual[R]{Base: n, Center: center}
	case *Multicomb[R]:
		if IsAbstract[R]() {
			return MakeMulticomb(dualBases(v.Bases, center))
		}
		return &Dual[R]{Base: n, Center: center}
	default:
		return &Dual[R]{Base: n, Center: center}
	}
}

func dualBases[R Regime](bases []Name[R], center Data[Vec]) []Name[R] {
	duals := make([]Name[R], len(bases))
	for i, base := range bases {
		duals[i] = MakeDual(base, center)
	}
	return duals
}

// MakeDitope builds a ditope name over n with an explicit rank.
func MakeDitope[R Regime](n Name[R], rank int) Name[R] {
	switch n.(type) {
	case *Nullitope[R]:
		return n
	case *Point[R]:
		return &Dyad[R]{}
	case *Dyad[R]:
		return MakePolygon[R](DefaultData[R, Regular](), 2)
	default:
		return &Ditope[R]{Base: n, Rank: rank}
	}
}

// MakeHosotope builds a hosotope name over n with an explicit rank.
func MakeHosotope[R Regime](n Name[R], rank int) Name[R] {
	switch n.(type) {
	case *Nullitope[R]:
		return n
	case *Point[R]:
		return &Dyad[R]{}
	case *Dyad[R]:
		return MakePolygon[R](DefaultData[R, Regular](), 2)
	default:
		return &Hosotope[R]{Base: n, Rank: rank}
	}
}

// MakePetrial builds the Petrial of n. Petrials are involutions.
func MakePetrial[R Regime](n Name[R]) Name[R] {
	if v, ok := n.(*Petrial[R]); ok {
		return v.Base
	}
	return &Petrial[R]{Base: n}
}

// MakeSmall marks n as the small variant of a shape.
func MakeSmall[R Regime](n Name[R]) Name[R] { return &Small[R]{Base: n} }

// MakeGreat marks n as the great variant of a shape.
func MakeGreat[R Regime](n Name[R]) Name[R] { return &Great[R]{Base: n} }

// MakeStellated marks n as a stellation of a shape.
func MakeStellated[R Regime](n Name[R]) Name[R] { return &Stellated[R]{Base: n} }
