package name

// Canonical constructors for parametric shapes. Below their thresholds the
// shapes already have hardcoded names, and every rewrite in this package
// must go through these rather than instantiating nodes directly, or the
// canonical form guarantee breaks.

// MakeSquare returns the name for a square.
func MakeSquare[R Regime]() Name[R] {
	return &Quadrilateral[R]{Kind: NewData[R](QuadSquare)}
}

// MakeRectangle returns the name for a rectangle. Abstractly there is no
// difference from a square.
func MakeRectangle[R Regime]() Name[R] {
	return &Quadrilateral[R]{Kind: NewData[R](QuadRectangle)}
}

// MakeOrthodiagonal returns the name for an orthodiagonal quadrilateral, a
// dyadic duotegum. Abstractly there is no difference from a square.
func MakeOrthodiagonal[R Regime]() Name[R] {
	return &Quadrilateral[R]{Kind: NewData[R](QuadOrthodiagonal)}
}

// MakeSimplex returns the name for a simplex of the given rank, regular or
// not.
func MakeSimplex[R Regime](regular Data[Regular], rank int) Name[R] {
	switch rank {
	case -1:
		return &Nullitope[R]{}
	case 0:
		return &Point[R]{}
	case 1:
		return &Dyad[R]{}
	case 2:
		return &Triangle[R]{Regular: regular}
	default:
		return &Simplex[R]{Regular: regular, Rank: rank}
	}
}

// MakeHyperblock returns the name for a block of the given rank, regular
// or not.
func MakeHyperblock[R Regime](regular Data[Regular], rank int) Name[R] {
	switch rank {
	case -1:
		return &Nullitope[R]{}
	case 0:
		return &Point[R]{}
	case 1:
		return &Dyad[R]{}
	case 2:
		if regular.ApplyOr(func(r Regular) bool { return r.Yes }, true) {
			return MakeSquare[R]()
		}
		return MakeRectangle[R]()
	case 3:
		return &Cuboid[R]{Regular: regular}
	default:
		return &Hyperblock[R]{Regular: regular, Rank: rank}
	}
}

// MakeOrthoplex returns the name for an orthoplex of the given rank.
func MakeOrthoplex[R Regime](regular Data[Regular], rank int) Name[R] {
	switch rank {
	case -1:
		return &Nullitope[R]{}
	case 0:
		return &Point[R]{}
	case 1:
		return &Dyad[R]{}
	case 2:
		if regular.ApplyOr(func(r Regular) bool { return r.Yes }, true) {
			return MakeSquare[R]()
		}
		return MakeOrthodiagonal[R]()
	default:
		return &Orthoplex[R]{Regular: regular, Rank: rank}
	}
}

// MakePolygon returns the name for a polygon of n sides, not necessarily
// regular. Triangles and non-irregular quadrilaterals get their own names.
func MakePolygon[R Regime](regular Data[Regular], n int) Name[R] {
	switch n {
	case 3:
		return &Triangle[R]{Regular: regular}
	case 4:
		if regular.IsOr(Regular{}, false) {
			return &Polygon[R]{Regular: regular, N: n}
		}
		return MakeSquare[R]()
	default:
		return &Polygon[R]{Regular: regular, N: n}
	}
}

// MakeGeneric returns the name for a generic polytope with the given facet
// count and rank, redirecting low ranks to their hardcoded names.
func MakeGeneric[R Regime](facets, rank int) Name[R] {
	switch rank {
	case -1:
		return &Nullitope[R]{}
	case 0:
		return &Point[R]{}
	case 1:
		return &Dyad[R]{}
	case 2:
		return MakePolygon[R](DefaultData[R, Regular](), facets)
	default:
		return &Generic[R]{Facets: facets, Rank: rank}
	}
}
