package name

import "github.com/polytopia/polyname/internal/config"

// Rank returns the rank (intrinsic dimension) of the polytope the name
// describes, with -1 for the nullitope. The second result is false when
// the rank cannot be derived from the name alone, which happens under
// unresolved duals; the unknown propagates, it never panics.
func Rank[R Regime](n Name[R]) (int, bool) {
	switch v := n.(type) {
	case *Nullitope[R]:
		return -1, true
	case *Point[R]:
		return 0, true
	case *Dyad[R]:
		return 1, true
	case *Triangle[R], *Quadrilateral[R], *Polygon[R]:
		return 2, true
	case *Simplex[R]:
		return v.Rank, true
	case *Cuboid[R]:
		return 3, true
	case *Hyperblock[R]:
		return v.Rank, true
	case *Orthoplex[R]:
		return v.Rank, true
	case *Generic[R]:
		return v.Rank, true
	case *Pyramid[R]:
		return rankAbove(v.Base)
	case *Prism[R]:
		return rankAbove(v.Base)
	case *Tegum[R]:
		return rankAbove(v.Base)
	case *Antiprism[R]:
		return rankAbove(v.Base)
	case *Antitegum[R]:
		return rankAbove(v.Base)
	case *Petrial[R]:
		return Rank(v.Base)
	case *Dual[R]:
		return Rank(v.Base)
	case *Ditope[R]:
		return v.Rank, true
	case *Hosotope[R]:
		return v.Rank, true
	case *Small[R]:
		return Rank(v.Base)
	case *Great[R]:
		return Rank(v.Base)
	case *Stellated[R]:
		return Rank(v.Base)
	case *Multipyramid[R]:
		return rankProduct(v.Bases, 1)
	case *Multiprism[R]:
		return rankProduct(v.Bases, 0)
	case *Multitegum[R]:
		return rankProduct(v.Bases, 0)
	case *Multicomb[R]:
		return rankProduct(v.Bases, -1)
	case *Compound[R]:
		if len(v.Components) == 0 {
			return 0, false
		}
		return Rank(v.Components[0].Name)
	}
	return 0, false
}

func rankAbove[R Regime](base Name[R]) (int, bool) {
	r, ok := Rank(base)
	if !ok {
		return 0, false
	}
	return r + 1, true
}

// rankProduct computes the rank of a multiproduct. offset is the
// difference between the rank of a product of two polytopes and the sum of
// their ranks: +1 for pyramid products, 0 for prism and tegum products, -1
// for comb products.
func rankProduct[R Regime](bases []Name[R], offset int) (int, bool) {
	rank := -offset
	for _, base := range bases {
		r, ok := Rank(base)
		if !ok {
			return 0, false
		}
		rank += r + offset
	}
	return rank, true
}

// FacetCount returns the number of facets of the polytope the name
// describes. The second result is false when the count cannot be derived
// from the name alone. Dual names always report unknown: duality's effect
// on the facet count needs the original facet/vertex pairing, which the
// name does not retain.
func FacetCount[R Regime](n Name[R]) (int, bool) {
	switch v := n.(type) {
	case *Nullitope[R]:
		return 0, true
	case *Point[R]:
		return 1, true
	case *Dyad[R]:
		return 2, true
	case *Triangle[R]:
		return 3, true
	case *Quadrilateral[R]:
		return 4, true
	case *Polygon[R]:
		return v.N, true
	case *Simplex[R]:
		return v.Rank + 1, true
	case *Cuboid[R]:
		return 6, true
	case *Hyperblock[R]:
		return 2 * v.Rank, true
	case *Orthoplex[R]:
		return 1 << v.Rank, true
	case *Generic[R]:
		return v.Facets, true
	case *Pyramid[R]:
		fc, ok := FacetCount(v.Base)
		if !ok {
			return 0, false
		}
		return fc + 1, true
	case *Prism[R]:
		fc, ok := FacetCount(v.Base)
		if !ok {
			return 0, false
		}
		return 2 * (fc + 1), true
	case *Tegum[R]:
		fc, ok := FacetCount(v.Base)
		if !ok {
			return 0, false
		}
		return 2 * fc, true
	case *Multipyramid[R]:
		return facetProduct(v.Bases)
	case *Multitegum[R]:
		return facetProduct(v.Bases)
	case *Multiprism[R]:
		return facetSum(v.Bases)
	case *Multicomb[R]:
		return facetSum(v.Bases)
	case *Ditope[R]:
		return 2, true
	case *Small[R]:
		return FacetCount(v.Base)
	case *Great[R]:
		return FacetCount(v.Base)
	case *Stellated[R]:
		return FacetCount(v.Base)
	case *Compound[R]:
		total := 0
		for _, c := range v.Components {
			fc, ok := FacetCount(c.Name)
			if !ok {
				return 0, false
			}
			total += c.Count * fc
		}
		return total, true
	}
	// Dual, Antiprism, Antitegum, Petrial, Hosotope.
	return 0, false
}

func facetProduct[R Regime](bases []Name[R]) (int, bool) {
	total := 1
	for _, base := range bases {
		fc, ok := FacetCount(base)
		if !ok {
			return 0, false
		}
		total *= fc
	}
	return total, true
}

func facetSum[R Regime](bases []Name[R]) (int, bool) {
	total := 0
	for _, base := range bases {
		fc, ok := FacetCount(base)
		if !ok {
			return 0, false
		}
		total += fc
	}
	return total, true
}

// IsValid reports whether the invariants on every node of the tree hold.
// It is a consistency check for constructor output and tests, not a gate
// on untrusted input: malformed persisted names are rejected when parsed.
func IsValid[R Regime](n Name[R]) bool {
	switch v := n.(type) {
	case *Polygon[R]:
		switch {
		case v.N == 3:
			// A triangle has its own name.
			return false
		case v.N == 4:
			// A quadrilateral name exists unless known irregular.
			return v.Regular.IsOr(Regular{}, false)
		default:
			return v.N >= 2
		}
	case *Simplex[R]:
		return v.Rank >= config.MinGenericRank
	case *Orthoplex[R]:
		return v.Rank >= config.MinGenericRank
	case *Hyperblock[R]:
		return v.Rank >= config.MinGenericRank+1
	case *Generic[R]:
		return v.Facets >= config.MinGenericFacets &&
			v.Rank >= config.MinGenericRank && v.Rank <= config.MaxGenericRank
	case *Multipyramid[R]:
		return validBases[R](v.Bases, kindMultipyramid)
	case *Multiprism[R]:
		return validBases[R](v.Bases, kindMultiprism)
	case *Multitegum[R]:
		return validBases[R](v.Bases, kindMultitegum)
	case *Multicomb[R]:
		return validBases[R](v.Bases, kindMulticomb)
	case *Pyramid[R]:
		return IsValid(v.Base)
	case *Prism[R]:
		return IsValid(v.Base)
	case *Tegum[R]:
		return IsValid(v.Base)
	case *Antiprism[R]:
		return IsValid(v.Base)
	case *Antitegum[R]:
		return IsValid(v.Base)
	case *Petrial[R]:
		return IsValid(v.Base)
	case *Dual[R]:
		return IsValid(v.Base)
	case *Ditope[R]:
		return IsValid(v.Base)
	case *Hosotope[R]:
		return IsValid(v.Base)
	case *Small[R]:
		return IsValid(v.Base)
	case *Great[R]:
		return IsValid(v.Base)
	case *Stellated[R]:
		return IsValid(v.Base)
	case *Compound[R]:
		if len(v.Components) < 1 {
			return false
		}
		for _, c := range v.Components {
			if c.Count < 1 {
				return false
			}
			if _, nested := c.Name.(*Compound[R]); nested {
				return false
			}
			if !IsValid(c.Name) {
				return false
			}
		}
		return true
	}
	return true
}

// multiKind discriminates the four multiproduct node kinds, for the "no
// base shares its parent's variant" check and for flattening.
type multiKind int

const (
	kindMultipyramid multiKind = iota
	kindMultiprism
	kindMultitegum
	kindMulticomb
)

// sameKindBases returns the child list of n when n is the multiproduct
// node of the given kind.
func sameKindBases[R Regime](n Name[R], kind multiKind) ([]Name[R], bool) {
	switch v := n.(type) {
	case *Multipyramid[R]:
		if kind == kindMultipyramid {
			return v.Bases, true
		}
	case *Multiprism[R]:
		if kind == kindMultiprism {
			return v.Bases, true
		}
	case *Multitegum[R]:
		if kind == kindMultitegum {
			return v.Bases, true
		}
	case *Multicomb[R]:
		if kind == kindMulticomb {
			return v.Bases, true
		}
	}
	return nil, false
}

func validBases[R Regime](bases []Name[R], kind multiKind) bool {
	if len(bases) < 2 {
		return false
	}
	for _, base := range bases {
		if _, same := sameKindBases(base, kind); same {
			return false
		}
		if !IsValid(base) {
			return false
		}
	}
	return true
}
