package name

import "sort"

// Multi-operand folding constructors. All four product kinds share one
// fold: classify each factor as an absorbable atom or an irreducible base,
// splice same-kind products (associativity), combine absorbed units into a
// single higher-rank atom, order the bases canonically, and collapse
// degenerate base counts.

// productSpec parameterizes the fold per product kind.
type productSpec[R Regime] struct {
	kind multiKind

	// nullStops collapses the whole product to the nullitope when a
	// nullitope factor appears. Pyramid products instead treat the
	// nullitope as a no-op factor.
	nullStops bool

	// absorb returns the unit count an absorbable atom contributes, or
	// ok=false for an irreducible base.
	absorb func(n Name[R]) (int, bool)

	// synth builds the single combined atom for two or more units.
	synth func(units int) Name[R]

	// identity is the result of an empty product.
	identity func() Name[R]

	// applyOne folds in a single leftover unit through the corresponding
	// single-base rewrite. Nil when the kind absorbs nothing.
	applyOne func(Name[R]) Name[R]

	// wrapOne wraps a built multiproduct node in the plain single-base
	// operator. Used instead of applyOne when two or more irreducible
	// bases remain: the rewrite would splice the product apart and refold
	// the leftover unit forever.
	wrapOne func(Name[R]) Name[R]

	// node wraps two or more canonically ordered bases.
	node func([]Name[R]) Name[R]
}

// foldProduct is the shared multiproduct algorithm. Factors are walked as
// a worklist so that children spliced out of a same-kind product are
// themselves reclassified; this is what makes the flattening associative
// even when a spliced child is an absorbable atom.
func foldProduct[R Regime](bases []Name[R], spec productSpec[R]) Name[R] {
	queue := make([]Name[R], len(bases))
	copy(queue, bases)

	var irreducible []Name[R]
	units := 0
	for i := 0; i < len(queue); i++ {
		base := queue[i]
		if _, isNull := base.(*Nullitope[R]); isNull {
			if spec.nullStops {
				return &Nullitope[R]{}
			}
			continue
		}
		if children, same := sameKindBases(base, spec.kind); same {
			queue = append(queue, children...)
			continue
		}
		if spec.absorb != nil {
			if u, ok := spec.absorb(base); ok {
				units += u
				continue
			}
		}
		irreducible = append(irreducible, base)
	}

	// Two or more absorbed units fuse into one combined atom; exactly one
	// is deferred and folded in at the end instead.
	if units >= 2 {
		irreducible = append(irreducible, spec.synth(units))
	}

	sortBases(irreducible)

	var result Name[R]
	switch len(irreducible) {
	case 0:
		result = spec.identity()
	case 1:
		result = irreducible[0]
	default:
		result = spec.node(irreducible)
	}

	if units == 1 {
		if len(irreducible) >= 2 {
			result = spec.wrapOne(result)
		} else {
			result = spec.applyOne(result)
		}
	}
	return result
}

// baseLess is the canonical ordering of product bases: by rank, then by
// facet count, unknowns first. This ordering, not the textual one, is what
// makes factor lists given in different orders fold to the same tree.
func baseLess[R Regime](a, b Name[R]) bool {
	ra, ok := Rank(a)
	if !ok {
		ra = -2
	}
	rb, ok := Rank(b)
	if !ok {
		rb = -2
	}
	if ra != rb {
		return ra < rb
	}
	fa, ok := FacetCount(a)
	if !ok {
		fa = 0
	}
	fb, ok := FacetCount(b)
	if !ok {
		fb = 0
	}
	return fa < fb
}

func sortBases[R Regime](bases []Name[R]) {
	sort.SliceStable(bases, func(i, j int) bool {
		return baseLess(bases[i], bases[j])
	})
}

// MakeMultipyramid folds a pyramid product of the given names. Points,
// dyads, triangles and simplices are absorbed: k points' worth of pyramid
// units combine into the irregular simplex of rank k-1.
func MakeMultipyramid[R Regime](bases []Name[R]) Name[R] {
	return foldProduct(bases, productSpec[R]{
		kind: kindMultipyramid,
		absorb: func(n Name[R]) (int, bool) {
			switch v := n.(type) {
			case *Point[R]:
				return 1, true
			case *Dyad[R]:
				return 2, true
			case *Triangle[R]:
				return 3, true
			case *Simplex[R]:
				return v.Rank + 1, true
			}
			return 0, false
		},
		synth: func(units int) Name[R] {
			return MakeSimplex[R](Irregular[R](), units-1)
		},
		identity: func() Name[R] { return &Nullitope[R]{} },
		applyOne: MakePyramid[R],
		wrapOne:  func(n Name[R]) Name[R] { return &Pyramid[R]{Base: n} },
		node:     func(bs []Name[R]) Name[R] { return &Multipyramid[R]{Bases: bs} },
	})
}

// MakeMultiprism folds a prism product of the given names. Dyads, blocks
// and non-orthodiagonal quadrilaterals are absorbed: k dyads' worth of
// prism units combine into the irregular block of rank k. A nullitope
// factor collapses the product.
func MakeMultiprism[R Regime](bases []Name[R]) Name[R] {
	return foldProduct(bases, productSpec[R]{
		kind:      kindMultiprism,
		nullStops: true,
		absorb: func(n Name[R]) (int, bool) {
			switch v := n.(type) {
			case *Point[R]:
				return 0, true
			case *Dyad[R]:
				return 1, true
			case *Quadrilateral[R]:
				if !IsAbstract[R]() && v.Kind.IsOr(QuadOrthodiagonal, false) {
					return 0, false
				}
				return 2, true
			case *Cuboid[R]:
				return 3, true
			case *Hyperblock[R]:
				return v.Rank, true
			}
			return 0, false
		},
		synth: func(units int) Name[R] {
			return MakeHyperblock[R](Irregular[R](), units)
		},
		identity: func() Name[R] { return &Point[R]{} },
		applyOne: MakePrism[R],
		wrapOne:  func(n Name[R]) Name[R] { return &Prism[R]{Base: n} },
		node:     func(bs []Name[R]) Name[R] { return &Multiprism[R]{Bases: bs} },
	})
}

// MakeMultitegum folds a tegum product of the given names. Dyads, squares,
// orthodiagonal quadrilaterals and orthoplexes are absorbed: k dyads'
// worth of tegum units combine into the irregular orthoplex of rank k. A
// nullitope factor collapses the product.
func MakeMultitegum[R Regime](bases []Name[R]) Name[R] {
	return foldProduct(bases, productSpec[R]{
		kind:      kindMultitegum,
		nullStops: true,
		absorb: func(n Name[R]) (int, bool) {
			switch v := n.(type) {
			case *Point[R]:
				return 0, true
			case *Dyad[R]:
				return 1, true
			case *Quadrilateral[R]:
				if !IsAbstract[R]() && v.Kind.IsOr(QuadRectangle, false) {
					return 0, false
				}
				return 2, true
			case *Orthoplex[R]:
				return v.Rank, true
			}
			return 0, false
		},
		synth: func(units int) Name[R] {
			return MakeOrthoplex[R](Irregular[R](), units)
		},
		identity: func() Name[R] { return &Point[R]{} },
		applyOne: MakeTegum[R],
		wrapOne:  func(n Name[R]) Name[R] { return &Tegum[R]{Base: n} },
		node:     func(bs []Name[R]) Name[R] { return &Multitegum[R]{Bases: bs} },
	})
}

// MakeMulticomb folds a comb product of the given names. Combs absorb no
// atoms; they only flatten, collapse on a nullitope factor, and order
// their bases.
func MakeMulticomb[R Regime](bases []Name[R]) Name[R] {
	return foldProduct(bases, productSpec[R]{
		kind:      kindMulticomb,
		nullStops: true,
		identity:  func() Name[R] { return &Nullitope[R]{} },
		node:      func(bs []Name[R]) Name[R] { return &Multicomb[R]{Bases: bs} },
	})
}

// MakeCompound builds a compound from weighted components. Nested
// compounds are flattened with multiplicities multiplied through, equal
// names are merged by summing multiplicities, components are canonically
// ordered, and a lone component of multiplicity one collapses to its bare
// name.
func MakeCompound[R Regime](components []Component[R]) Name[R] {
	queue := make([]Component[R], len(components))
	copy(queue, components)

	var merged []Component[R]
	for i := 0; i < len(queue); i++ {
		c := queue[i]
		if c.Count < 1 {
			continue
		}
		if inner, ok := c.Name.(*Compound[R]); ok {
			for _, ic := range inner.Components {
				queue = append(queue, Component[R]{Count: c.Count * ic.Count, Name: ic.Name})
			}
			continue
		}
		found := false
		for j := range merged {
			if Equal(merged[j].Name, c.Name) {
				merged[j].Count += c.Count
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, c)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return baseLess(merged[i].Name, merged[j].Name)
	})

	if len(merged) == 0 {
		return &Nullitope[R]{}
	}
	if len(merged) == 1 && merged[0].Count == 1 {
		return merged[0].Name
	}
	return &Compound[R]{Components: merged}
}
