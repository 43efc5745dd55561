package name

// Name is a language-independent representation of a polytope name, in a
// syntax tree-like structure.
//
// Many node kinds are subject to invariants which keep downstream
// translation code modular (see IsValid). Instantiating nodes directly
// does not guarantee those invariants: route construction through the
// Make* rewrites and the canonical constructors, which do.
//
// The interface is sealed; the node kinds below are the complete set.
type Name[R Regime] interface {
	node(R)
}

// Nullitope is the empty polytope, of rank -1.
type Nullitope[R Regime] struct{}

// Point is the unique polytope of rank 0.
type Point[R Regime] struct{}

// Dyad is the unique polytope of rank 1.
type Dyad[R Regime] struct{}

// Triangle is a polygon with three sides.
type Triangle[R Regime] struct {
	// Regular records whether the triangle is regular, and its center if so.
	Regular Data[Regular]
}

// Quadrilateral is any quadrilateral that isn't fully irregular. Its
// subtype is phantom in the abstract regime, where every such
// quadrilateral is a square.
type Quadrilateral[R Regime] struct {
	Kind Data[QuadKind]
}

// Polygon is a polygon that has no more specific name: any side count
// except 3, and 4 only when known to be irregular.
type Polygon[R Regime] struct {
	Regular Data[Regular]

	// N is the side count of the polygon.
	N int
}

// Simplex is a simplex of rank at least 3; lower ranks have hardcoded
// names.
type Simplex[R Regime] struct {
	Regular Data[Regular]
	Rank    int
}

// Cuboid is the rank-3 block. It sits between the quadrilateral family and
// Hyperblock, which starts at rank 4.
type Cuboid[R Regime] struct {
	Regular Data[Regular]
}

// Hyperblock is a block of rank at least 4.
type Hyperblock[R Regime] struct {
	Regular Data[Regular]
	Rank    int
}

// Orthoplex is a polytope whose opposite vertices form an orthogonal
// basis, of rank at least 3.
type Orthoplex[R Regime] struct {
	Regular Data[Regular]
	Rank    int
}

// Generic names a polytope by facet count and rank alone. The facet count
// must be at least 2 and the rank between 3 and 20.
type Generic[R Regime] struct {
	Facets int
	Rank   int
}

// Pyramid is a pyramid over a base.
type Pyramid[R Regime] struct {
	Base Name[R]
}

// Prism is a prism over a base.
type Prism[R Regime] struct {
	Base Name[R]
}

// Tegum is a tegum (bipyramid generalization) over a base.
type Tegum[R Regime] struct {
	Base Name[R]
}

// Multipyramid is a pyramid product of at least two bases, none of which
// is itself a multipyramid.
type Multipyramid[R Regime] struct {
	Bases []Name[R]
}

// Multiprism is a prism product of at least two bases, none of which is
// itself a multiprism.
type Multiprism[R Regime] struct {
	Bases []Name[R]
}

// Multitegum is a tegum product of at least two bases, none of which is
// itself a multitegum.
type Multitegum[R Regime] struct {
	Bases []Name[R]
}

// Multicomb is a comb product of at least two bases, none of which is
// itself a multicomb.
type Multicomb[R Regime] struct {
	Bases []Name[R]
}

// Antiprism is an antiprism over a base.
type Antiprism[R Regime] struct {
	Base Name[R]
}

// Antitegum is an antitegum over a base; it is the dual of the antiprism
// over the same base, taken at Center.
type Antitegum[R Regime] struct {
	Base   Name[R]
	Center Data[Vec]
}

// Petrial is the Petrie dual of a polyhedron.
type Petrial[R Regime] struct {
	Base Name[R]
}

// Dual is the dual of a base about a center.
type Dual[R Regime] struct {
	Base   Name[R]
	Center Data[Vec]
}

// Ditope is a ditope over a base, with an explicit rank.
type Ditope[R Regime] struct {
	Base Name[R]
	Rank int
}

// Hosotope is a hosotope over a base, with an explicit rank.
type Hosotope[R Regime] struct {
	Base Name[R]
	Rank int
}

// Small is the "small" variant of a polytope.
type Small[R Regime] struct {
	Base Name[R]
}

// Great is the "great" variant of a polytope.
type Great[R Regime] struct {
	Base Name[R]
}

// Stellated is a stellation of a polytope.
type Stellated[R Regime] struct {
	Base Name[R]
}

// Component is one member of a compound, with its multiplicity.
type Component[R Regime] struct {
	Count int
	Name  Name[R]
}

// Compound is a weighted compound of at least one component; components
// never nest another compound and are merged by equal name.
type Compound[R Regime] struct {
	Components []Component[R]
}

func (*Nullitope[R]) node(R)     {}
func (*Point[R]) node(R)         {}
func (*Dyad[R]) node(R)          {}
func (*Triangle[R]) node(R)      {}
func (*Quadrilateral[R]) node(R) {}
func (*Polygon[R]) node(R)       {}
func (*Simplex[R]) node(R)       {}
func (*Cuboid[R]) node(R)        {}
func (*Hyperblock[R]) node(R)    {}
func (*Orthoplex[R]) node(R)     {}
func (*Generic[R]) node(R)       {}
func (*Pyramid[R]) node(R)       {}
func (*Prism[R]) node(R)         {}
func (*Tegum[R]) node(R)         {}
func (*Multipyramid[R]) node(R)  {}
func (*Multiprism[R]) node(R)    {}
func (*Multitegum[R]) node(R)    {}
func (*Multicomb[R]) node(R)     {}
func (*Antiprism[R]) node(R)     {}
func (*Antitegum[R]) node(R)     {}
func (*Petrial[R]) node(R)       {}
func (*Dual[R]) node(R)          {}
func (*Ditope[R]) node(R)        {}
func (*Hosotope[R]) node(R)      {}
func (*Small[R]) node(R)         {}
func (*Great[R]) node(R)         {}
func (*Stellated[R]) node(R)     {}
func (*Compound[R]) node(R)      {}

// Equal reports structural equality of two names. Phantom payloads compare
// as equal to anything, so two abstract names are equal exactly when their
// tree shapes and integer payloads match.
func Equal[R Regime](a, b Name[R]) bool {
	switch an := a.(type) {
	case *Nullitope[R]:
		_, ok := b.(*Nullitope[R])
		return ok
	case *Point[R]:
		_, ok := b.(*Point[R])
		return ok
	case *Dyad[R]:
		_, ok := b.(*Dyad[R])
		return ok
	case *Triangle[R]:
		bn, ok := b.(*Triangle[R])
		return ok && an.Regular.EqOr(bn.Regular, true)
	case *Quadrilateral[R]:
		bn, ok := b.(*Quadrilateral[R])
		return ok && an.Kind.EqOr(bn.Kind, true)
	case *Polygon[R]:
		bn, ok := b.(*Polygon[R])
		return ok && an.N == bn.N && an.Regular.EqOr(bn.Regular, true)
	case *Simplex[R]:
		bn, ok := b.(*Simplex[R])
		return ok && an.Rank == bn.Rank && an.Regular.EqOr(bn.Regular, true)
	case *Cuboid[R]:
		bn, ok := b.(*Cuboid[R])
		return ok && an.Regular.EqOr(bn.Regular, true)
	case *Hyperblock[R]:
		bn, ok := b.(*Hyperblock[R])
		return ok && an.Rank == bn.Rank && an.Regular.EqOr(bn.Regular, true)
	case *Orthoplex[R]:
		bn, ok := b.(*Orthoplex[R])
		return ok && an.Rank == bn.Rank && an.Regular.EqOr(bn.Regular, true)
	case *Generic[R]:
		bn, ok := b.(*Generic[R])
		return ok && an.Facets == bn.Facets && an.Rank == bn.Rank
	case *Pyramid[R]:
		bn, ok := b.(*Pyramid[R])
		return ok && Equal(an.Base, bn.Base)
	case *Prism[R]:
		bn, ok := b.(*Prism[R])
		return ok && Equal(an.Base, bn.Base)
	case *Tegum[R]:
		bn, ok := b.(*Tegum[R])
		return ok && Equal(an.Base, bn.Base)
	case *Multipyramid[R]:
		bn, ok := b.(*Multipyramid[R])
		return ok && equalBases(an.Bases, bn.Bases)
	case *Multiprism[R]:
		bn, ok := b.(*Multiprism[R])
		return ok && equalBases(an.Bases, bn.Bases)
	case *Multitegum[R]:
		bn, ok := b.(*Multitegum[R])
		return ok && equalBases(an.Bases, bn.Bases)
	case *Multicomb[R]:
		bn, ok := b.(*Multicomb[R])
		return ok && equalBases(an.Bases, bn.Bases)
	case *Antiprism[R]:
		bn, ok := b.(*Antiprism[R])
		return ok && Equal(an.Base, bn.Base)
	case *Antitegum[R]:
		bn, ok := b.(*Antitegum[R])
		return ok && an.Center.EqOr(bn.Center, true) && Equal(an.Base, bn.Base)
	case *Petrial[R]:
		bn, ok := b.(*Petrial[R])
		return ok && Equal(an.Base, bn.Base)
	case *Dual[R]:
		bn, ok := b.(*Dual[R])
		return ok && an.Center.EqOr(bn.Center, true) && Equal(an.Base, bn.Base)
	case *Ditope[R]:
		bn, ok := b.(*Ditope[R])
		return ok && an.Rank == bn.Rank && Equal(an.Base, bn.Base)
	case *Hosotope[R]:
		bn, ok := b.(*Hosotope[R])
		return ok && an.Rank == bn.Rank && Equal(an.Base, bn.Base)
	case *Small[R]:
		bn, ok := b.(*Small[R])
		return ok && Equal(an.Base, bn.Base)
	case *Great[R]:
		bn, ok := b.(*Great[R])
		return ok && Equal(an.Base, bn.Base)
	case *Stellated[R]:
		bn, ok := b.(*Stellated[R])
		return ok && Equal(an.Base, bn.Base)
	case *Compound[R]:
		bn, ok := b.(*Compound[R])
		if !ok || len(an.Components) != len(bn.Components) {
			return false
		}
		for i := range an.Components {
			if an.Components[i].Count != bn.Components[i].Count {
				return false
			}
			if !Equal(an.Components[i].Name, bn.Components[i].Name) {
				return false
			}
		}
		return true
	}
	return false
}

func equalBases[R Regime](a, b []Name[R]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
