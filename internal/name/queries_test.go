package name

import (
	"math/rand"
	"testing"
)

func TestRank(t *testing.T) {
	p5, p7 := pentagon[Abs](), heptagon[Abs]()
	tests := []struct {
		name string
		n    Name[Abs]
		want int
	}{
		{"nullitope", &Nullitope[Abs]{}, -1},
		{"point", &Point[Abs]{}, 0},
		{"dyad", &Dyad[Abs]{}, 1},
		{"triangle", &Triangle[Abs]{}, 2},
		{"simplex", &Simplex[Abs]{Rank: 4}, 4},
		{"cuboid", &Cuboid[Abs]{}, 3},
		{"pyramid adds one", &Pyramid[Abs]{Base: p5}, 3},
		{"prism adds one", &Prism[Abs]{Base: p5}, 3},
		{"tegum adds one", &Tegum[Abs]{Base: p5}, 3},
		{"antiprism adds one", &Antiprism[Abs]{Base: p5}, 3},
		{"petrial keeps rank", &Petrial[Abs]{Base: &Cuboid[Abs]{}}, 3},
		{"dual keeps rank", &Dual[Abs]{Base: p5}, 2},
		{"duopyramid sums plus one", &Multipyramid[Abs]{Bases: []Name[Abs]{p5, p7}}, 5},
		{"duoprism sums", &Multiprism[Abs]{Bases: []Name[Abs]{p5, p7}}, 4},
		{"duotegum sums", &Multitegum[Abs]{Bases: []Name[Abs]{p5, p7}}, 4},
		{"duocomb sums minus one", &Multicomb[Abs]{Bases: []Name[Abs]{p5, p7}}, 3},
		{"ditope stores its rank", &Ditope[Abs]{Base: p5, Rank: 3}, 3},
		{"compound ranks as its first component", &Compound[Abs]{Components: []Component[Abs]{{Count: 2, Name: p5}}}, 2},
	}
	for _, tt := range tests {
		got, ok := Rank(tt.n)
		if !ok || got != tt.want {
			t.Errorf("%s: Rank = %d, %v, want %d", tt.name, got, ok, tt.want)
		}
	}
}

func TestFacetCount(t *testing.T) {
	p5, p7 := pentagon[Abs](), heptagon[Abs]()
	tests := []struct {
		name string
		n    Name[Abs]
		want int
	}{
		{"triangle", &Triangle[Abs]{}, 3},
		{"pentagon", p5, 5},
		{"simplex", &Simplex[Abs]{Rank: 4}, 5},
		{"cuboid", &Cuboid[Abs]{}, 6},
		{"hyperblock", &Hyperblock[Abs]{Rank: 4}, 8},
		{"orthoplex", &Orthoplex[Abs]{Rank: 4}, 16},
		{"generic", &Generic[Abs]{Facets: 12, Rank: 3}, 12},
		{"pyramid", &Pyramid[Abs]{Base: p5}, 6},
		{"prism", &Prism[Abs]{Base: p5}, 12},
		{"tegum", &Tegum[Abs]{Base: p5}, 10},
		{"duopyramid multiplies", &Multipyramid[Abs]{Bases: []Name[Abs]{p5, p7}}, 35},
		{"duotegum multiplies", &Multitegum[Abs]{Bases: []Name[Abs]{p5, p7}}, 35},
		{"duoprism sums", &Multiprism[Abs]{Bases: []Name[Abs]{p5, p7}}, 12},
		{"duocomb sums", &Multicomb[Abs]{Bases: []Name[Abs]{p5, p7}}, 12},
		{"ditope", &Ditope[Abs]{Base: p5, Rank: 3}, 2},
		{"compound weights by multiplicity", &Compound[Abs]{Components: []Component[Abs]{
			{Count: 2, Name: p5}, {Count: 1, Name: &Triangle[Abs]{}},
		}}, 13},
	}
	for _, tt := range tests {
		got, ok := FacetCount(tt.n)
		if !ok || got != tt.want {
			t.Errorf("%s: FacetCount = %d, %v, want %d", tt.name, got, ok, tt.want)
		}
	}

	// Facet counts that cannot be read off the name report unknown.
	unknowns := []struct {
		name string
		n    Name[Abs]
	}{
		{"dual", &Dual[Abs]{Base: p5}},
		{"antiprism", &Antiprism[Abs]{Base: p5}},
		{"antitegum", &Antitegum[Abs]{Base: p5}},
		{"petrial", &Petrial[Abs]{Base: &Cuboid[Abs]{}}},
		{"hosotope", &Hosotope[Abs]{Base: p5, Rank: 3}},
		{"prism over a dual", &Prism[Abs]{Base: &Dual[Abs]{Base: p5}}},
	}
	for _, tt := range unknowns {
		if _, ok := FacetCount(tt.n); ok {
			t.Errorf("%s: FacetCount should be unknown", tt.name)
		}
	}
}

func TestIsValid(t *testing.T) {
	p5 := pentagon[Con64]()
	valid := []struct {
		name string
		n    Name[Con64]
	}{
		{"digon", &Polygon[Con64]{Regular: DefaultData[Con64, Regular](), N: 2}},
		{"irregular quadrilateral polygon", &Polygon[Con64]{Regular: Irregular[Con64](), N: 4}},
		{"simplex at threshold", &Simplex[Con64]{Regular: Irregular[Con64](), Rank: 3}},
		{"hyperblock at threshold", &Hyperblock[Con64]{Regular: Irregular[Con64](), Rank: 4}},
		{"generic", &Generic[Con64]{Facets: 2, Rank: 3}},
		{"duoprism", &Multiprism[Con64]{Bases: []Name[Con64]{p5, p5}}},
		{"compound", &Compound[Con64]{Components: []Component[Con64]{{Count: 2, Name: p5}}}},
	}
	for _, tt := range valid {
		if !IsValid(tt.n) {
			t.Errorf("%s should be valid", tt.name)
		}
	}

	invalid := []struct {
		name string
		n    Name[Con64]
	}{
		{"trigon has its own name", &Polygon[Con64]{Regular: Irregular[Con64](), N: 3}},
		{"non-irregular tetragon has its own name", &Polygon[Con64]{Regular: RegularAt[Con64](Vec{0, 0}), N: 4}},
		{"undersized polygon", &Polygon[Con64]{Regular: Irregular[Con64](), N: 1}},
		{"undersized simplex", &Simplex[Con64]{Regular: Irregular[Con64](), Rank: 2}},
		{"undersized hyperblock", &Hyperblock[Con64]{Regular: Irregular[Con64](), Rank: 3}},
		{"undersized orthoplex", &Orthoplex[Con64]{Regular: Irregular[Con64](), Rank: 2}},
		{"generic with too few facets", &Generic[Con64]{Facets: 1, Rank: 3}},
		{"generic below rank range", &Generic[Con64]{Facets: 5, Rank: 2}},
		{"generic above rank range", &Generic[Con64]{Facets: 5, Rank: 21}},
		{"single-base product", &Multiprism[Con64]{Bases: []Name[Con64]{p5}}},
		{"unflattened product", &Multiprism[Con64]{Bases: []Name[Con64]{
			p5, &Multiprism[Con64]{Bases: []Name[Con64]{p5, p5}},
		}}},
		{"empty compound", &Compound[Con64]{}},
		{"zero-count component", &Compound[Con64]{Components: []Component[Con64]{{Count: 0, Name: p5}}}},
		{"nested compound", &Compound[Con64]{Components: []Component[Con64]{
			{Count: 1, Name: &Compound[Con64]{Components: []Component[Con64]{{Count: 2, Name: p5}}}},
		}}},
		{"invalid base", &Pyramid[Con64]{Base: &Polygon[Con64]{Regular: Irregular[Con64](), N: 3}}},
	}
	for _, tt := range invalid {
		if IsValid(tt.n) {
			t.Errorf("%s should be invalid", tt.name)
		}
	}

	// Abstractly a tetragon is always a square, so the polygon name is
	// never valid at 4 sides.
	if IsValid(Name[Abs](&Polygon[Abs]{N: 4})) {
		t.Errorf("abstract 4-gon should be invalid")
	}
}

func TestConstructorOutputIsValid(t *testing.T) {
	// Every constructor result must satisfy the structural invariants.
	p5 := pentagon[Con64]()
	names := []Name[Con64]{
		MakePyramid(p5),
		MakePrism(MakePrism(p5)),
		MakeTegum(MakeTegum(p5)),
		MakeAntiprism(p5),
		MakeDual(p5, CenterAt[Con64](Vec{0, 0})),
		MakeDitope(p5, 3),
		MakeHosotope(p5, 3),
		MakePetrial(Name[Con64](&Cuboid[Con64]{Regular: Irregular[Con64]()})),
		MakeMultipyramid([]Name[Con64]{p5, p5, &Point[Con64]{}}),
		MakeMultiprism([]Name[Con64]{p5, &Dyad[Con64]{}, heptagon[Con64]()}),
		MakeMultitegum([]Name[Con64]{p5, &Dyad[Con64]{}}),
		MakeMulticomb([]Name[Con64]{p5, heptagon[Con64]()}),
		MakeCompound([]Component[Con64]{{Count: 2, Name: p5}, {Count: 1, Name: heptagon[Con64]()}}),
		MakeGeneric[Con64](7, 4),
		MakeSimplex[Con64](Irregular[Con64](), 6),
	}
	for _, n := range names {
		if !IsValid(n) {
			t.Errorf("constructor output %s should be valid", Print(n))
		}
	}
}

func TestRandomSequencesStayValid(t *testing.T) {
	// Validity must survive arbitrary chains of public constructors, so
	// run a seeded corpus of random operation sequences up to depth 6.
	rng := rand.New(rand.NewSource(7))

	atoms := []func() Name[Con64]{
		func() Name[Con64] { return &Point[Con64]{} },
		func() Name[Con64] { return &Dyad[Con64]{} },
		func() Name[Con64] { return &Triangle[Con64]{Regular: Irregular[Con64]()} },
		func() Name[Con64] { return pentagon[Con64]() },
		func() Name[Con64] { return &Cuboid[Con64]{Regular: RegularAt[Con64](Vec{0, 0, 0})} },
		func() Name[Con64] { return &Simplex[Con64]{Regular: Irregular[Con64](), Rank: 25} },
	}

	// A dualizing center in the space the polytope spans, optionally
	// nudged off the origin to exercise the mismatched-center paths.
	center := func(n Name[Con64], off float64) Data[Vec] {
		rank, ok := Rank(n)
		if !ok || rank < 1 {
			rank = 1
		}
		v := make(Vec, rank)
		v[0] = off
		return CenterAt[Con64](v)
	}

	ops := []func(Name[Con64]) Name[Con64]{
		MakePyramid[Con64],
		MakePrism[Con64],
		MakeTegum[Con64],
		MakeAntiprism[Con64],
		MakePetrial[Con64],
		func(n Name[Con64]) Name[Con64] { return MakeDual(n, center(n, 0)) },
		func(n Name[Con64]) Name[Con64] { return MakeDual(n, center(n, 1)) },
		func(n Name[Con64]) Name[Con64] {
			rank, ok := Rank(n)
			if !ok {
				return n
			}
			return MakeDitope(n, rank+1)
		},
		func(n Name[Con64]) Name[Con64] {
			rank, ok := Rank(n)
			if !ok {
				return n
			}
			return MakeHosotope(n, rank+1)
		},
		func(n Name[Con64]) Name[Con64] {
			return MakeMultipyramid([]Name[Con64]{n, &Dyad[Con64]{}})
		},
		func(n Name[Con64]) Name[Con64] {
			return MakeMultiprism([]Name[Con64]{n, pentagon[Con64]()})
		},
		func(n Name[Con64]) Name[Con64] {
			return MakeMultitegum([]Name[Con64]{n, heptagon[Con64]()})
		},
		func(n Name[Con64]) Name[Con64] {
			return MakeCompound([]Component[Con64]{{Count: 2, Name: n}})
		},
	}

	for i := 0; i < 300; i++ {
		n := atoms[rng.Intn(len(atoms))]()
		depth := 1 + rng.Intn(6)
		for d := 0; d < depth; d++ {
			n = ops[rng.Intn(len(ops))](n)
		}
		if !IsValid(n) {
			t.Fatalf("case %d: random constructor chain produced invalid name %s", i, Print(n))
		}
	}
}
