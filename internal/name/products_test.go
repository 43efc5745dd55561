package name

import "testing"

func heptagon[R Regime]() Name[R] {
	return &Polygon[R]{Regular: DefaultData[R, Regular](), N: 7}
}

func TestMultipyramidAbsorbsPoints(t *testing.T) {
	tests := []struct {
		name  string
		bases []Name[Abs]
		want  Name[Abs]
	}{
		{
			name:  "three points fuse into a triangle",
			bases: []Name[Abs]{&Point[Abs]{}, &Point[Abs]{}, &Point[Abs]{}},
			want:  &Triangle[Abs]{},
		},
		{
			name:  "dyad and triangle fuse into a 4-simplex",
			bases: []Name[Abs]{&Dyad[Abs]{}, &Triangle[Abs]{}},
			want:  &Simplex[Abs]{Rank: 4},
		},
		{
			name:  "a single point is one pyramid application",
			bases: []Name[Abs]{&Point[Abs]{}},
			want:  &Point[Abs]{},
		},
		{
			name:  "nullitope factors are no-ops",
			bases: []Name[Abs]{&Nullitope[Abs]{}, &Dyad[Abs]{}, &Point[Abs]{}},
			want:  &Triangle[Abs]{},
		},
		{
			name:  "empty product is the nullitope",
			bases: nil,
			want:  &Nullitope[Abs]{},
		},
	}
	for _, tt := range tests {
		got := MakeMultipyramid(tt.bases)
		if !Equal(got, tt.want) {
			t.Errorf("%s: got %s, want %s", tt.name, Print(got), Print(tt.want))
		}
	}
}

func TestMultiprismAbsorbsBlocks(t *testing.T) {
	// A pentagon and two dyads: the dyads fuse into a rectangle, which
	// sorts before the pentagon by facet count.
	got := MakeMultiprism([]Name[Con64]{pentagon[Con64](), &Dyad[Con64]{}, &Dyad[Con64]{}})
	mp, ok := got.(*Multiprism[Con64])
	if !ok {
		t.Fatalf("got %s, want a multiprism", Print(got))
	}
	if len(mp.Bases) != 2 {
		t.Fatalf("got %d bases, want 2", len(mp.Bases))
	}
	if !Equal(mp.Bases[0], MakeRectangle[Con64]()) || !Equal(mp.Bases[1], pentagon[Con64]()) {
		t.Errorf("bases = %s, want rectangle then pentagon", Print(got))
	}

	// A nullitope factor collapses the whole prism product.
	got = MakeMultiprism([]Name[Con64]{pentagon[Con64](), &Nullitope[Con64]{}})
	if !Equal(got, Name[Con64](&Nullitope[Con64]{})) {
		t.Errorf("prism product with a nullitope = %s, want nullitope", Print(got))
	}

	// Cuboid plus dyad: four prism units in total, one rank 4 block.
	got = MakeMultiprism([]Name[Con64]{&Cuboid[Con64]{Regular: Irregular[Con64]()}, &Dyad[Con64]{}})
	if !Equal(got, Name[Con64](&Hyperblock[Con64]{Regular: Irregular[Con64](), Rank: 4})) {
		t.Errorf("cuboid times dyad = %s, want rank 4 hyperblock", Print(got))
	}
}

func TestMultitegumAbsorbsOrthoplexes(t *testing.T) {
	got := MakeMultitegum([]Name[Con64]{&Dyad[Con64]{}, &Dyad[Con64]{}, &Dyad[Con64]{}})
	if !Equal(got, Name[Con64](&Orthoplex[Con64]{Regular: Irregular[Con64](), Rank: 3})) {
		t.Errorf("three dyads = %s, want rank 3 orthoplex", Print(got))
	}

	// A concrete rectangle is not a tegum product of dyads.
	got = MakeMultitegum([]Name[Con64]{MakeRectangle[Con64](), &Dyad[Con64]{}})
	if _, ok := got.(*Tegum[Con64]); !ok {
		t.Errorf("rectangle tegum dyad = %s, want a wrapped tegum", Print(got))
	}
}

func TestProductOrderIndependence(t *testing.T) {
	p5, p7 := pentagon[Con64](), heptagon[Con64]()
	ab := MakeMultiprism([]Name[Con64]{p5, p7})
	ba := MakeMultiprism([]Name[Con64]{p7, p5})
	if !Equal(ab, ba) {
		t.Errorf("prism product should not depend on factor order: %s vs %s", Print(ab), Print(ba))
	}
	mp, ok := ab.(*Multiprism[Con64])
	if !ok || !Equal(mp.Bases[0], p5) {
		t.Errorf("bases should be ordered by facet count, got %s", Print(ab))
	}
}

func TestProductFlattening(t *testing.T) {
	p5, p7 := pentagon[Con64](), heptagon[Con64]()

	// A nested product of the same kind splices into its parent, and a
	// spliced dyad is still recognized as a prism unit.
	inner := &Multiprism[Con64]{Bases: []Name[Con64]{p7, &Dyad[Con64]{}}}
	got := MakeMultiprism([]Name[Con64]{p5, inner})
	prism, ok := got.(*Prism[Con64])
	if !ok {
		t.Fatalf("got %s, want a prism over a duoprism", Print(got))
	}
	mp, ok := prism.Base.(*Multiprism[Con64])
	if !ok || len(mp.Bases) != 2 {
		t.Fatalf("prism base = %s, want a 2-factor multiprism", Print(prism.Base))
	}

	// Nested combs flatten too.
	comb := MakeMulticomb([]Name[Abs]{
		pentagon[Abs](),
		&Multicomb[Abs]{Bases: []Name[Abs]{heptagon[Abs](), pentagon[Abs]()}},
	})
	mc, ok := comb.(*Multicomb[Abs])
	if !ok || len(mc.Bases) != 3 {
		t.Fatalf("comb product = %s, want 3 flattened bases", Print(comb))
	}
}

func TestProductAssociativity(t *testing.T) {
	a, b := pentagon[Con64](), heptagon[Con64]()
	c := Name[Con64](&Pyramid[Con64]{Base: pentagon[Con64]()})

	flat := MakeMultipyramid([]Name[Con64]{a, b, c})
	grouped := MakeMultipyramid([]Name[Con64]{MakeMultipyramid([]Name[Con64]{a, b}), c})
	reversed := MakeMultipyramid([]Name[Con64]{c, b, a})
	if !Equal(flat, grouped) {
		t.Errorf("grouping changed the product: %s vs %s", Print(flat), Print(grouped))
	}
	if !Equal(flat, reversed) {
		t.Errorf("order changed the product: %s vs %s", Print(flat), Print(reversed))
	}

	// Grouping must not hide absorbable atoms either: a dyad spliced out
	// of a nested product still counts its pyramid units.
	flat = MakeMultipyramid([]Name[Con64]{a, b, &Dyad[Con64]{}})
	grouped = MakeMultipyramid([]Name[Con64]{a, MakeMultipyramid([]Name[Con64]{b, &Dyad[Con64]{}})})
	if !Equal(flat, grouped) {
		t.Errorf("nested absorbable atom broke associativity: %s vs %s", Print(flat), Print(grouped))
	}
}

func TestProductIdempotence(t *testing.T) {
	// Re-running the governing constructor on a canonical product's own
	// children reproduces the product.
	products := []Name[Con64]{
		MakeMultipyramid([]Name[Con64]{pentagon[Con64](), heptagon[Con64](), &Dyad[Con64]{}}),
		MakeMultiprism([]Name[Con64]{pentagon[Con64](), heptagon[Con64]()}),
		MakeMultitegum([]Name[Con64]{pentagon[Con64](), heptagon[Con64]()}),
		MakeMulticomb([]Name[Con64]{pentagon[Con64](), heptagon[Con64]()}),
	}
	for _, p := range products {
		var again Name[Con64]
		switch v := p.(type) {
		case *Multipyramid[Con64]:
			again = MakeMultipyramid(v.Bases)
		case *Multiprism[Con64]:
			again = MakeMultiprism(v.Bases)
		case *Multitegum[Con64]:
			again = MakeMultitegum(v.Bases)
		case *Multicomb[Con64]:
			again = MakeMulticomb(v.Bases)
		default:
			t.Fatalf("expected a product node, got %s", Print(p))
		}
		if !Equal(again, p) {
			t.Errorf("refolding %s gave %s", Print(p), Print(again))
		}
	}
}

func TestMulticomb(t *testing.T) {
	// Combs absorb nothing: a lone base passes through.
	if !Equal(MakeMulticomb([]Name[Abs]{pentagon[Abs]()}), pentagon[Abs]()) {
		t.Errorf("single-base comb should collapse to the base")
	}
	if !Equal(MakeMulticomb([]Name[Abs]{pentagon[Abs](), &Nullitope[Abs]{}}), Name[Abs](&Nullitope[Abs]{})) {
		t.Errorf("comb with a nullitope factor should collapse")
	}
}

func TestCompound(t *testing.T) {
	p5, p7 := pentagon[Con64](), heptagon[Con64]()

	// Equal components merge by summing multiplicities.
	got := MakeCompound([]Component[Con64]{{Count: 2, Name: p5}, {Count: 3, Name: p5}})
	c, ok := got.(*Compound[Con64])
	if !ok || len(c.Components) != 1 || c.Components[0].Count != 5 {
		t.Errorf("merged compound = %s, want 5 pentagons", Print(got))
	}

	// Nested compounds flatten with multiplicities multiplied through.
	inner := &Compound[Con64]{Components: []Component[Con64]{{Count: 3, Name: p5}}}
	got = MakeCompound([]Component[Con64]{{Count: 2, Name: inner}})
	c, ok = got.(*Compound[Con64])
	if !ok || len(c.Components) != 1 || c.Components[0].Count != 6 {
		t.Errorf("flattened compound = %s, want 6 pentagons", Print(got))
	}

	// Components are ordered canonically.
	got = MakeCompound([]Component[Con64]{{Count: 1, Name: p7}, {Count: 1, Name: p5}})
	c, ok = got.(*Compound[Con64])
	if !ok || !Equal(c.Components[0].Name, p5) {
		t.Errorf("compound components should sort by facet count, got %s", Print(got))
	}

	// A lone unit component collapses to its bare name.
	if !Equal(MakeCompound([]Component[Con64]{{Count: 1, Name: p5}}), p5) {
		t.Errorf("singleton compound should collapse")
	}

	// Empty and zero-count compounds degenerate to the nullitope.
	if !Equal(MakeCompound([]Component[Con64]{{Count: 0, Name: p5}}), Name[Con64](&Nullitope[Con64]{})) {
		t.Errorf("zero-count compound should collapse to the nullitope")
	}
}
