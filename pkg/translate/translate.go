// Package translate is the boundary between the name algebra and natural
// language. The core never formats prose; a localization layer implements
// Language and Text drives it over a name tree, passing the structural
// parameters (ranks, side counts, multiplicities) each hook needs.
package translate

import (
	"github.com/polytopia/polyname/internal/name"
)

// Options carries rendering directives a language may honor.
type Options struct {
	// Count is the grammatical number of the phrase being built.
	Count int
	// Capitalize asks for an initial capital on the result.
	Capitalize bool
}

// Single returns the default options for one object.
func Single() Options { return Options{Count: 1} }

// Product identifies a multiproduct for rendering.
type Product int

const (
	ProductPyramid Product = iota
	ProductPrism
	ProductTegum
	ProductComb
)

// Modifier identifies a name-decorating operation whose rendering is
// usually a fixed adjective.
type Modifier int

const (
	ModifierSmall Modifier = iota
	ModifierGreat
	ModifierStellated
	ModifierPetrial
)

// Component is one rendered compound member with its multiplicity.
type Component struct {
	Count int
	Text  string
}

// Language is the capability a localization layer provides. Every hook
// receives the already-rendered bases it builds on; recursion order and
// tree walking stay in this package.
type Language interface {
	Nullitope(opt Options) string
	Point(opt Options) string
	Dyad(opt Options) string

	// Polygon renders an n-sided polygon; triangles and quadrilaterals
	// arrive here with n = 3 and 4.
	Polygon(n int, opt Options) string
	Simplex(rank int, opt Options) string
	Block(rank int, opt Options) string
	Orthoplex(rank int, opt Options) string
	Generic(facets, rank int, opt Options) string

	Pyramid(base string, opt Options) string
	Prism(base string, opt Options) string
	Tegum(base string, opt Options) string
	Antiprism(base string, opt Options) string
	Antitegum(base string, opt Options) string
	Dual(base string, opt Options) string
	Ditope(base string, rank int, opt Options) string
	Hosotope(base string, rank int, opt Options) string

	Modified(m Modifier, base string, opt Options) string
	Product(p Product, bases []string, opt Options) string
	Compound(components []Component, opt Options) string
}

// Text renders a name through the given language.
func Text[R name.Regime](l Language, n name.Name[R], opt Options) string {
	inner := opt
	inner.Capitalize = false

	switch v := n.(type) {
	case *name.Nullitope[R]:
		return l.Nullitope(opt)
	case *name.Point[R]:
		return l.Point(opt)
	case *name.Dyad[R]:
		return l.Dyad(opt)
	case *name.Triangle[R]:
		return l.Polygon(3, opt)
	case *name.Quadrilateral[R]:
		return l.Polygon(4, opt)
	case *name.Polygon[R]:
		return l.Polygon(v.N, opt)
	case *name.Simplex[R]:
		return l.Simplex(v.Rank, opt)
	case *name.Cuboid[R]:
		return l.Block(3, opt)
	case *name.Hyperblock[R]:
		return l.Block(v.Rank, opt)
	case *name.Orthoplex[R]:
		return l.Orthoplex(v.Rank, opt)
	case *name.Generic[R]:
		return l.Generic(v.Facets, v.Rank, opt)
	case *name.Pyramid[R]:
		return l.Pyramid(Text(l, v.Base, inner), opt)
	case *name.Prism[R]:
		return l.Prism(Text(l, v.Base, inner), opt)
	case *name.Tegum[R]:
		return l.Tegum(Text(l, v.Base, inner), opt)
	case *name.Antiprism[R]:
		return l.Antiprism(Text(l, v.Base, inner), opt)
	case *name.Antitegum[R]:
		return l.Antitegum(Text(l, v.Base, inner), opt)
	case *name.Petrial[R]:
		return l.Modified(ModifierPetrial, Text(l, v.Base, inner), opt)
	case *name.Dual[R]:
		return l.Dual(Text(l, v.Base, inner), opt)
	case *name.Ditope[R]:
		return l.Ditope(Text(l, v.Base, inner), v.Rank, opt)
	case *name.Hosotope[R]:
		return l.Hosotope(Text(l, v.Base, inner), v.Rank, opt)
	case *name.Small[R]:
		return l.Modified(ModifierSmall, Text(l, v.Base, inner), opt)
	case *name.Great[R]:
		return l.Modified(ModifierGreat, Text(l, v.Base, inner), opt)
	case *name.Stellated[R]:
		return l.Modified(ModifierStellated, Text(l, v.Base, inner), opt)
	case *name.Multipyramid[R]:
		return l.Product(ProductPyramid, texts(l, v.Bases, inner), opt)
	case *name.Multiprism[R]:
		return l.Product(ProductPrism, texts(l, v.Bases, inner), opt)
	case *name.Multitegum[R]:
		return l.Product(ProductTegum, texts(l, v.Bases, inner), opt)
	case *name.Multicomb[R]:
		return l.Product(ProductComb, texts(l, v.Bases, inner), opt)
	case *name.Compound[R]:
		components := make([]Component, len(v.Components))
		for i, c := range v.Components {
			member := inner
			member.Count = c.Count
			components[i] = Component{Count: c.Count, Text: Text(l, c.Name, member)}
		}
		return l.Compound(components, opt)
	}
	return ""
}

func texts[R name.Regime](l Language, bases []name.Name[R], opt Options) []string {
	out := make([]string, len(bases))
	for i, base := range bases {
		out[i] = Text(l, base, opt)
	}
	return out
}
