package name

import (
	"strconv"
	"strings"
)

// Print renders a name in its compact text form. The form is
// self-describing and round-trips through Parse for the same regime.
// Abstract names carry no payloads; concrete names spell out regularity,
// quadrilateral subtypes and dualizing centers.
func Print[R Regime](n Name[R]) string {
	var b strings.Builder
	printName(&b, n)
	return b.String()
}

func printName[R Regime](b *strings.Builder, n Name[R]) {
	switch v := n.(type) {
	case *Nullitope[R]:
		b.WriteString("nullitope")
	case *Point[R]:
		b.WriteString("point")
	case *Dyad[R]:
		b.WriteString("dyad")
	case *Triangle[R]:
		b.WriteString("triangle")
		printRegular(b, v.Regular, false)
	case *Quadrilateral[R]:
		b.WriteString("quad")
		if v.Kind.Present() {
			switch v.Kind.Unwrap() {
			case QuadSquare:
				b.WriteString("[sq]")
			case QuadRectangle:
				b.WriteString("[rect]")
			case QuadOrthodiagonal:
				b.WriteString("[ortho]")
			}
		}
	case *Polygon[R]:
		b.WriteString("polygon[")
		b.WriteString(strconv.Itoa(v.N))
		printRegular(b, v.Regular, true)
		b.WriteByte(']')
	case *Simplex[R]:
		printRanked(b, "simplex", v.Rank, v.Regular)
	case *Cuboid[R]:
		b.WriteString("cuboid")
		printRegular(b, v.Regular, false)
	case *Hyperblock[R]:
		printRanked(b, "hyperblock", v.Rank, v.Regular)
	case *Orthoplex[R]:
		printRanked(b, "orthoplex", v.Rank, v.Regular)
	case *Generic[R]:
		b.WriteString("generic[")
		b.WriteString(strconv.Itoa(v.Facets))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(v.Rank))
		b.WriteByte(']')
	case *Pyramid[R]:
		printWrapped(b, "pyramid", v.Base)
	case *Prism[R]:
		printWrapped(b, "prism", v.Base)
	case *Tegum[R]:
		printWrapped(b, "tegum", v.Base)
	case *Antiprism[R]:
		printWrapped(b, "antiprism", v.Base)
	case *Petrial[R]:
		printWrapped(b, "petrial", v.Base)
	case *Small[R]:
		printWrapped(b, "small", v.Base)
	case *Great[R]:
		printWrapped(b, "great", v.Base)
	case *Stellated[R]:
		printWrapped(b, "stellated", v.Base)
	case *Dual[R]:
		printCentered(b, "dual", v.Base, v.Center)
	case *Antitegum[R]:
		printCentered(b, "antitegum", v.Base, v.Center)
	case *Ditope[R]:
		printRankedWrap(b, "ditope", v.Base, v.Rank)
	case *Hosotope[R]:
		printRankedWrap(b, "hosotope", v.Base, v.Rank)
	case *Multipyramid[R]:
		printList(b, "multipyramid", v.Bases)
	case *Multiprism[R]:
		printList(b, "multiprism", v.Bases)
	case *Multitegum[R]:
		printList(b, "multitegum", v.Bases)
	case *Multicomb[R]:
		printList(b, "multicomb", v.Bases)
	case *Compound[R]:
		b.WriteString("compound(")
		for i, c := range v.Components {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(c.Count))
			b.WriteByte('*')
			printName(b, c.Name)
		}
		b.WriteByte(')')
	}
}

func printRegular(b *strings.Builder, regular Data[Regular], inBrackets bool) {
	if !regular.Present() {
		return
	}
	open, closing := "[", "]"
	if inBrackets {
		open, closing = ",", ""
	}
	r := regular.Unwrap()
	if !r.Yes {
		b.WriteString(open)
		b.WriteString("irr")
		b.WriteString(closing)
		return
	}
	b.WriteString(open)
	b.WriteString("reg(")
	printCoords(b, r.Center)
	b.WriteByte(')')
	b.WriteString(closing)
}

func printCoords(b *strings.Builder, v Vec) {
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
}

func printRanked(b *strings.Builder, head string, rank int, regular Data[Regular]) {
	b.WriteString(head)
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(rank))
	printRegular(b, regular, true)
	b.WriteByte(']')
}

func printWrapped[R Regime](b *strings.Builder, head string, base Name[R]) {
	b.WriteString(head)
	b.WriteByte('(')
	printName(b, base)
	b.WriteByte(')')
}

func printCentered[R Regime](b *strings.Builder, head string, base Name[R], center Data[Vec]) {
	b.WriteString(head)
	b.WriteByte('(')
	printName(b, base)
	if center.Present() {
		b.WriteString(",at(")
		printCoords(b, center.Unwrap())
		b.WriteByte(')')
	}
	b.WriteByte(')')
}

func printRankedWrap[R Regime](b *strings.Builder, head string, base Name[R], rank int) {
	b.WriteString(head)
	b.WriteByte('(')
	printName(b, base)
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(rank))
	b.WriteByte(')')
}

func printList[R Regime](b *strings.Builder, head string, bases []Name[R]) {
	b.WriteString(head)
	b.WriteByte('(')
	for i, base := range bases {
		if i > 0 {
			b.WriteByte(',')
		}
		printName(b, base)
	}
	b.WriteByte(')')
}
