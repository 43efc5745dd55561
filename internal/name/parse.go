package name

import "strconv"

// Parse reads a name back from its compact text form. The tree is
// reconstructed verbatim (no re-canonicalization) and then checked
// against the structural invariants, so a malformed or tampered stored
// name is rejected here, at the boundary, rather than surfacing later.
func Parse[R Regime](input string) (Name[R], error) {
	p := &parser[R]{sc: newScanner(input)}
	p.advance()
	n, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if p.cur.typ != tokEOF {
		return nil, NewParseError(p.cur.offset, "trailing input %q", p.cur.lexeme)
	}
	if !IsValid(n) {
		return nil, NewInvalidNameError(input)
	}
	return n, nil
}

type parser[R Regime] struct {
	sc  *scanner
	cur token
}

func (p *parser[R]) advance() { p.cur = p.sc.next() }

func (p *parser[R]) expect(typ tokenType, what string) error {
	if p.cur.typ != typ {
		return NewParseError(p.cur.offset, "expected %s, got %q", what, p.cur.lexeme)
	}
	p.advance()
	return nil
}

func (p *parser[R]) parseName() (Name[R], error) {
	if p.cur.typ != tokIdent {
		return nil, NewParseError(p.cur.offset, "expected a name, got %q", p.cur.lexeme)
	}
	head := p.cur.lexeme
	p.advance()

	switch head {
	case "nullitope":
		return &Nullitope[R]{}, nil
	case "point":
		return &Point[R]{}, nil
	case "dyad":
		return &Dyad[R]{}, nil
	case "triangle":
		regular, err := p.parseOptRegular()
		if err != nil {
			return nil, err
		}
		return &Triangle[R]{Regular: regular}, nil
	case "quad":
		return p.parseQuad()
	case "cuboid":
		regular, err := p.parseOptRegular()
		if err != nil {
			return nil, err
		}
		return &Cuboid[R]{Regular: regular}, nil
	case "polygon":
		n, regular, err := p.parseRankedArgs()
		if err != nil {
			return nil, err
		}
		return &Polygon[R]{Regular: regular, N: n}, nil
	case "simplex":
		rank, regular, err := p.parseRankedArgs()
		if err != nil {
			return nil, err
		}
		return &Simplex[R]{Regular: regular, Rank: rank}, nil
	case "hyperblock":
		rank, regular, err := p.parseRankedArgs()
		if err != nil {
			return nil, err
		}
		return &Hyperblock[R]{Regular: regular, Rank: rank}, nil
	case "orthoplex":
		rank, regular, err := p.parseRankedArgs()
		if err != nil {
			return nil, err
		}
		return &Orthoplex[R]{Regular: regular, Rank: rank}, nil
	case "generic":
		if err := p.expect(tokLBracket, "'['"); err != nil {
			return nil, err
		}
		facets, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokComma, "','"); err != nil {
			return nil, err
		}
		rank, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRBracket, "']'"); err != nil {
			return nil, err
		}
		return &Generic[R]{Facets: facets, Rank: rank}, nil
	case "pyramid", "prism", "tegum", "antiprism", "petrial", "small", "great", "stellated":
		base, err := p.parseWrapped()
		if err != nil {
			return nil, err
		}
		switch head {
		case "pyramid":
			return &Pyramid[R]{Base: base}, nil
		case "prism":
			return &Prism[R]{Base: base}, nil
		case "tegum":
			return &Tegum[R]{Base: base}, nil
		case "antiprism":
			return &Antiprism[R]{Base: base}, nil
		case "petrial":
			return &Petrial[R]{Base: base}, nil
		case "small":
			return &Small[R]{Base: base}, nil
		case "great":
			return &Great[R]{Base: base}, nil
		default:
			return &Stellated[R]{Base: base}, nil
		}
	case "dual", "antitegum":
		base, center, err := p.parseCentered()
		if err != nil {
			return nil, err
		}
		if head == "dual" {
			return &Dual[R]{Base: base, Center: center}, nil
		}
		return &Antitegum[R]{Base: base, Center: center}, nil
	case "ditope", "hosotope":
		base, rank, err := p.parseRankedWrap()
		if err != nil {
			return nil, err
		}
		if head == "ditope" {
			return &Ditope[R]{Base: base, Rank: rank}, nil
		}
		return &Hosotope[R]{Base: base, Rank: rank}, nil
	case "multipyramid", "multiprism", "multitegum", "multicomb":
		bases, err := p.parseNameList()
		if err != nil {
			return nil, err
		}
		switch head {
		case "multipyramid":
			return &Multipyramid[R]{Bases: bases}, nil
		case "multiprism":
			return &Multiprism[R]{Bases: bases}, nil
		case "multitegum":
			return &Multitegum[R]{Bases: bases}, nil
		default:
			return &Multicomb[R]{Bases: bases}, nil
		}
	case "compound":
		return p.parseCompound()
	default:
		return nil, NewParseError(p.cur.offset, "unknown name %q", head)
	}
}

// parseOptRegular reads an optional bracketed regularity payload:
// "[irr]" or "[reg(x,y,...)]".
func (p *parser[R]) parseOptRegular() (Data[Regular], error) {
	if p.cur.typ != tokLBracket {
		return DefaultData[R, Regular](), nil
	}
	p.advance()
	regular, err := p.parseRegular()
	if err != nil {
		return Data[Regular]{}, err
	}
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return Data[Regular]{}, err
	}
	return regular, nil
}

func (p *parser[R]) parseRegular() (Data[Regular], error) {
	if p.cur.typ != tokIdent {
		return Data[Regular]{}, NewParseError(p.cur.offset, "expected 'irr' or 'reg', got %q", p.cur.lexeme)
	}
	switch p.cur.lexeme {
	case "irr":
		p.advance()
		return NewData[R](Regular{}), nil
	case "reg":
		p.advance()
		if err := p.expect(tokLParen, "'('"); err != nil {
			return Data[Regular]{}, err
		}
		center, err := p.parseCoords()
		if err != nil {
			return Data[Regular]{}, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return Data[Regular]{}, err
		}
		return NewData[R](Regular{Yes: true, Center: center}), nil
	default:
		return Data[Regular]{}, NewParseError(p.cur.offset, "expected 'irr' or 'reg', got %q", p.cur.lexeme)
	}
}

func (p *parser[R]) parseQuad() (Name[R], error) {
	if p.cur.typ != tokLBracket {
		return &Quadrilateral[R]{Kind: DefaultData[R, QuadKind]()}, nil
	}
	p.advance()
	if p.cur.typ != tokIdent {
		return nil, NewParseError(p.cur.offset, "expected a quadrilateral kind, got %q", p.cur.lexeme)
	}
	var kind QuadKind
	switch p.cur.lexeme {
	case "sq":
		kind = QuadSquare
	case "rect":
		kind = QuadRectangle
	case "ortho":
		kind = QuadOrthodiagonal
	default:
		return nil, NewParseError(p.cur.offset, "unknown quadrilateral kind %q", p.cur.lexeme)
	}
	p.advance()
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}
	return &Quadrilateral[R]{Kind: NewData[R](kind)}, nil
}

// parseRankedArgs reads "[n]" or "[n,<regular>]".
func (p *parser[R]) parseRankedArgs() (int, Data[Regular], error) {
	if err := p.expect(tokLBracket, "'['"); err != nil {
		return 0, Data[Regular]{}, err
	}
	n, err := p.parseInt()
	if err != nil {
		return 0, Data[Regular]{}, err
	}
	regular := DefaultData[R, Regular]()
	if p.cur.typ == tokComma {
		p.advance()
		regular, err = p.parseRegular()
		if err != nil {
			return 0, Data[Regular]{}, err
		}
	}
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return 0, Data[Regular]{}, err
	}
	return n, regular, nil
}

func (p *parser[R]) parseWrapped() (Name[R], error) {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	base, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return base, nil
}

// parseCentered reads "(base)" or "(base,at(x,y,...))".
func (p *parser[R]) parseCentered() (Name[R], Data[Vec], error) {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, Data[Vec]{}, err
	}
	base, err := p.parseName()
	if err != nil {
		return nil, Data[Vec]{}, err
	}
	center := DefaultData[R, Vec]()
	if p.cur.typ == tokComma {
		p.advance()
		if p.cur.typ != tokIdent || p.cur.lexeme != "at" {
			return nil, Data[Vec]{}, NewParseError(p.cur.offset, "expected 'at', got %q", p.cur.lexeme)
		}
		p.advance()
		if err := p.expect(tokLParen, "'('"); err != nil {
			return nil, Data[Vec]{}, err
		}
		coords, err := p.parseCoords()
		if err != nil {
			return nil, Data[Vec]{}, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, Data[Vec]{}, err
		}
		center = NewData[R](coords)
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, Data[Vec]{}, err
	}
	return base, center, nil
}

func (p *parser[R]) parseRankedWrap() (Name[R], int, error) {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, 0, err
	}
	base, err := p.parseName()
	if err != nil {
		return nil, 0, err
	}
	if err := p.expect(tokComma, "','"); err != nil {
		return nil, 0, err
	}
	rank, err := p.parseInt()
	if err != nil {
		return nil, 0, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, 0, err
	}
	return base, rank, nil
}

func (p *parser[R]) parseNameList() ([]Name[R], error) {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var bases []Name[R]
	for {
		base, err := p.parseName()
		if err != nil {
			return nil, err
		}
		bases = append(bases, base)
		if p.cur.typ != tokComma {
			break
		}
		p.advance()
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return bases, nil
}

func (p *parser[R]) parseCompound() (Name[R], error) {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var components []Component[R]
	for {
		count, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokStar, "'*'"); err != nil {
			return nil, err
		}
		inner, err := p.parseName()
		if err != nil {
			return nil, err
		}
		components = append(components, Component[R]{Count: count, Name: inner})
		if p.cur.typ != tokComma {
			break
		}
		p.advance()
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return &Compound[R]{Components: components}, nil
}

func (p *parser[R]) parseInt() (int, error) {
	if p.cur.typ != tokInt {
		return 0, NewParseError(p.cur.offset, "expected an integer, got %q", p.cur.lexeme)
	}
	n, err := strconv.Atoi(p.cur.lexeme)
	if err != nil {
		return 0, NewParseError(p.cur.offset, "bad integer %q", p.cur.lexeme)
	}
	p.advance()
	return n, nil
}

func (p *parser[R]) parseCoords() (Vec, error) {
	var v Vec
	for {
		if p.cur.typ != tokInt && p.cur.typ != tokFloat {
			return nil, NewParseError(p.cur.offset, "expected a coordinate, got %q", p.cur.lexeme)
		}
		x, err := strconv.ParseFloat(p.cur.lexeme, 64)
		if err != nil {
			return nil, NewParseError(p.cur.offset, "bad coordinate %q", p.cur.lexeme)
		}
		v = append(v, x)
		p.advance()
		if p.cur.typ != tokComma {
			return v, nil
		}
		p.advance()
	}
}
