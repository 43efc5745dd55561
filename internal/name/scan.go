package name

import "unicode"

// Token types for the compact name syntax.
type tokenType int

const (
	tokEOF tokenType = iota
	tokIdent
	tokInt
	tokFloat
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokStar
	tokIllegal
)

type token struct {
	typ    tokenType
	lexeme string
	offset int
}

// scanner walks a serialized name one rune at a time. The syntax is pure
// ASCII, so no rune decoding is needed.
type scanner struct {
	input    string
	position int
	ch       byte
}

func newScanner(input string) *scanner {
	s := &scanner{input: input}
	if len(input) > 0 {
		s.ch = input[0]
	}
	return s
}

func (s *scanner) readChar() {
	s.position++
	if s.position >= len(s.input) {
		s.ch = 0
	} else {
		s.ch = s.input[s.position]
	}
}

func (s *scanner) next() token {
	for s.ch == ' ' || s.ch == '\t' {
		s.readChar()
	}

	start := s.position
	switch {
	case s.ch == 0:
		return token{typ: tokEOF, offset: start}
	case s.ch == '(':
		s.readChar()
		return token{typ: tokLParen, lexeme: "(", offset: start}
	case s.ch == ')':
		s.readChar()
		return token{typ: tokRParen, lexeme: ")", offset: start}
	case s.ch == '[':
		s.readChar()
		return token{typ: tokLBracket, lexeme: "[", offset: start}
	case s.ch == ']':
		s.readChar()
		return token{typ: tokRBracket, lexeme: "]", offset: start}
	case s.ch == ',':
		s.readChar()
		return token{typ: tokComma, lexeme: ",", offset: start}
	case s.ch == '*':
		s.readChar()
		return token{typ: tokStar, lexeme: "*", offset: start}
	case s.ch == '-' || isDigit(s.ch):
		return s.scanNumber()
	case isLetter(s.ch):
		for isLetter(s.ch) || isDigit(s.ch) {
			s.readChar()
		}
		return token{typ: tokIdent, lexeme: s.input[start:s.position], offset: start}
	default:
		ch := s.ch
		s.readChar()
		return token{typ: tokIllegal, lexeme: string(ch), offset: start}
	}
}

func (s *scanner) scanNumber() token {
	start := s.position
	isFloat := false
	if s.ch == '-' {
		s.readChar()
	}
	for isDigit(s.ch) {
		s.readChar()
	}
	if s.ch == '.' {
		isFloat = true
		s.readChar()
		for isDigit(s.ch) {
			s.readChar()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		isFloat = true
		s.readChar()
		if s.ch == '+' || s.ch == '-' {
			s.readChar()
		}
		for isDigit(s.ch) {
			s.readChar()
		}
	}
	typ := tokInt
	if isFloat {
		typ = tokFloat
	}
	return token{typ: typ, lexeme: s.input[start:s.position], offset: start}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}
