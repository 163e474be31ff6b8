// Package hdl implements a lexer and parser for signal references like
// "alu.in.x" or "alu.out[0:4]".
//
package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Dot
	BracketOpen
	BracketClose
	Colon
	Int
)

// An Item is a token returned by the lexer.
//
type Item struct {
	Type  Type
	Pos   int
	Value interface{}
}

type stateFn func(l *Lexer) stateFn

// A Lexer splits a signal reference into tokens.
//
type Lexer struct {
	input string
	start int
	pos   int
	width int
	items []Item
	state stateFn
}

// NewLexer returns a new lexer for the given input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next token. Once the end of input is reached, Lex returns
// EOF tokens.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		l.state = l.state(l)
		if l.state == nil {
			l.state = lexInit
		}
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

const eof = -1

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *Lexer) backup() { l.pos -= l.width }

func (l *Lexer) emit(t Type, v interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: v})
	l.start = l.pos
}

func lexInit(l *Lexer) stateFn {
	l.start = l.pos
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		for unicode.IsSpace(r) {
			r = l.next()
		}
		l.backup()
		l.start = l.pos
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case '0' <= r && r <= '9':
		return lexNumber
	case r == '.':
		l.emit(Dot, ".")
	case r == '[':
		l.emit(BracketOpen, "[")
	case r == ']':
		l.emit(BracketClose, "]")
	case r == ':':
		l.emit(Colon, ":")
	default:
		l.emit(Raw, r)
		return lexEOF
	}
	return nil
}

// lexNumber emits an Int, or a Raw token holding the digits if they do not
// fit in an int.
//
func lexNumber(l *Lexer) stateFn {
	r := l.next()
	for '0' <= r && r <= '9' {
		r = l.next()
	}
	if r != eof {
		l.backup()
	}
	s := l.input[l.start:l.pos]
	i, err := strconv.Atoi(s)
	if err != nil {
		l.emit(Raw, s)
		return lexEOF
	}
	l.emit(Int, i)
	return nil
}

func lexIdent(l *Lexer) stateFn {
	r := l.next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		r = l.next()
	}
	if r != eof {
		l.backup()
	}
	l.emit(Ident, l.input[l.start:l.pos])
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) stateFn {
	l.emit(EOF, "end of input")
	return lexEOF
}

// IsIdent returns true if s is a valid component or signal name.
//
func IsIdent(s string) bool {
	l := NewLexer(s)
	i := l.Lex()
	return i.Type == Ident && i.Pos == 0 && l.Lex().Type == EOF
}

// A Ref is a parsed signal reference.
//
type Ref struct {
	Path  []string // dot separated names
	Slice bool     // true if the reference ends with a [lo:hi] range
	Lo    int
	Hi    int
}

func (r Ref) String() string {
	var s string
	for i, n := range r.Path {
		if i > 0 {
			s += "."
		}
		s += n
	}
	if r.Slice {
		s += "[" + strconv.Itoa(r.Lo) + ":" + strconv.Itoa(r.Hi) + "]"
	}
	return s
}

// ParseRef parses a signal reference:
//
//	ref   = ident { "." ident } [ "[" int ":" int "]" ]
//
func ParseRef(ref string) (Ref, error) {
	var r Ref
	l := NewLexer(ref)
	i := l.Lex()
	for {
		if i.Type != Ident {
			return Ref{}, parseError(ref, i.Pos, "expected name")
		}
		r.Path = append(r.Path, i.Value.(string))
		i = l.Lex()
		if i.Type != Dot {
			break
		}
		i = l.Lex()
	}
	switch i.Type {
	case EOF:
		return r, nil
	case BracketOpen:
	default:
		return Ref{}, parseError(ref, i.Pos, "expected '.', '[' or end of input")
	}
	var err error
	if r.Lo, err = bound(ref, l.Lex(), "start"); err != nil {
		return Ref{}, err
	}
	if i = l.Lex(); i.Type != Colon {
		return Ref{}, parseError(ref, i.Pos, "expected ':'")
	}
	if r.Hi, err = bound(ref, l.Lex(), "end"); err != nil {
		return Ref{}, err
	}
	if i = l.Lex(); i.Type != BracketClose {
		return Ref{}, parseError(ref, i.Pos, "missing close bracket")
	}
	if i = l.Lex(); i.Type != EOF {
		return Ref{}, parseError(ref, i.Pos, "expected end of input")
	}
	r.Slice = true
	return r, nil
}

func bound(ref string, i Item, which string) (int, error) {
	switch i.Type {
	case Int:
		return i.Value.(int), nil
	case Raw:
		if s, ok := i.Value.(string); ok {
			return 0, parseError(ref, i.Pos, "slice "+which+" "+s+" out of range")
		}
	}
	return 0, parseError(ref, i.Pos, "missing slice "+which)
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
