// Package lexer converts a source.Buffer's bytes into a lazy sequence of
// tokens. It uses two small state machines, one for numeric literals and
// one for string literals (see numbers.go and strings.go), and recovers
// locally from any single invalid byte by emitting an ILLEGAL token.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/source"
)

// Lexer is a lazy producer of tokens over a single Buffer. Repeatedly
// calling Next eventually returns an EOF token and continues to do so.
type Lexer struct {
	buf   *source.Buffer
	data  []byte
	diags *diag.Engine

	pos     int  // offset of ch
	nextPos int  // offset just past ch
	ch      rune // current rune, 0 at EOF
}

// New constructs a Lexer over buf, reporting any lexical errors to diags.
func New(buf *source.Buffer, diags *diag.Engine) *Lexer {
	l := &Lexer{buf: buf, data: buf.Bytes(), diags: diags}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	if l.nextPos >= len(l.data) {
		l.pos = len(l.data)
		l.nextPos = len(l.data) + 1
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRune(l.data[l.nextPos:])
	l.pos = l.nextPos
	l.ch = r
	l.nextPos += size
}

func (l *Lexer) peek() rune {
	if l.nextPos >= len(l.data) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.data[l.nextPos:])
	return r
}

func (l *Lexer) atEOF() bool { return l.pos >= len(l.data) }

func (l *Lexer) loc() source.Location { return source.Location(l.pos) }

// Next scans and returns the next token, silently consuming whitespace and
// comments first.
func (l *Lexer) Next() Token {
	for {
		if l.skipWhitespaceExceptNewline() {
			continue
		}
		if l.ch == '/' && l.peek() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peek() == '*' {
			if ok := l.skipBlockComment(); !ok {
				return l.illegalFrom(diag.UnterminatedBlockComment, l.loc())
			}
			continue
		}
		break
	}

	start := l.loc()

	if l.atEOF() {
		return Token{Kind: EOF, Range: source.NewRange(start, start)}
	}

	switch {
	case l.ch == '\n':
		l.advance()
		return l.tok(NEWLINE, start)
	case l.ch == '\r':
		l.advance()
		if l.ch == '\n' {
			l.advance()
		}
		return l.tok(NEWLINE, start)
	case isIdentStart(l.ch):
		return l.lexIdent(start)
	case isDigit(l.ch):
		return l.lexNumber(start)
	case l.ch == '"':
		return l.lexString(start)
	}

	return l.lexOperator(start)
}

func (l *Lexer) tok(k Kind, start source.Location) Token {
	return Token{Kind: k, Range: source.NewRange(start, l.loc())}
}

// illegalFrom records the diagnostic and returns an ILLEGAL token covering
// [start, current).
func (l *Lexer) illegalFrom(id diag.ID, start source.Location, args ...interface{}) Token {
	end := l.loc()
	r := source.NewRange(start, end)
	l.diags.Errorf(id, r, args...)
	return Token{Kind: ILLEGAL, Range: r, DiagID: id, Offset: start}
}

// skipWhitespaceExceptNewline consumes spaces, tabs and form feeds (not
// newlines, which are significant tokens). Returns true if it consumed
// anything, so the caller can re-check for a comment start.
func (l *Lexer) skipWhitespaceExceptNewline() bool {
	consumed := false
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\f' || l.ch == '\v' {
		l.advance()
		consumed = true
	}
	return consumed
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.advance()
	}
}

// skipBlockComment consumes a /* ... */ comment, nestable: "/* a /* b */ c */"
// closes only at the final "*/". Returns false if EOF is reached first.
func (l *Lexer) skipBlockComment() bool {
	depth := 0
	for {
		if l.ch == 0 {
			return false
		}
		if l.ch == '/' && l.peek() == '*' {
			depth++
			l.advance()
			l.advance()
			continue
		}
		if l.ch == '*' && l.peek() == '/' {
			depth--
			l.advance()
			l.advance()
			if depth == 0 {
				return true
			}
			continue
		}
		l.advance()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *Lexer) lexIdent(start source.Location) Token {
	for isIdentPart(l.ch) {
		l.advance()
	}
	lexeme := l.buf.Text(source.NewRange(start, l.loc()))
	return l.tok(LookupIdent(lexeme), start)
}

// lexOperator handles delimiters and operators, applying maximal munch to
// every two-character operator named in spec.md §4.1.
func (l *Lexer) lexOperator(start source.Location) Token {
	ch := l.ch
	l.advance()

	two := func(second rune, k Kind) (Token, bool) {
		if l.ch == second {
			l.advance()
			return l.tok(k, start), true
		}
		return Token{}, false
	}

	switch ch {
	case '(':
		return l.tok(LPAREN, start)
	case ')':
		return l.tok(RPAREN, start)
	case '{':
		return l.tok(LBRACE, start)
	case '}':
		return l.tok(RBRACE, start)
	case '[':
		return l.tok(LBRACKET, start)
	case ']':
		return l.tok(RBRACKET, start)
	case ':':
		return l.tok(COLON, start)
	case ',':
		return l.tok(COMMA, start)
	case ';':
		return l.tok(SEMI, start)
	case '@':
		return l.tok(AT, start)
	case '~':
		return l.tok(TILDE, start)
	case '^':
		return l.tok(CARET, start)
	case '+':
		if t, ok := two('=', PLUS_EQ); ok {
			return t
		}
		return l.tok(PLUS, start)
	case '-':
		if t, ok := two('=', MINUS_EQ); ok {
			return t
		}
		return l.tok(MINUS, start)
	case '*':
		if t, ok := two('=', STAR_EQ); ok {
			return t
		}
		return l.tok(STAR, start)
	case '/':
		if t, ok := two('=', SLASH_EQ); ok {
			return t
		}
		return l.tok(SLASH, start)
	case '%':
		if t, ok := two('=', PCT_EQ); ok {
			return t
		}
		return l.tok(PCT, start)
	case '=':
		if t, ok := two('=', EQ); ok {
			return t
		}
		return l.tok(ASSIGN, start)
	case '!':
		if t, ok := two('=', NEQ); ok {
			return t
		}
		return l.tok(BANG, start)
	case '<':
		if t, ok := two('=', LEQ); ok {
			return t
		}
		return l.tok(LT, start)
	case '>':
		if t, ok := two('=', GEQ); ok {
			return t
		}
		return l.tok(GT, start)
	case '&':
		if t, ok := two('&', AND_AND); ok {
			return t
		}
		return l.tok(AMP, start)
	case '|':
		if t, ok := two('|', OR_OR); ok {
			return t
		}
		return l.tok(PIPE, start)
	case '.':
		if l.ch == '.' {
			l.advance()
			if l.ch == '.' {
				l.advance()
				return l.tok(DOTDOTDOT, start)
			}
			if l.ch == '<' {
				l.advance()
				return l.tok(DOTDOTLT, start)
			}
			// ".." with no third character is not a recognized operator;
			// report the whole span as illegal and resynchronize there.
			return l.illegalFrom(diag.InvalidByte, start, l.buf.Text(source.NewRange(start, l.loc())))
		}
		return l.illegalFrom(diag.InvalidByte, start, string(ch))
	}

	return l.illegalFrom(diag.InvalidByte, start, string(ch))
}
