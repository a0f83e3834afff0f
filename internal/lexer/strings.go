package lexer

import (
	"unicode/utf8"

	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/source"
)

const escapeAlphabet = "0\\tnr\"'"

// lexString scans a double-quoted string literal: begin → string →
// (escape | end), per spec.md §4.1. An invalid escape is reported locally
// (the DFA still advances to the closing quote) and turns the whole
// literal into a single ILLEGAL token, per the scenario in spec.md §8.6. A
// physical newline before the closing quote is fatal for the literal:
// scanning stops immediately and the token is ILLEGAL. Reaching EOF first
// is an unterminated string, reported at the opening quote.
func (l *Lexer) lexString(start source.Location) Token {
	l.advance() // consume opening quote

	badEscape := false
	var badEscapeOffset source.Location

	for {
		switch l.ch {
		case '"':
			l.advance()
			if badEscape {
				r := source.NewRange(start, l.loc())
				l.diags.Errorf(diag.BadEscape, source.NewRange(badEscapeOffset, badEscapeOffset+1), escapeCharAt(l, badEscapeOffset))
				return Token{Kind: ILLEGAL, Range: r, DiagID: diag.BadEscape, Offset: badEscapeOffset}
			}
			return l.tok(STRING, start)

		case 0:
			l.diags.Errorf(diag.UnterminatedString, source.NewRange(start, start+1))
			return Token{Kind: ILLEGAL, Range: source.NewRange(start, l.loc()), DiagID: diag.UnterminatedString, Offset: start}

		case '\n', '\r':
			l.diags.Errorf(diag.NewlineInString, source.NewRange(start, l.loc()))
			return Token{Kind: ILLEGAL, Range: source.NewRange(start, l.loc()), DiagID: diag.NewlineInString, Offset: start}

		case '\\':
			escapeOffset := l.loc()
			l.advance()
			if l.ch == 0 {
				l.diags.Errorf(diag.UnterminatedString, source.NewRange(start, start+1))
				return Token{Kind: ILLEGAL, Range: source.NewRange(start, l.loc()), DiagID: diag.UnterminatedString, Offset: start}
			}
			if !isValidEscape(l.ch) && !badEscape {
				badEscape = true
				badEscapeOffset = escapeOffset
			}
			l.advance()

		default:
			l.advance()
		}
	}
}

func isValidEscape(r rune) bool {
	for _, c := range escapeAlphabet {
		if c == r {
			return true
		}
	}
	return false
}

// escapeCharAt re-reads the escape character immediately following the
// backslash at off, for the diagnostic's %c argument.
func escapeCharAt(l *Lexer, off source.Location) rune {
	i := int(off) + 1
	if i >= len(l.data) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.data[i:])
	return r
}
