package lexer

import "github.com/jtlang/juicec/internal/source"

// numState names the states of the numeric-literal DFA from spec.md §4.1:
//
//	begin → integer [→ beginDecimal → decimal]
//	              [→ beginExponent [→ beginSignedExponent] → decimalWithExponent]
type numState int

const (
	numInteger numState = iota
	numBeginDecimal
	numDecimal
	numBeginExponent
	numBeginSignedExponent
	numDecimalWithExponent
)

// lexNumber scans an integer or floating-point literal starting at the
// current digit. The token is INT unless the DFA ever leaves the integer
// state, in which case it is FLOAT.
func (l *Lexer) lexNumber(start source.Location) Token {
	state := numInteger
	l.consumeDigits()

	for {
		switch state {
		case numInteger:
			if l.ch == '.' && isDigit(l.peek()) {
				// "." followed by a digit opens a decimal part.
				l.advance()
				state = numBeginDecimal
				continue
			}
			if l.ch == '.' && l.peek() == '.' {
				// Leading integer is accepted as-is; the range operator
				// ("..." / "..<") starts fresh at this position.
				return l.tok(INT, start)
			}
			if l.ch == 'e' || l.ch == 'E' {
				l.advance()
				state = numBeginExponent
				continue
			}
			return l.tok(INT, start)

		case numBeginDecimal:
			l.consumeDigits()
			state = numDecimal
			continue

		case numDecimal:
			if l.ch == 'e' || l.ch == 'E' {
				l.advance()
				state = numBeginExponent
				continue
			}
			return l.tok(FLOAT, start)

		case numBeginExponent:
			if l.ch == '+' || l.ch == '-' {
				l.advance()
				state = numBeginSignedExponent
				continue
			}
			l.consumeDigits()
			state = numDecimalWithExponent
			continue

		case numBeginSignedExponent:
			l.consumeDigits()
			state = numDecimalWithExponent
			continue

		case numDecimalWithExponent:
			return l.tok(FLOAT, start)
		}
	}
}

func (l *Lexer) consumeDigits() {
	for isDigit(l.ch) {
		l.advance()
	}
}
