package lexer

import (
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/source"
)

// Token is `{ kind, lexeme }` per spec.md §3.1: lexeme is a span into the
// source buffer, never materialized as a string until something asks for
// its text. Every token's lexeme lies inside the buffer and is non-empty
// except for EOF.
type Token struct {
	Kind  Kind
	Range source.Range

	// DiagID is set only when Kind == ILLEGAL; it names the diagnostic
	// already recorded for this token by the lexer, and Offset is the
	// offset at which the error began (may differ from Range.Start for
	// an error token that spans a whole malformed literal).
	DiagID diag.ID
	Offset source.Location
}

// Lexeme returns the token's source text.
func (t Token) Lexeme(buf *source.Buffer) string {
	return buf.Text(t.Range)
}

func (t Token) String() string {
	return t.Kind.String()
}
