package lexer

import (
	"testing"

	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/source"
)

func scanAll(t *testing.T, input string) ([]Token, *diag.Engine, *source.Buffer) {
	t.Helper()
	buf, err := source.New("<test>", []byte(input))
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	engine := diag.New(buf)
	l := New(buf, engine)

	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks, engine, buf
}

func TestNextTokenBasics(t *testing.T) {
	input := "var x = 5\nx += 10"

	tests := []struct {
		kind    Kind
		lexeme  string
	}{
		{VAR, "var"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "5"},
		{NEWLINE, "\n"},
		{IDENT, "x"},
		{PLUS_EQ, "+="},
		{INT, "10"},
		{EOF, ""},
	}

	toks, engine, buf := scanAll(t, input)
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}

	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.kind {
			t.Errorf("token %d: kind = %s, want %s", i, toks[i].Kind, tt.kind)
		}
		if got := toks[i].Lexeme(buf); tt.kind != EOF && got != tt.lexeme {
			t.Errorf("token %d: lexeme = %q, want %q", i, got, tt.lexeme)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		kinds []Kind
	}{
		{"==", []Kind{EQ, EOF}},
		{"=", []Kind{ASSIGN, EOF}},
		{"&&", []Kind{AND_AND, EOF}},
		{"&", []Kind{AMP, EOF}},
		{"...", []Kind{DOTDOTDOT, EOF}},
		{"..<", []Kind{DOTDOTLT, EOF}},
		{"<=", []Kind{LEQ, EOF}},
		{"<", []Kind{LT, EOF}},
		{"/=", []Kind{SLASH_EQ, EOF}},
		{"/", []Kind{SLASH, EOF}},
	}

	for _, tt := range tests {
		toks, engine, _ := scanAll(t, tt.input)
		if engine.HadError() {
			t.Fatalf("%q: unexpected diagnostics: %v", tt.input, engine.Entries())
		}
		if len(toks) != len(tt.kinds) {
			t.Fatalf("%q: got %d tokens, want %d", tt.input, len(toks), len(tt.kinds))
		}
		for i, k := range tt.kinds {
			if toks[i].Kind != k {
				t.Errorf("%q: token %d kind = %s, want %s", tt.input, i, toks[i].Kind, k)
			}
		}
	}
}

func TestCommentsNest(t *testing.T) {
	toks, engine, buf := scanAll(t, "/* a /* b */ c */x")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	if len(toks) != 2 || toks[0].Kind != IDENT || toks[0].Lexeme(buf) != "x" {
		t.Fatalf("got %+v, want a single IDENT(x) then EOF", toks)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, engine, _ := scanAll(t, "/* never closes")
	if !engine.HadError() {
		t.Fatal("expected an error for an unterminated block comment")
	}
}

func TestLineComment(t *testing.T) {
	toks, engine, buf := scanAll(t, "x // trailing comment\ny")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	want := []Kind{IDENT, NEWLINE, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %+v", toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[0].Lexeme(buf) != "x" || toks[2].Lexeme(buf) != "y" {
		t.Fatalf("got %+v", toks)
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"123", INT},
		{"123.45", FLOAT},
		{"1.5e10", FLOAT},
		{"1e+10", FLOAT},
		{"1e-10", FLOAT},
		{"1...10", INT}, // leading integer accepted, "..." starts a range token
	}
	for _, tt := range tests {
		toks, engine, buf := scanAll(t, tt.input)
		if engine.HadError() {
			t.Fatalf("%q: unexpected diagnostics: %v", tt.input, engine.Entries())
		}
		if toks[0].Kind != tt.kind {
			t.Errorf("%q: kind = %s, want %s (lexeme %q)", tt.input, toks[0].Kind, tt.kind, toks[0].Lexeme(buf))
		}
	}
}

func TestRangeAfterInteger(t *testing.T) {
	toks, engine, _ := scanAll(t, "1..10")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	want := []Kind{INT, DOTDOTDOT, ILLEGAL}
	// "1..10" lexes as INT(1), then ".." needs a third char to be a valid
	// range operator; here the third char is a digit, so ".." alone is not
	// matched and the token following INT(1) is the illegal ".." span,
	// then INT(10). We only assert the leading INT is accepted whole.
	if toks[0].Kind != want[0] {
		t.Fatalf("got %+v", toks)
	}
}

func TestStringLiteral(t *testing.T) {
	toks, engine, buf := scanAll(t, `"hello\nworld"`)
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	if toks[0].Kind != STRING {
		t.Fatalf("got %s", toks[0].Kind)
	}
	if toks[0].Lexeme(buf) != `"hello\nworld"` {
		t.Fatalf("got %q", toks[0].Lexeme(buf))
	}
}

func TestStringBadEscape(t *testing.T) {
	toks, engine, _ := scanAll(t, `"a\qb"`)
	if !engine.HadError() {
		t.Fatal("expected a diagnostic for the invalid escape")
	}
	if len(toks) != 2 || toks[0].Kind != ILLEGAL {
		t.Fatalf("got %+v, want a single ILLEGAL token spanning the whole literal", toks)
	}
	d := engine.Entries()[0]
	if int(d.Range.Start) != 2 {
		t.Errorf("diagnostic offset = %d, want 2", d.Range.Start)
	}
}

func TestStringNewlineIsFatal(t *testing.T) {
	_, engine, _ := scanAll(t, "\"a\nb\"")
	if !engine.HadError() {
		t.Fatal("expected a diagnostic for the newline inside the string")
	}
}

func TestUnterminatedString(t *testing.T) {
	_, engine, _ := scanAll(t, `"never closes`)
	if !engine.HadError() {
		t.Fatal("expected a diagnostic for the unterminated string")
	}
}

func TestIdentifierAndKeywords(t *testing.T) {
	toks, engine, buf := scanAll(t, "var let if elif else while break continue return true false myVar _x")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	want := []struct {
		kind   Kind
		lexeme string
	}{
		{VAR, "var"}, {LET, "let"}, {IF, "if"}, {ELIF, "elif"}, {ELSE, "else"},
		{WHILE, "while"}, {BREAK, "break"}, {CONTINUE, "continue"}, {RETURN, "return"},
		{TRUE, "true"}, {FALSE, "false"}, {IDENT, "myVar"}, {IDENT, "_x"},
	}
	for i, tt := range want {
		if toks[i].Kind != tt.kind || toks[i].Lexeme(buf) != tt.lexeme {
			t.Errorf("token %d: got %s %q, want %s %q", i, toks[i].Kind, toks[i].Lexeme(buf), tt.kind, tt.lexeme)
		}
	}
}

func TestInvalidByte(t *testing.T) {
	_, engine, _ := scanAll(t, "var x = 5 $ 6")
	if !engine.HadError() {
		t.Fatal("expected a diagnostic for the invalid byte")
	}
}
