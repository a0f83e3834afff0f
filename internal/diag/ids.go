package diag

// ID enumerates every diagnostic the pipeline can emit. Each ID owns a
// message template consumed by Diagnostic.Message via fmt-style verbs.
type ID int

const (
	// Lexer diagnostics.
	InvalidByte ID = iota
	UnterminatedString
	UnterminatedBlockComment
	BadEscape
	NewlineInString
	MalformedNumber

	// Parser diagnostics.
	UnexpectedToken
	ExpectedToken
	ExpectedStatementTerminator
	MissingElse
	ExpectedExpression

	// Type checker diagnostics.
	TypeMismatch
	UnresolvedName
	LiteralOverflow
	LValueRequired
	Redeclaration
	BranchTypeMismatch
	NotBoolean
	NotArithmetic

	// I/O and subprocess diagnostics.
	FileNotFound
	LinkerNotFound
	LinkerFailed
	TempFileFailed
)

var templates = map[ID]string{
	InvalidByte:              "invalid character %q",
	UnterminatedString:       "unterminated string literal",
	UnterminatedBlockComment: "unterminated block comment",
	BadEscape:                "invalid escape sequence '\\%c'",
	NewlineInString:          "newline in string literal",
	MalformedNumber:          "malformed numeric literal %q",

	UnexpectedToken:             "unexpected token %s",
	ExpectedToken:               "expected %s, found %s",
	ExpectedStatementTerminator: "expected statement terminator, found %s",
	MissingElse:                 "if-expression requires an else branch",
	ExpectedExpression:          "expected expression, found %s",

	TypeMismatch:       "type mismatch: expected %s, got %s",
	UnresolvedName:     "undefined name %q",
	LiteralOverflow:    "literal %s does not fit in type %s",
	LValueRequired:     "cannot assign to immutable variable %q",
	Redeclaration:      "%q is already declared in this scope",
	BranchTypeMismatch: "if-expression branches have incompatible types: %s and %s",
	NotBoolean:         "expected Bool, got %s",
	NotArithmetic:      "expected an arithmetic type, got %s",

	FileNotFound:    "cannot read %q: %s",
	LinkerNotFound:  "could not locate system linker %q on PATH",
	LinkerFailed:    "linker exited with status %d",
	TempFileFailed:  "failed to create temporary file: %s",
}
