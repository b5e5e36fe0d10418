package token

// Kind identifies the lexical class of a Token.
type Kind int8

//nolint:revive
const (
	ILLEGAL Kind = iota
	EOF

	StringLiteral
	Identifier
	Integer
	CharLiteral
	Double
	Reserved

	Plus
	Minus
	Multiply
	Divide
	Less
	Greater
	LessEqual
	GreaterEqual
	Equal
	NotEqual
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Assign
	Semicolon
	Colon
	Comma
)

var kindNames = [...]string{
	ILLEGAL:       "illegal token",
	EOF:           "end of file",
	StringLiteral: "string literal",
	Identifier:    "identifier",
	Integer:       "integer literal",
	CharLiteral:   "character literal",
	Double:        "double literal",
	Reserved:      "reserved word",
	Plus:          "+",
	Minus:         "-",
	Multiply:      "*",
	Divide:        "/",
	Less:          "<",
	Greater:       ">",
	LessEqual:     "<=",
	GreaterEqual:  ">=",
	Equal:         "==",
	NotEqual:      "!=",
	LeftParen:     "(",
	RightParen:    ")",
	LeftBrace:     "{",
	RightBrace:    "}",
	Assign:        "=",
	Semicolon:     ";",
	Colon:         ":",
	Comma:         ",",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown token"
}

// reserved is the closed set of reserved words of C0-extended. LookupIdent
// classifies a scanned identifier lexeme against this set.
var reserved = map[string]bool{
	"const": true, "void": true, "int": true, "char": true, "double": true,
	"struct": true, "if": true, "else": true, "switch": true, "case": true,
	"default": true, "while": true, "for": true, "do": true, "return": true,
	"break": true, "continue": true, "print": true, "scan": true,
}

// LookupIdent returns Reserved if lit is one of the reserved words, or
// Identifier otherwise.
func LookupIdent(lit string) Kind {
	if reserved[lit] {
		return Reserved
	}
	return Identifier
}

// Value carries the payload of a Token: at most one of Str, Int, or Float is
// meaningful, depending on Kind.
type Value struct {
	Str   string  // Identifier, Reserved, StringLiteral content
	Int   int32   // Integer, CharLiteral (byte value), single-char punctuation
	Float float64 // Double
}

// Token is one lexical unit: its kind, payload, and source span.
type Token struct {
	Kind       Kind
	Value      Value
	Start, End Position
}
