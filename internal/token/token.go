package token

import (
	"fmt"
	"unicode/utf8"
)

// Token represents a classified lexeme. Tokens do not store their absolute
// position in the source, only their length, so spans are recovered by
// summing lengths.
type Token struct {
	Kind    Kind
	Text    string
	Imm     ImmediateKind
	Keyword Keyword
	Op      Op
	Len     int
}

// NewIdentifier creates an identifier token
func NewIdentifier(name string) Token {
	return Token{Kind: Identifier, Text: name, Len: utf8.RuneCountInString(name)}
}

// NewInteger creates an integer immediate. The literal is kept as written.
func NewInteger(text string) Token {
	return Token{Kind: Immediate, Imm: Integer, Text: text, Len: utf8.RuneCountInString(text)}
}

// NewFloat creates a floating-point immediate. The literal is kept as written.
func NewFloat(text string) Token {
	return Token{Kind: Immediate, Imm: Float, Text: text, Len: utf8.RuneCountInString(text)}
}

// NewString creates a string immediate, the text excludes the quotes
func NewString(text string) Token {
	return Token{Kind: Immediate, Imm: String, Text: text, Len: utf8.RuneCountInString(text) + 2}
}

// NewKeyword creates a keyword token
func NewKeyword(kw Keyword) Token {
	return Token{Kind: KeywordKind, Keyword: kw, Len: utf8.RuneCountInString(string(kw))}
}

// NewOp creates an operator or punctuation token
func NewOp(op Op) Token {
	return Token{Kind: Operator, Op: op, Len: utf8.RuneCountInString(string(op))}
}

// Length returns the number of runes the token spans in its source
func (t Token) Length() int {
	return t.Len
}

// IsOp reports whether the token is the given operator
func (t Token) IsOp(op Op) bool {
	return t.Kind == Operator && t.Op == op
}

// IsKeyword reports whether the token is the given keyword
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == KeywordKind && t.Keyword == kw
}

// Lexeme returns the token as it would appear in the source
func (t Token) Lexeme() string {
	switch t.Kind {
	case Identifier:
		return t.Text
	case Immediate:
		if t.Imm == String {
			return `"` + t.Text + `"`
		}
		return t.Text
	case KeywordKind:
		return string(t.Keyword)
	case Operator:
		return string(t.Op)
	}
	return ""
}

func (t Token) String() string {
	switch t.Kind {
	case Immediate:
		return fmt.Sprintf("%s(%s %s)", t.Kind, t.Imm, t.Lexeme())
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme())
	}
}

// Kind is the class of a token
type Kind uint8

const (
	Identifier Kind = iota
	Immediate
	KeywordKind
	Operator
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Immediate:
		return "Immediate"
	case KeywordKind:
		return "Keyword"
	case Operator:
		return "Op"
	}
	return "Unknown"
}

// ImmediateKind tells which literal an immediate token holds
type ImmediateKind uint8

const (
	Integer ImmediateKind = iota
	Float
	String
)

// IsNumber is true for integer and floating-point literals
func (k ImmediateKind) IsNumber() bool {
	return k == Integer || k == Float
}

func (k ImmediateKind) String() string {
	switch k {
	case Integer:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return "unknown"
}

// Keyword is a reserved word
type Keyword string

const (
	Fn     Keyword = "fn"
	Let    Keyword = "let"
	Return Keyword = "return"
	Extern Keyword = "extern"
)

var keywords = map[string]Keyword{
	"fn":     Fn,
	"let":    Let,
	"return": Return,
	"extern": Extern,
}

// LookupKeyword returns the keyword spelled exactly as word
func LookupKeyword(word string) (Keyword, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

// Op is a symbolic lexeme, operators and punctuation alike
type Op string

const (
	Add       Op = "+"
	Sub       Op = "-"
	Mul       Op = "*"
	Div       Op = "/"
	AddAssign Op = "+="
	SubAssign Op = "-="
	MulAssign Op = "*="
	DivAssign Op = "/="
	Assign    Op = "="

	Equal        Op = "=="
	Bang         Op = "!"
	NotEqual     Op = "!="
	Less         Op = "<"
	LessEqual    Op = "<="
	Greater      Op = ">"
	GreaterEqual Op = ">="

	LeftParen    Op = "("
	RightParen   Op = ")"
	LeftBrace    Op = "{"
	RightBrace   Op = "}"
	LeftBracket  Op = "["
	RightBracket Op = "]"
	Comma        Op = ","
	Semicolon    Op = ";"
	Dot          Op = "."
)

var symbols = map[string]Op{}

func init() {
	for _, op := range []Op{
		Add, Sub, Mul, Div,
		AddAssign, SubAssign, MulAssign, DivAssign, Assign,
		Equal, Bang, NotEqual, Less, LessEqual, Greater, GreaterEqual,
		LeftParen, RightParen, LeftBrace, RightBrace, LeftBracket, RightBracket,
		Comma, Semicolon, Dot,
	} {
		symbols[string(op)] = op
	}
}

// LookupOp resolves text against the symbol table
func LookupOp(text string) (Op, bool) {
	op, ok := symbols[text]
	return op, ok
}

// IsPrefix reports whether op can start a unary expression
func (op Op) IsPrefix() bool {
	return op == Sub || op == Bang
}
