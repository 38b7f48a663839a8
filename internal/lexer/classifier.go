package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/letung3105/mlang/internal/token"
)

// classifier recognizes one class of lexemes. relevant is only asked about
// the first rune of a lexeme; parse is given a cursor positioned on that rune
// and consumes the whole lexeme.
type classifier interface {
	relevant(r rune) bool
	parse(first rune, cursor *Cursor) (token.Token, error)
}

// classifiers in dispatch order
var classifiers = []classifier{
	wordClassifier{},
	numberClassifier{},
	stringClassifier{},
	operatorClassifier{},
}

type wordClassifier struct{}

func (wordClassifier) relevant(r rune) bool {
	return isBeginIdent(r)
}

func (wordClassifier) parse(_ rune, cursor *Cursor) (token.Token, error) {
	cursor.AdvanceWhile(isIdent)
	text := cursor.Lexeme()
	if kw, isKeyword := token.LookupKeyword(text); isKeyword {
		return token.NewKeyword(kw), nil
	}
	return token.NewIdentifier(text), nil
}

type numberClassifier struct{}

func (numberClassifier) relevant(r rune) bool {
	return isDigit(r)
}

func (numberClassifier) parse(_ rune, cursor *Cursor) (token.Token, error) {
	dots := 0
	cursor.AdvanceWhile(func(r rune) bool {
		if r == '.' {
			dots++
			return true
		}
		return isDigit(r)
	})
	text := cursor.Lexeme()
	switch dots {
	case 0:
		return token.NewInteger(text), nil
	case 1:
		return token.NewFloat(text), nil
	default:
		return token.Token{}, &InvalidNumberError{text}
	}
}

type stringClassifier struct{}

func (stringClassifier) relevant(r rune) bool {
	return r == '"'
}

func (stringClassifier) parse(_ rune, cursor *Cursor) (token.Token, error) {
	// opening quote
	cursor.Advance()
	cursor.AdvanceWhile(func(r rune) bool { return r != '"' })
	if _, ok := cursor.Advance(); !ok {
		return token.Token{}, &UnterminatedStringError{cursor.Lexeme()}
	}
	text := cursor.Lexeme()
	return token.NewString(text[1 : len(text)-1]), nil
}

type operatorClassifier struct{}

func (operatorClassifier) relevant(r rune) bool {
	return isSymbol(r)
}

// parse extends the lexeme one rune at a time for as long as the longer text
// still names an operator, so "+=" wins over "+".
func (operatorClassifier) parse(_ rune, cursor *Cursor) (token.Token, error) {
	var (
		op    token.Op
		found bool
	)
	for r, ok := cursor.Peek(); ok; r, ok = cursor.Peek() {
		longer, valid := token.LookupOp(cursor.Lexeme() + string(r))
		if !valid {
			break
		}
		cursor.Advance()
		op, found = longer, true
	}
	if !found {
		// the error covers the run of unknown symbols up to the next operator
		cursor.Advance()
		cursor.AdvanceWhile(isUnknownSymbol)
		return token.Token{}, &InvalidOperatorError{cursor.Lexeme()}
	}
	return token.NewOp(op), nil
}

type whitespaceClassifier struct{}

func (whitespaceClassifier) relevant(r rune) bool {
	return unicode.IsSpace(r)
}

// skip consumes a run of whitespace, it never produces a token
func (ws whitespaceClassifier) skip(cursor *Cursor) int {
	return cursor.AdvanceWhile(ws.relevant)
}

// isUnknownSymbol accepts symbols that are not an operator on their own
func isUnknownSymbol(r rune) bool {
	_, known := token.LookupOp(string(r))
	return isSymbol(r) && !known
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isBeginIdent accepts letters, '_', and non-ASCII symbols such as emoji
func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || (r >= utf8.RuneSelf && unicode.IsSymbol(r))
}

func isIdent(r rune) bool {
	return isBeginIdent(r) || unicode.IsDigit(r)
}

// isSymbol accepts ASCII punctuation and symbols, except the ones that start
// other lexemes
func isSymbol(r rune) bool {
	if r >= utf8.RuneSelf || r == '_' || r == '"' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
