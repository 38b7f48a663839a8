package lexer

import (
	"io"
	"iter"

	"github.com/letung3105/mlang/internal/token"
)

// Lexer turns source text into tokens on demand. It stops for good at the
// first error: the failing call returns the error and every call after it
// returns io.EOF.
type Lexer struct {
	cursor     *Cursor
	whitespace whitespaceClassifier
	finished   bool
}

// New creates a lexer over source
func New(source string) *Lexer {
	return &Lexer{cursor: NewCursor([]rune(source))}
}

// Next returns the next token, or io.EOF once the input is exhausted or an
// error has been returned
func (lexer *Lexer) Next() (token.Token, error) {
	if lexer.finished {
		return token.Token{}, io.EOF
	}

	lexer.whitespace.skip(lexer.cursor)
	r, ok := lexer.cursor.Peek()
	if !ok {
		lexer.finished = true
		return token.Token{}, io.EOF
	}

	lexer.cursor.Mark()
	tok, err := lexer.dispatch(r)
	if err != nil {
		lexer.finished = true
		return token.Token{}, err
	}
	tok.Len = lexer.cursor.Measure()
	return tok, nil
}

func (lexer *Lexer) dispatch(r rune) (token.Token, error) {
	for _, c := range classifiers {
		if c.relevant(r) {
			return c.parse(r, lexer.cursor)
		}
	}
	lexer.cursor.Advance()
	return token.Token{}, &UnexpectedCharError{r}
}

// All returns the remaining tokens as a single-use sequence. An error is
// yielded at most once, as the last item.
func (lexer *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := lexer.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Tokenize scans the whole source
func Tokenize(source string) ([]token.Token, error) {
	toks := make([]token.Token, 0)
	for tok, err := range New(source).All() {
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
