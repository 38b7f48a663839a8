package parser

import (
	"io"

	"github.com/letung3105/mlang/internal/token"
)

// TokenSource yields tokens one at a time, returning io.EOF once there are
// no more. *lexer.Lexer satisfies it.
type TokenSource interface {
	Next() (token.Token, error)
}

// stream adds a single token of lookahead on top of a TokenSource. The slot
// holds the error as well, so a peeked lexical error is handed out as is.
type stream struct {
	source TokenSource
	tok    token.Token
	err    error
	full   bool
}

func (s *stream) peek() (token.Token, error) {
	if !s.full {
		s.tok, s.err = s.source.Next()
		s.full = true
	}
	return s.tok, s.err
}

func (s *stream) next() (token.Token, error) {
	tok, err := s.peek()
	// the end of the stream stays in the slot
	if err != io.EOF {
		s.full = false
	}
	return tok, err
}

// sliceSource replays a fixed list of tokens
type sliceSource struct {
	toks []token.Token
}

// FromTokens returns a TokenSource over toks
func FromTokens(toks []token.Token) TokenSource {
	return &sliceSource{toks}
}

func (s *sliceSource) Next() (token.Token, error) {
	if len(s.toks) == 0 {
		return token.Token{}, io.EOF
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok, nil
}
