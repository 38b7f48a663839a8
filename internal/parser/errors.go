package parser

import (
	"errors"
	"fmt"

	"github.com/letung3105/mlang/internal/token"
)

// ErrParse matches every error produced by the parser with errors.Is
var ErrParse = errors.New("parse error")

// ErrUnexpectedEOF is returned when the input ends where a token is required
var ErrUnexpectedEOF = &eofError{}

type eofError struct{}

func (err *eofError) Error() string {
	return "unexpected end of input"
}

func (err *eofError) Is(target error) bool {
	return target == ErrParse
}

// UnexpectedTokenError is returned when the grammar does not allow a token
// at its position
type UnexpectedTokenError struct {
	Token token.Token
}

func (err *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token '%s'", err.Token.Lexeme())
}

func (err *UnexpectedTokenError) Is(target error) bool {
	return target == ErrParse
}

// TokenMismatchError is returned when one specific token was required but
// another one was found
type TokenMismatchError struct {
	Want token.Token
	Got  token.Token
}

func (err *TokenMismatchError) Error() string {
	return fmt.Sprintf("expect '%s', got '%s'", err.Want.Lexeme(), err.Got.Lexeme())
}

func (err *TokenMismatchError) Is(target error) bool {
	return target == ErrParse
}

// FunctionNameError is returned when the name of a function declaration is
// not an identifier
type FunctionNameError struct {
	Got token.Token
}

func (err *FunctionNameError) Error() string {
	return fmt.Sprintf("function name must be an identifier, got '%s'", err.Got.Lexeme())
}

func (err *FunctionNameError) Is(target error) bool {
	return target == ErrParse
}
