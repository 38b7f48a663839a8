package lexer

import (
	"errors"
	"fmt"
)

// ErrLex matches every error produced by the lexer with errors.Is
var ErrLex = errors.New("lexical error")

// UnexpectedCharError is returned when no classifier accepts a character
type UnexpectedCharError struct {
	Char rune
}

func (err *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q", err.Char)
}

func (err *UnexpectedCharError) Is(target error) bool {
	return target == ErrLex
}

// InvalidNumberError is returned for numeric literals with more than one
// decimal point
type InvalidNumberError struct {
	Text string
}

func (err *InvalidNumberError) Error() string {
	return fmt.Sprintf("not a valid number %q", err.Text)
}

func (err *InvalidNumberError) Is(target error) bool {
	return target == ErrLex
}

// InvalidOperatorError is returned when a run of symbol characters does not
// start with any known operator or punctuation
type InvalidOperatorError struct {
	Text string
}

func (err *InvalidOperatorError) Error() string {
	return fmt.Sprintf("not a valid operator %q", err.Text)
}

func (err *InvalidOperatorError) Is(target error) bool {
	return target == ErrLex
}

// UnterminatedStringError is returned when the input ends inside a string
// literal
type UnterminatedStringError struct {
	Text string
}

func (err *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string %s", err.Text)
}

func (err *UnterminatedStringError) Is(target error) bool {
	return target == ErrLex
}
