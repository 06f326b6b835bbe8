package parser

import (
	"strconv"

	"go.creack.net/pcalc/lexer"
)

// Error is implemented by every parse error.
type Error interface {
	error
	// Pos returns the rune position of the error as the position of the
	// token that caused it, 1 based.
	Pos() int
}

// TokenError indicates a token that cannot appear where it was found,
// including an input that ends where an expression is expected.
type TokenError struct {
	// Token is the offending token.
	Token lexer.Token
}

func (err *TokenError) Error() string {
	return errpos(err.Token.Pos(), "invalid expression at token "+err.Token.String())
}

func (err *TokenError) Pos() int {
	return err.Token.Pos()
}

// OperatorError indicates an operator token found where it has no valid
// role, e.g. "*" at the start of an expression.
type OperatorError struct {
	// Token is the operator token.
	Token lexer.Token
}

func (err *OperatorError) Error() string {
	return errpos(err.Token.Pos(), "operator "+strconv.Quote(err.Token.Value)+" cannot start an expression")
}

func (err *OperatorError) Pos() int {
	return err.Token.Pos()
}

// BracketError indicates a parenthesized expression that is never closed.
type BracketError struct {
	// Col is the position of the opening parenthesis.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "unmatched parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

var (
	_ Error = (*TokenError)(nil)
	_ Error = (*OperatorError)(nil)
	_ Error = (*BracketError)(nil)
)
