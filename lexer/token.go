package lexer

import (
	"fmt"
	"slices"
	"strconv"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber
	TokIdentifier

	// Operators.
	TokPlus
	TokDash
	TokStar
	TokSlash
	TokCaret
	TokBang
	TokEquals

	// Grouping.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",

	TokPlus:   "+",
	TokDash:   "-",
	TokStar:   "*",
	TokSlash:  "/",
	TokCaret:  "^",
	TokBang:   "!",
	TokEquals: "=",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string

	// Num is the parsed value of a TokNumber token.
	Num float64

	pos int
}

// Pos returns the rune position of the token in the input, 1 based.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return fmt.Sprintf("ERROR[%d]: %s", t.pos, t.Value)
	case TokNumber:
		return fmt.Sprintf("%s[%d]: %s", t.Type, t.pos, strconv.FormatFloat(t.Num, 'g', -1, 64))
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}
