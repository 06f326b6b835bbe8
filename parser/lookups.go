package parser

import (
	"go.creack.net/pcalc/lexer"
)

// bindingPower encodes precedence: higher binds tighter. An operator's left
// and right powers differ by one; right < left makes it right-associative,
// left < right left-associative.
type bindingPower uint8

func infixBindingPower(tt lexer.TokenType) (left, right bindingPower, ok bool) {
	switch tt {
	case lexer.TokEquals:
		return 2, 1, true
	case lexer.TokPlus, lexer.TokDash:
		return 3, 4, true
	case lexer.TokCaret:
		return 6, 5, true
	case lexer.TokStar, lexer.TokSlash:
		return 7, 8, true
	default:
		return 0, 0, false
	}
}

func prefixBindingPower(tt lexer.TokenType) (right bindingPower, ok bool) {
	switch tt {
	case lexer.TokPlus, lexer.TokDash:
		return 9, true
	default:
		return 0, false
	}
}

func postfixBindingPower(tt lexer.TokenType) (left bindingPower, ok bool) {
	switch tt {
	case lexer.TokBang:
		return 11, true
	default:
		return 0, false
	}
}
