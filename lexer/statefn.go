package lexer

import (
	"strings"
	"unicode"
)

type stateFn func(*Lexer) stateFn

// Runes that advance one and emit a token as-is.
var singles = map[rune]TokenType{
	'(': TokParenLeft,
	')': TokParenRight,
	'+': TokPlus,
	'-': TokDash,
	'*': TokStar,
	'/': TokSlash,
	'^': TokCaret,
	'!': TokBang,
	'=': TokEquals,
}

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case l.atEOF || r == 0:
		return l.emit(TokEOF)
	case unicode.IsSpace(r):
		return lexSpace
	case r >= '0' && r <= '9':
		return lexNumber
	case strings.ContainsRune(identStartChars, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		l.next()
		return l.errorf("unexpected character: %q", r)
	}
}

// lexSpace skips a run of whitespace. Whitespace never produces a token.
func lexSpace(l *Lexer) stateFn {
	for {
		r := l.next()
		if l.atEOF {
			break
		}
		if !unicode.IsSpace(r) {
			l.backup()
			break
		}
	}
	l.ignore()
	return lexText
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digitChars)
	if l.accept(".") {
		l.acceptRun(digitChars)
	}
	if l.peek() == '.' {
		return l.errorf("malformed number: multiple decimal points")
	}
	return l.emitNumber()
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identChars)
	return l.emit(TokIdentifier)
}
