// Package lexer provides a lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const digitChars = "0123456789"
const identStartChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
const identChars = identStartChars + digitChars

type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos int // Current byte position in input.
	col int // Current rune position in input, 1 based.

	start    int // Byte position of the start of the current token.
	startCol int // Rune position where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:    input,
		col:      1,
		startCol: 1,
	}
}

// NextToken scans and returns the next token. Once the input is exhausted,
// every call returns an EOF token.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, pos: l.col}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Tokenize scans the whole input eagerly and returns the token sequence.
// The sequence always ends with exactly one EOF token. Invalid input yields
// a *LexError and no tokens.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, &LexError{Msg: tok.Value, Col: tok.pos}
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.col++
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
	l.col--
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

// ignore drops the input scanned so far, without emitting a token.
func (l *Lexer) ignore() {
	l.start = l.pos
	l.startCol = l.col
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.startCol,
	}
	l.start = l.pos
	l.startCol = l.col
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

// emitNumber emits a number token, parsing its value. The scanned text only
// contains digits and at most one decimal point, but it can still overflow
// the float range.
func (l *Lexer) emitNumber() stateFn {
	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		l.curToken = Token{Type: TokError, Value: "malformed number: " + strconv.Quote(tok.Value), pos: tok.pos}
		return nil
	}
	tok.Num = n
	l.curToken = tok
	return nil
}

func (l *Lexer) errorf(format string, args ...any) stateFn {
	tok := l.thisToken(TokError)
	tok.Value = fmt.Sprintf(format, args...)
	l.curToken = tok
	return nil
}

// LexError indicates invalid input text. Raised during scanning, it aborts
// the whole call.
type LexError struct {
	// Msg describes the invalid input.
	Msg string
	// Col is the rune position of the offending token, 1 based.
	Col int
}

func (err *LexError) Error() string {
	return "column " + strconv.Itoa(err.Col) + ": " + err.Msg
}

func (err *LexError) Pos() int {
	return err.Col
}
