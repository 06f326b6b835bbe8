// Package parser builds syntax trees from token sequences using
// precedence climbing.
package parser

import (
	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse builds the syntax tree for a token sequence as produced by
// lexer.Tokenize.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	p := &parser{tokens: tokens}
	return parseExpr(p, 0)
}

// ParseString tokenizes and parses input in one call.
func ParseString(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// peek returns the next token without consuming it. Past the end of the
// sequence, it keeps returning EOF.
func (p *parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF}
	}
	return p.tokens[p.pos]
}

// nextToken consumes and returns the next token.
func (p *parser) nextToken() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}
