package parser

import (
	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/lexer"
)

// parseExpr parses an expression whose operators all bind at least as
// tightly as minBP. It stops, leaving the token unconsumed, on EOF or on an
// operator that binds looser than minBP.
func parseExpr(p *parser, minBP bindingPower) (ast.Expr, error) {
	left, err := parsePrimaryExpr(p)
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		switch tok.Type {
		case lexer.TokEOF:
			return left, nil
		case lexer.TokNumber, lexer.TokIdentifier:
			// Two expressions in a row, e.g. "3 4".
			return nil, &TokenError{Token: tok}
		}

		if lbp, ok := postfixBindingPower(tok.Type); ok {
			if lbp < minBP {
				return left, nil
			}
			p.nextToken()
			left = ast.ApplyExpr{Operator: tok, Args: []ast.Expr{left}}
			continue
		}

		lbp, rbp, ok := infixBindingPower(tok.Type)
		if !ok || lbp < minBP {
			// No infix role, or it binds looser than the caller allows.
			// Leave the token for the caller.
			return left, nil
		}
		p.nextToken()
		right, err := parseExpr(p, rbp)
		if err != nil {
			return nil, err
		}
		left = ast.ApplyExpr{Operator: tok, Args: []ast.Expr{left, right}}
	}
}

// parsePrimaryExpr parses the first component of an expression: a literal,
// a variable, a parenthesized group, or a prefix operator with its operand.
func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.nextToken()
	switch tok.Type {
	case lexer.TokNumber:
		return ast.NumberExpr{Value: tok.Num}, nil
	case lexer.TokIdentifier:
		return ast.SymbolExpr{Name: tok.Value}, nil
	case lexer.TokParenLeft:
		return parseGroupingExpr(p, tok)
	case lexer.TokEOF:
		return nil, &TokenError{Token: tok}
	default:
		return parsePrefixExpr(p, tok)
	}
}

func parsePrefixExpr(p *parser, tok lexer.Token) (ast.Expr, error) {
	rbp, ok := prefixBindingPower(tok.Type)
	if !ok {
		return nil, &OperatorError{Token: tok}
	}
	operand, err := parseExpr(p, rbp)
	if err != nil {
		return nil, err
	}
	return ast.ApplyExpr{Operator: tok, Args: []ast.Expr{operand}}, nil
}

func parseGroupingExpr(p *parser, open lexer.Token) (ast.Expr, error) {
	inner, err := parseExpr(p, 0)
	if err != nil {
		return nil, err
	}
	if end := p.nextToken(); end.Type != lexer.TokParenRight {
		return nil, &BracketError{Col: open.Pos()}
	}
	return inner, nil
}
