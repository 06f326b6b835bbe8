package ast

import (
	"strconv"
	"strings"

	"go.creack.net/pcalc/lexer"
)

// NumberExpr is a numeric literal leaf.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (e NumberExpr) Dump() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// SymbolExpr is a variable reference leaf.
type SymbolExpr struct {
	Name string
}

func (SymbolExpr) expr() {}

func (e SymbolExpr) Dump() string { return e.Name }

// ApplyExpr is an operator applied to its operands. Args holds one operand
// for prefix/postfix operators, two for infix operators and assignment.
type ApplyExpr struct {
	Operator lexer.Token
	Args     []Expr
}

func (ApplyExpr) expr() {}

func (e ApplyExpr) Dump() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(e.Operator.Value)
	for _, arg := range e.Args {
		b.WriteByte(' ')
		b.WriteString(arg.Dump())
	}
	b.WriteByte(')')
	return b.String()
}
