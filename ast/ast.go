// Package ast defines the syntax tree produced by the parser.
//
// A tree is built once and never mutated. Leaves are numeric literals or
// variable references; every other node is an operator applied to its
// operands: one for prefix and postfix operators, two for infix operators
// and assignment.
package ast

// Expr is a node in the syntax tree of an expression.
type Expr interface {
	expr()

	// Dump returns the s-expression form of the node, e.g. "(+ 3 (* 5 6))".
	Dump() string
}
