// Package interp evaluates syntax trees by walking them.
//
// An Interpreter owns the variable store of one calculator session:
// assignments made by one Interpret call are visible to the next. It is not
// safe to use an Interpreter concurrently.
package interp

import (
	"fmt"
	"math"
	"slices"

	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/lexer"
	"go.creack.net/pcalc/parser"
)

// Interpreter evaluates expressions against a persistent variable store.
type Interpreter struct {
	env map[string]float64
}

// New creates an Interpreter with an empty variable store.
func New() *Interpreter {
	return &Interpreter{env: map[string]float64{}}
}

// Interpret runs the full pipeline on one input line: tokenize, parse,
// evaluate. Variables assigned during evaluation persist in the session.
func (it *Interpreter) Interpret(input string) (float64, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return 0, fmt.Errorf("tokenize: %w", err)
	}
	expr, err := parser.Parse(tokens)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}
	v, err := it.Eval(expr)
	if err != nil {
		return 0, fmt.Errorf("evaluate: %w", err)
	}
	return v, nil
}

// Eval reduces a syntax tree to a single value, consulting and mutating the
// variable store.
func (it *Interpreter) Eval(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case ast.NumberExpr:
		return e.Value, nil
	case ast.SymbolExpr:
		v, ok := it.env[e.Name]
		if !ok {
			return 0, &NameError{Name: e.Name}
		}
		return v, nil
	case ast.ApplyExpr:
		return it.evalApply(e)
	default:
		return 0, &TreeError{Node: expr.Dump()}
	}
}

func (it *Interpreter) evalApply(e ast.ApplyExpr) (float64, error) {
	switch op := e.Operator.Type; {
	case op.IsOneOf(lexer.TokPlus, lexer.TokDash) && len(e.Args) == 1:
		// Prefix sign.
		v, err := it.Eval(e.Args[0])
		if err != nil {
			return 0, err
		}
		if op == lexer.TokDash {
			v = -v
		}
		return v, nil
	case op == lexer.TokBang && len(e.Args) == 1:
		v, err := it.Eval(e.Args[0])
		if err != nil {
			return 0, err
		}
		return factorial(v), nil
	case op == lexer.TokEquals && len(e.Args) == 2:
		return it.evalAssignment(e)
	case op.IsOneOf(lexer.TokPlus, lexer.TokDash, lexer.TokStar, lexer.TokSlash, lexer.TokCaret) && len(e.Args) == 2:
		return it.evalBinary(e)
	default:
		return 0, &TreeError{Node: e.Dump()}
	}
}

func (it *Interpreter) evalBinary(e ast.ApplyExpr) (float64, error) {
	// Left before right, both fully evaluated even when one assigns.
	lhs, err := it.Eval(e.Args[0])
	if err != nil {
		return 0, err
	}
	rhs, err := it.Eval(e.Args[1])
	if err != nil {
		return 0, err
	}
	switch e.Operator.Type {
	case lexer.TokPlus:
		return lhs + rhs, nil
	case lexer.TokDash:
		return lhs - rhs, nil
	case lexer.TokStar:
		return lhs * rhs, nil
	case lexer.TokSlash:
		// Zero divisors yield an infinity or NaN, not an error.
		return lhs / rhs, nil
	case lexer.TokCaret:
		return math.Pow(lhs, rhs), nil
	default:
		return 0, &TreeError{Node: e.Dump()}
	}
}

// evalAssignment evaluates the right side first, then stores it under the
// target name. The whole assignment evaluates to the stored value. Side
// effects of the right side happen even when the target turns out invalid.
func (it *Interpreter) evalAssignment(e ast.ApplyExpr) (float64, error) {
	rhs, err := it.Eval(e.Args[1])
	if err != nil {
		return 0, err
	}
	target, ok := e.Args[0].(ast.SymbolExpr)
	if !ok {
		return 0, &AssignError{Target: e.Args[0].Dump()}
	}
	it.env[target.Name] = rhs
	return rhs, nil
}

// factorial truncates x toward zero, multiplies the integers from 1 through
// the magnitude, then re-applies the sign. The sign-preserving extension to
// negative operands is kept as-is.
func factorial(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	t := math.Trunc(x)
	neg := t < 0
	if neg {
		t = -t
	}
	r := 1.0
	if t > 170 {
		// 171! already overflows float64; every larger operand saturates.
		r = math.Inf(1)
	} else {
		for i := 2.0; i <= t; i++ {
			r *= i
		}
	}
	if neg {
		r = -r
	}
	return r
}

// Lookup returns the value of a variable, if assigned.
func (it *Interpreter) Lookup(name string) (float64, bool) {
	v, ok := it.env[name]
	return v, ok
}

// Set assigns a variable directly, bypassing the pipeline.
func (it *Interpreter) Set(name string, v float64) {
	it.env[name] = v
}

// Vars returns the assigned variable names, sorted.
func (it *Interpreter) Vars() []string {
	names := make([]string, 0, len(it.env))
	for name := range it.env {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset drops every variable from the session.
func (it *Interpreter) Reset() {
	clear(it.env)
}
