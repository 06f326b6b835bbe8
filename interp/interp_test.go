package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/interp"
	"go.creack.net/pcalc/lexer"
	"go.creack.net/pcalc/parser"
)

func interpret(t *testing.T, session *interp.Interpreter, input string) float64 {
	t.Helper()
	v, err := session.Interpret(input)
	require.NoError(t, err, "interpret %q", input)
	return v
}

func TestInterpretLiterals(t *testing.T) {
	session := interp.New()
	for _, input := range []string{"0", "3", "3.14", "0.5", "12345.6789"} {
		expr, err := parser.ParseString(input)
		require.NoError(t, err)
		num, ok := expr.(ast.NumberExpr)
		require.True(t, ok, "literal %q should parse to a number leaf", input)
		assert.Equal(t, num.Value, interpret(t, session, input), "input %q", input)
	}
}

func TestInterpretArithmetic(t *testing.T) {
	session := interp.New()
	tests := []struct {
		input string
		want  float64
	}{
		{"3+4", 7},
		{"3*4", 12},
		{"2^3", 8},
		{"3+5*6", 33},
		{"(3+4)*2", 14},
		{"3-4-5", -6},
		{"2^3^2", 512},
		{"-3", -3},
		{"+3", 3},
		{"10/4", 2.5},
		{"2^0.5", math.Sqrt2},
		{"4^-1", 0.25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, interpret(t, session, tt.input), "input %q", tt.input)
	}
}

func TestInterpretFactorial(t *testing.T) {
	session := interp.New()
	tests := []struct {
		input string
		want  float64
	}{
		{"3!", 6},
		{"0!", 1},
		{"5!", 120},
		{"3.9!", 6}, // Truncation toward zero.
		// Postfix binds tighter than prefix minus: -(3!), with the
		// sign-preserving extension to negative operands.
		{"-3!", -6},
		{"(0-4)!", -24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, interpret(t, session, tt.input), "input %q", tt.input)
	}

	// Factorial overflow saturates like any float overflow.
	assert.True(t, math.IsInf(interpret(t, session, "200!"), 1))
}

func TestInterpretAssignmentPersists(t *testing.T) {
	session := interp.New()
	assert.Equal(t, 3.0, interpret(t, session, "a=3"))
	assert.Equal(t, 7.0, interpret(t, session, "a+4"))

	// Overwrite.
	assert.Equal(t, 10.0, interpret(t, session, "a=10"))
	assert.Equal(t, 14.0, interpret(t, session, "a+4"))
}

func TestInterpretChainedAssignment(t *testing.T) {
	session := interp.New()
	assert.Equal(t, 5.0, interpret(t, session, "a=b=5"))
	assert.Equal(t, 5.0, interpret(t, session, "a"))
	assert.Equal(t, 5.0, interpret(t, session, "b"))
}

func TestInterpretNestedAssignmentSideEffects(t *testing.T) {
	session := interp.New()
	// Left operand evaluates before the right one, and both fully evaluate.
	assert.Equal(t, 9.0, interpret(t, session, "2*(a=3)+a"))
	assert.Equal(t, 3.0, interpret(t, session, "a"))
}

func TestInterpretUnboundVariable(t *testing.T) {
	session := interp.New()
	_, err := session.Interpret("b")
	require.Error(t, err)
	var nerr *interp.NameError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "b", nerr.Name)
}

func TestInterpretInvalidAssignmentTarget(t *testing.T) {
	session := interp.New()
	_, err := session.Interpret("3=4")
	require.Error(t, err)
	var aerr *interp.AssignError
	require.ErrorAs(t, err, &aerr)

	_, err = session.Interpret("(a+1)=4")
	var aerr2 *interp.AssignError
	require.ErrorAs(t, err, &aerr2)
}

func TestInterpretAssignmentSideEffectBeforeTargetCheck(t *testing.T) {
	session := interp.New()
	// The right side evaluates before the target is validated.
	_, err := session.Interpret("3=(c=7)")
	var aerr *interp.AssignError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, 7.0, interpret(t, session, "c"))
}

func TestInterpretDivisionByZero(t *testing.T) {
	session := interp.New()
	assert.True(t, math.IsInf(interpret(t, session, "1/0"), 1))
	assert.True(t, math.IsInf(interpret(t, session, "-1/0"), -1))
	assert.True(t, math.IsNaN(interpret(t, session, "0/0")))
}

func TestInterpretPowDomain(t *testing.T) {
	session := interp.New()
	// IEEE-754 pow semantics, including NaN for invalid domains.
	assert.True(t, math.IsNaN(interpret(t, session, "(0-1)^0.5")))
}

func TestInterpretErrorStages(t *testing.T) {
	session := interp.New()

	_, err := session.Interpret("3.1.4")
	var lerr *lexer.LexError
	require.ErrorAs(t, err, &lerr, "scanning error")

	_, err = session.Interpret("(3+4")
	var perr parser.Error
	require.ErrorAs(t, err, &perr, "parsing error")

	_, err = session.Interpret("3++")
	var perr2 parser.Error
	require.ErrorAs(t, err, &perr2, "parsing error")

	_, err = session.Interpret("nope")
	var nerr *interp.NameError
	require.ErrorAs(t, err, &nerr, "evaluation error")
}

func TestEvalMalformedTree(t *testing.T) {
	session := interp.New()
	// A tree no parser output can produce: wrong arity for "*".
	bad := ast.ApplyExpr{
		Operator: mustToken(t, "*"),
		Args:     []ast.Expr{ast.NumberExpr{Value: 1}},
	}
	_, err := session.Eval(bad)
	require.Error(t, err)
	var terr *interp.TreeError
	require.ErrorAs(t, err, &terr)
}

func TestSessionHelpers(t *testing.T) {
	session := interp.New()
	session.Set("x", 2)
	interpret(t, session, "y=x*2")

	assert.Equal(t, []string{"x", "y"}, session.Vars())
	v, ok := session.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, 4.0, v)

	session.Reset()
	assert.Empty(t, session.Vars())
	_, ok = session.Lookup("x")
	assert.False(t, ok)
}

// mustToken scans a single operator token.
func mustToken(t *testing.T, s string) lexer.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(s)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	return tokens[0]
}
