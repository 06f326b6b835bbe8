package interp

import (
	"strconv"
)

// NameError indicates a lookup of a variable that has never been assigned.
type NameError struct {
	// Name is the variable name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "unbound variable: " + strconv.Quote(err.Name)
}

// AssignError indicates an assignment whose left side is not a variable,
// e.g. "3 = 4".
type AssignError struct {
	// Target is the s-expression form of the invalid target.
	Target string
}

func (err *AssignError) Error() string {
	return "invalid assignment target: " + err.Target
}

// TreeError indicates a syntax tree shape the evaluator does not know,
// i.e. a parser defect rather than a user mistake.
type TreeError struct {
	// Node is the s-expression form of the malformed node.
	Node string
}

func (err *TreeError) Error() string {
	return "malformed syntax tree: " + err.Node
}
