// Package seeker resolves reference expressions against the AST. It is a
// pure function of the tree and the provided data stack: no state is kept
// between calls.
package seeker

import (
	"errors"

	"alusus/internal/ast"
)

// Verdict steers the seek from inside the visitor callback.
type Verdict int

const (
	// Move continues to further matches.
	Move Verdict = iota
	// Stop abandons the seek without using the current match.
	Stop
	// PerformAndStop accepts the current match and ends the seek.
	PerformAndStop
)

// Visitor receives each match in encounter order.
type Visitor func(ast.Node) Verdict

// ErrUnsupportedRef reports a reference expression shape the seeker does
// not navigate.
var ErrUnsupportedRef = errors.New("unsupported reference expression")

// Seek walks ref against the data stack, newest entry first, and reports
// whether any match was visited. Identifier references search each stack
// entry's scope chain; link-operator chains narrow into the scope or
// user-type body selected by their left side.
func Seek(ref ast.Node, stack []ast.Node, visit Visitor) (bool, error) {
	found := false
	stopped := false
	wrapped := func(n ast.Node) Verdict {
		found = true
		v := visit(n)
		if v != Move {
			stopped = true
		}
		return v
	}
	if err := seek(ref, stack, wrapped, &stopped); err != nil {
		return found, err
	}
	return found, nil
}

// Find returns the first match for ref, if any.
func Find(ref ast.Node, stack []ast.Node) (ast.Node, bool, error) {
	var match ast.Node
	found, err := Seek(ref, stack, func(n ast.Node) Verdict {
		match = n
		return PerformAndStop
	})
	return match, found, err
}

func seek(ref ast.Node, stack []ast.Node, visit Visitor, stopped *bool) error {
	switch r := ref.(type) {
	case *ast.Identifier:
		for i := len(stack) - 1; i >= 0 && !*stopped; i-- {
			seekInNode(r.Value, stack[i], visit, stopped)
		}
		return nil
	case *ast.Bracket:
		return seek(r.Operand, stack, visit, stopped)
	case *ast.LinkOperator:
		// Resolve the left side, then continue the seek inside each
		// container it names.
		var innerErr error
		_, err := Seek(r.First, stack, func(container ast.Node) Verdict {
			if *stopped {
				return Stop
			}
			if err := seek(r.Second, []ast.Node{container}, visit, stopped); err != nil {
				innerErr = err
				return Stop
			}
			if *stopped {
				return PerformAndStop
			}
			return Move
		})
		if err != nil {
			return err
		}
		return innerErr
	default:
		return ErrUnsupportedRef
	}
}

// seekInNode looks name up inside one stack entry.
func seekInNode(name string, node ast.Node, visit Visitor, stopped *bool) {
	var scope *ast.Scope
	switch n := node.(type) {
	case *ast.Scope:
		scope = n
	case *ast.UserType:
		scope = n.Body
	case *ast.Definition:
		seekInNode(name, n.Target, visit, stopped)
		return
	}
	if scope == nil {
		return
	}
	def, ok := scope.Lookup(name)
	if !ok {
		return
	}
	match := ast.Node(def)
	if def.Target != nil {
		match = def.Target
	}
	if v := visit(match); v != Move {
		*stopped = true
	}
}
