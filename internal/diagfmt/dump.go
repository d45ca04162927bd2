package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"alusus/internal/ast"
)

// DumpTree writes an indented textual rendering of the tree rooted at n.
// Weak back-edges are not followed.
func DumpTree(w io.Writer, n ast.Node) {
	dumpNode(w, n, 0)
}

func dumpNode(w io.Writer, n ast.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s%s\n", indent, nodeLabel(n), prodSuffix(n))
	switch v := n.(type) {
	case *ast.Scope:
		// Render definitions with their names, then loose statements.
		for _, name := range v.Names() {
			d, _ := v.LookupLocal(name)
			dumpNode(w, d, depth+1)
		}
		for _, stmt := range v.Statements() {
			dumpNode(w, stmt, depth+1)
		}
	default:
		for _, child := range n.Children() {
			dumpNode(w, child, depth+1)
		}
	}
}

func prodSuffix(n ast.Node) string {
	if id := n.ProdID(); id != "" {
		return " <" + id + ">"
	}
	return ""
}

func nodeLabel(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Scope:
		return "Scope"
	case *ast.Definition:
		label := fmt.Sprintf("Definition %s [%s]", v.Name, v.Domain)
		for _, m := range v.Modifiers {
			label += " @" + m.Name
		}
		return label
	case *ast.Identifier:
		return "Identifier " + v.Value
	case *ast.LinkOperator:
		return "LinkOperator " + v.Connector
	case *ast.ParamPass:
		return "ParamPass " + v.Kind.String()
	case *ast.Bracket:
		return "Bracket " + v.Kind.String()
	case *ast.List:
		return "List"
	case *ast.IntegerLiteral:
		return "IntegerLiteral " + v.Value
	case *ast.FloatLiteral:
		return "FloatLiteral " + v.Value
	case *ast.StringLiteral:
		return fmt.Sprintf("StringLiteral %q", v.Value)
	case *ast.CharLiteral:
		return fmt.Sprintf("CharLiteral %q", v.Value)
	case *ast.InfixOperator:
		return "InfixOperator " + v.Op
	case *ast.OutfixOperator:
		if v.Prefix {
			return "OutfixOperator prefix " + v.Op
		}
		return "OutfixOperator postfix " + v.Op
	case *ast.AssignOperator:
		return "AssignOperator " + v.Op
	case *ast.IfStatement:
		return "IfStatement"
	case *ast.WhileStatement:
		return "WhileStatement"
	case *ast.ForStatement:
		return "ForStatement"
	case *ast.ReturnStatement:
		return "ReturnStatement"
	case *ast.ContinueStatement:
		return "ContinueStatement"
	case *ast.BreakStatement:
		return "BreakStatement"
	case *ast.IntegerType:
		return fmt.Sprintf("IntegerType %d", v.Bits)
	case *ast.FloatType:
		return fmt.Sprintf("FloatType %d", v.Bits)
	case *ast.VoidType:
		return "VoidType"
	case *ast.PointerType:
		return "PointerType"
	case *ast.ReferenceType:
		return "ReferenceType"
	case *ast.ArrayType:
		return "ArrayType"
	case *ast.FunctionType:
		return "FunctionType"
	case *ast.UserType:
		return "UserType"
	default:
		return fmt.Sprintf("%T", n)
	}
}
