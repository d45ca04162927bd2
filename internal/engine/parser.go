package engine

import (
	"fmt"

	"alusus/internal/ast"
	"alusus/internal/notices"
)

// parser is a small recursive-descent expression parser. It never fails
// hard: malformed input produces a syntax notice and a nil node, and the
// caller resynchronizes at the next statement terminator.
type parser struct {
	lex *lexer
	tok token
	sig *notices.Signal
}

func newParser(text, name string, startLine int, sig *notices.Signal) *parser {
	p := &parser{lex: newLexer(text, name, startLine, sig), sig: sig}
	p.advance()
	return p
}

func (p *parser) advance() { p.tok = p.lex.next() }

func (p *parser) syntaxError(detail string) {
	p.sig.Emit(notices.NewSyntaxError(p.tok.loc, detail))
}

// sync skips forward to just past the next statement terminator.
func (p *parser) sync() {
	for p.tok.kind != tokEOF && !p.tok.isOp(";") {
		p.advance()
	}
	if p.tok.isOp(";") {
		p.advance()
	}
}

func (p *parser) atTerminator() bool {
	return p.tok.kind == tokEOF || p.tok.isOp(";")
}

// parseExpression: assignment is the loosest binding, right associative.
func (p *parser) parseExpression() ast.Node {
	left := p.parseComparison()
	if left == nil {
		return nil
	}
	if p.tok.kind == tokOp {
		switch p.tok.text {
		case "=", "+=", "-=", "*=", "/=":
			op := p.tok.text
			loc := p.tok.loc
			p.advance()
			right := p.parseExpression()
			if right == nil {
				return nil
			}
			n := &ast.AssignOperator{Op: op, First: left, Second: right}
			n.SetLocation(left.Location().Cover(loc))
			return n
		}
	}
	return left
}

func (p *parser) parseComparison() ast.Node {
	left := p.parseAdditive()
	for left != nil && p.tok.kind == tokOp {
		switch p.tok.text {
		case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
			op := p.tok.text
			p.advance()
			right := p.parseAdditive()
			if right == nil {
				return nil
			}
			n := &ast.InfixOperator{Op: op, First: left, Second: right}
			n.SetLocation(left.Location())
			left = n
		default:
			return left
		}
	}
	return left
}

func (p *parser) parseAdditive() ast.Node {
	left := p.parseMultiplicative()
	for left != nil && p.tok.kind == tokOp && (p.tok.text == "+" || p.tok.text == "-") {
		op := p.tok.text
		p.advance()
		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}
		n := &ast.InfixOperator{Op: op, First: left, Second: right}
		n.SetLocation(left.Location())
		left = n
	}
	return left
}

func (p *parser) parseMultiplicative() ast.Node {
	left := p.parseUnary()
	for left != nil && p.tok.kind == tokOp && (p.tok.text == "*" || p.tok.text == "/" || p.tok.text == "%") {
		op := p.tok.text
		p.advance()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		n := &ast.InfixOperator{Op: op, First: left, Second: right}
		n.SetLocation(left.Location())
		left = n
	}
	return left
}

func (p *parser) parseUnary() ast.Node {
	if p.tok.kind == tokOp && (p.tok.text == "-" || p.tok.text == "!" || p.tok.text == "~") {
		op := p.tok.text
		loc := p.tok.loc
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		n := &ast.OutfixOperator{Op: op, Prefix: true, Operand: operand}
		n.SetLocation(loc)
		return n
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() ast.Node {
	n := p.parsePrimary()
	for n != nil {
		switch {
		case p.tok.isOp("."):
			loc := p.tok.loc
			p.advance()
			if p.tok.kind != tokIdent {
				p.syntaxError("expected an identifier after '.'")
				return nil
			}
			member := &ast.Identifier{Value: p.tok.text}
			member.SetLocation(p.tok.loc)
			p.advance()
			link := &ast.LinkOperator{Connector: ".", First: n, Second: member}
			link.SetLocation(n.Location().Cover(loc))
			n = link
		case p.tok.isOp("("):
			param := p.parseBracketed("(", ")")
			pass := &ast.ParamPass{Kind: ast.RoundBracket, Operand: n, Param: param}
			pass.SetLocation(n.Location())
			n = pass
		case p.tok.isOp("["):
			param := p.parseBracketed("[", "]")
			pass := &ast.ParamPass{Kind: ast.SquareBracket, Operand: n, Param: param}
			pass.SetLocation(n.Location())
			n = pass
		default:
			return n
		}
	}
	return n
}

// parseBracketed consumes open..close and returns the inner expression,
// a List for comma-separated groups, or nil for an empty group.
func (p *parser) parseBracketed(open, close string) ast.Node {
	loc := p.tok.loc
	p.advance() // the opening bracket
	if p.tok.isOp(close) {
		p.advance()
		return nil
	}
	var items []ast.Node
	for {
		item := p.parseExpression()
		if item == nil {
			return nil
		}
		items = append(items, item)
		if p.tok.isOp(",") {
			p.advance()
			continue
		}
		break
	}
	if !p.tok.isOp(close) {
		p.syntaxError(fmt.Sprintf("expected %q", close))
		return nil
	}
	p.advance()
	if len(items) == 1 {
		return items[0]
	}
	list := &ast.List{Items: items}
	list.SetLocation(loc)
	return list
}

func (p *parser) parsePrimary() ast.Node {
	loc := p.tok.loc
	switch p.tok.kind {
	case tokIdent:
		n := &ast.Identifier{Value: p.tok.text}
		n.SetLocation(loc)
		p.advance()
		return n
	case tokInt:
		n := &ast.IntegerLiteral{Value: p.tok.text}
		n.SetLocation(loc)
		p.advance()
		return n
	case tokFloat:
		n := &ast.FloatLiteral{Value: p.tok.text}
		n.SetLocation(loc)
		p.advance()
		return n
	case tokString:
		n := &ast.StringLiteral{Value: p.tok.text}
		n.SetLocation(loc)
		p.advance()
		return n
	case tokChar:
		value := ' '
		for _, r := range p.tok.text {
			value = r
			break
		}
		n := &ast.CharLiteral{Value: value}
		n.SetLocation(loc)
		p.advance()
		return n
	case tokOp:
		if p.tok.text == "(" {
			inner := p.parseBracketed("(", ")")
			if inner == nil {
				return nil
			}
			b := &ast.Bracket{Kind: ast.RoundBracket, Operand: inner}
			b.SetLocation(loc)
			return b
		}
	}
	p.syntaxError(fmt.Sprintf("unexpected %q", p.tok.text))
	return nil
}

// refString renders a reference expression for notices.
func refString(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Value
	case *ast.LinkOperator:
		return refString(v.First) + v.Connector + refString(v.Second)
	case *ast.Bracket:
		return "(" + refString(v.Operand) + ")"
	default:
		if n == nil {
			return ""
		}
		return fmt.Sprintf("%T", n)
	}
}
