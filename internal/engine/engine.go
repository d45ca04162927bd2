// Package engine is a conforming processing driver: a statement-level
// reader that builds AST nodes into its target scope, re-enters the root
// manager for import directives, and reports problems as notices rather
// than failures. The full grammar-driven engine is pluggable behind the
// same driver contract; this one covers directives and plain
// expressions.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"alusus/internal/ast"
	"alusus/internal/core"
	"alusus/internal/diagfmt"
	"alusus/internal/notices"
	"alusus/internal/osal"
	"alusus/internal/seeker"
	"alusus/internal/source"
)

// Engine drives one process operation against a target scope.
type Engine struct {
	target *ast.Scope
	root   *core.RootManager
	sig    notices.Signal
	out    io.Writer
}

func New(target *ast.Scope, root *core.RootManager) *Engine {
	return &Engine{target: target, root: root, out: os.Stdout}
}

// SetOutput redirects directive output (dump_ast) and the interactive
// prompt.
func (e *Engine) SetOutput(w io.Writer) { e.out = w }

// Factory adapts the engine to the root manager's driver contract.
func Factory() core.DriverFactory {
	return func(target *ast.Scope, root *core.RootManager) core.Driver {
		return New(target, root)
	}
}

func (e *Engine) NoticeSignal() *notices.Signal { return &e.sig }

// ProcessString drives text under a logical name. When exactly one
// statement produces a node (an expression or a definition), that node
// is returned; when several do, the target scope; when none do, nil.
func (e *Engine) ProcessString(text, name string) (ast.Node, error) {
	results := e.processText(text, name, 1)
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return e.target, nil
	}
}

// ProcessFile reads and drives a source file. The returned AST is the
// target scope the file's statements were built into.
func (e *Engine) ProcessFile(path string) (ast.Node, error) {
	f, err := osal.OpenInput(osal.NewPath(path))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	e.processText(string(source.NormalizeContent(raw)), path, 1)
	return e.target, nil
}

// ProcessStream drives a character stream, consuming statements as their
// terminators arrive. Interactive mode prints a prompt between
// statements.
func (e *Engine) ProcessStream(in io.Reader, name string) (ast.Node, error) {
	interactive := e.root != nil && e.root.IsInteractive()
	reader := bufio.NewReader(in)
	var buffer strings.Builder
	line := 1
	pending := 1 // first line of the buffered chunk

	prompt := func() {
		if interactive {
			fmt.Fprint(e.out, "> ")
		}
	}

	prompt()
	for {
		text, err := reader.ReadString('\n')
		buffer.WriteString(text)
		chunk := buffer.String()
		if strings.HasSuffix(strings.TrimSpace(chunk), ";") ||
			strings.HasSuffix(strings.TrimSpace(chunk), "؛") {
			e.processText(chunk, name, pending)
			line += strings.Count(chunk, "\n")
			pending = line
			buffer.Reset()
			prompt()
		}
		if err != nil {
			if rest := strings.TrimSpace(buffer.String()); rest != "" {
				e.processText(buffer.String(), name, pending)
			}
			if err == io.EOF {
				return e.target, nil
			}
			return e.target, err
		}
	}
}

// processText parses and executes every statement in text. The returned
// slice holds one result node per statement that produced one.
func (e *Engine) processText(text, name string, startLine int) []ast.Node {
	p := newParser(text, name, startLine, &e.sig)
	var results []ast.Node
	for {
		for p.tok.isOp(";") {
			p.advance()
		}
		if p.tok.kind == tokEOF {
			return results
		}
		n, ok := e.statement(p)
		if n != nil {
			results = append(results, n)
		}
		if !ok {
			p.sync()
			continue
		}
		if !p.atTerminator() {
			p.syntaxError(fmt.Sprintf("unexpected %q after statement", p.tok.text))
			p.sync()
		}
	}
}

// statement executes one statement. ok=false means the parse went wrong
// and the caller must resynchronize; a directive that ran but reported a
// notice is still ok.
func (e *Engine) statement(p *parser) (ast.Node, bool) {
	if p.tok.kind == tokIdent {
		switch p.tok.text {
		case "import":
			return nil, e.importDirective(p)
		case "def":
			n := e.defDirective(p)
			return n, n != nil
		case "dump_ast":
			return nil, e.dumpDirective(p)
		}
	}
	n := p.parseExpression()
	if n == nil {
		return nil, false
	}
	e.target.AddStatement(n)
	return n, true
}

func (e *Engine) importDirective(p *parser) bool {
	loc := p.tok.loc
	p.advance()
	if p.tok.kind != tokString {
		e.sig.Emit(notices.NewInvalidImportArg(p.tok.loc))
		return false
	}
	request := p.tok.text
	p.advance()
	if ok, details := e.root.TryImportFile(request); !ok {
		e.sig.Emit(notices.NewImportLoadFailed(loc, request, details))
	}
	return true
}

func (e *Engine) defDirective(p *parser) ast.Node {
	loc := p.tok.loc
	p.advance()
	if p.tok.kind != tokIdent {
		p.syntaxError("expected a name after def")
		return nil
	}
	name := p.tok.text
	p.advance()
	if !p.tok.isOp(":") {
		p.syntaxError("expected ':' after the definition name")
		return nil
	}
	p.advance()
	target := p.parseExpression()
	if target == nil {
		return nil
	}
	def := &ast.Definition{Name: name, Target: target, Domain: ast.DomainGlobal}
	def.SetLocation(loc)
	e.target.Define(def)
	return def
}

func (e *Engine) dumpDirective(p *parser) bool {
	loc := p.tok.loc
	p.advance()
	ref := p.parseExpression()
	if ref == nil {
		return false
	}
	match, found, err := seeker.Find(ref, []ast.Node{e.target})
	if err != nil || !found {
		e.sig.Emit(notices.NewInvalidDumpArg(loc, refString(ref)))
		return true
	}
	diagfmt.DumpTree(e.out, match)
	return true
}
