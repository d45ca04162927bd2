package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alusus/internal/ast"
	"alusus/internal/core"
	"alusus/internal/notices"
	"alusus/internal/osal"
)

func newRoot(t *testing.T, wd string) *core.RootManager {
	t.Helper()
	t.Setenv("ALUSUS_LIBS", "")
	root, err := core.NewRootManager(core.Options{
		Argv:          []string{"alusus"},
		DriverFactory: Factory(),
		ModuleDir:     osal.NewPath(t.TempDir()),
		WorkingDir:    osal.NewPath(wd),
	})
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func collectNotices(root *core.RootManager) *[]*notices.Notice {
	var got []*notices.Notice
	root.NoticeSignal().Connect(func(n *notices.Notice) { got = append(got, n) })
	return &got
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefDirective(t *testing.T) {
	wd := t.TempDir()
	root := newRoot(t, wd)

	if _, err := root.ProcessString("def pi: 3.14; def twice: pi + pi;", "test"); err != nil {
		t.Fatal(err)
	}

	d, ok := root.RootScope().LookupLocal("pi")
	if !ok {
		t.Fatal("pi not defined")
	}
	if _, isFloat := d.Target.(*ast.FloatLiteral); !isFloat {
		t.Errorf("pi target = %T", d.Target)
	}
	if _, ok := root.RootScope().LookupLocal("twice"); !ok {
		t.Error("twice not defined")
	}
}

func TestExpressionResult(t *testing.T) {
	root := newRoot(t, t.TempDir())

	n, err := root.ParseExpression("1 + 2 * x")
	if err != nil {
		t.Fatal(err)
	}
	infix, ok := n.(*ast.InfixOperator)
	if !ok {
		t.Fatalf("result = %T", n)
	}
	if infix.Op != "+" {
		t.Errorf("top operator %q, want + (precedence)", infix.Op)
	}
	if right, ok := infix.Second.(*ast.InfixOperator); !ok || right.Op != "*" {
		t.Errorf("right side = %#v", infix.Second)
	}
}

func TestParseExpressionEmptyFails(t *testing.T) {
	root := newRoot(t, t.TempDir())
	if _, err := root.ParseExpression("   "); err == nil {
		t.Error("empty expression parsed without error")
	}
}

func TestImportDirectiveAcrossFiles(t *testing.T) {
	wd := t.TempDir()
	writeFile(t, filepath.Join(wd, "dir", "a.alusus"), `import "b";`+"\n")
	writeFile(t, filepath.Join(wd, "dir", "b.alusus"), "def fromB: 42;\n")
	root := newRoot(t, wd)
	got := collectNotices(root)

	result, err := root.ProcessFile("dir/a.alusus", false)
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("nil AST")
	}
	for _, n := range *got {
		t.Errorf("unexpected notice: %s", n)
	}
	if _, ok := root.RootScope().LookupLocal("fromB"); !ok {
		t.Error("imported definition missing from the root scope")
	}
}

func TestImportSelf(t *testing.T) {
	wd := t.TempDir()
	writeFile(t, filepath.Join(wd, "a.alusus"), `import "a"; def here: 1;`+"\n")
	root := newRoot(t, wd)
	got := collectNotices(root)

	if _, err := root.ProcessFile("a.alusus", false); err != nil {
		t.Fatal(err)
	}
	for _, n := range *got {
		t.Errorf("unexpected notice: %s", n)
	}
	if _, ok := root.RootScope().LookupLocal("here"); !ok {
		t.Error("definition after a self import was lost")
	}
}

func TestImportMissingEmitsNotice(t *testing.T) {
	root := newRoot(t, t.TempDir())
	got := collectNotices(root)

	if _, err := root.ProcessString(`import "missing"; def after: 1;`, "test"); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, n := range *got {
		if n.Code() == notices.CodeImportLoadFailed {
			found = true
			if n.Location().Start.Line != 1 {
				t.Errorf("notice location %v", n.Location())
			}
		}
	}
	if !found {
		t.Fatal("no IMPORT_LOAD_FAILED notice")
	}
	// Processing continued past the failed import.
	if _, ok := root.RootScope().LookupLocal("after"); !ok {
		t.Error("statement after the failed import was dropped")
	}
	if sev := root.MinNoticeSeverityEncountered(); sev == notices.NoSeverity || sev > notices.SevError {
		t.Error("min severity not updated")
	}
}

func TestImportNonStringArg(t *testing.T) {
	root := newRoot(t, t.TempDir())
	got := collectNotices(root)

	if _, err := root.ProcessString("import 42;", "test"); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, n := range *got {
		if n.Code() == notices.CodeInvalidImportArg {
			found = true
		}
	}
	if !found {
		t.Error("no INVALID_IMPORT_ARG notice")
	}
}

func TestDumpDirective(t *testing.T) {
	wd := t.TempDir()
	root := newRoot(t, wd)

	e := New(root.RootScope(), root)
	var out bytes.Buffer
	e.SetOutput(&out)

	if _, err := e.ProcessString("def x: 1 + 2; dump_ast x;", "test"); err != nil {
		t.Fatal(err)
	}
	dump := out.String()
	if !strings.Contains(dump, "InfixOperator +") {
		t.Errorf("dump missing the expression tree:\n%s", dump)
	}
}

func TestDumpDirectiveMiss(t *testing.T) {
	root := newRoot(t, t.TempDir())

	e := New(root.RootScope(), root)
	var out bytes.Buffer
	e.SetOutput(&out)
	var got []*notices.Notice
	e.NoticeSignal().Connect(func(n *notices.Notice) { got = append(got, n) })

	if _, err := e.ProcessString("dump_ast nowhere; def after: 1;", "test"); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, n := range got {
		if n.Code() == notices.CodeInvalidDumpArg {
			found = true
		}
	}
	if !found {
		t.Fatal("no INVALID_DUMP_ARG notice")
	}
	if _, ok := root.RootScope().LookupLocal("after"); !ok {
		t.Error("processing stopped after a bad dump argument")
	}
}

func TestSyntaxErrorRecovers(t *testing.T) {
	root := newRoot(t, t.TempDir())
	got := collectNotices(root)

	if _, err := root.ProcessString("def : broken; def ok: 5;", "test"); err != nil {
		t.Fatal(err)
	}
	errors := 0
	for _, n := range *got {
		if n.Code() == notices.CodeSyntaxError {
			errors++
		}
	}
	if errors == 0 {
		t.Fatal("no syntax notice")
	}
	if _, ok := root.RootScope().LookupLocal("ok"); !ok {
		t.Error("parser did not resynchronize")
	}
}

func TestArabicTerminatorAndIdentifiers(t *testing.T) {
	root := newRoot(t, t.TempDir())

	if _, err := root.ProcessString("def عدد: 7؛", "test"); err != nil {
		t.Fatal(err)
	}
	if _, ok := root.RootScope().LookupLocal("عدد"); !ok {
		t.Error("arabic identifier not defined")
	}
}

func TestProcessStream(t *testing.T) {
	root := newRoot(t, t.TempDir())

	in := strings.NewReader("def a: 1;\ndef b: a + 1;\n")
	result, err := root.ProcessStream(in, "user input")
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("nil AST")
	}
	if _, ok := root.RootScope().LookupLocal("a"); !ok {
		t.Error("a missing")
	}
	if _, ok := root.RootScope().LookupLocal("b"); !ok {
		t.Error("b missing")
	}
}

func TestProcessStreamInteractivePrompt(t *testing.T) {
	root := newRoot(t, t.TempDir())
	root.SetInteractive(true)

	e := New(root.RootScope(), root)
	var out bytes.Buffer
	e.SetOutput(&out)

	if _, err := e.ProcessStream(strings.NewReader("def a: 1;\n"), "user input"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "> ") {
		t.Error("no prompt printed in interactive mode")
	}
}

func TestStringLocations(t *testing.T) {
	root := newRoot(t, t.TempDir())
	got := collectNotices(root)

	if _, err := root.ProcessString("def ok: 1;\nimport \"missing\";", "file.alusus"); err != nil {
		t.Fatal(err)
	}
	for _, n := range *got {
		if n.Code() == notices.CodeImportLoadFailed {
			if n.Location().Path != "file.alusus" || n.Location().Start.Line != 2 {
				t.Errorf("notice location = %v, want file.alusus:2", n.Location())
			}
			return
		}
	}
	t.Fatal("expected an import failure notice")
}
