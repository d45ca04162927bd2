package osal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPathNormalizationIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain", "/usr/lib/alusus"},
		{"dot segments", "/usr/lib/../lib/./alusus"},
		{"arabic", "/home/user/مصدر/برنامج.alusus"},
		{"decomposed", "/home/user/cafe\u0301"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := NewPath(tt.input)
			twice := NewPath(once.String())
			if !once.Equal(twice) {
				t.Errorf("normalization not idempotent: %q != %q", once, twice)
			}
		})
	}
}

func TestNewPathNFCEquality(t *testing.T) {
	composed := NewPath("/tmp/caf\u00e9")
	decomposed := NewPath("/tmp/cafe\u0301")
	if !composed.Equal(decomposed) {
		t.Errorf("NFC forms differ: %q vs %q", composed, decomposed)
	}
}

func TestPathParts(t *testing.T) {
	p := NewPath("/work/dir/a.alusus")
	if got := p.Parent().String(); got != filepath.Clean("/work/dir") {
		t.Errorf("Parent = %q", got)
	}
	if got := p.Filename(); got != "a.alusus" {
		t.Errorf("Filename = %q", got)
	}
	if got := p.Ext(); got != ".alusus" {
		t.Errorf("Ext = %q", got)
	}
	if !p.IsAbs() {
		t.Error("expected absolute")
	}
	if NewPath("a.alusus").IsAbs() {
		t.Error("expected relative")
	}
}

func TestPathParentOfRoot(t *testing.T) {
	if got := NewPath("/").Parent(); !got.IsEmpty() {
		t.Errorf("Parent of root = %q, want empty", got)
	}
}

func TestPathFilesystemProbes(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "m.alusus")
	if err := os.WriteFile(file, []byte("def x: 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fp := NewPath(file)
	if !fp.Exists() || !fp.IsRegular() || fp.IsDir() {
		t.Errorf("file probes wrong: exists=%v regular=%v dir=%v", fp.Exists(), fp.IsRegular(), fp.IsDir())
	}
	dp := NewPath(dir)
	if !dp.Exists() || !dp.IsDir() || dp.IsRegular() {
		t.Errorf("dir probes wrong")
	}
	if NewPath(filepath.Join(dir, "missing")).Exists() {
		t.Error("missing path reported as existing")
	}
}

func TestPathCanonicalResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.alusus")
	if err := os.WriteFile(target, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.alusus")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	lp := NewPath(link)
	if !lp.IsSymlink() {
		t.Error("IsSymlink = false for a symlink")
	}
	canon, err := lp.Canonical()
	if err != nil {
		t.Fatal(err)
	}
	want, err := NewPath(target).Canonical()
	if err != nil {
		t.Fatal(err)
	}
	if !canon.Equal(want) {
		t.Errorf("Canonical = %q, want %q", canon, want)
	}

	// Second call must serve the cached form.
	again, err := lp.Canonical()
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(canon) {
		t.Errorf("cached Canonical = %q, want %q", again, canon)
	}
}

func TestPathJoinAbs(t *testing.T) {
	base := NewPath("/work")
	rel := NewPath("dir/b.alusus")
	if got := rel.Abs(base).String(); got != filepath.Clean("/work/dir/b.alusus") {
		t.Errorf("Abs = %q", got)
	}
	abs := NewPath("/other/c.alusus")
	if got := abs.Abs(base); !got.Equal(abs) {
		t.Errorf("Abs rewrote an absolute path: %q", got)
	}
}
