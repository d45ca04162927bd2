package osal

import (
	"strings"
	"testing"
)

func TestConstructShlibNames(t *testing.T) {
	names := ConstructShlibNames("foo")
	if len(names) == 0 {
		t.Fatal("no candidates produced")
	}

	seen := make(map[string]struct{})
	for _, n := range names {
		if _, dup := seen[n]; dup {
			t.Errorf("duplicate candidate %q", n)
		}
		seen[n] = struct{}{}

		// Every candidate ends in the host extension, ignoring the
		// debug infix.
		trimmed := strings.Replace(n, ".dbg", "", 1)
		if !strings.HasSuffix(trimmed, ShlibExt()) {
			t.Errorf("candidate %q does not end in %q", n, ShlibExt())
		}
	}

	if !debugBuild {
		for _, n := range names {
			if strings.Contains(n, ".dbg") {
				t.Errorf("debug candidate %q in release build", n)
			}
		}
	}
}

func TestConstructShlibNamesLibPrefixFirst(t *testing.T) {
	names := ConstructShlibNames("foo")
	if !strings.HasPrefix(names[0], "lib") {
		t.Errorf("first candidate %q is not lib-prefixed", names[0])
	}
}

func TestShlibExt(t *testing.T) {
	switch ext := ShlibExt(); ext {
	case ".so", ".dylib", ".dll":
	default:
		t.Errorf("unexpected extension %q", ext)
	}
}
