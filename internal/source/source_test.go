package source

import (
	"bytes"
	"testing"
)

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"plain", []byte("def x: 1;\n"), []byte("def x: 1;\n")},
		{"bom", []byte("\xEF\xBB\xBFdef x: 1;"), []byte("def x: 1;")},
		{"crlf", []byte("a;\r\nb;\r\n"), []byte("a;\nb;\n")},
		{"lone cr kept", []byte("a\rb"), []byte("a\rb")},
		{"bom and crlf", []byte("\xEF\xBB\xBFa;\r\n"), []byte("a;\n")},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeContent(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("NormalizeContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"full", At("dir/a.alusus", 3, 7), "dir/a.alusus:3:7"},
		{"path only", Location{Path: "a.alusus"}, "a.alusus"},
		{"unknown", Location{}, "<unknown>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocationCover(t *testing.T) {
	a := At("f", 1, 5)
	b := At("f", 3, 2)
	covered := a.Cover(b)
	if covered.Start != a.Start {
		t.Errorf("start moved: %v", covered.Start)
	}
	if covered.End != b.Start {
		t.Errorf("end = %v, want %v", covered.End, b.Start)
	}

	other := At("g", 9, 9)
	if got := a.Cover(other); got != a {
		t.Error("cover across files changed the location")
	}
}
