package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestFilterGatesOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	t.Cleanup(func() { SetFilter(0) })

	SetFilter(ParserMajor)
	Log(ParserMajor, "importing %s", "foo")
	Log(LexerMinor, "hidden %s", "bar")

	got := buf.String()
	if !strings.Contains(got, "importing foo") {
		t.Errorf("enabled level not logged: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("disabled level logged: %q", got)
	}
}

func TestSetFilterMasksToSixBits(t *testing.T) {
	SetFilter(0xFF)
	t.Cleanup(func() { SetFilter(0) })
	if Filter() != MaskBits {
		t.Errorf("Filter() = %b, want %b", Filter(), MaskBits)
	}
}
