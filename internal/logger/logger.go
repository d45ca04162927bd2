// Package logger is the debug log channel controlled by the 6-bit
// --log mask. Each bit enables one detail level; a zero filter keeps the
// channel silent.
package logger

import (
	"fmt"
	"io"
	"os"
)

// Level is a bit in the log filter mask.
type Level uint8

const (
	LexerMinor Level = 1 << iota
	LexerMajor
	ParserMinor
	ParserMajor
	SeekerMinor
	SeekerMajor

	// MaskBits covers the six defined levels.
	MaskBits Level = 1<<6 - 1
)

var (
	filter Level
	out    io.Writer = os.Stderr
)

// SetFilter installs the active mask; bits outside MaskBits are dropped.
func SetFilter(mask Level) { filter = mask & MaskBits }

func Filter() Level { return filter }

// SetOutput redirects the channel, mainly for tests.
func SetOutput(w io.Writer) { out = w }

// Log writes one line when the level is enabled by the filter.
func Log(level Level, format string, args ...any) {
	if filter&level == 0 {
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}
