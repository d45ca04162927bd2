package osal

import "os"

// OpenInput opens a file for reading by its UTF-8 path.
func OpenInput(p Path) (*os.File, error) {
	return os.Open(p.String())
}

// OpenOutput creates or truncates a file for writing by its UTF-8 path.
func OpenOutput(p Path) (*os.File, error) {
	return os.Create(p.String())
}

// Stdin, Stdout and Stderr return the process standard streams. They are
// UTF-8-correct once the console scope from EnterUTF8Console is active.
func Stdin() *os.File { return os.Stdin }

func Stdout() *os.File { return os.Stdout }

func Stderr() *os.File { return os.Stderr }
