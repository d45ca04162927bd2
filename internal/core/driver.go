package core

import (
	"io"

	"alusus/internal/ast"
	"alusus/internal/notices"
)

// Driver is the contract the root manager imposes on the parsing engine.
// A driver runs to completion or returns an error; notices carrying
// source locations are emitted on its signal as they arise.
type Driver interface {
	ProcessString(text, name string) (ast.Node, error)
	ProcessFile(path string) (ast.Node, error)
	ProcessStream(in io.Reader, name string) (ast.Node, error)
	NoticeSignal() *notices.Signal
}

// DriverFactory builds one driver per operation, targeting the given
// scope. The root manager relays each driver's notice signal onto its
// own so a single slot observes all compilation diagnostics.
type DriverFactory func(target *ast.Scope, root *RootManager) Driver
