//go:build windows

package osal

import "syscall"

const cpUTF8 = 65001

var (
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleCP = kernel32.NewProc("GetConsoleCP")
	procSetConsoleCP = kernel32.NewProc("SetConsoleCP")
	procGetOutputCP  = kernel32.NewProc("GetConsoleOutputCP")
	procSetOutputCP  = kernel32.NewProc("SetConsoleOutputCP")
)

// EnterUTF8Console switches the console input and output code pages to
// UTF-8 and returns the function that restores the original ones. The
// restore function must run on every exit path.
func EnterUTF8Console() func() {
	origIn, _, _ := procGetConsoleCP.Call()
	origOut, _, _ := procGetOutputCP.Call()
	procSetConsoleCP.Call(cpUTF8)
	procSetOutputCP.Call(cpUTF8)
	return func() {
		procSetConsoleCP.Call(origIn)
		procSetOutputCP.Call(origOut)
	}
}
