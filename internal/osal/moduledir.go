package osal

import (
	"os"
	"path/filepath"
	"sync"
)

// moduleDirectory is computed once per process: the executable path
// cannot change after startup.
var moduleDirectory = sync.OnceValues(func() (Path, error) {
	exe, err := os.Executable()
	if err != nil {
		return Path{}, err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return Path{}, err
	}
	return NewPath(resolved).Parent(), nil
})

// ModuleDirectory returns the absolute path of the directory containing
// the running executable, resolved through symlinks.
func ModuleDirectory() (Path, error) {
	return moduleDirectory()
}
