package osal

import (
	"fmt"
	"plugin"
	"sync"
)

// Handle identifies a loaded shared library for the lifetime of the
// process. The zero Handle is never a valid library.
type Handle uintptr

// Loader abstracts dynamic-library loading so the library manager can be
// exercised without native code. Errors are reported through the return
// values; Error additionally records the text of the most recent failure
// for callers that follow the dlerror convention. The recorded text is
// valid only until the next Loader call.
type Loader interface {
	Open(path string) (Handle, error)
	Sym(h Handle, name string) (any, error)
	Close(h Handle) error
	Error() string
}

// PluginLoader loads Go plugins. Opening the same path twice yields the
// same handle. Close is deliberately a no-op: plugins cannot be unmapped,
// which is exactly the retention policy the compiler requires while AST
// nodes may still reference library code.
type PluginLoader struct {
	mu      sync.Mutex
	next    Handle
	plugins map[Handle]*plugin.Plugin
	byPath  map[string]Handle
	lastErr string
}

func NewPluginLoader() *PluginLoader {
	return &PluginLoader{
		next:    1,
		plugins: make(map[Handle]*plugin.Plugin),
		byPath:  make(map[string]Handle),
	}
}

func (l *PluginLoader) Open(path string) (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = ""
	if h, ok := l.byPath[path]; ok {
		return h, nil
	}
	p, err := plugin.Open(path)
	if err != nil {
		l.lastErr = err.Error()
		return 0, err
	}
	h := l.next
	l.next++
	l.plugins[h] = p
	l.byPath[path] = h
	return h, nil
}

func (l *PluginLoader) Sym(h Handle, name string) (any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = ""
	p, ok := l.plugins[h]
	if !ok {
		err := fmt.Errorf("unknown library handle %d", h)
		l.lastErr = err.Error()
		return nil, err
	}
	sym, err := p.Lookup(name)
	if err != nil {
		l.lastErr = err.Error()
		return nil, err
	}
	return sym, nil
}

func (l *PluginLoader) Close(h Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = ""
	if _, ok := l.plugins[h]; !ok {
		err := fmt.Errorf("unknown library handle %d", h)
		l.lastErr = err.Error()
		return err
	}
	// The mapping stays in place; the handle remains resolvable for the
	// rest of the process.
	return nil
}

func (l *PluginLoader) Error() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}
