package osal

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Path wraps a native OS path and always presents it as NFC-normalized
// UTF-8. Paths are value-like: copies compare by their normalized string.
// Copies share the canonical-form cache, so concurrent reads of a shared
// Path are safe.
type Path struct {
	s     string
	cache *pathCache
}

type pathCache struct {
	mu        sync.Mutex
	canonical string
}

// NewPath builds a Path from a UTF-8 string. The string is NFC-normalized
// and lexically cleaned; equal paths normalize to identical byte sequences.
func NewPath(s string) Path {
	if s == "" {
		return Path{cache: &pathCache{}}
	}
	return Path{s: filepath.Clean(norm.NFC.String(s)), cache: &pathCache{}}
}

func (p Path) String() string { return p.s }

func (p Path) IsEmpty() bool { return p.s == "" }

func (p Path) Equal(other Path) bool { return p.s == other.s }

// Join appends one or more elements and renormalizes.
func (p Path) Join(elems ...string) Path {
	parts := append([]string{p.s}, elems...)
	return NewPath(filepath.Join(parts...))
}

// Parent returns the parent directory, or an empty Path when there is none.
func (p Path) Parent() Path {
	if p.s == "" {
		return Path{cache: &pathCache{}}
	}
	dir := filepath.Dir(p.s)
	if dir == p.s {
		// Root directories are their own dirname.
		return Path{cache: &pathCache{}}
	}
	return NewPath(dir)
}

// Filename returns the last element of the path.
func (p Path) Filename() string {
	if p.s == "" {
		return ""
	}
	return filepath.Base(p.s)
}

// Ext returns the extension including the leading dot, or "".
func (p Path) Ext() string { return filepath.Ext(p.s) }

func (p Path) IsAbs() bool { return filepath.IsAbs(p.s) }

// Abs resolves the path against base when it is not already absolute.
func (p Path) Abs(base Path) Path {
	if p.IsAbs() || base.IsEmpty() {
		return p
	}
	return base.Join(p.s)
}

func (p Path) Exists() bool {
	_, err := os.Stat(p.s)
	return err == nil
}

func (p Path) IsRegular() bool {
	info, err := os.Stat(p.s)
	return err == nil && info.Mode().IsRegular()
}

func (p Path) IsDir() bool {
	info, err := os.Stat(p.s)
	return err == nil && info.IsDir()
}

func (p Path) IsSymlink() bool {
	info, err := os.Lstat(p.s)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Canonical resolves symlinks and returns the absolute normalized form.
// The result is cached; the target must exist for the first call to
// succeed.
func (p Path) Canonical() (Path, error) {
	if p.cache != nil {
		p.cache.mu.Lock()
		cached := p.cache.canonical
		p.cache.mu.Unlock()
		if cached != "" {
			return Path{s: cached, cache: p.cache}, nil
		}
	}
	abs, err := filepath.Abs(p.s)
	if err != nil {
		return Path{}, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Path{}, err
	}
	c := NewPath(resolved)
	if p.cache != nil {
		p.cache.mu.Lock()
		p.cache.canonical = c.s
		p.cache.mu.Unlock()
	}
	return c, nil
}
