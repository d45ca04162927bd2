package core

import "alusus/internal/osal"

// sourceExtensions are probed in declared order; earlier wins. The
// comparison is byte-exact on NFC-normalized UTF-8 with no case folding.
var sourceExtensions = []string{".alusus", ".source", ".الأسس", ".أسس", ".مصدر"}

// IsSourceFile reports whether the path's extension marks an Alusus
// source file.
func IsSourceFile(p osal.Path) bool {
	ext := p.Ext()
	for _, e := range sourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TargetKind classifies a resolved import target.
type TargetKind int

const (
	TargetSource TargetKind = iota
	TargetLibrary
)

// FindSourceFile resolves req to a canonical source-file path. Absolute
// requests are tried directly; relative ones are joined onto each search
// path, newest first. Only source files are accepted.
func (r *RootManager) FindSourceFile(req string) (osal.Path, bool) {
	reqPath := osal.NewPath(req)
	if reqPath.IsAbs() {
		return r.trySourceFileName(reqPath)
	}
	for _, dir := range r.searchPaths.newestFirst() {
		if result, ok := r.trySourceFileName(dir.Join(req)); ok {
			return result, true
		}
	}
	return osal.Path{}, false
}

// trySourceFileName accepts the path verbatim when it is a recognized
// source file, then probes each source extension in order. The accepted
// path is canonicalized before it is returned.
func (r *RootManager) trySourceFileName(p osal.Path) (osal.Path, bool) {
	if IsSourceFile(p) && p.IsRegular() {
		return canonicalize(p)
	}
	for _, ext := range sourceExtensions {
		candidate := osal.NewPath(p.String() + ext)
		if candidate.IsRegular() {
			return canonicalize(candidate)
		}
	}
	return osal.Path{}, false
}

// FindImportTarget resolves req to either a source file or a shared
// library, per the import search order: any existing regular file is
// accepted verbatim, then source extensions are probed, then candidate
// library names in the path's parent directory. Source extensions come
// first so `import "foo"` prefers foo.alusus over libfoo.so when both
// are present.
func (r *RootManager) FindImportTarget(req string) (osal.Path, TargetKind, bool) {
	reqPath := osal.NewPath(req)
	if reqPath.IsAbs() {
		return r.tryImportName(reqPath)
	}
	for _, dir := range r.searchPaths.newestFirst() {
		if result, kind, ok := r.tryImportName(dir.Join(req)); ok {
			return result, kind, true
		}
	}
	return osal.Path{}, 0, false
}

func (r *RootManager) tryImportName(p osal.Path) (osal.Path, TargetKind, bool) {
	if p.IsRegular() {
		if result, ok := canonicalize(p); ok {
			return result, classifyTarget(result), true
		}
	}
	for _, ext := range sourceExtensions {
		candidate := osal.NewPath(p.String() + ext)
		if candidate.IsRegular() {
			if result, ok := canonicalize(candidate); ok {
				return result, TargetSource, true
			}
		}
	}
	parent := p.Parent()
	for _, name := range osal.ConstructShlibNames(p.Filename()) {
		candidate := parent.Join(name)
		if candidate.IsRegular() {
			if result, ok := canonicalize(candidate); ok {
				return result, TargetLibrary, true
			}
		}
	}
	return osal.Path{}, 0, false
}

func classifyTarget(p osal.Path) TargetKind {
	if IsSourceFile(p) {
		return TargetSource
	}
	return TargetLibrary
}

// canonicalize is mandatory before a path enters the processed-file set
// or the search stack.
func canonicalize(p osal.Path) (osal.Path, bool) {
	c, err := p.Canonical()
	if err != nil {
		return osal.Path{}, false
	}
	return c, true
}
