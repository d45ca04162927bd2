// Package core is the root orchestration engine: it owns the shared AST
// root scope, the import search paths, the processed-file set and the
// notice bus, and drives the pluggable processing driver.
package core

import (
	"fmt"
	"io"

	"alusus/internal/ast"
	"alusus/internal/libman"
	"alusus/internal/logger"
	"alusus/internal/notices"
	"alusus/internal/osal"
	"alusus/internal/project"
	"alusus/internal/source"
)

// libDirName is the package library directory under the install root.
const libDirName = "lib"

// GrammarSeeder registers the initial language productions on a freshly
// created scope. exprScope is true for the expression root scope.
type GrammarSeeder func(scope *ast.Scope, exprScope bool)

// Options configures a RootManager. DriverFactory is required; zero
// values elsewhere fall back to process-level defaults.
type Options struct {
	Argv          []string
	Language      string
	DriverFactory DriverFactory
	GrammarSeeder GrammarSeeder
	Loader        osal.Loader
	// ModuleDir overrides the executable's directory, WorkingDir the
	// process CWD. Tests use these to pin the search-path seeds.
	ModuleDir  osal.Path
	WorkingDir osal.Path
}

// RootManager is created once per compilation job and owns the root
// scope for its entire lifetime. It is not safe for concurrent use.
type RootManager struct {
	rootScope     *ast.Scope
	exprRootScope *ast.Scope
	registry      *ast.Registry

	libraryManager *libman.Manager
	driverFactory  DriverFactory

	processedFiles map[string]struct{}
	searchPaths    searchPathStack

	noticeStore  notices.Store
	inner        notices.Signal
	noticeSignal notices.Signal
	minTracker   *notices.MinTracker

	interactive bool
	language    string
	argv        []string
	coreBinPath osal.Path
	workingDir  osal.Path
}

func NewRootManager(opts Options) (*RootManager, error) {
	if opts.DriverFactory == nil {
		return nil, fmt.Errorf("%w: a driver factory is required", ErrInvalidArgument)
	}

	r := &RootManager{
		driverFactory:  opts.DriverFactory,
		processedFiles: map[string]struct{}{},
		minTracker:     notices.NewMinTracker(),
		language:       opts.Language,
		argv:           append([]string(nil), opts.Argv...),
		registry:       ast.NewRegistry(),
	}
	if r.language == "" {
		r.language = "en"
	}

	r.rootScope = ast.NewScope(source.Location{})
	r.rootScope.SetProdID("Root")
	r.exprRootScope = ast.NewScope(source.Location{})
	r.exprRootScope.SetProdID("Root")
	if opts.GrammarSeeder != nil {
		opts.GrammarSeeder(r.rootScope, false)
		opts.GrammarSeeder(r.exprRootScope, true)
	}

	r.noticeSignal.Relay(&r.inner)
	r.noticeSignal.Connect(r.minTracker.Observe)

	loader := opts.Loader
	if loader == nil {
		loader = osal.NewPluginLoader()
	}
	r.libraryManager = libman.NewManager(r, loader)

	wd := opts.WorkingDir
	if wd.IsEmpty() {
		var err error
		if wd, err = osal.WorkingDirectory(); err != nil {
			return nil, fmt.Errorf("getting the working directory: %w", err)
		}
	}
	r.workingDir = wd

	moduleDir := opts.ModuleDir
	if moduleDir.IsEmpty() {
		var err error
		if moduleDir, err = osal.ModuleDirectory(); err != nil {
			return nil, fmt.Errorf("locating the executable: %w", err)
		}
	}
	r.coreBinPath = moduleDir

	// Seed the search paths. Lookup order is the reverse of push order,
	// so the CWD is consulted first and the binary directory last.
	r.pushInitialPath(moduleDir)
	r.pushInitialPath(moduleDir.Parent().Join(libDirName))
	if manifest, ok, err := project.FindManifest(wd.String()); err == nil && ok {
		for _, dir := range manifest.LibDirs() {
			r.pushInitialPath(osal.NewPath(dir))
		}
	}
	if libsVar := osal.Getenv("ALUSUS_LIBS"); libsVar != "" {
		for _, p := range osal.ParsePathVariable(libsVar) {
			r.pushInitialPath(osal.NewPath(p).Abs(wd))
		}
	}
	r.pushInitialPath(wd)

	return r, nil
}

// pushInitialPath canonicalizes when the directory exists and skips
// entries that still are not absolute.
func (r *RootManager) pushInitialPath(p osal.Path) {
	if c, err := p.Canonical(); err == nil {
		p = c
	}
	if p.IsAbs() {
		// Only canonical absolute paths enter the stack.
		_ = r.searchPaths.push(p)
	}
}

func (r *RootManager) RootScope() *ast.Scope { return r.rootScope }

func (r *RootManager) ExprRootScope() *ast.Scope { return r.exprRootScope }

func (r *RootManager) Registry() *ast.Registry { return r.registry }

func (r *RootManager) LibraryManager() *libman.Manager { return r.libraryManager }

func (r *RootManager) NoticeStore() *notices.Store { return &r.noticeStore }

// NoticeSignal observes every compilation diagnostic: notices flushed
// from the store and notices relayed from each driver.
func (r *RootManager) NoticeSignal() *notices.Signal { return &r.noticeSignal }

func (r *RootManager) SetInteractive(v bool) { r.interactive = v }

func (r *RootManager) IsInteractive() bool { return r.interactive }

func (r *RootManager) SetLanguage(lang string) { r.language = lang }

func (r *RootManager) Language() string { return r.language }

func (r *RootManager) Argv() []string { return append([]string(nil), r.argv...) }

func (r *RootManager) CoreBinPath() osal.Path { return r.coreBinPath }

// PushSearchPath makes p the first directory the resolver consults.
func (r *RootManager) PushSearchPath(p osal.Path) error {
	return r.searchPaths.push(p)
}

// PopSearchPath balances one push of p.
func (r *RootManager) PopSearchPath(p osal.Path) error {
	return r.searchPaths.pop(p)
}

// SearchPaths returns the lookup order, newest first.
func (r *RootManager) SearchPaths() []osal.Path {
	return r.searchPaths.newestFirst()
}

// MinNoticeSeverityEncountered is the minimum severity of all notices
// emitted since the last reset, or notices.NoSeverity when none were.
func (r *RootManager) MinNoticeSeverityEncountered() notices.Severity {
	return r.minTracker.Min()
}

func (r *RootManager) ResetMinNoticeSeverityEncountered() {
	r.minTracker.Reset()
}

// FlushNotices drains the store in order onto the notice signal.
func (r *RootManager) FlushNotices() {
	count := r.noticeStore.Count()
	if count == 0 {
		return
	}
	for i := 0; i < count; i++ {
		r.inner.Emit(r.noticeStore.Get(i))
	}
	r.noticeStore.Flush(count)
}

// ParseExpression drives the expression root scope on text and fails
// with ErrInvalidArgument when nothing was produced.
func (r *RootManager) ParseExpression(text string) (ast.Node, error) {
	drv := r.driverFactory(r.exprRootScope, r)
	result, err := drv.ProcessString(text, text)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: parsing %q did not produce an expression", ErrInvalidArgument, text)
	}
	return result, nil
}

// ProcessString drives the main scope on text under the given logical
// name.
func (r *RootManager) ProcessString(text, name string) (ast.Node, error) {
	drv := r.newMainDriver()
	return drv.ProcessString(text, name)
}

// ProcessFile resolves path as a source file and drives it. A file that
// was already processed is skipped and yields a nil AST, unless
// allowReprocess is set.
func (r *RootManager) ProcessFile(path string, allowReprocess bool) (ast.Node, error) {
	resolved, ok := r.FindSourceFile(path)
	if !ok {
		// An existing file that is not a recognized source is a type
		// error, not a missing file.
		if literal := osal.NewPath(path).Abs(r.workingDir); literal.IsRegular() && !IsSourceFile(literal) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, path)
		}
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return r.processSourceFile(resolved, allowReprocess)
}

func (r *RootManager) processSourceFile(full osal.Path, allowReprocess bool) (ast.Node, error) {
	key := full.String()
	if !allowReprocess {
		if _, done := r.processedFiles[key]; done {
			return nil, nil
		}
	}
	r.processedFiles[key] = struct{}{}

	result, err := func() (ast.Node, error) {
		// The file's own directory resolves its relative imports; it
		// must come off the stack on every exit path.
		parent := full.Parent()
		if !parent.IsEmpty() {
			if pushErr := r.searchPaths.push(parent); pushErr == nil {
				defer func() { _ = r.searchPaths.pop(parent) }()
			}
		}
		drv := r.newMainDriver()
		return drv.ProcessFile(key)
	}()

	r.FlushNotices()
	return result, err
}

// ProcessStream drives the main scope on a character stream; interactive
// mode feeds stdin through here.
func (r *RootManager) ProcessStream(in io.Reader, name string) (ast.Node, error) {
	drv := r.newMainDriver()
	return drv.ProcessStream(in, name)
}

// TryImportFile resolves req as either a source file or a library and
// dispatches accordingly. On failure the returned details carry the
// accumulated loader error messages, one per line.
func (r *RootManager) TryImportFile(req string) (bool, string) {
	var details string

	if target, kind, ok := r.FindImportTarget(req); ok {
		if kind == TargetSource {
			logger.Log(logger.ParserMajor, "importing source file: %s", target)
			if _, err := r.processSourceFile(target, false); err != nil {
				return false, appendDetail(details, err.Error())
			}
			return true, ""
		}
		logger.Log(logger.ParserMajor, "importing library: %s", target)
		if _, err := r.libraryManager.Load(target.String()); err == nil {
			return true, ""
		} else {
			details = appendDetail(details, err.Error())
		}
	}

	// Last resort: hand the raw name to the OS loader, which has its own
	// search path.
	if _, err := r.libraryManager.Load(req); err == nil {
		return true, ""
	} else {
		details = appendDetail(details, err.Error())
	}
	return false, details
}

func appendDetail(details, msg string) string {
	if details != "" {
		return details + "\n" + msg
	}
	return msg
}

func (r *RootManager) newMainDriver() Driver {
	drv := r.driverFactory(r.rootScope, r)
	r.noticeSignal.Relay(drv.NoticeSignal())
	return drv
}

// Close unloads every library entry. The underlying OS handles stay
// mapped; see the library manager.
func (r *RootManager) Close() {
	r.libraryManager.UnloadAll()
}
