//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

// Package glfwgo provides bindings to the GLFW 3 windowing, input and
// OpenGL context library without CGO, using purego.
//
// The native library is located and loaded at runtime by Load, which
// returns a Library exposing every GLFW function the binding declares.
// Only one Library may be live per process because GLFW keeps global
// state; Close it (typically with defer) to terminate GLFW and release the
// module.
//
// All calls are synchronous pass-throughs. Most GLFW functions must be
// called from the main thread, so programs usually lock it:
//
//	func init() { runtime.LockOSThread() }
//
// Callbacks are invoked synchronously on the thread that calls PollEvents,
// WaitEvents or WaitEventsTimeout (the error callback fires on whichever
// thread triggered the error). PostEmptyEvent is the only function that
// may be called from any goroutine. An OpenGL context may be current on at
// most one thread at a time; GLFW reports violations through the error
// callback, the binding does not check them.
package glfwgo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
	"github.com/obinnaokechukwu/glfwgo/internal/handles"
	"github.com/obinnaokechukwu/glfwgo/internal/platform"
)

// libraryVersions are the sonames probed when no path is configured.
var libraryVersions = []int{3}

var (
	loadMu sync.Mutex
	active atomic.Pointer[Library]
)

// Library is a loaded GLFW module and its resolved function table.
//
// Every method on a closed Library is a no-op returning zero values.
type Library struct {
	path      string
	handle    uintptr
	naming    Naming
	logger    *log.Logger
	fn        functions
	missing   map[string]struct{}
	callbacks *handles.Table

	initialized bool
	closed      bool
}

var _ GLFW = (*Library)(nil)

// Load locates the GLFW shared library, resolves every declared symbol and
// returns the process-wide Library.
//
// It fails with a *LoadError when the file is missing, is not a loadable
// module, or lacks mandatory symbols (all of them are listed), and with
// ErrAlreadyLoaded while another Library is live.
func Load(cfg Config) (*Library, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if active.Load() != nil {
		return nil, ErrAlreadyLoaded
	}

	cfg = cfg.withDefaults()

	handle, path, err := bindings.OpenLibrary(cfg.Path, "glfw", libraryVersions)
	if err != nil {
		cfg.Logger.Debug("GLFW library unavailable", "path", cfg.Path, "err", err)
		return nil, err
	}

	l := &Library{
		path:      path,
		handle:    handle,
		naming:    cfg.Naming,
		logger:    cfg.Logger,
		missing:   make(map[string]struct{}),
		callbacks: handles.NewTable(),
	}

	missingOptional, err := bindings.Resolve(handle, path, cfg.Naming, l.fn.symbols())
	if err != nil {
		cfg.Logger.Debug("GLFW symbols unresolved", "path", path, "err", err)
		_ = platform.Close(handle)
		return nil, err
	}
	for _, name := range missingOptional {
		l.missing[name] = struct{}{}
		cfg.Logger.Debug("optional GLFW symbol missing", "symbol", name)
	}

	active.Store(l)
	l.routeErrors()
	cfg.Logger.Debug("GLFW library loaded", "path", path, "version", l.VersionString())
	return l, nil
}

// Close terminates GLFW if it is still initialized, forgets every
// registered callback and releases the native module. It is safe to call
// more than once.
func (l *Library) Close() error {
	loadMu.Lock()
	defer loadMu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if l.initialized && l.fn.terminate != nil {
		l.fn.terminate()
		l.initialized = false
	}
	if l.fn.setErrorCallback != nil {
		l.fn.setErrorCallback(0)
	}
	l.callbacks.Reset()
	l.fn = functions{}

	active.CompareAndSwap(l, nil)

	err := platform.Close(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("glfwgo: closing %s: %w", l.path, err)
	}
	l.logger.Debug("GLFW library closed", "path", l.path)
	return nil
}

// Path returns the path or name the native library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// HasSymbol reports whether a declared function, given by its name before
// the naming transform (for example "GetError"), is available.
func (l *Library) HasSymbol(name string) bool {
	if l.closed {
		return false
	}
	for _, sym := range l.fn.symbols() {
		if sym.Name != name {
			continue
		}
		_, missing := l.missing[l.naming.Symbol(name)]
		return !missing
	}
	return false
}

// Init initializes GLFW. It must succeed before most other functions are
// used. On failure it returns false and the error callback has already
// been invoked.
func (l *Library) Init() bool {
	if l.fn.init == nil {
		return false
	}
	l.initialized = l.fn.init() == True
	return l.initialized
}

// Terminate destroys all remaining windows and cursors, restores modified
// gamma ramps and frees GLFW's resources. Init must succeed again before
// GLFW is reused. Window hints return to their defaults.
//
// Per-window callbacks are forgotten; the error callback stays installed.
func (l *Library) Terminate() {
	if l.fn.terminate == nil {
		return
	}
	l.fn.terminate()
	l.initialized = false
	l.callbacks.Reset(handles.KindError)
}

// Initialized reports whether Init succeeded and Terminate has not been
// called since.
func (l *Library) Initialized() bool {
	return l.initialized
}

// InitHint sets a hint for the next Init (GLFW 3.3). It is a no-op when
// the loaded library does not export glfwInitHint.
func (l *Library) InitHint(hint InitHint, value int) {
	if l.fn.initHint == nil {
		return
	}
	l.fn.initHint(int32(hint), int32(value))
}

// Version returns the major, minor and revision numbers of the loaded
// GLFW binary. It may be called before Init.
func (l *Library) Version() (major, minor, rev int) {
	if l.fn.getVersion == nil {
		return 0, 0, 0
	}
	var maj, mn, r int32
	l.fn.getVersion(&maj, &mn, &r)
	return int(maj), int(mn), int(r)
}

// VersionString returns the compile-time version string of the loaded
// GLFW binary. It may be called before Init.
func (l *Library) VersionString() string {
	if l.fn.getVersionString == nil {
		return ""
	}
	return l.fn.getVersionString()
}

// GetError returns and clears the last error of the calling thread as an
// *Error (GLFW 3.3). It returns nil when there was none or glfwGetError is
// absent.
func (l *Library) GetError() error {
	if l.fn.getError == nil {
		return nil
	}
	var desc *byte
	code := l.fn.getError(&desc)
	if code == 0 {
		return nil
	}
	return &Error{Code: ErrorCode(code), Description: gostring(desc)}
}

// routeErrors points native error reporting at the error trampoline, so
// errors are logged even before SetErrorCallback is used.
func (l *Library) routeErrors() {
	if l.fn.setErrorCallback != nil {
		l.fn.setErrorCallback(trampoline(handles.KindError))
	}
}
