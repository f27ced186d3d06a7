//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"io"
	"testing"
	"unsafe"

	"github.com/charmbracelet/log"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
	"github.com/obinnaokechukwu/glfwgo/internal/handles"
)

// fakeGLFW stands in for the native library: it keeps just enough state
// to behave like GLFW from the binding's point of view, and reports errors
// by calling the installed error trampoline, as native code would.
type fakeGLFW struct {
	display     bool
	initialized bool
	terminated  int
	hints       map[int32]int32
	windows     map[uintptr]*fakeWindow
	nextWindow  uintptr
	current     uintptr
	clipboard   []byte
	errorFn     uintptr
	monitorFn   uintptr
	monitors    []uintptr
	mode        cVidMode
	cursor      []byte
	hotspot     [2]int32
	lastCode    ErrorCode
	lastDesc    []byte
	wake        chan struct{}
}

type fakeWindow struct {
	hints       map[int32]int32
	shouldClose bool
	callbacks   map[handles.Kind]uintptr
}

func defaultFakeHints() map[int32]int32 {
	return map[int32]int32{
		int32(ContextVersionMajor): 1,
		int32(ContextVersionMinor): 0,
		int32(Visible):             True,
		int32(Resizable):           True,
	}
}

func (f *fakeGLFW) raise(code ErrorCode, desc string) {
	b := append([]byte(desc), 0)
	f.lastCode, f.lastDesc = code, b
	if f.errorFn == 0 {
		return
	}
	errorTrampoline(int32(code), &b[0])
}

func (f *fakeGLFW) windowSetter(kind handles.Kind) func(uintptr, uintptr) uintptr {
	return func(w, fn uintptr) uintptr {
		win := f.windows[w]
		prev := win.callbacks[kind]
		win.callbacks[kind] = fn
		return prev
	}
}

func (f *fakeGLFW) functions() functions {
	return functions{
		init: func() int32 {
			if !f.display {
				f.raise(PlatformError, "no display")
				return False
			}
			f.initialized = true
			return True
		},
		terminate: func() {
			f.initialized = false
			f.terminated++
			f.hints = defaultFakeHints()
			f.windows = make(map[uintptr]*fakeWindow)
			f.current = 0
		},
		getVersion: func(major, minor, rev *int32) {
			*major, *minor, *rev = 3, 3, 8
		},
		getVersionString: func() string { return "3.3.8 fake" },
		getError: func(desc **byte) int32 {
			code := f.lastCode
			*desc = nil
			if code != 0 {
				*desc = &f.lastDesc[0]
			}
			f.lastCode, f.lastDesc = 0, nil
			return int32(code)
		},
		setErrorCallback: func(fn uintptr) uintptr {
			prev := f.errorFn
			f.errorFn = fn
			return prev
		},
		defaultWindowHints: func() { f.hints = defaultFakeHints() },
		windowHint:         func(hint, value int32) { f.hints[hint] = value },
		createWindow: func(width, height int32, title string, monitor, share uintptr) uintptr {
			if !f.initialized {
				f.raise(NotInitialized, "The GLFW library is not initialized")
				return 0
			}
			f.nextWindow += 0x10
			snapshot := make(map[int32]int32, len(f.hints))
			for k, v := range f.hints {
				snapshot[k] = v
			}
			f.windows[f.nextWindow] = &fakeWindow{hints: snapshot, callbacks: make(map[handles.Kind]uintptr)}
			return f.nextWindow
		},
		destroyWindow:        func(w uintptr) { delete(f.windows, w) },
		windowShouldClose:    func(w uintptr) int32 { return int32(Bool(f.windows[w].shouldClose)) },
		setWindowShouldClose: func(w uintptr, v int32) { f.windows[w].shouldClose = v == True },
		getWindowAttrib:      func(w uintptr, attrib int32) int32 { return f.windows[w].hints[attrib] },

		setWindowCloseCallback: f.windowSetter(handles.KindWindowClose),
		setWindowSizeCallback:  f.windowSetter(handles.KindWindowSize),
		setKeyCallback:         f.windowSetter(handles.KindKey),
		setDropCallback:        f.windowSetter(handles.KindDrop),
		setScrollCallback:      f.windowSetter(handles.KindScroll),
		setMonitorCallback: func(fn uintptr) uintptr {
			prev := f.monitorFn
			f.monitorFn = fn
			return prev
		},

		getClipboardString: func(uintptr) *byte {
			if len(f.clipboard) == 0 {
				f.raise(FormatUnavailable, "Failed to convert clipboard to string")
				return nil
			}
			return &f.clipboard[0]
		},
		setClipboardString: func(_ uintptr, s string) { f.clipboard = append([]byte(s), 0) },

		createCursor: func(img *cImage, xhot, yhot int32) uintptr {
			n := int(img.width) * int(img.height) * 4
			f.cursor = append([]byte(nil), unsafe.Slice(img.pixels, n)...)
			f.hotspot = [2]int32{xhot, yhot}
			return 0xC000
		},

		makeContextCurrent: func(w uintptr) { f.current = w },
		getCurrentContext:  func() uintptr { return f.current },
		swapBuffers: func(w uintptr) {
			if f.current != w {
				f.raise(NoWindowContext, "Cannot swap buffers of a window that has no OpenGL or OpenGL ES context")
			}
		},
		swapInterval: func(int32) {
			if f.current == 0 {
				f.raise(NoCurrentContext, "Cannot set swap interval without a current OpenGL or OpenGL ES context")
			}
		},

		getMonitors: func(count *int32) *uintptr {
			*count = int32(len(f.monitors))
			if len(f.monitors) == 0 {
				return nil
			}
			return &f.monitors[0]
		},
		getPrimaryMonitor: func() uintptr {
			if len(f.monitors) == 0 {
				return 0
			}
			return f.monitors[0]
		},
		getVideoMode: func(uintptr) *cVidMode { return &f.mode },

		pollEvents:     func() {},
		waitEvents:     func() { <-f.wake },
		postEmptyEvent: func() { f.wake <- struct{}{} },
	}
}

// newFakeLibrary installs a Library backed by a fakeGLFW as the active
// library and closes it when the test ends.
func newFakeLibrary(t *testing.T) (*Library, *fakeGLFW) {
	t.Helper()

	fake := &fakeGLFW{
		display:  true,
		hints:    defaultFakeHints(),
		windows:  make(map[uintptr]*fakeWindow),
		monitors: []uintptr{0xA000, 0xB000},
		mode:     cVidMode{width: 1920, height: 1080, redBits: 8, greenBits: 8, blueBits: 8, refreshRate: 60},
		wake:     make(chan struct{}, 1),
	}

	l := &Library{
		path:      "fake",
		naming:    bindings.GLFWNaming,
		logger:    log.New(io.Discard),
		fn:        fake.functions(),
		missing:   map[string]struct{}{"glfwGetKeyScancode": {}},
		callbacks: handles.NewTable(),
	}

	loadMu.Lock()
	if !active.CompareAndSwap(nil, l) {
		loadMu.Unlock()
		t.Fatal("another Library is still active")
	}
	loadMu.Unlock()
	l.routeErrors()

	t.Cleanup(func() { _ = l.Close() })
	return l, fake
}

// errorRecorder collects error callback invocations.
type errorRecorder struct {
	codes []ErrorCode
	descs []string
}

func (r *errorRecorder) callback() ErrorCallback {
	return func(code ErrorCode, description string) {
		r.codes = append(r.codes, code)
		r.descs = append(r.descs, description)
	}
}
