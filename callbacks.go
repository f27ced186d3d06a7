//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/glfwgo/internal/handles"
)

// ErrorCallback receives every GLFW error, synchronously, on the thread
// whose call failed.
type ErrorCallback func(code ErrorCode, description string)

// MonitorCallback is called when a monitor is connected or disconnected.
type MonitorCallback func(monitor Monitor, event PeripheralEvent)

// PeripheralEvent tells whether a monitor was connected or disconnected.
type PeripheralEvent int32

const (
	Connected    PeripheralEvent = 0x00040001
	Disconnected PeripheralEvent = 0x00040002
)

// Window callbacks.
type (
	WindowPosCallback          func(w Window, x, y int)
	WindowSizeCallback         func(w Window, width, height int)
	WindowCloseCallback        func(w Window)
	WindowRefreshCallback      func(w Window)
	WindowFocusCallback        func(w Window, focused bool)
	WindowIconifyCallback      func(w Window, iconified bool)
	WindowMaximizeCallback     func(w Window, maximized bool)
	FramebufferSizeCallback    func(w Window, width, height int)
	WindowContentScaleCallback func(w Window, x, y float32)
)

// Input callbacks.
type (
	KeyCallback         func(w Window, key Key, scancode int, action Action, mods ModifierKey)
	CharCallback        func(w Window, char rune)
	MouseButtonCallback func(w Window, button MouseButton, action Action, mods ModifierKey)
	CursorPosCallback   func(w Window, x, y float64)
	CursorEnterCallback func(w Window, entered bool)
	ScrollCallback      func(w Window, xoff, yoff float64)
	// DropCallback receives the dropped paths, copied before it is called.
	DropCallback func(w Window, paths []string)
)

// Trampolines are created once per process: purego callbacks are a
// limited resource and are never freed. Native code only ever receives
// these addresses; the Go callback is found through the active Library.
//
// Every trampoline returns a uintptr, which Windows requires of native
// callbacks; GLFW ignores it.
var (
	trampolineOnce sync.Once
	trampolines    map[handles.Kind]uintptr
)

func trampoline(kind handles.Kind) uintptr {
	trampolineOnce.Do(func() {
		trampolines = map[handles.Kind]uintptr{
			handles.KindError:           purego.NewCallback(errorTrampoline),
			handles.KindMonitor:         purego.NewCallback(monitorTrampoline),
			handles.KindWindowPos:       purego.NewCallback(windowPosTrampoline),
			handles.KindWindowSize:      purego.NewCallback(windowSizeTrampoline),
			handles.KindWindowClose:     purego.NewCallback(windowCloseTrampoline),
			handles.KindWindowRefresh:   purego.NewCallback(windowRefreshTrampoline),
			handles.KindWindowFocus:     purego.NewCallback(windowFocusTrampoline),
			handles.KindWindowIconify:   purego.NewCallback(windowIconifyTrampoline),
			handles.KindWindowMaximize:  purego.NewCallback(windowMaximizeTrampoline),
			handles.KindFramebufferSize: purego.NewCallback(framebufferSizeTrampoline),
			handles.KindKey:             purego.NewCallback(keyTrampoline),
			handles.KindChar:            purego.NewCallback(charTrampoline),
			handles.KindMouseButton:     purego.NewCallback(mouseButtonTrampoline),
			handles.KindCursorEnter:     purego.NewCallback(cursorEnterTrampoline),
			handles.KindDrop:            purego.NewCallback(dropTrampoline),
		}
		addFloatTrampolines(trampolines)
	})
	return trampolines[kind]
}

// callbackSupported reports whether callbacks of the given kind can be
// delivered on this platform. Windows cannot deliver the cursor position,
// scroll and content scale callbacks, whose arguments are floating point.
func callbackSupported(kind handles.Kind) bool {
	return trampoline(kind) != 0
}

// swapCallback records cb for (handle, kind) and points the native setter
// at the trampoline, or at NULL when cb is nil. It returns the previously
// registered callback.
//
// isNil must be computed by the caller: a nil func stored in an interface
// is not a nil interface.
func swapCallback[F any](l *Library, handle uintptr, kind handles.Kind, cb F, isNil bool, set func(uintptr)) F {
	if !isNil && !callbackSupported(kind) {
		l.logger.Warn("GLFW callback not supported on this platform", "kind", kind)
		var zero F
		return zero
	}
	var stored any
	if !isNil {
		stored = cb
	}
	prev := l.callbacks.Swap(handles.Key{Handle: handle, Kind: kind}, stored)
	if isNil {
		set(0)
	} else {
		set(trampoline(kind))
	}
	p, _ := prev.(F)
	return p
}

// lookup returns the callback for (handle, kind) on the active Library.
func lookup(handle uintptr, kind handles.Kind) any {
	l := active.Load()
	if l == nil {
		return nil
	}
	return l.callbacks.Lookup(handles.Key{Handle: handle, Kind: kind})
}

// SetErrorCallback installs the process-wide error callback and returns
// the previous one. Pass nil to remove it. It may be called before Init.
//
// Each native error results in exactly one call, made before the failing
// function returns. Errors are also logged at debug level.
func (l *Library) SetErrorCallback(cb ErrorCallback) ErrorCallback {
	if l.fn.setErrorCallback == nil {
		return nil
	}
	var stored any
	if cb != nil {
		stored = cb
	}
	prev := l.callbacks.Swap(handles.Key{Kind: handles.KindError}, stored)
	l.routeErrors()
	p, _ := prev.(ErrorCallback)
	return p
}

func errorTrampoline(code int32, description *byte) uintptr {
	l := active.Load()
	if l == nil {
		return 0
	}
	desc := gostring(description)
	l.logger.Debug("GLFW error", "code", ErrorCode(code), "description", desc)
	if cb, ok := l.callbacks.Lookup(handles.Key{Kind: handles.KindError}).(ErrorCallback); ok {
		cb(ErrorCode(code), desc)
	}
	return 0
}

func monitorTrampoline(monitor uintptr, event int32) uintptr {
	if cb, ok := lookup(0, handles.KindMonitor).(MonitorCallback); ok {
		cb(Monitor(monitor), PeripheralEvent(event))
	}
	return 0
}

func windowPosTrampoline(w uintptr, x, y int32) uintptr {
	if cb, ok := lookup(w, handles.KindWindowPos).(WindowPosCallback); ok {
		cb(Window(w), int(x), int(y))
	}
	return 0
}

func windowSizeTrampoline(w uintptr, width, height int32) uintptr {
	if cb, ok := lookup(w, handles.KindWindowSize).(WindowSizeCallback); ok {
		cb(Window(w), int(width), int(height))
	}
	return 0
}

func windowCloseTrampoline(w uintptr) uintptr {
	if cb, ok := lookup(w, handles.KindWindowClose).(WindowCloseCallback); ok {
		cb(Window(w))
	}
	return 0
}

func windowRefreshTrampoline(w uintptr) uintptr {
	if cb, ok := lookup(w, handles.KindWindowRefresh).(WindowRefreshCallback); ok {
		cb(Window(w))
	}
	return 0
}

func windowFocusTrampoline(w uintptr, focused int32) uintptr {
	if cb, ok := lookup(w, handles.KindWindowFocus).(WindowFocusCallback); ok {
		cb(Window(w), focused == True)
	}
	return 0
}

func windowIconifyTrampoline(w uintptr, iconified int32) uintptr {
	if cb, ok := lookup(w, handles.KindWindowIconify).(WindowIconifyCallback); ok {
		cb(Window(w), iconified == True)
	}
	return 0
}

func windowMaximizeTrampoline(w uintptr, maximized int32) uintptr {
	if cb, ok := lookup(w, handles.KindWindowMaximize).(WindowMaximizeCallback); ok {
		cb(Window(w), maximized == True)
	}
	return 0
}

func framebufferSizeTrampoline(w uintptr, width, height int32) uintptr {
	if cb, ok := lookup(w, handles.KindFramebufferSize).(FramebufferSizeCallback); ok {
		cb(Window(w), int(width), int(height))
	}
	return 0
}

func keyTrampoline(w uintptr, key, scancode, action, mods int32) uintptr {
	if cb, ok := lookup(w, handles.KindKey).(KeyCallback); ok {
		cb(Window(w), Key(key), int(scancode), Action(action), ModifierKey(mods))
	}
	return 0
}

func charTrampoline(w uintptr, codepoint uint32) uintptr {
	if cb, ok := lookup(w, handles.KindChar).(CharCallback); ok {
		cb(Window(w), rune(codepoint))
	}
	return 0
}

func mouseButtonTrampoline(w uintptr, button, action, mods int32) uintptr {
	if cb, ok := lookup(w, handles.KindMouseButton).(MouseButtonCallback); ok {
		cb(Window(w), MouseButton(button), Action(action), ModifierKey(mods))
	}
	return 0
}

func cursorEnterTrampoline(w uintptr, entered int32) uintptr {
	if cb, ok := lookup(w, handles.KindCursorEnter).(CursorEnterCallback); ok {
		cb(Window(w), entered == True)
	}
	return 0
}

func dropTrampoline(w uintptr, count int32, paths **byte) uintptr {
	cb, ok := lookup(w, handles.KindDrop).(DropCallback)
	if !ok {
		return 0
	}
	var out []string
	if count > 0 && paths != nil {
		ptrs := unsafe.Slice(paths, int(count))
		out = make([]string, len(ptrs))
		for i, p := range ptrs {
			out[i] = gostring(p)
		}
	}
	cb(Window(w), out)
	return 0
}
