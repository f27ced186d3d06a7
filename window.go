//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"github.com/obinnaokechukwu/glfwgo/internal/handles"
)

// Window is an opaque GLFW window handle. The zero value means no window.
//
// It is the address of a native object the binding never dereferences;
// two Windows are the same window exactly when they are equal. A Window is
// valid from CreateWindow until DestroyWindow or Terminate. Using it
// afterwards is undefined behavior that the binding does not detect.
type Window uintptr

// DefaultWindowHints resets every window hint to its default value.
func (l *Library) DefaultWindowHints() {
	if l.fn.defaultWindowHints == nil {
		return
	}
	l.fn.defaultWindowHints()
}

// WindowHint sets a hint for the next CreateWindow call. Windows that
// already exist are not affected.
func (l *Library) WindowHint(hint Hint, value int) {
	if l.fn.windowHint == nil {
		return
	}
	l.fn.windowHint(int32(hint), int32(value))
}

// WindowHintString sets a string hint for the next CreateWindow call
// (GLFW 3.3). It is a no-op when the library lacks glfwWindowHintString.
func (l *Library) WindowHintString(hint Hint, value string) {
	if l.fn.windowHintString == nil {
		return
	}
	l.fn.windowHintString(int32(hint), value)
}

// CreateWindow creates a window and its context using the hints set so
// far. Pass a monitor for full screen mode and share to share context
// objects. It returns the zero Window on failure, after the error callback
// has been invoked.
func (l *Library) CreateWindow(width, height int, title string, monitor Monitor, share Window) Window {
	if l.fn.createWindow == nil {
		return 0
	}
	return Window(l.fn.createWindow(int32(width), int32(height), title, uintptr(monitor), uintptr(share)))
}

// DestroyWindow destroys the window and its context and forgets its
// callbacks. No callbacks are called for the window afterwards.
func (l *Library) DestroyWindow(w Window) {
	if l.fn.destroyWindow == nil {
		return
	}
	l.fn.destroyWindow(uintptr(w))
	l.callbacks.DropHandle(uintptr(w))
}

// WindowShouldClose returns the close flag of the window. Event loops
// should check it every iteration.
func (l *Library) WindowShouldClose(w Window) bool {
	if l.fn.windowShouldClose == nil {
		return false
	}
	return l.fn.windowShouldClose(uintptr(w)) == True
}

// SetWindowShouldClose sets the close flag, overriding the user's intent.
func (l *Library) SetWindowShouldClose(w Window, value bool) {
	if l.fn.setWindowShouldClose == nil {
		return
	}
	l.fn.setWindowShouldClose(uintptr(w), int32(Bool(value)))
}

// SetWindowTitle sets the UTF-8 window title.
func (l *Library) SetWindowTitle(w Window, title string) {
	if l.fn.setWindowTitle == nil {
		return
	}
	l.fn.setWindowTitle(uintptr(w), title)
}

// GetWindowPos returns the screen position of the client area's upper-left corner.
func (l *Library) GetWindowPos(w Window) (x, y int) {
	if l.fn.getWindowPos == nil {
		return 0, 0
	}
	var cx, cy int32
	l.fn.getWindowPos(uintptr(w), &cx, &cy)
	return int(cx), int(cy)
}

// SetWindowPos moves the client area's upper-left corner.
func (l *Library) SetWindowPos(w Window, x, y int) {
	if l.fn.setWindowPos == nil {
		return
	}
	l.fn.setWindowPos(uintptr(w), int32(x), int32(y))
}

// GetWindowSize returns the client area size in screen coordinates.
func (l *Library) GetWindowSize(w Window) (width, height int) {
	if l.fn.getWindowSize == nil {
		return 0, 0
	}
	var cw, ch int32
	l.fn.getWindowSize(uintptr(w), &cw, &ch)
	return int(cw), int(ch)
}

// SetWindowSize resizes the client area.
func (l *Library) SetWindowSize(w Window, width, height int) {
	if l.fn.setWindowSize == nil {
		return
	}
	l.fn.setWindowSize(uintptr(w), int32(width), int32(height))
}

// SetWindowSizeLimits sets the client area limits. Use DontCare to leave
// a bound unconstrained.
func (l *Library) SetWindowSizeLimits(w Window, minWidth, minHeight, maxWidth, maxHeight int) {
	if l.fn.setWindowSizeLimits == nil {
		return
	}
	l.fn.setWindowSizeLimits(uintptr(w), int32(minWidth), int32(minHeight), int32(maxWidth), int32(maxHeight))
}

// SetWindowAspectRatio locks the client area aspect ratio. DontCare for
// both terms removes the lock.
func (l *Library) SetWindowAspectRatio(w Window, numer, denom int) {
	if l.fn.setWindowAspectRatio == nil {
		return
	}
	l.fn.setWindowAspectRatio(uintptr(w), int32(numer), int32(denom))
}

// GetFramebufferSize returns the framebuffer size in pixels.
func (l *Library) GetFramebufferSize(w Window) (width, height int) {
	if l.fn.getFramebufferSize == nil {
		return 0, 0
	}
	var cw, ch int32
	l.fn.getFramebufferSize(uintptr(w), &cw, &ch)
	return int(cw), int(ch)
}

// GetWindowFrameSize returns the size of each edge of the window frame.
func (l *Library) GetWindowFrameSize(w Window) (left, top, right, bottom int) {
	if l.fn.getWindowFrameSize == nil {
		return 0, 0, 0, 0
	}
	var cl, ct, cr, cb int32
	l.fn.getWindowFrameSize(uintptr(w), &cl, &ct, &cr, &cb)
	return int(cl), int(ct), int(cr), int(cb)
}

// GetWindowContentScale returns the content scale of the window (GLFW 3.3).
// It returns 1, 1 when the library lacks glfwGetWindowContentScale.
func (l *Library) GetWindowContentScale(w Window) (x, y float32) {
	if l.fn.getWindowContentScale == nil {
		return 1, 1
	}
	l.fn.getWindowContentScale(uintptr(w), &x, &y)
	return x, y
}

// IconifyWindow minimizes the window, or does nothing if it already is.
func (l *Library) IconifyWindow(w Window) {
	if l.fn.iconifyWindow != nil {
		l.fn.iconifyWindow(uintptr(w))
	}
}

// RestoreWindow restores an iconified or maximized window.
func (l *Library) RestoreWindow(w Window) {
	if l.fn.restoreWindow != nil {
		l.fn.restoreWindow(uintptr(w))
	}
}

// MaximizeWindow maximizes the window, or does nothing if it already is.
func (l *Library) MaximizeWindow(w Window) {
	if l.fn.maximizeWindow != nil {
		l.fn.maximizeWindow(uintptr(w))
	}
}

// ShowWindow makes a hidden window visible.
func (l *Library) ShowWindow(w Window) {
	if l.fn.showWindow != nil {
		l.fn.showWindow(uintptr(w))
	}
}

// HideWindow hides the window if it was visible.
func (l *Library) HideWindow(w Window) {
	if l.fn.hideWindow != nil {
		l.fn.hideWindow(uintptr(w))
	}
}

// FocusWindow brings the window to front and gives it input focus.
func (l *Library) FocusWindow(w Window) {
	if l.fn.focusWindow != nil {
		l.fn.focusWindow(uintptr(w))
	}
}

// GetWindowMonitor returns the monitor of a full screen window, or the
// zero Monitor for windowed mode.
func (l *Library) GetWindowMonitor(w Window) Monitor {
	if l.fn.getWindowMonitor == nil {
		return 0
	}
	return Monitor(l.fn.getWindowMonitor(uintptr(w)))
}

// SetWindowMonitor switches the window between full screen (non-zero
// monitor) and windowed mode.
func (l *Library) SetWindowMonitor(w Window, monitor Monitor, x, y, width, height, refreshRate int) {
	if l.fn.setWindowMonitor == nil {
		return
	}
	l.fn.setWindowMonitor(uintptr(w), uintptr(monitor), int32(x), int32(y), int32(width), int32(height), int32(refreshRate))
}

// GetWindowAttrib returns a window or context attribute.
func (l *Library) GetWindowAttrib(w Window, attrib Hint) int {
	if l.fn.getWindowAttrib == nil {
		return 0
	}
	return int(l.fn.getWindowAttrib(uintptr(w), int32(attrib)))
}

// SetWindowPosCallback sets the position callback of the window and
// returns the previous one. Nil removes it.
func (l *Library) SetWindowPosCallback(w Window, cb WindowPosCallback) WindowPosCallback {
	if l.fn.setWindowPosCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowPos, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowPosCallback(uintptr(w), t)
	})
}

// SetWindowSizeCallback sets the size callback of the window and returns
// the previous one. Nil removes it.
func (l *Library) SetWindowSizeCallback(w Window, cb WindowSizeCallback) WindowSizeCallback {
	if l.fn.setWindowSizeCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowSize, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowSizeCallback(uintptr(w), t)
	})
}

// SetWindowCloseCallback sets the close callback of the window, called
// when the user attempts to close it, and returns the previous one.
func (l *Library) SetWindowCloseCallback(w Window, cb WindowCloseCallback) WindowCloseCallback {
	if l.fn.setWindowCloseCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowClose, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowCloseCallback(uintptr(w), t)
	})
}

// SetWindowRefreshCallback sets the refresh callback of the window and
// returns the previous one.
func (l *Library) SetWindowRefreshCallback(w Window, cb WindowRefreshCallback) WindowRefreshCallback {
	if l.fn.setWindowRefreshCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowRefresh, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowRefreshCallback(uintptr(w), t)
	})
}

// SetWindowFocusCallback sets the focus callback of the window and
// returns the previous one.
func (l *Library) SetWindowFocusCallback(w Window, cb WindowFocusCallback) WindowFocusCallback {
	if l.fn.setWindowFocusCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowFocus, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowFocusCallback(uintptr(w), t)
	})
}

// SetWindowIconifyCallback sets the iconify callback of the window and
// returns the previous one.
func (l *Library) SetWindowIconifyCallback(w Window, cb WindowIconifyCallback) WindowIconifyCallback {
	if l.fn.setWindowIconifyCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowIconify, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowIconifyCallback(uintptr(w), t)
	})
}

// SetWindowMaximizeCallback sets the maximize callback of the window and
// returns the previous one (GLFW 3.3). It returns nil without registering
// anything when the library lacks the symbol.
func (l *Library) SetWindowMaximizeCallback(w Window, cb WindowMaximizeCallback) WindowMaximizeCallback {
	if l.fn.setWindowMaximizeCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowMaximize, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowMaximizeCallback(uintptr(w), t)
	})
}

// SetFramebufferSizeCallback sets the framebuffer resize callback of the
// window and returns the previous one.
func (l *Library) SetFramebufferSizeCallback(w Window, cb FramebufferSizeCallback) FramebufferSizeCallback {
	if l.fn.setFramebufferSizeCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindFramebufferSize, cb, cb == nil, func(t uintptr) {
		l.fn.setFramebufferSizeCallback(uintptr(w), t)
	})
}

// SetWindowContentScaleCallback sets the content scale callback of the
// window and returns the previous one (GLFW 3.3). It is not supported on
// Windows, where it returns nil and registers nothing.
func (l *Library) SetWindowContentScaleCallback(w Window, cb WindowContentScaleCallback) WindowContentScaleCallback {
	if l.fn.setWindowContentScaleCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindWindowContentScale, cb, cb == nil, func(t uintptr) {
		l.fn.setWindowContentScaleCallback(uintptr(w), t)
	})
}
