//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"context"
	"image"
	"time"
)

// GLFW is the complete capability surface of the binding, grouped by
// functional area. *Library implements it; code that only needs a part of
// GLFW can accept the narrower interface.
type GLFW interface {
	Lifecycle
	Errors
	Windows
	Inputs
	Contexts
	Monitors
	Events
}

// Lifecycle covers library initialization and version queries.
type Lifecycle interface {
	Init() bool
	Terminate()
	Initialized() bool
	InitHint(hint InitHint, value int)
	Version() (major, minor, rev int)
	VersionString() string
	Close() error
}

// Errors covers runtime error reporting.
type Errors interface {
	SetErrorCallback(cb ErrorCallback) ErrorCallback
	GetError() error
}

// Windows covers window hints, creation, state and window callbacks.
type Windows interface {
	DefaultWindowHints()
	WindowHint(hint Hint, value int)
	WindowHintString(hint Hint, value string)
	CreateWindow(width, height int, title string, monitor Monitor, share Window) Window
	DestroyWindow(w Window)
	WindowShouldClose(w Window) bool
	SetWindowShouldClose(w Window, value bool)
	SetWindowTitle(w Window, title string)
	GetWindowPos(w Window) (x, y int)
	SetWindowPos(w Window, x, y int)
	GetWindowSize(w Window) (width, height int)
	SetWindowSize(w Window, width, height int)
	SetWindowSizeLimits(w Window, minWidth, minHeight, maxWidth, maxHeight int)
	SetWindowAspectRatio(w Window, numer, denom int)
	GetFramebufferSize(w Window) (width, height int)
	GetWindowFrameSize(w Window) (left, top, right, bottom int)
	GetWindowContentScale(w Window) (x, y float32)
	IconifyWindow(w Window)
	RestoreWindow(w Window)
	MaximizeWindow(w Window)
	ShowWindow(w Window)
	HideWindow(w Window)
	FocusWindow(w Window)
	GetWindowMonitor(w Window) Monitor
	SetWindowMonitor(w Window, monitor Monitor, x, y, width, height, refreshRate int)
	GetWindowAttrib(w Window, attrib Hint) int

	SetWindowPosCallback(w Window, cb WindowPosCallback) WindowPosCallback
	SetWindowSizeCallback(w Window, cb WindowSizeCallback) WindowSizeCallback
	SetWindowCloseCallback(w Window, cb WindowCloseCallback) WindowCloseCallback
	SetWindowRefreshCallback(w Window, cb WindowRefreshCallback) WindowRefreshCallback
	SetWindowFocusCallback(w Window, cb WindowFocusCallback) WindowFocusCallback
	SetWindowIconifyCallback(w Window, cb WindowIconifyCallback) WindowIconifyCallback
	SetWindowMaximizeCallback(w Window, cb WindowMaximizeCallback) WindowMaximizeCallback
	SetFramebufferSizeCallback(w Window, cb FramebufferSizeCallback) FramebufferSizeCallback
	SetWindowContentScaleCallback(w Window, cb WindowContentScaleCallback) WindowContentScaleCallback
}

// Inputs covers keyboard, mouse, cursor, clipboard and timer functions.
type Inputs interface {
	GetInputMode(w Window, mode int) int
	SetInputMode(w Window, mode, value int)
	RawMouseMotionSupported() bool
	GetKeyName(key Key, scancode int) string
	GetKeyScancode(key Key) int
	GetKey(w Window, key Key) Action
	GetMouseButton(w Window, button MouseButton) Action
	GetCursorPos(w Window) (x, y float64)
	SetCursorPos(w Window, x, y float64)
	CreateCursor(img image.Image, xhot, yhot int) Cursor
	CreateStandardCursor(shape StandardCursor) Cursor
	DestroyCursor(c Cursor)
	SetCursor(w Window, c Cursor)
	GetClipboardString(w Window) (string, bool)
	SetClipboardString(w Window, s string)
	GetTime() float64
	SetTime(t float64)

	SetKeyCallback(w Window, cb KeyCallback) KeyCallback
	SetCharCallback(w Window, cb CharCallback) CharCallback
	SetMouseButtonCallback(w Window, cb MouseButtonCallback) MouseButtonCallback
	SetCursorPosCallback(w Window, cb CursorPosCallback) CursorPosCallback
	SetCursorEnterCallback(w Window, cb CursorEnterCallback) CursorEnterCallback
	SetScrollCallback(w Window, cb ScrollCallback) ScrollCallback
	SetDropCallback(w Window, cb DropCallback) DropCallback
}

// Contexts covers OpenGL and OpenGL ES context management.
type Contexts interface {
	MakeContextCurrent(w Window)
	GetCurrentContext() Window
	SwapBuffers(w Window)
	SwapInterval(interval int)
	ExtensionSupported(extension string) bool
	GetProcAddress(procname string) uintptr
}

// Monitors covers monitor enumeration and configuration callbacks.
type Monitors interface {
	GetMonitors() []Monitor
	GetPrimaryMonitor() Monitor
	GetMonitorPos(m Monitor) (x, y int)
	GetMonitorPhysicalSize(m Monitor) (widthMM, heightMM int)
	GetMonitorContentScale(m Monitor) (x, y float32)
	GetMonitorName(m Monitor) string
	GetVideoMode(m Monitor) (VideoMode, bool)
	GetVideoModes(m Monitor) []VideoMode
	SetMonitorCallback(cb MonitorCallback) MonitorCallback
}

// Events covers event processing.
type Events interface {
	PollEvents()
	WaitEvents()
	WaitEventsTimeout(timeout time.Duration)
	WaitEventsContext(ctx context.Context) error
	PostEmptyEvent()
}
