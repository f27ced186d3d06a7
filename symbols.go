//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
)

// cImage mirrors GLFWimage.
type cImage struct {
	width  int32
	height int32
	pixels *byte
}

// cVidMode mirrors GLFWvidmode.
type cVidMode struct {
	width       int32
	height      int32
	redBits     int32
	greenBits   int32
	blueBits    int32
	refreshRate int32
}

// functions is the resolved native function table. A nil entry is either
// an optional symbol the loaded library does not export, or a closed Library.
type functions struct {
	// Lifecycle
	init             func() int32
	terminate        func()
	initHint         func(int32, int32)
	getVersion       func(*int32, *int32, *int32)
	getVersionString func() string
	getError         func(**byte) int32
	setErrorCallback func(uintptr) uintptr

	// Window
	defaultWindowHints            func()
	windowHint                    func(int32, int32)
	windowHintString              func(int32, string)
	createWindow                  func(int32, int32, string, uintptr, uintptr) uintptr
	destroyWindow                 func(uintptr)
	windowShouldClose             func(uintptr) int32
	setWindowShouldClose          func(uintptr, int32)
	setWindowTitle                func(uintptr, string)
	getWindowPos                  func(uintptr, *int32, *int32)
	setWindowPos                  func(uintptr, int32, int32)
	getWindowSize                 func(uintptr, *int32, *int32)
	setWindowSize                 func(uintptr, int32, int32)
	setWindowSizeLimits           func(uintptr, int32, int32, int32, int32)
	setWindowAspectRatio          func(uintptr, int32, int32)
	getFramebufferSize            func(uintptr, *int32, *int32)
	getWindowFrameSize            func(uintptr, *int32, *int32, *int32, *int32)
	getWindowContentScale         func(uintptr, *float32, *float32)
	iconifyWindow                 func(uintptr)
	restoreWindow                 func(uintptr)
	maximizeWindow                func(uintptr)
	showWindow                    func(uintptr)
	hideWindow                    func(uintptr)
	focusWindow                   func(uintptr)
	getWindowMonitor              func(uintptr) uintptr
	setWindowMonitor              func(uintptr, uintptr, int32, int32, int32, int32, int32)
	getWindowAttrib               func(uintptr, int32) int32
	setWindowPosCallback          func(uintptr, uintptr) uintptr
	setWindowSizeCallback         func(uintptr, uintptr) uintptr
	setWindowCloseCallback        func(uintptr, uintptr) uintptr
	setWindowRefreshCallback      func(uintptr, uintptr) uintptr
	setWindowFocusCallback        func(uintptr, uintptr) uintptr
	setWindowIconifyCallback      func(uintptr, uintptr) uintptr
	setWindowMaximizeCallback     func(uintptr, uintptr) uintptr
	setFramebufferSizeCallback    func(uintptr, uintptr) uintptr
	setWindowContentScaleCallback func(uintptr, uintptr) uintptr

	// Input
	getInputMode            func(uintptr, int32) int32
	setInputMode            func(uintptr, int32, int32)
	rawMouseMotionSupported func() int32
	getKeyName              func(int32, int32) *byte
	getKeyScancode          func(int32) int32
	getKey                  func(uintptr, int32) int32
	getMouseButton          func(uintptr, int32) int32
	getCursorPos            func(uintptr, *float64, *float64)
	setCursorPos            func(uintptr, float64, float64)
	createCursor            func(*cImage, int32, int32) uintptr
	createStandardCursor    func(int32) uintptr
	destroyCursor           func(uintptr)
	setCursor               func(uintptr, uintptr)
	setKeyCallback          func(uintptr, uintptr) uintptr
	setCharCallback         func(uintptr, uintptr) uintptr
	setMouseButtonCallback  func(uintptr, uintptr) uintptr
	setCursorPosCallback    func(uintptr, uintptr) uintptr
	setCursorEnterCallback  func(uintptr, uintptr) uintptr
	setScrollCallback       func(uintptr, uintptr) uintptr
	setDropCallback         func(uintptr, uintptr) uintptr
	getClipboardString      func(uintptr) *byte
	setClipboardString      func(uintptr, string)
	getTime                 func() float64
	setTime                 func(float64)

	// Context
	makeContextCurrent func(uintptr)
	getCurrentContext  func() uintptr
	swapBuffers        func(uintptr)
	swapInterval       func(int32)
	extensionSupported func(string) int32
	getProcAddress     func(string) uintptr

	// Monitor
	getMonitors            func(*int32) *uintptr
	getPrimaryMonitor      func() uintptr
	getMonitorPos          func(uintptr, *int32, *int32)
	getMonitorPhysicalSize func(uintptr, *int32, *int32)
	getMonitorContentScale func(uintptr, *float32, *float32)
	getMonitorName         func(uintptr) *byte
	setMonitorCallback     func(uintptr) uintptr
	getVideoModes          func(uintptr, *int32) *cVidMode
	getVideoMode           func(uintptr) *cVidMode

	// Events
	pollEvents        func()
	waitEvents        func()
	waitEventsTimeout func(float64)
	postEmptyEvent    func()
}

// symbols lists every declared function with its name before the naming
// transform. Mandatory symbols are the GLFW 3.2 API; symbols added in 3.3
// are optional and leave their entry nil when absent.
func (f *functions) symbols() []bindings.Symbol {
	return []bindings.Symbol{
		{Name: "Init", Fn: &f.init},
		{Name: "Terminate", Fn: &f.terminate},
		{Name: "InitHint", Fn: &f.initHint, Optional: true},
		{Name: "GetVersion", Fn: &f.getVersion},
		{Name: "GetVersionString", Fn: &f.getVersionString},
		{Name: "GetError", Fn: &f.getError, Optional: true},
		{Name: "SetErrorCallback", Fn: &f.setErrorCallback},

		{Name: "DefaultWindowHints", Fn: &f.defaultWindowHints},
		{Name: "WindowHint", Fn: &f.windowHint},
		{Name: "WindowHintString", Fn: &f.windowHintString, Optional: true},
		{Name: "CreateWindow", Fn: &f.createWindow},
		{Name: "DestroyWindow", Fn: &f.destroyWindow},
		{Name: "WindowShouldClose", Fn: &f.windowShouldClose},
		{Name: "SetWindowShouldClose", Fn: &f.setWindowShouldClose},
		{Name: "SetWindowTitle", Fn: &f.setWindowTitle},
		{Name: "GetWindowPos", Fn: &f.getWindowPos},
		{Name: "SetWindowPos", Fn: &f.setWindowPos},
		{Name: "GetWindowSize", Fn: &f.getWindowSize},
		{Name: "SetWindowSize", Fn: &f.setWindowSize},
		{Name: "SetWindowSizeLimits", Fn: &f.setWindowSizeLimits},
		{Name: "SetWindowAspectRatio", Fn: &f.setWindowAspectRatio},
		{Name: "GetFramebufferSize", Fn: &f.getFramebufferSize},
		{Name: "GetWindowFrameSize", Fn: &f.getWindowFrameSize},
		{Name: "GetWindowContentScale", Fn: &f.getWindowContentScale, Optional: true},
		{Name: "IconifyWindow", Fn: &f.iconifyWindow},
		{Name: "RestoreWindow", Fn: &f.restoreWindow},
		{Name: "MaximizeWindow", Fn: &f.maximizeWindow},
		{Name: "ShowWindow", Fn: &f.showWindow},
		{Name: "HideWindow", Fn: &f.hideWindow},
		{Name: "FocusWindow", Fn: &f.focusWindow},
		{Name: "GetWindowMonitor", Fn: &f.getWindowMonitor},
		{Name: "SetWindowMonitor", Fn: &f.setWindowMonitor},
		{Name: "GetWindowAttrib", Fn: &f.getWindowAttrib},
		{Name: "SetWindowPosCallback", Fn: &f.setWindowPosCallback},
		{Name: "SetWindowSizeCallback", Fn: &f.setWindowSizeCallback},
		{Name: "SetWindowCloseCallback", Fn: &f.setWindowCloseCallback},
		{Name: "SetWindowRefreshCallback", Fn: &f.setWindowRefreshCallback},
		{Name: "SetWindowFocusCallback", Fn: &f.setWindowFocusCallback},
		{Name: "SetWindowIconifyCallback", Fn: &f.setWindowIconifyCallback},
		{Name: "SetWindowMaximizeCallback", Fn: &f.setWindowMaximizeCallback, Optional: true},
		{Name: "SetFramebufferSizeCallback", Fn: &f.setFramebufferSizeCallback},
		{Name: "SetWindowContentScaleCallback", Fn: &f.setWindowContentScaleCallback, Optional: true},

		{Name: "GetInputMode", Fn: &f.getInputMode},
		{Name: "SetInputMode", Fn: &f.setInputMode},
		{Name: "RawMouseMotionSupported", Fn: &f.rawMouseMotionSupported, Optional: true},
		{Name: "GetKeyName", Fn: &f.getKeyName},
		{Name: "GetKeyScancode", Fn: &f.getKeyScancode, Optional: true},
		{Name: "GetKey", Fn: &f.getKey},
		{Name: "GetMouseButton", Fn: &f.getMouseButton},
		{Name: "GetCursorPos", Fn: &f.getCursorPos},
		{Name: "SetCursorPos", Fn: &f.setCursorPos},
		{Name: "CreateCursor", Fn: &f.createCursor},
		{Name: "CreateStandardCursor", Fn: &f.createStandardCursor},
		{Name: "DestroyCursor", Fn: &f.destroyCursor},
		{Name: "SetCursor", Fn: &f.setCursor},
		{Name: "SetKeyCallback", Fn: &f.setKeyCallback},
		{Name: "SetCharCallback", Fn: &f.setCharCallback},
		{Name: "SetMouseButtonCallback", Fn: &f.setMouseButtonCallback},
		{Name: "SetCursorPosCallback", Fn: &f.setCursorPosCallback},
		{Name: "SetCursorEnterCallback", Fn: &f.setCursorEnterCallback},
		{Name: "SetScrollCallback", Fn: &f.setScrollCallback},
		{Name: "SetDropCallback", Fn: &f.setDropCallback},
		{Name: "GetClipboardString", Fn: &f.getClipboardString},
		{Name: "SetClipboardString", Fn: &f.setClipboardString},
		{Name: "GetTime", Fn: &f.getTime},
		{Name: "SetTime", Fn: &f.setTime},

		{Name: "MakeContextCurrent", Fn: &f.makeContextCurrent},
		{Name: "GetCurrentContext", Fn: &f.getCurrentContext},
		{Name: "SwapBuffers", Fn: &f.swapBuffers},
		{Name: "SwapInterval", Fn: &f.swapInterval},
		{Name: "ExtensionSupported", Fn: &f.extensionSupported},
		{Name: "GetProcAddress", Fn: &f.getProcAddress},

		{Name: "GetMonitors", Fn: &f.getMonitors},
		{Name: "GetPrimaryMonitor", Fn: &f.getPrimaryMonitor},
		{Name: "GetMonitorPos", Fn: &f.getMonitorPos},
		{Name: "GetMonitorPhysicalSize", Fn: &f.getMonitorPhysicalSize},
		{Name: "GetMonitorContentScale", Fn: &f.getMonitorContentScale, Optional: true},
		{Name: "GetMonitorName", Fn: &f.getMonitorName},
		{Name: "SetMonitorCallback", Fn: &f.setMonitorCallback},
		{Name: "GetVideoModes", Fn: &f.getVideoModes},
		{Name: "GetVideoMode", Fn: &f.getVideoMode},

		{Name: "PollEvents", Fn: &f.pollEvents},
		{Name: "WaitEvents", Fn: &f.waitEvents},
		{Name: "WaitEventsTimeout", Fn: &f.waitEventsTimeout},
		{Name: "PostEmptyEvent", Fn: &f.postEmptyEvent},
	}
}
