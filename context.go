//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

// MakeContextCurrent makes the context of w current on the calling thread,
// or detaches the current context when w is zero.
//
// A context may only be current on one thread at a time and a thread has
// at most one current context. GLFW enforces this, not the binding.
func (l *Library) MakeContextCurrent(w Window) {
	if l.fn.makeContextCurrent == nil {
		return
	}
	l.fn.makeContextCurrent(uintptr(w))
}

// GetCurrentContext returns the window whose context is current on the
// calling thread, or zero.
func (l *Library) GetCurrentContext() Window {
	if l.fn.getCurrentContext == nil {
		return 0
	}
	return Window(l.fn.getCurrentContext())
}

// SwapBuffers swaps the front and back buffers of the window.
// Without a context on w, GLFW reports NoWindowContext.
func (l *Library) SwapBuffers(w Window) {
	if l.fn.swapBuffers == nil {
		return
	}
	l.fn.swapBuffers(uintptr(w))
}

// SwapInterval sets the number of screen updates to wait before swapping
// buffers for the current context. Without a current context, GLFW
// reports NoCurrentContext.
func (l *Library) SwapInterval(interval int) {
	if l.fn.swapInterval == nil {
		return
	}
	l.fn.swapInterval(int32(interval))
}

// ExtensionSupported reports whether the current context supports the
// named API extension.
func (l *Library) ExtensionSupported(extension string) bool {
	if l.fn.extensionSupported == nil {
		return false
	}
	return l.fn.extensionSupported(extension) == True
}

// GetProcAddress returns the address of a client API function for the
// current context, or 0. The address can be bound with purego.RegisterFunc.
func (l *Library) GetProcAddress(procname string) uintptr {
	if l.fn.getProcAddress == nil {
		return 0
	}
	return l.fn.getProcAddress(procname)
}
