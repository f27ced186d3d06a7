//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"unsafe"

	"github.com/obinnaokechukwu/glfwgo/internal/handles"
)

// Monitor is an opaque GLFW monitor handle. The zero value means no
// monitor. Monitors are owned by GLFW and stay valid until disconnected
// or Terminate.
type Monitor uintptr

// VideoMode describes a monitor video mode.
type VideoMode struct {
	Width       int
	Height      int
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int
}

func (m *cVidMode) toGo() VideoMode {
	return VideoMode{
		Width:       int(m.width),
		Height:      int(m.height),
		RedBits:     int(m.redBits),
		GreenBits:   int(m.greenBits),
		BlueBits:    int(m.blueBits),
		RefreshRate: int(m.refreshRate),
	}
}

// GetMonitors returns the connected monitors, primary first.
func (l *Library) GetMonitors() []Monitor {
	if l.fn.getMonitors == nil {
		return nil
	}
	var count int32
	p := l.fn.getMonitors(&count)
	if p == nil || count <= 0 {
		return nil
	}
	native := unsafe.Slice(p, int(count))
	monitors := make([]Monitor, len(native))
	for i, m := range native {
		monitors[i] = Monitor(m)
	}
	return monitors
}

// GetPrimaryMonitor returns the primary monitor, or zero.
func (l *Library) GetPrimaryMonitor() Monitor {
	if l.fn.getPrimaryMonitor == nil {
		return 0
	}
	return Monitor(l.fn.getPrimaryMonitor())
}

// GetMonitorPos returns the position of the monitor's viewport on the
// virtual screen.
func (l *Library) GetMonitorPos(m Monitor) (x, y int) {
	if l.fn.getMonitorPos == nil {
		return 0, 0
	}
	var cx, cy int32
	l.fn.getMonitorPos(uintptr(m), &cx, &cy)
	return int(cx), int(cy)
}

// GetMonitorPhysicalSize returns the size of the display area in millimetres.
func (l *Library) GetMonitorPhysicalSize(m Monitor) (widthMM, heightMM int) {
	if l.fn.getMonitorPhysicalSize == nil {
		return 0, 0
	}
	var cw, ch int32
	l.fn.getMonitorPhysicalSize(uintptr(m), &cw, &ch)
	return int(cw), int(ch)
}

// GetMonitorContentScale returns the content scale of the monitor
// (GLFW 3.3), or 1, 1 when unsupported.
func (l *Library) GetMonitorContentScale(m Monitor) (x, y float32) {
	if l.fn.getMonitorContentScale == nil {
		return 1, 1
	}
	l.fn.getMonitorContentScale(uintptr(m), &x, &y)
	return x, y
}

// GetMonitorName returns the human-readable UTF-8 name of the monitor.
func (l *Library) GetMonitorName(m Monitor) string {
	if l.fn.getMonitorName == nil {
		return ""
	}
	return gostring(l.fn.getMonitorName(uintptr(m)))
}

// GetVideoMode returns the current video mode of the monitor.
func (l *Library) GetVideoMode(m Monitor) (VideoMode, bool) {
	if l.fn.getVideoMode == nil {
		return VideoMode{}, false
	}
	mode := l.fn.getVideoMode(uintptr(m))
	if mode == nil {
		return VideoMode{}, false
	}
	return mode.toGo(), true
}

// GetVideoModes returns every video mode the monitor supports, sorted in
// ascending order.
func (l *Library) GetVideoModes(m Monitor) []VideoMode {
	if l.fn.getVideoModes == nil {
		return nil
	}
	var count int32
	p := l.fn.getVideoModes(uintptr(m), &count)
	if p == nil || count <= 0 {
		return nil
	}
	native := unsafe.Slice(p, int(count))
	modes := make([]VideoMode, len(native))
	for i := range native {
		modes[i] = native[i].toGo()
	}
	return modes
}

// SetMonitorCallback sets the process-wide monitor configuration callback
// and returns the previous one. Nil removes it.
func (l *Library) SetMonitorCallback(cb MonitorCallback) MonitorCallback {
	if l.fn.setMonitorCallback == nil {
		return nil
	}
	return swapCallback(l, 0, handles.KindMonitor, cb, cb == nil, func(t uintptr) {
		l.fn.setMonitorCallback(t)
	})
}
