//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"image"
	"image/draw"
	"runtime"

	"github.com/obinnaokechukwu/glfwgo/internal/handles"
)

// Cursor is an opaque GLFW cursor handle. The zero value means the default
// arrow cursor. Like Window, it is never dereferenced.
type Cursor uintptr

// GetInputMode returns the value of an input mode of the window
// (CursorMode, StickyKeys, StickyMouseButtons, LockKeyMods, RawMouseMotion).
func (l *Library) GetInputMode(w Window, mode int) int {
	if l.fn.getInputMode == nil {
		return 0
	}
	return int(l.fn.getInputMode(uintptr(w), int32(mode)))
}

// SetInputMode sets an input mode of the window. With StickyKeys or
// StickyMouseButtons enabled, a press is latched until GetKey or
// GetMouseButton reports it, even if the key was released in between.
func (l *Library) SetInputMode(w Window, mode, value int) {
	if l.fn.setInputMode == nil {
		return
	}
	l.fn.setInputMode(uintptr(w), int32(mode), int32(value))
}

// RawMouseMotionSupported reports whether raw mouse motion is available
// (GLFW 3.3).
func (l *Library) RawMouseMotionSupported() bool {
	if l.fn.rawMouseMotionSupported == nil {
		return false
	}
	return l.fn.rawMouseMotionSupported() == True
}

// GetKeyName returns the layout-specific name of a printable key, or of
// scancode when key is KeyUnknown. It returns "" for keys without a name.
func (l *Library) GetKeyName(key Key, scancode int) string {
	if l.fn.getKeyName == nil {
		return ""
	}
	return gostring(l.fn.getKeyName(int32(key), int32(scancode)))
}

// GetKeyScancode returns the platform scancode of key, or -1 (GLFW 3.3).
func (l *Library) GetKeyScancode(key Key) int {
	if l.fn.getKeyScancode == nil {
		return -1
	}
	return int(l.fn.getKeyScancode(int32(key)))
}

// GetKey returns the last reported state of key for the window, Press or
// Release.
func (l *Library) GetKey(w Window, key Key) Action {
	if l.fn.getKey == nil {
		return Release
	}
	return Action(l.fn.getKey(uintptr(w), int32(key)))
}

// GetMouseButton returns the last reported state of button for the window.
func (l *Library) GetMouseButton(w Window, button MouseButton) Action {
	if l.fn.getMouseButton == nil {
		return Release
	}
	return Action(l.fn.getMouseButton(uintptr(w), int32(button)))
}

// GetCursorPos returns the cursor position relative to the client area.
// With the cursor disabled the values are unbounded.
func (l *Library) GetCursorPos(w Window) (x, y float64) {
	if l.fn.getCursorPos == nil {
		return 0, 0
	}
	l.fn.getCursorPos(uintptr(w), &x, &y)
	return x, y
}

// SetCursorPos moves the cursor relative to the client area.
func (l *Library) SetCursorPos(w Window, x, y float64) {
	if l.fn.setCursorPos == nil {
		return
	}
	l.fn.setCursorPos(uintptr(w), x, y)
}

// CreateCursor creates a custom cursor from img with the hotspot at
// (xhot, yhot). The image is converted to non-premultiplied RGBA and only
// needs to live for the duration of the call.
func (l *Library) CreateCursor(img image.Image, xhot, yhot int) Cursor {
	if l.fn.createCursor == nil {
		return 0
	}
	pixels := toNRGBA(img)
	if len(pixels.Pix) == 0 {
		return 0
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()
	pinner.Pin(&pixels.Pix[0])

	b := pixels.Bounds()
	cimg := &cImage{width: int32(b.Dx()), height: int32(b.Dy()), pixels: &pixels.Pix[0]}
	pinner.Pin(cimg)
	return Cursor(l.fn.createCursor(cimg, int32(xhot), int32(yhot)))
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Stride == 4*n.Rect.Dx() {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// CreateStandardCursor creates a cursor with a system shape.
func (l *Library) CreateStandardCursor(shape StandardCursor) Cursor {
	if l.fn.createStandardCursor == nil {
		return 0
	}
	return Cursor(l.fn.createStandardCursor(int32(shape)))
}

// DestroyCursor destroys a cursor created by CreateCursor or
// CreateStandardCursor.
func (l *Library) DestroyCursor(c Cursor) {
	if l.fn.destroyCursor == nil {
		return
	}
	l.fn.destroyCursor(uintptr(c))
}

// SetCursor sets the cursor image shown over the window's client area.
func (l *Library) SetCursor(w Window, c Cursor) {
	if l.fn.setCursor == nil {
		return
	}
	l.fn.setCursor(uintptr(w), uintptr(c))
}

// SetKeyCallback sets the key callback of the window and returns the
// previous one. Nil removes it.
func (l *Library) SetKeyCallback(w Window, cb KeyCallback) KeyCallback {
	if l.fn.setKeyCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindKey, cb, cb == nil, func(t uintptr) {
		l.fn.setKeyCallback(uintptr(w), t)
	})
}

// SetCharCallback sets the Unicode character callback of the window and
// returns the previous one.
func (l *Library) SetCharCallback(w Window, cb CharCallback) CharCallback {
	if l.fn.setCharCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindChar, cb, cb == nil, func(t uintptr) {
		l.fn.setCharCallback(uintptr(w), t)
	})
}

// SetMouseButtonCallback sets the mouse button callback of the window and
// returns the previous one.
func (l *Library) SetMouseButtonCallback(w Window, cb MouseButtonCallback) MouseButtonCallback {
	if l.fn.setMouseButtonCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindMouseButton, cb, cb == nil, func(t uintptr) {
		l.fn.setMouseButtonCallback(uintptr(w), t)
	})
}

// SetCursorPosCallback sets the cursor position callback of the window and
// returns the previous one. It is not supported on Windows, where it
// returns nil and registers nothing; poll GetCursorPos instead.
func (l *Library) SetCursorPosCallback(w Window, cb CursorPosCallback) CursorPosCallback {
	if l.fn.setCursorPosCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindCursorPos, cb, cb == nil, func(t uintptr) {
		l.fn.setCursorPosCallback(uintptr(w), t)
	})
}

// SetCursorEnterCallback sets the cursor enter/leave callback of the
// window and returns the previous one.
func (l *Library) SetCursorEnterCallback(w Window, cb CursorEnterCallback) CursorEnterCallback {
	if l.fn.setCursorEnterCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindCursorEnter, cb, cb == nil, func(t uintptr) {
		l.fn.setCursorEnterCallback(uintptr(w), t)
	})
}

// SetScrollCallback sets the scroll callback of the window and returns the
// previous one. It is not supported on Windows, where it returns nil and
// registers nothing.
func (l *Library) SetScrollCallback(w Window, cb ScrollCallback) ScrollCallback {
	if l.fn.setScrollCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindScroll, cb, cb == nil, func(t uintptr) {
		l.fn.setScrollCallback(uintptr(w), t)
	})
}

// SetDropCallback sets the file drop callback of the window and returns
// the previous one.
func (l *Library) SetDropCallback(w Window, cb DropCallback) DropCallback {
	if l.fn.setDropCallback == nil {
		return nil
	}
	return swapCallback(l, uintptr(w), handles.KindDrop, cb, cb == nil, func(t uintptr) {
		l.fn.setDropCallback(uintptr(w), t)
	})
}

// GetClipboardString returns the UTF-8 clipboard contents. The boolean is
// false when the clipboard is empty or cannot be converted, in which case
// GLFW has reported FormatUnavailable through the error callback.
func (l *Library) GetClipboardString(w Window) (string, bool) {
	if l.fn.getClipboardString == nil {
		return "", false
	}
	p := l.fn.getClipboardString(uintptr(w))
	if p == nil {
		return "", false
	}
	return gostring(p), true
}

// SetClipboardString sets the clipboard to the UTF-8 string s.
func (l *Library) SetClipboardString(w Window, s string) {
	if l.fn.setClipboardString == nil {
		return
	}
	l.fn.setClipboardString(uintptr(w), s)
}

// GetTime returns the seconds elapsed since Init, or since the last SetTime.
func (l *Library) GetTime() float64 {
	if l.fn.getTime == nil {
		return 0
	}
	return l.fn.getTime()
}

// SetTime sets the GLFW timer.
func (l *Library) SetTime(t float64) {
	if l.fn.setTime == nil {
		return
	}
	l.fn.setTime(t)
}
