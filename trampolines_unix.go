//go:build !ios && !android && (darwin || freebsd || linux) && (amd64 || arm64)

package glfwgo

import (
	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/glfwgo/internal/handles"
)

func addFloatTrampolines(m map[handles.Kind]uintptr) {
	m[handles.KindWindowContentScale] = purego.NewCallback(windowContentScaleTrampoline)
	m[handles.KindCursorPos] = purego.NewCallback(cursorPosTrampoline)
	m[handles.KindScroll] = purego.NewCallback(scrollTrampoline)
}

func windowContentScaleTrampoline(w uintptr, x, y float32) uintptr {
	if cb, ok := lookup(w, handles.KindWindowContentScale).(WindowContentScaleCallback); ok {
		cb(Window(w), x, y)
	}
	return 0
}

func cursorPosTrampoline(w uintptr, x, y float64) uintptr {
	if cb, ok := lookup(w, handles.KindCursorPos).(CursorPosCallback); ok {
		cb(Window(w), x, y)
	}
	return 0
}

func scrollTrampoline(w uintptr, xoff, yoff float64) uintptr {
	if cb, ok := lookup(w, handles.KindScroll).(ScrollCallback); ok {
		cb(Window(w), xoff, yoff)
	}
	return 0
}
