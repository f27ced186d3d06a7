//go:build windows && (amd64 || arm64)

package glfwgo

import "github.com/obinnaokechukwu/glfwgo/internal/handles"

// syscall.NewCallback rejects floating point arguments, so the content
// scale, cursor position and scroll callbacks have no trampoline here.
func addFloatTrampolines(map[handles.Kind]uintptr) {}
