package glfwgo

import "unsafe"

// gostring copies a NUL-terminated C string. A nil pointer yields "".
func gostring(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(ptr, n))
}
