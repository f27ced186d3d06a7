//go:build !ios && !android && (amd64 || arm64) && (darwin || freebsd || linux)

package platform

import (
	"github.com/ebitengine/purego"
)

// Open loads a shared library with RTLD_NOW | RTLD_GLOBAL.
// RTLD_NOW makes a broken module fail here instead of at first call.
func Open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// Lookup returns the address of an exported symbol.
func Lookup(lib uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(lib, symbol)
}

// Close releases a library handle obtained from Open.
func Close(lib uintptr) error {
	if lib == 0 {
		return nil
	}
	return purego.Dlclose(lib)
}
