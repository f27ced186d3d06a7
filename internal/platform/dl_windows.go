//go:build windows && (amd64 || arm64)

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Open loads a DLL by path or by name through the system search order.
func Open(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

// Lookup returns the address of an exported symbol.
func Lookup(lib uintptr, symbol string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(lib), symbol)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, fmt.Errorf("symbol %q not found", symbol)
	}
	return addr, nil
}

// Close releases a library handle obtained from Open.
func Close(lib uintptr) error {
	if lib == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(lib))
}
