//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
)

// ErrorCode is a GLFW error code as reported to the error callback.
type ErrorCode int32

// Error codes matching GLFW's GLFW_* error values.
const (
	// NotInitialized: a function that requires initialization was called
	// before Init or after Terminate.
	NotInitialized ErrorCode = 0x00010001
	// NoCurrentContext: a function that operates on the current context
	// was called with no context current on the calling thread.
	NoCurrentContext ErrorCode = 0x00010002
	// InvalidEnum: an argument was an invalid enum value.
	InvalidEnum ErrorCode = 0x00010003
	// InvalidValue: an argument was an invalid value, such as an
	// OpenGL version that does not exist.
	InvalidValue ErrorCode = 0x00010004
	// OutOfMemory: a memory allocation failed.
	OutOfMemory ErrorCode = 0x00010005
	// APIUnavailable: the requested client API is not supported.
	APIUnavailable ErrorCode = 0x00010006
	// VersionUnavailable: the requested context version is not available.
	VersionUnavailable ErrorCode = 0x00010007
	// PlatformError: a platform-specific error without a better category.
	PlatformError ErrorCode = 0x00010008
	// FormatUnavailable: the requested pixel format or clipboard format
	// is not available.
	FormatUnavailable ErrorCode = 0x00010009
	// NoWindowContext: the window passed has no OpenGL or OpenGL ES context.
	NoWindowContext ErrorCode = 0x0001000A
)

// String returns the GLFW name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case NotInitialized:
		return "not initialized"
	case NoCurrentContext:
		return "no current context"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case OutOfMemory:
		return "out of memory"
	case APIUnavailable:
		return "API unavailable"
	case VersionUnavailable:
		return "version unavailable"
	case PlatformError:
		return "platform error"
	case FormatUnavailable:
		return "format unavailable"
	case NoWindowContext:
		return "no window context"
	default:
		return fmt.Sprintf("error code %#x", int32(c))
	}
}

// Error is a runtime error reported by GLFW.
// It contains the raw GLFW error code and the human-readable description.
type Error struct {
	Code        ErrorCode
	Description string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("glfw: %s: %s", e.Code, e.Description)
}

// IsCode returns true if err is a GLFW Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var glfwErr *Error
	if errors.As(err, &glfwErr) {
		return glfwErr.Code == code
	}
	return false
}

// LoadError is returned by Load when the native library cannot be used.
type LoadError = bindings.LoadError

// Load failure reasons, re-exported from the loader.
const (
	ReasonNotFound       = bindings.ReasonNotFound
	ReasonInvalid        = bindings.ReasonInvalid
	ReasonMissingSymbols = bindings.ReasonMissingSymbols
)

// Common errors
var (
	// ErrAlreadyLoaded indicates a Library is already live in this process.
	// GLFW keeps process-global state, so only one may exist at a time.
	ErrAlreadyLoaded = errors.New("glfwgo: GLFW library already loaded; Close the existing Library first")

	// ErrLibraryNotFound indicates no GLFW shared library could be found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrClosed indicates the Library has been closed.
	ErrClosed = errors.New("glfwgo: library is closed")
)
