//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
)

// EnvLibrary names the environment variable that overrides the library path.
const EnvLibrary = "GLFW_LIBRARY"

// Naming describes how declared function names become exported symbols.
type Naming = bindings.Naming

// Symbol name transforms for Naming.
var (
	Camelize  = bindings.Camelize
	Verbatim  = bindings.Verbatim
	Lowercase = bindings.Lowercase
	SnakeCase = bindings.SnakeCase
)

// Config controls how Load finds and binds the native library.
type Config struct {
	// Path is the shared library to load. It may be a full path or a bare
	// name for the system loader. When empty, the platform search paths
	// are probed for GLFW 3.
	Path string

	// Naming maps declared names to exported symbols. The zero value
	// selects the GLFW convention: prefix "glfw", camel-cased name.
	Naming Naming

	// Logger receives debug records about loading and native errors.
	// Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used by Load when given a zero
// Config: GLFW naming, the GLFW_LIBRARY environment variable as Path, and
// a discarding logger.
func DefaultConfig() Config {
	return Config{
		Path:   os.Getenv(EnvLibrary),
		Naming: bindings.GLFWNaming,
		Logger: log.New(io.Discard),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Path == "" {
		c.Path = def.Path
	}
	if c.Naming.Prefix == "" && c.Naming.Transform == nil {
		c.Naming = def.Naming
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	return c
}
