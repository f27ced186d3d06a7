//go:build !ios && !android && (amd64 || arm64)

// Package bindings locates and loads the GLFW shared library and binds
// function tables to its exports using purego.
package bindings

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/obinnaokechukwu/glfwgo/internal/platform"
)

// ErrLibraryNotFound is returned when the native library cannot be found.
var ErrLibraryNotFound = errors.New("glfwgo: GLFW library not found")

// EnvLibraryPath names an extra directory searched before the system paths.
const EnvLibraryPath = "GLFW_LIBRARY_PATH"

// OpenLibrary opens the native module.
//
// When path is non-empty only that path is tried. Otherwise the search
// paths are probed with versioned names first, then unversioned, and
// finally the bare names are handed to the system loader. A candidate
// that exists but fails to load is skipped; its error is reported only if
// nothing else loads.
// It returns the module handle and the path (or name) that was opened.
func OpenLibrary(path, name string, versions []int) (uintptr, string, error) {
	if path != "" {
		return openExplicit(path)
	}

	var invalid *LoadError
	for _, fullPath := range existingCandidates(name, versions) {
		lib, err := platform.Open(fullPath)
		if err == nil {
			return lib, fullPath, nil
		}
		if invalid == nil {
			invalid = &LoadError{Path: fullPath, Reason: ReasonInvalid, Err: err}
		}
	}

	// Let the system loader try its own search order.
	var lastErr error
	for _, candidate := range candidateNames(name, versions) {
		lib, err := platform.Open(candidate)
		if err == nil {
			return lib, candidate, nil
		}
		lastErr = err
	}

	if invalid != nil {
		return 0, invalid.Path, invalid
	}
	return 0, "", &LoadError{
		Path:   platform.FormatLibraryName(name, 0),
		Reason: ReasonNotFound,
		Err:    errors.Join(ErrLibraryNotFound, lastErr),
	}
}

// existingCandidates lists the files named like the library in the search
// paths, in search order.
func existingCandidates(name string, versions []int) []string {
	var found []string
	for _, searchPath := range LibrarySearchPaths() {
		for _, candidate := range candidateNames(name, versions) {
			fullPath := filepath.Join(searchPath, candidate)
			if _, err := os.Stat(fullPath); err == nil {
				found = append(found, fullPath)
			}
		}
	}
	return found
}

func openExplicit(path string) (uintptr, string, error) {
	if filepath.IsAbs(path) || filepath.Base(path) != path {
		if _, err := os.Stat(path); err != nil {
			return 0, path, &LoadError{Path: path, Reason: ReasonNotFound, Err: err}
		}
	}
	lib, err := platform.Open(path)
	if err != nil {
		reason := ReasonInvalid
		if filepath.Base(path) == path {
			// A bare name goes through the system search order; failure
			// means nothing was found.
			reason = ReasonNotFound
		}
		return 0, path, &LoadError{Path: path, Reason: reason, Err: err}
	}
	return lib, path, nil
}

// candidateNames returns versioned names first (more specific), then the
// unversioned name.
func candidateNames(name string, versions []int) []string {
	names := make([]string, 0, len(versions)+1)
	for _, ver := range versions {
		names = append(names, platform.FormatLibraryName(name, ver))
	}
	return append(names, platform.FormatLibraryName(name, 0))
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv(EnvLibraryPath); dir != "" {
		paths = append(paths, filepath.SplitList(dir)...)
	}

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib64",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib",          // Apple Silicon
			"/usr/local/lib",             // Intel
			"/opt/homebrew/opt/glfw/lib", // Homebrew GLFW keg
			"/usr/local/opt/glfw/lib",    // Homebrew GLFW keg (Intel)
			"/opt/local/lib",             // MacPorts
		)

	case "windows":
		// Executable directory first, matching the DLL search order.
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}
