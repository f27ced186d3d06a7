//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"fmt"
	"strings"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/platform"
)

// Reason classifies a LoadError.
type Reason int

const (
	// ReasonNotFound means no file matched the path or any search candidate.
	ReasonNotFound Reason = iota
	// ReasonInvalid means a file exists but is not a loadable native module.
	ReasonInvalid
	// ReasonMissingSymbols means the module lacks mandatory exports.
	ReasonMissingSymbols
)

func (r Reason) String() string {
	switch r {
	case ReasonNotFound:
		return "not found"
	case ReasonInvalid:
		return "invalid module"
	case ReasonMissingSymbols:
		return "missing symbols"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// LoadError is returned when the native library cannot be made usable.
// For ReasonMissingSymbols, Missing lists every mandatory symbol that
// failed to resolve, not just the first one.
type LoadError struct {
	Path    string
	Reason  Reason
	Missing []string
	Err     error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("glfwgo: load ")
	if e.Path != "" {
		b.WriteString(e.Path)
	} else {
		b.WriteString("library")
	}
	b.WriteString(": ")
	b.WriteString(e.Reason.String())
	if len(e.Missing) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Missing, ", "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Symbol is one entry of a function table.
// Fn must be a pointer to a func variable; it is bound with purego.RegisterFunc.
type Symbol struct {
	Name     string
	Fn       any
	Optional bool
}

// Resolve binds every symbol of table from lib, naming each export with n.
//
// Resolution happens in two passes: every address is looked up first, and
// nothing is bound unless all mandatory symbols were found. Missing
// optional symbols are returned so callers can report them; their Fn
// stays nil.
func Resolve(lib uintptr, path string, n Naming, table []Symbol) (missingOptional []string, err error) {
	addrs := make([]uintptr, len(table))
	var missing []string

	for i, sym := range table {
		name := n.Symbol(sym.Name)
		addr, lerr := platform.Lookup(lib, name)
		if lerr != nil || addr == 0 {
			if sym.Optional {
				missingOptional = append(missingOptional, name)
			} else {
				missing = append(missing, name)
			}
			continue
		}
		addrs[i] = addr
	}

	if len(missing) > 0 {
		return missingOptional, &LoadError{Path: path, Reason: ReasonMissingSymbols, Missing: missing}
	}

	for i, sym := range table {
		if addrs[i] == 0 {
			continue
		}
		purego.RegisterFunc(sym.Fn, addrs[i])
	}
	return missingOptional, nil
}
