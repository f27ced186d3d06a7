package bindings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transform rewrites a declared function name into the native casing.
type Transform func(name string) string

// Naming describes how declared function names map to exported symbols:
// Prefix followed by Transform(name).
type Naming struct {
	Prefix    string
	Transform Transform
}

// GLFWNaming is the convention of the GLFW C API: "CreateWindow" is
// exported as "glfwCreateWindow".
var GLFWNaming = Naming{Prefix: "glfw", Transform: Camelize}

// Symbol returns the exported symbol name for a declared name.
func (n Naming) Symbol(name string) string {
	if n.Transform != nil {
		name = n.Transform(name)
	}
	return n.Prefix + name
}

// Verbatim leaves the name unchanged.
func Verbatim(name string) string {
	return name
}

// Lowercase lower-cases the whole name ("Len" -> "len").
func Lowercase(name string) string {
	return strings.ToLower(name)
}

// Camelize upper-cases the first rune ("createWindow" -> "CreateWindow").
func Camelize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// SnakeCase converts a camel-cased name to lower snake case
// ("CreateWindow" -> "create_window", "GetProcAddress" -> "get_proc_address").
// Runs of capitals stay together: "GetURLString" -> "get_url_string".
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
