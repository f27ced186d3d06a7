package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingSymbol(t *testing.T) {
	tests := []struct {
		naming Naming
		name   string
		want   string
	}{
		{GLFWNaming, "Init", "glfwInit"},
		{GLFWNaming, "createWindow", "glfwCreateWindow"},
		{GLFWNaming, "GetProcAddress", "glfwGetProcAddress"},
		{Naming{Prefix: "str", Transform: Lowercase}, "Len", "strlen"},
		{Naming{Prefix: "vk", Transform: Verbatim}, "CreateInstance", "vkCreateInstance"},
		{Naming{Prefix: "glfw_", Transform: SnakeCase}, "CreateWindow", "glfw_create_window"},
		{Naming{Prefix: "x"}, "Raw", "xRaw"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.naming.Symbol(tt.name))
		})
	}
}

func TestCamelize(t *testing.T) {
	assert.Equal(t, "CreateWindow", Camelize("createWindow"))
	assert.Equal(t, "Init", Camelize("Init"))
	assert.Equal(t, "", Camelize(""))
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"CreateWindow":         "create_window",
		"GetProcAddress":       "get_proc_address",
		"GetURLString":         "get_url_string",
		"SetWindowShouldClose": "set_window_should_close",
		"Init":                 "init",
		"GetKey2":              "get_key2",
	}
	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}
