//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/internal/platform"
)

func TestLoadMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), platform.FormatLibraryName("glfw", 3))

	lib, err := Load(Config{Path: missing})
	require.Error(t, err)
	assert.Nil(t, lib)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ReasonNotFound, loadErr.Reason)
	assert.Nil(t, active.Load(), "a failed Load must not leave a live library behind")
}

func TestLoadReportsEveryMissingSymbol(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("libc.so.6 is a linux soname")
	}

	_, err := Load(Config{Path: "libc.so.6"})

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ReasonMissingSymbols, loadErr.Reason)
	assert.Contains(t, loadErr.Missing, "glfwInit")
	assert.Contains(t, loadErr.Missing, "glfwCreateWindow")
	assert.Contains(t, loadErr.Missing, "glfwPostEmptyEvent")
	assert.NotContains(t, loadErr.Missing, "glfwGetError", "optional symbols are not mandatory")

	var fn functions
	mandatory := 0
	for _, sym := range fn.symbols() {
		if !sym.Optional {
			mandatory++
		}
	}
	assert.Len(t, loadErr.Missing, mandatory)
	assert.Nil(t, active.Load())
}

func TestLoadWhileActive(t *testing.T) {
	newFakeLibrary(t)

	_, err := Load(Config{})
	assert.ErrorIs(t, err, ErrAlreadyLoaded)
}

func TestCloseTerminatesAndIsIdempotent(t *testing.T) {
	l, fake := newFakeLibrary(t)
	require.True(t, l.Init())

	require.NoError(t, l.Close())
	assert.Equal(t, 1, fake.terminated)
	assert.Zero(t, fake.errorFn, "error callback is uninstalled on close")
	assert.Nil(t, active.Load())

	// Closed libraries are inert.
	assert.False(t, l.Init())
	assert.Zero(t, l.CreateWindow(640, 480, "t", 0, 0))
	assert.Equal(t, "", l.VersionString())
	assert.False(t, l.HasSymbol("Init"))
	assert.ErrorIs(t, l.WaitEventsContext(context.Background()), ErrClosed)

	require.NoError(t, l.Close())
	assert.Equal(t, 1, fake.terminated)
}

func TestLoadAfterClose(t *testing.T) {
	first, _ := newFakeLibrary(t)
	require.NoError(t, first.Close())

	second, _ := newFakeLibrary(t)
	assert.Same(t, second, active.Load())
}

func TestCloseAfterTerminateDoesNotTerminateTwice(t *testing.T) {
	l, fake := newFakeLibrary(t)
	require.True(t, l.Init())
	l.Terminate()

	require.NoError(t, l.Close())
	assert.Equal(t, 1, fake.terminated)
}

func TestInitTerminateInit(t *testing.T) {
	l, fake := newFakeLibrary(t)

	require.True(t, l.Init())
	assert.True(t, l.Initialized())
	l.WindowHint(ContextVersionMajor, 4)

	l.Terminate()
	assert.False(t, l.Initialized())

	require.True(t, l.Init())
	assert.Equal(t, defaultFakeHints(), fake.hints, "terminate restores default hints")
}

func TestTerminateKeepsErrorCallback(t *testing.T) {
	l, _ := newFakeLibrary(t)
	var rec errorRecorder
	l.SetErrorCallback(rec.callback())
	require.True(t, l.Init())
	w := l.CreateWindow(640, 480, "t", 0, 0)
	l.SetKeyCallback(w, func(Window, Key, int, Action, ModifierKey) {})

	l.Terminate()

	assert.Equal(t, 1, l.callbacks.Len())
	l.CreateWindow(640, 480, "t", 0, 0)
	assert.Equal(t, []ErrorCode{NotInitialized}, rec.codes)
}

func TestVersion(t *testing.T) {
	l, _ := newFakeLibrary(t)

	major, minor, rev := l.Version()
	assert.Equal(t, [3]int{3, 3, 8}, [3]int{major, minor, rev})
	assert.Equal(t, "3.3.8 fake", l.VersionString())
}

func TestHasSymbol(t *testing.T) {
	l, _ := newFakeLibrary(t)

	assert.True(t, l.HasSymbol("Init"))
	assert.True(t, l.HasSymbol("CreateWindow"))
	assert.True(t, l.HasSymbol("GetError"))
	assert.False(t, l.HasSymbol("GetKeyScancode"), "missing optional symbol")
	assert.False(t, l.HasSymbol("NotAGLFWFunction"))
}

func TestGetError(t *testing.T) {
	l, _ := newFakeLibrary(t)
	assert.NoError(t, l.GetError())

	l.CreateWindow(640, 480, "t", 0, 0)

	err := l.GetError()
	require.Error(t, err)
	var glfwErr *Error
	require.True(t, errors.As(err, &glfwErr))
	assert.Equal(t, NotInitialized, glfwErr.Code)
	assert.Equal(t, "The GLFW library is not initialized", glfwErr.Description)
	assert.True(t, IsCode(err, NotInitialized))

	assert.NoError(t, l.GetError(), "GetError clears the error")
}

func TestErrorsLoggedWithoutCallback(t *testing.T) {
	l, fake := newFakeLibrary(t)
	assert.NotZero(t, fake.errorFn, "errors are routed as soon as the library is live")

	var buf bytes.Buffer
	l.logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	fake.display = false

	assert.False(t, l.Init())
	assert.Contains(t, buf.String(), "GLFW error")
	assert.Contains(t, buf.String(), "no display")
}

func TestInitFailureReportsError(t *testing.T) {
	l, fake := newFakeLibrary(t)
	fake.display = false
	var rec errorRecorder
	l.SetErrorCallback(rec.callback())

	assert.False(t, l.Init())
	assert.False(t, l.Initialized())
	assert.Equal(t, []ErrorCode{PlatformError}, rec.codes)
}

func TestWaitEventsContextCancel(t *testing.T) {
	l, _ := newFakeLibrary(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := l.WaitEventsContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitEventsContextAlreadyDone(t *testing.T) {
	l, _ := newFakeLibrary(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.WaitEventsContext(ctx), context.Canceled)
}

func TestWaitEventsContextWokenByEvent(t *testing.T) {
	l, _ := newFakeLibrary(t)

	l.PostEmptyEvent()
	assert.NoError(t, l.WaitEventsContext(context.Background()))
}

func TestMonitors(t *testing.T) {
	l, _ := newFakeLibrary(t)

	monitors := l.GetMonitors()
	require.Len(t, monitors, 2)
	assert.Equal(t, monitors[0], l.GetPrimaryMonitor())

	mode, ok := l.GetVideoMode(monitors[0])
	require.True(t, ok)
	assert.Equal(t, VideoMode{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60}, mode)

	// Optional 3.3 query falls back to unit scale.
	x, y := l.GetMonitorContentScale(monitors[0])
	assert.Equal(t, [2]float32{1, 1}, [2]float32{x, y})
}

func TestMonitorCallback(t *testing.T) {
	l, fake := newFakeLibrary(t)

	var got []PeripheralEvent
	assert.Nil(t, l.SetMonitorCallback(func(m Monitor, event PeripheralEvent) {
		assert.Equal(t, Monitor(0xB000), m)
		got = append(got, event)
	}))
	require.NotZero(t, fake.monitorFn)

	monitorTrampoline(0xB000, int32(Disconnected))
	assert.Equal(t, []PeripheralEvent{Disconnected}, got)

	assert.NotNil(t, l.SetMonitorCallback(nil))
	assert.Zero(t, fake.monitorFn)
}
