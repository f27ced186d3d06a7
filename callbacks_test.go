//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/internal/handles"
)

func newFakeWindow(t *testing.T) (*Library, *fakeGLFW, Window) {
	t.Helper()
	l, fake := newFakeLibrary(t)
	require.True(t, l.Init())
	w := l.CreateWindow(640, 480, "test", 0, 0)
	require.NotZero(t, w)
	return l, fake, w
}

func TestSetKeyCallbackReturnsPrevious(t *testing.T) {
	l, fake, w := newFakeWindow(t)

	var calls []string
	a := KeyCallback(func(Window, Key, int, Action, ModifierKey) { calls = append(calls, "a") })
	b := KeyCallback(func(Window, Key, int, Action, ModifierKey) { calls = append(calls, "b") })

	assert.Nil(t, l.SetKeyCallback(w, a))
	prev := l.SetKeyCallback(w, b)
	require.NotNil(t, prev)
	prev(w, KeyA, 0, Press, 0)
	assert.Equal(t, []string{"a"}, calls)

	keyTrampoline(uintptr(w), int32(KeyA), 38, int32(Press), 0)
	assert.Equal(t, []string{"a", "b"}, calls)

	prev = l.SetKeyCallback(w, nil)
	require.NotNil(t, prev)
	prev(w, KeyA, 0, Press, 0)
	assert.Equal(t, []string{"a", "b", "b"}, calls)
	assert.Zero(t, fake.windows[uintptr(w)].callbacks[handles.KindKey], "native slot cleared")

	keyTrampoline(uintptr(w), int32(KeyA), 38, int32(Press), 0)
	assert.Len(t, calls, 3, "removed callback is not called")
	assert.Nil(t, l.SetKeyCallback(w, nil))
}

func TestNativeSlotHoldsTrampoline(t *testing.T) {
	l, fake, w := newFakeWindow(t)

	l.SetWindowSizeCallback(w, func(Window, int, int) {})
	assert.Equal(t, trampoline(handles.KindWindowSize), fake.windows[uintptr(w)].callbacks[handles.KindWindowSize])

	l.SetWindowSizeCallback(w, func(Window, int, int) {})
	assert.Equal(t, trampoline(handles.KindWindowSize), fake.windows[uintptr(w)].callbacks[handles.KindWindowSize],
		"every window shares the per-kind trampoline")
}

func TestKeyDispatchConvertsArguments(t *testing.T) {
	l, _, w := newFakeWindow(t)

	type keyEvent struct {
		w        Window
		key      Key
		scancode int
		action   Action
		mods     ModifierKey
	}
	var got []keyEvent
	l.SetKeyCallback(w, func(w Window, key Key, scancode int, action Action, mods ModifierKey) {
		got = append(got, keyEvent{w, key, scancode, action, mods})
	})

	keyTrampoline(uintptr(w), int32(KeyEscape), 9, int32(Repeat), int32(ModShift|ModControl))
	require.Len(t, got, 1)
	assert.Equal(t, keyEvent{w, KeyEscape, 9, Repeat, ModShift | ModControl}, got[0])
}

func TestDispatchIsPerWindow(t *testing.T) {
	l, _, w1 := newFakeWindow(t)
	w2 := l.CreateWindow(320, 240, "second", 0, 0)
	require.NotZero(t, w2)
	require.NotEqual(t, w1, w2)

	var hits []Window
	l.SetWindowCloseCallback(w1, func(w Window) { hits = append(hits, w) })

	windowCloseTrampoline(uintptr(w2))
	assert.Empty(t, hits, "callback registered for another window")

	windowCloseTrampoline(uintptr(w1))
	assert.Equal(t, []Window{w1}, hits)
}

func TestWindowCallbacksDispatch(t *testing.T) {
	l, _, w := newFakeWindow(t)
	h := uintptr(w)

	var size [2]int
	l.SetWindowSizeCallback(w, func(_ Window, width, height int) { size = [2]int{width, height} })
	windowSizeTrampoline(h, 800, 600)
	assert.Equal(t, [2]int{800, 600}, size)

	var pos [2]int
	l.callbacks.Swap(handles.Key{Handle: h, Kind: handles.KindWindowPos}, WindowPosCallback(func(_ Window, x, y int) { pos = [2]int{x, y} }))
	windowPosTrampoline(h, -10, 20)
	assert.Equal(t, [2]int{-10, 20}, pos)

	var focused []bool
	l.callbacks.Swap(handles.Key{Handle: h, Kind: handles.KindWindowFocus}, WindowFocusCallback(func(_ Window, f bool) { focused = append(focused, f) }))
	windowFocusTrampoline(h, True)
	windowFocusTrampoline(h, False)
	assert.Equal(t, []bool{true, false}, focused)
}

func TestInputCallbacksDispatch(t *testing.T) {
	l, _, w := newFakeWindow(t)
	h := uintptr(w)

	var runes []rune
	l.callbacks.Swap(handles.Key{Handle: h, Kind: handles.KindChar}, CharCallback(func(_ Window, r rune) { runes = append(runes, r) }))
	charTrampoline(h, 'é')
	charTrampoline(h, 0x1F600)
	assert.Equal(t, []rune{'é', 0x1F600}, runes)

	var button struct {
		b    MouseButton
		a    Action
		mods ModifierKey
	}
	l.callbacks.Swap(handles.Key{Handle: h, Kind: handles.KindMouseButton}, MouseButtonCallback(func(_ Window, b MouseButton, a Action, mods ModifierKey) {
		button.b, button.a, button.mods = b, a, mods
	}))
	mouseButtonTrampoline(h, int32(MouseButtonRight), int32(Release), int32(ModAlt))
	assert.Equal(t, MouseButtonRight, button.b)
	assert.Equal(t, Release, button.a)
	assert.Equal(t, ModAlt, button.mods)

	var entered []bool
	l.callbacks.Swap(handles.Key{Handle: h, Kind: handles.KindCursorEnter}, CursorEnterCallback(func(_ Window, e bool) { entered = append(entered, e) }))
	cursorEnterTrampoline(h, True)
	assert.Equal(t, []bool{true}, entered)
}

func TestDropPathsAreCopied(t *testing.T) {
	l, _, w := newFakeWindow(t)

	var got []string
	l.SetDropCallback(w, func(_ Window, names []string) { got = names })

	a := append([]byte("/tmp/a.png"), 0)
	b := append([]byte("/tmp/b c.txt"), 0)
	paths := []*byte{&a[0], &b[0]}
	dropTrampoline(uintptr(w), int32(len(paths)), &paths[0])

	// Native memory is only valid during the call.
	a[1], b[1] = 'X', 'X'
	assert.Equal(t, []string{"/tmp/a.png", "/tmp/b c.txt"}, got)
}

func TestDestroyWindowForgetsCallbacks(t *testing.T) {
	l, _, w := newFakeWindow(t)

	called := false
	l.SetWindowCloseCallback(w, func(Window) { called = true })
	l.SetKeyCallback(w, func(Window, Key, int, Action, ModifierKey) { called = true })

	l.DestroyWindow(w)
	assert.Zero(t, l.callbacks.Len())

	windowCloseTrampoline(uintptr(w))
	keyTrampoline(uintptr(w), int32(KeyA), 0, int32(Press), 0)
	assert.False(t, called)
}

func TestErrorCallbackLastWriteWins(t *testing.T) {
	l, fake := newFakeLibrary(t)
	fake.display = false

	var first, second errorRecorder
	assert.Nil(t, l.SetErrorCallback(first.callback()))
	prev := l.SetErrorCallback(second.callback())
	assert.NotNil(t, prev)

	l.Init()
	assert.Empty(t, first.codes)
	assert.Equal(t, []ErrorCode{PlatformError}, second.codes)
	assert.Equal(t, []string{"no display"}, second.descs)
}

func TestErrorCallbackRemoved(t *testing.T) {
	l, fake := newFakeLibrary(t)
	fake.display = false

	var rec errorRecorder
	l.SetErrorCallback(rec.callback())
	assert.NotNil(t, l.SetErrorCallback(nil))
	assert.NotZero(t, fake.errorFn, "trampoline stays installed for logging")

	l.Init()
	assert.Empty(t, rec.codes)
}

func TestCallbacksAfterCloseAreIgnored(t *testing.T) {
	l, _, w := newFakeWindow(t)

	called := false
	l.SetWindowCloseCallback(w, func(Window) { called = true })
	require.NoError(t, l.Close())

	windowCloseTrampoline(uintptr(w))
	assert.False(t, called)
	assert.Nil(t, l.SetWindowCloseCallback(w, func(Window) {}))
}
