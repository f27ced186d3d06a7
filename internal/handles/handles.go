// Package handles keeps the Go callbacks registered against native handles.
//
// Native code only ever sees one trampoline per callback kind. The
// trampoline receives the native handle (a window, or zero for
// process-wide callbacks) and looks the Go callback up here, so Go
// pointers are never stored in native memory.
package handles

import (
	"sync"
)

// Kind identifies a callback slot.
type Kind uint8

const (
	KindError Kind = iota
	KindMonitor

	KindWindowPos
	KindWindowSize
	KindWindowClose
	KindWindowRefresh
	KindWindowFocus
	KindWindowIconify
	KindWindowMaximize
	KindFramebufferSize
	KindWindowContentScale

	KindKey
	KindChar
	KindMouseButton
	KindCursorPos
	KindCursorEnter
	KindScroll
	KindDrop

	kindCount
)

var kindNames = [kindCount]string{
	KindError:              "error",
	KindMonitor:            "monitor",
	KindWindowPos:          "window-pos",
	KindWindowSize:         "window-size",
	KindWindowClose:        "window-close",
	KindWindowRefresh:      "window-refresh",
	KindWindowFocus:        "window-focus",
	KindWindowIconify:      "window-iconify",
	KindWindowMaximize:     "window-maximize",
	KindFramebufferSize:    "framebuffer-size",
	KindWindowContentScale: "window-content-scale",
	KindKey:                "key",
	KindChar:               "char",
	KindMouseButton:        "mouse-button",
	KindCursorPos:          "cursor-pos",
	KindCursorEnter:        "cursor-enter",
	KindScroll:             "scroll",
	KindDrop:               "drop",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Key addresses one callback slot. Handle is zero for process-wide kinds.
type Key struct {
	Handle uintptr
	Kind   Kind
}

// Table maps slots to their single registered callback.
//
// Thread-safe.
type Table struct {
	mu    sync.RWMutex
	slots map[Key]any
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{slots: make(map[Key]any)}
}

// Swap installs cb in the slot and returns what was there before, or nil.
// A nil cb empties the slot.
func (t *Table) Swap(key Key, cb any) any {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.slots[key]
	if cb == nil {
		delete(t.slots, key)
	} else {
		t.slots[key] = cb
	}
	return prev
}

// Lookup returns the callback registered in the slot, or nil.
func (t *Table) Lookup(key Key) any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.slots[key]
}

// DropHandle empties every slot of one native handle.
func (t *Table) DropHandle(handle uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key := range t.slots {
		if key.Handle == handle {
			delete(t.slots, key)
		}
	}
}

// Reset empties the table except for the listed process-wide kinds.
func (t *Table) Reset(keep ...Kind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key := range t.slots {
		if key.Handle == 0 && containsKind(keep, key.Kind) {
			continue
		}
		delete(t.slots, key)
	}
}

// Len returns the number of occupied slots.
// Useful for debugging and testing leaks.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.slots)
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
