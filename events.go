//go:build !ios && !android && (darwin || freebsd || linux || windows) && (amd64 || arm64)

package glfwgo

import (
	"context"
	"time"
)

// PollEvents processes pending events and returns immediately. Window and
// input callbacks are called from inside this call.
func (l *Library) PollEvents() {
	if l.fn.pollEvents == nil {
		return
	}
	l.fn.pollEvents()
}

// WaitEvents blocks the calling thread until at least one event arrives,
// then processes all pending events.
func (l *Library) WaitEvents() {
	if l.fn.waitEvents == nil {
		return
	}
	l.fn.waitEvents()
}

// WaitEventsTimeout is like WaitEvents but returns after timeout even if
// no event arrived.
func (l *Library) WaitEventsTimeout(timeout time.Duration) {
	if l.fn.waitEventsTimeout == nil {
		return
	}
	l.fn.waitEventsTimeout(timeout.Seconds())
}

// PostEmptyEvent wakes up a WaitEvents call. Unlike every other function it
// may be called from any goroutine.
func (l *Library) PostEmptyEvent() {
	if l.fn.postEmptyEvent == nil {
		return
	}
	l.fn.postEmptyEvent()
}

// WaitEventsContext is WaitEvents that also returns when ctx is done,
// in which case it returns ctx.Err(). Cancellation wakes the wait with
// PostEmptyEvent.
func (l *Library) WaitEventsContext(ctx context.Context) error {
	if l.fn.waitEvents == nil {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, l.PostEmptyEvent)
	defer stop()
	l.fn.waitEvents()
	return ctx.Err()
}
