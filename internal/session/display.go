package session

import (
	"errors"
	"fmt"
)

// ErrNoDisplay is returned when the requested display cannot exist in this build.
var ErrNoDisplay = errors.New("display unavailable")

// Display is a surface a Frame can be drawn onto.
type Display interface {
	Render(Frame)
	Close() error
}

// EventSource blocks until the next key press.
type EventSource interface {
	NextKey() (Key, error)
}

// Opener acquires a display together with the event source that belongs to it.
type Opener func() (Display, EventSource, error)

// Run opens a display, hands it to fn, and closes it on every way out of fn,
// including a panic, which is re-raised once the display is released.
func Run(open Opener, fn func(Display, EventSource) error) (err error) {
	display, events, err := open()
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	defer func() {
		closeErr := display.Close()
		if r := recover(); r != nil {
			panic(r)
		}
		if err == nil && closeErr != nil {
			err = fmt.Errorf("close display: %w", closeErr)
		}
	}()
	return fn(display, events)
}
