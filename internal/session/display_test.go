package session

import (
	"errors"
	"testing"
)

func openerFor(d *recordingDisplay) Opener {
	return func() (Display, EventSource, error) {
		return d, keys(), nil
	}
}

func TestRunClosesAfterSuccess(t *testing.T) {
	d := &recordingDisplay{}
	err := Run(openerFor(d), func(Display, EventSource) error { return nil })
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if d.closed != 1 {
		t.Fatalf("expected one close, got %d", d.closed)
	}
}

func TestRunClosesAfterError(t *testing.T) {
	d := &recordingDisplay{}
	boom := errors.New("boom")
	err := Run(openerFor(d), func(Display, EventSource) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if d.closed != 1 {
		t.Fatalf("expected one close, got %d", d.closed)
	}
}

func TestRunClosesOnPanic(t *testing.T) {
	d := &recordingDisplay{}
	defer func() {
		if r := recover(); r != "kaboom" {
			t.Fatalf("expected panic to be re-raised, got %v", r)
		}
		if d.closed != 1 {
			t.Fatalf("expected close before re-panic, got %d", d.closed)
		}
	}()
	_ = Run(openerFor(d), func(Display, EventSource) error { panic("kaboom") })
}

func TestRunReportsCloseError(t *testing.T) {
	closeErr := errors.New("restore failed")
	d := &recordingDisplay{err: closeErr}
	err := Run(openerFor(d), func(Display, EventSource) error { return nil })
	if !errors.Is(err, closeErr) {
		t.Fatalf("expected close error, got %v", err)
	}
}

func TestRunOpenFailureSkipsLoop(t *testing.T) {
	openErr := errors.New("no tty")
	called := false
	err := Run(func() (Display, EventSource, error) { return nil, nil, openErr }, func(Display, EventSource) error {
		called = true
		return nil
	})
	if !errors.Is(err, openErr) {
		t.Fatalf("expected open error, got %v", err)
	}
	if called {
		t.Fatalf("loop should not run when open fails")
	}
}
