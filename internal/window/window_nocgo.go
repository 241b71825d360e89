//go:build !cgo

package window

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/appengine-ltd/drug-wars/internal/session"
)

// Window is never constructed in builds without cgo.
type Window struct{}

func Open(*zap.Logger) (*Window, error) {
	return nil, fmt.Errorf("window requires a cgo build: %w", session.ErrNoDisplay)
}

func (*Window) Render(session.Frame) {}

func (*Window) NextKey() (session.Key, error) { return "", session.ErrNoDisplay }

func (*Window) Close() error { return nil }
