// Package window draws session frames in a raylib window. It needs a cgo
// build; without cgo Open reports session.ErrNoDisplay.
package window

import "github.com/appengine-ltd/drug-wars/internal/session"

const (
	defaultWidth  = 900
	defaultHeight = 560

	padding    = 24
	headerSize = 20
	bodySize   = 19
	lineGap    = 8
)

type rect struct {
	X, Y, W, H int32
}

// layout splits the window into the status and action panels.
func layout(width, height int32) (rect, rect) {
	w := max(width-2*padding, 1)
	inner := max(height-3*padding, 2)
	half := inner / 2
	status := rect{X: padding, Y: padding, W: w, H: half}
	actions := rect{X: padding, Y: 2*padding + half, W: w, H: inner - half}
	return status, actions
}

// lineY is the baseline of the i-th body line inside a panel.
func lineY(panel rect, i int) int32 {
	return panel.Y + padding + headerSize + int32(i)*(bodySize+lineGap)
}

// acquire runs init and, when ready reports failure, undoes it with release
// before returning session.ErrNoDisplay.
func acquire(init func(), ready func() bool, release func()) error {
	init()
	if !ready() {
		release()
		return session.ErrNoDisplay
	}
	return nil
}
