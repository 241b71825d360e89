// Package terminal draws session frames with termui and reads keys from the
// same terminal. Open switches the terminal into raw mode on the alternate
// screen; Close restores it.
package terminal

import (
	"errors"
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"go.uber.org/zap"

	"github.com/appengine-ltd/drug-wars/internal/session"
)

const margin = 2

var ErrEventsClosed = errors.New("terminal event stream closed")

type Terminal struct {
	logger  *zap.Logger
	events  <-chan ui.Event
	status  *widgets.Paragraph
	actions *widgets.List
}

func Open(logger *zap.Logger) (*Terminal, error) {
	if err := ui.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	status := widgets.NewParagraph()
	status.TitleStyle = ui.NewStyle(ui.ColorWhite, ui.ColorClear, ui.ModifierBold)

	actions := widgets.NewList()
	actions.Title = "Actions"
	actions.TitleStyle = ui.NewStyle(ui.ColorWhite, ui.ColorClear, ui.ModifierBold)

	logger.Debug("terminal opened")
	return &Terminal{
		logger:  logger,
		events:  ui.PollEvents(),
		status:  status,
		actions: actions,
	}, nil
}

// Render redraws the whole screen: the status panel on top, actions below.
func (t *Terminal) Render(f session.Frame) {
	w, h := ui.TerminalDimensions()
	top, bottom := split(w, h)

	t.status.Title = f.Title
	t.status.Text = statusText(f)
	t.status.SetRect(top.x1, top.y1, top.x2, top.y2)

	t.actions.Rows = actionRows(f)
	t.actions.SetRect(bottom.x1, bottom.y1, bottom.x2, bottom.y2)

	ui.Clear()
	ui.Render(t.status, t.actions)
}

// NextKey blocks until a key press or resize. Mouse events are skipped.
func (t *Terminal) NextKey() (session.Key, error) {
	for e := range t.events {
		if key, ok := keyFromEvent(e); ok {
			return key, nil
		}
	}
	return "", ErrEventsClosed
}

func (t *Terminal) Close() error {
	ui.Close()
	t.logger.Debug("terminal closed")
	return nil
}

type rect struct {
	x1, y1, x2, y2 int
}

// split halves the screen inside a fixed margin.
func split(w, h int) (rect, rect) {
	x1, y1 := margin, margin
	x2, y2 := max(w-margin, x1+1), max(h-margin, y1+2)
	mid := y1 + (y2-y1)/2
	return rect{x1, y1, x2, mid}, rect{x1, mid, x2, y2}
}

func statusText(f session.Frame) string {
	lines := f.StatusLines()
	lines[0] = "[" + lines[0] + "](mod:bold)"
	if f.Notice != "" {
		lines = append(lines, "", "["+f.Notice+"](fg:yellow)")
	}
	return strings.Join(lines, "\n")
}

func actionRows(f session.Frame) []string {
	rows := append([]string(nil), f.Actions...)
	if line := f.PromptLine(); line != "" {
		rows = append(rows, "", "["+line+"](mod:bold)")
	}
	return rows
}

func keyFromEvent(e ui.Event) (session.Key, bool) {
	switch e.Type {
	case ui.KeyboardEvent:
		return session.Key(e.ID), true
	case ui.ResizeEvent:
		return session.KeyResize, true
	default:
		return "", false
	}
}
