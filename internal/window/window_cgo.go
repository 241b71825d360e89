//go:build cgo

package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/drug-wars/internal/session"
)

var (
	colorBG     = rl.NewColor(18, 22, 20, 255)
	colorPanel  = rl.NewColor(28, 34, 31, 255)
	colorBorder = rl.NewColor(86, 120, 98, 255)
	colorText   = rl.NewColor(226, 232, 222, 255)
	colorAccent = rl.NewColor(224, 142, 69, 255)
	colorNotice = rl.NewColor(232, 196, 90, 255)
)

type Window struct {
	logger *zap.Logger
	frame  session.Frame
}

func Open(logger *zap.Logger) (*Window, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	initWindow := func() { rl.InitWindow(defaultWidth, defaultHeight, session.Title) }
	if err := acquire(initWindow, rl.IsWindowReady, rl.CloseWindow); err != nil {
		return nil, err
	}
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	logger.Debug("window opened")
	return &Window{logger: logger}, nil
}

// Render keeps the frame and draws it. NextKey keeps redrawing it while it waits.
func (w *Window) Render(f session.Frame) {
	w.frame = f
	w.draw()
}

// NextKey pumps frames until a key arrives. Closing the window counts as an
// interrupt.
func (w *Window) NextKey() (session.Key, error) {
	for {
		if rl.WindowShouldClose() {
			return session.KeyInterrupt, nil
		}
		if key, ok := pressedKey(); ok {
			return key, nil
		}
		w.draw()
	}
}

func (w *Window) Close() error {
	rl.CloseWindow()
	w.logger.Debug("window closed")
	return nil
}

func (w *Window) draw() {
	status, actions := layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	rl.BeginDrawing()
	rl.ClearBackground(colorBG)

	drawPanel(status, w.frame.Title)
	for i, line := range w.frame.StatusLines() {
		clr := colorText
		if i == 0 {
			clr = colorAccent
		}
		rl.DrawText(line, status.X+14, lineY(status, i), bodySize, clr)
	}
	if w.frame.Notice != "" {
		rl.DrawText(w.frame.Notice, status.X+14, lineY(status, 6), bodySize, colorNotice)
	}

	drawPanel(actions, "Actions")
	for i, line := range w.frame.Actions {
		rl.DrawText(line, actions.X+14, lineY(actions, i), bodySize, colorText)
	}
	if line := w.frame.PromptLine(); line != "" {
		rl.DrawText(line, actions.X+14, lineY(actions, len(w.frame.Actions)+1), bodySize, colorAccent)
	}

	rl.EndDrawing()
}

func drawPanel(r rect, title string) {
	rl.DrawRectangle(r.X, r.Y, r.W, r.H, colorPanel)
	rl.DrawRectangleLines(r.X, r.Y, r.W, r.H, colorBorder)
	rl.DrawText(title, r.X+12, r.Y+8, headerSize, colorAccent)
}

func pressedKey() (session.Key, bool) {
	switch {
	case ctrlDown() && rl.IsKeyPressed(rl.KeyC):
		return session.KeyInterrupt, true
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		return session.KeyEnter, true
	case rl.IsKeyPressed(rl.KeyBackspace):
		return session.KeyBackspace, true
	case rl.IsKeyPressed(rl.KeyEscape):
		return session.KeyEscape, true
	}
	if ch := rl.GetCharPressed(); ch >= 32 && ch <= 126 {
		if ch == ' ' {
			return session.KeySpace, true
		}
		return session.Key(string(rune(ch))), true
	}
	return "", false
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}
