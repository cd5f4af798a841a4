package ui

import (
	"the-snake/config"
	"the-snake/game/types"
	"the-snake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// raylib entry points, swapped out in tests
var (
	initWindow    = rl.InitWindow
	isWindowReady = rl.IsWindowReady
)

var windowKeys = map[int32]input.Key{
	rl.KeyUp:         input.KeyUp,
	rl.KeyDown:       input.KeyDown,
	rl.KeyLeft:       input.KeyLeft,
	rl.KeyRight:      input.KeyRight,
	rl.KeyEscape:     input.KeyEscape,
	rl.KeyEqual:      input.KeySpeedUp,
	rl.KeyKpAdd:      input.KeySpeedUp,
	rl.KeyPageUp:     input.KeySpeedUp,
	rl.KeyMinus:      input.KeySpeedDown,
	rl.KeyKpSubtract: input.KeySpeedDown,
	rl.KeyPageDown:   input.KeySpeedDown,
}

// Window renders the board in a raylib window and reads the keyboard
type Window struct {
	cellSize int32
	drawing  bool
}

// NewWindow opens a window the size of the board. Raylib only logs when the
// display or the GL context cannot be set up, so readiness is checked here.
func NewWindow(cfg config.Config) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	initWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), cfg.Title)
	if !isWindowReady() {
		return nil, errors.Errorf("ui: window could not be opened (%dx%d)", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	// Escape is a game key, not a raylib shortcut
	rl.SetExitKey(0)
	return &Window{cellSize: int32(cfg.CellSize)}, nil
}

// begin opens a frame on first use. The back buffer is cleared because
// raylib swaps buffers and keeps nothing between frames.
func (w *Window) begin() {
	if w.drawing {
		return
	}
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(types.BackgroundColor))
	w.drawing = true
}

// DrawCell fills a cell and outlines it with the border color
func (w *Window) DrawCell(p types.Point, c types.Color) {
	w.begin()
	x, y := int32(p.X), int32(p.Y)
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, toRaylib(c))
	rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, toRaylib(types.BorderColor))
}

// EraseCell paints a cell with the background color
func (w *Window) EraseCell(p types.Point) {
	w.begin()
	rl.DrawRectangle(int32(p.X), int32(p.Y), w.cellSize, w.cellSize, toRaylib(types.BackgroundColor))
}

// Clear wipes the back buffer
func (w *Window) Clear() {
	w.begin()
	rl.ClearBackground(toRaylib(types.BackgroundColor))
}

// Present ends the frame and swaps buffers
func (w *Window) Present() {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
}

// SetStatus shows the score line in the title bar
func (w *Window) SetStatus(text string) {
	rl.SetWindowTitle(text)
}

// Poll drains the keys pressed since the last frame. Raylib refreshes its
// input state when a frame ends.
func (w *Window) Poll() []input.Event {
	var events []input.Event
	if rl.WindowShouldClose() {
		events = append(events, input.Quit())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k, ok := windowKeys[key]; ok {
			events = append(events, input.Press(k))
		}
	}
	return events
}

// Close ends a pending frame and closes the window
func (w *Window) Close() error {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	rl.CloseWindow()
	return nil
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
