package ui

import (
	"the-snake/config"
	"the-snake/game/types"
	"the-snake/input"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// eventBuffer is how many key presses are kept between two polls.
// Extra presses are dropped.
const eventBuffer = 32

// statusRows is the number of terminal rows above the board
const statusRows = 1

// Terminal renders the board with tcell. Every cell is two columns wide so
// the board looks roughly square.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	status string
	events chan input.Event
	done   chan struct{}
}

// NewTerminal takes over the controlling terminal
func NewTerminal(cfg config.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating terminal screen")
	}
	return newTerminal(screen, cfg)
}

func newTerminal(screen tcell.Screen, cfg config.Config) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing terminal screen")
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		grid:   types.NewGrid(cfg.ScreenWidth, cfg.ScreenHeight, cfg.CellSize),
		events: make(chan input.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards tcell events until the screen is finalized.
// PollEvent blocks, so it cannot run on the game goroutine.
func (t *Terminal) pump() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			e, ok := translateKey(ev)
			if !ok {
				continue
			}
			select {
			case t.events <- e:
			default:
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func translateKey(ev *tcell.EventKey) (input.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Press(input.KeyUp), true
	case tcell.KeyDown:
		return input.Press(input.KeyDown), true
	case tcell.KeyLeft:
		return input.Press(input.KeyLeft), true
	case tcell.KeyRight:
		return input.Press(input.KeyRight), true
	case tcell.KeyEscape:
		return input.Press(input.KeyEscape), true
	case tcell.KeyPgUp:
		return input.Press(input.KeySpeedUp), true
	case tcell.KeyPgDn:
		return input.Press(input.KeySpeedDown), true
	case tcell.KeyCtrlC:
		return input.Quit(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return input.Press(input.KeyUp), true
		case 's', 'j':
			return input.Press(input.KeyDown), true
		case 'a', 'h':
			return input.Press(input.KeyLeft), true
		case 'd', 'l':
			return input.Press(input.KeyRight), true
		case '+', '=':
			return input.Press(input.KeySpeedUp), true
		case '-', '_':
			return input.Press(input.KeySpeedDown), true
		case 'q':
			return input.Quit(), true
		}
	}
	return input.Event{}, false
}

// Poll returns the buffered events without blocking
func (t *Terminal) Poll() []input.Event {
	var events []input.Event
	for {
		select {
		case e := <-t.events:
			events = append(events, e)
		default:
			return events
		}
	}
}

// screenPos maps a board cell to the left terminal column and row
func (t *Terminal) screenPos(p types.Point) (x, y int) {
	col, row := t.grid.ToCell(p)
	return col * 2, row + statusRows
}

func (t *Terminal) fill(p types.Point, style tcell.Style, left, right rune) {
	x, y := t.screenPos(p)
	t.screen.SetContent(x, y, left, nil, style)
	t.screen.SetContent(x+1, y, right, nil, style)
}

// DrawCell paints the cell in c. A terminal cell has no room for the
// border, brackets stand in for it.
func (t *Terminal) DrawCell(p types.Point, c types.Color) {
	style := tcell.StyleDefault.Background(toTcell(c)).Foreground(toTcell(types.BorderColor))
	t.fill(p, style, '[', ']')
}

// EraseCell blanks both columns of the cell
func (t *Terminal) EraseCell(p types.Point) {
	t.fill(p, backgroundStyle(), ' ', ' ')
}

// Clear blanks the board and redraws the status line
func (t *Terminal) Clear() {
	t.screen.Clear()
	style := backgroundStyle()
	for row := 0; row < t.grid.Rows(); row++ {
		for col := 0; col < t.grid.Cols(); col++ {
			t.fill(t.grid.CellAt(col, row), style, ' ', ' ')
		}
	}
	t.drawStatus()
}

// Present shows the pending changes
func (t *Terminal) Present() {
	t.screen.Show()
}

// SetStatus writes text on the line above the board
func (t *Terminal) SetStatus(text string) {
	t.status = text
	t.drawStatus()
}

func (t *Terminal) drawStatus() {
	width := t.grid.Cols() * 2
	runes := []rune(t.status)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		t.screen.SetContent(x, 0, r, nil, tcell.StyleDefault)
	}
}

// Close restores the terminal and waits for the event pump to stop
func (t *Terminal) Close() error {
	t.screen.Fini()
	<-t.done
	return nil
}

func backgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(toTcell(types.BackgroundColor))
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
