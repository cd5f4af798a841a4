// Package input turns discrete key events into snake direction requests
// and speed changes. Backends in the ui package produce the events.
package input

import "the-snake/game/types"

// Key identifies a key the game reacts to
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeySpeedUp
	KeySpeedDown
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEscape:
		return "escape"
	case KeySpeedUp:
		return "speed-up"
	case KeySpeedDown:
		return "speed-down"
	default:
		return "none"
	}
}

// EventType tells key presses apart from window close requests
type EventType int

const (
	EventKeyDown EventType = iota
	EventQuit
)

// Event is a single input event
type Event struct {
	Type EventType
	Key  Key
}

// Press builds a key press event
func Press(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// Quit builds a close request event
func Quit() Event {
	return Event{Type: EventQuit}
}

// Source is polled once per tick for the events received since the
// previous poll.
type Source interface {
	Poll() []Event
}

// Steerable accepts buffered direction requests
type Steerable interface {
	SetNextDirection(d types.Direction) bool
}

// Action is the outcome of one tick worth of events
type Action struct {
	Quit       bool
	SpeedDelta int
}

var keyDirections = map[Key]types.Direction{
	KeyUp:    types.UP,
	KeyDown:  types.DOWN,
	KeyLeft:  types.LEFT,
	KeyRight: types.RIGHT,
}

// Handle applies events in order. Direction keys are forwarded to s, which
// refuses reversals; speed keys accumulate into the returned delta. Events
// after a quit are ignored.
func Handle(events []Event, s Steerable) Action {
	var a Action
	for _, ev := range events {
		if ev.Type == EventQuit {
			a.Quit = true
			return a
		}
		switch ev.Key {
		case KeyEscape:
			a.Quit = true
			return a
		case KeySpeedUp:
			a.SpeedDelta++
		case KeySpeedDown:
			a.SpeedDelta--
		default:
			if d, ok := keyDirections[ev.Key]; ok {
				s.SetNextDirection(d)
			}
		}
	}
	return a
}
