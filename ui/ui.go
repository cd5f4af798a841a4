// Package ui holds the rendering and input backends: a raylib window and a
// tcell terminal. Both draw grid cells and report key presses.
package ui

import (
	"io"

	"the-snake/config"
	"the-snake/game"
	"the-snake/input"

	"github.com/pkg/errors"
)

// Backend is a canvas that also reads the keyboard
type Backend interface {
	game.Canvas
	game.StatusDisplay
	input.Source
	io.Closer
}

var (
	_ Backend = (*Window)(nil)
	_ Backend = (*Terminal)(nil)
)

// Open starts the backend named in cfg
func Open(cfg config.Config) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Backend {
	case config.BackendWindow:
		b, err = NewWindow(cfg)
	case config.BackendTerminal:
		b, err = NewTerminal(cfg)
	default:
		return nil, errors.Errorf("ui: unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
