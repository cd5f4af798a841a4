package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Backend names
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds everything the game needs at start up. Speed is the initial
// tick rate; the running game adjusts its own copy.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	Speed        int // ticks per second
	MaxSpeed     int
	Seed         uint64 // 0 picks a time based seed
	Backend      string
	Title        string
}

// Default returns the classic 640x480 board with 20px cells at 20 ticks per
// second. Environment variables override each value.
func Default() Config {
	return Config{
		ScreenWidth:  getEnvInt("SNAKE_WIDTH", 640),
		ScreenHeight: getEnvInt("SNAKE_HEIGHT", 480),
		CellSize:     getEnvInt("SNAKE_CELL", 20),
		Speed:        getEnvInt("SNAKE_SPEED", 20),
		MaxSpeed:     getEnvInt("SNAKE_MAX_SPEED", 60),
		Seed:         uint64(getEnvInt("SNAKE_SEED", 0)),
		Backend:      getEnvString("SNAKE_BACKEND", BackendWindow),
		Title:        "Snake",
	}
}

// Validate checks the board geometry and the speed bounds
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalid, "cell size must be positive, got %d", c.CellSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Wrapf(ErrInvalid, "screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return errors.Wrapf(ErrInvalid, "screen size %dx%d is not a multiple of the cell size %d",
			c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.ScreenWidth/c.CellSize < 2 || c.ScreenHeight/c.CellSize < 2 {
		return errors.Wrap(ErrInvalid, "board must be at least 2x2 cells")
	}
	if c.Speed < 1 {
		return errors.Wrapf(ErrInvalid, "speed must be at least 1, got %d", c.Speed)
	}
	if c.MaxSpeed < c.Speed {
		return errors.Wrapf(ErrInvalid, "max speed %d is below speed %d", c.MaxSpeed, c.Speed)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return errors.Wrapf(ErrInvalid, "unknown backend %q", c.Backend)
	}
	return nil
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}
