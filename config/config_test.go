package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, 640, c.ScreenWidth)
	require.Equal(t, 480, c.ScreenHeight)
	require.Equal(t, 20, c.CellSize)
	require.Equal(t, 20, c.Speed)
	require.Equal(t, BackendWindow, c.Backend)
	require.NoError(t, c.Validate())
}

func TestDefaultFromEnv(t *testing.T) {
	t.Setenv("SNAKE_WIDTH", "400")
	t.Setenv("SNAKE_SPEED", "5")
	t.Setenv("SNAKE_CELL", "not a number")
	t.Setenv("SNAKE_BACKEND", BackendTerminal)
	t.Setenv("SNAKE_SEED", "99")

	c := Default()
	require.Equal(t, 400, c.ScreenWidth)
	require.Equal(t, 5, c.Speed)
	require.Equal(t, 20, c.CellSize)
	require.Equal(t, BackendTerminal, c.Backend)
	require.Equal(t, uint64(99), c.Seed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"negative width", func(c *Config) { c.ScreenWidth = -20 }},
		{"not a multiple", func(c *Config) { c.ScreenWidth = 650 }},
		{"too small", func(c *Config) { c.ScreenWidth, c.ScreenHeight = 20, 20 }},
		{"speed zero", func(c *Config) { c.Speed = 0 }},
		{"max below speed", func(c *Config) { c.MaxSpeed = 1 }},
		{"unknown backend", func(c *Config) { c.Backend = "vga" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{ScreenWidth: 640, ScreenHeight: 480, CellSize: 20, Speed: 20, MaxSpeed: 60, Backend: BackendWindow}
			tt.modify(&c)
			err := c.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalid))
		})
	}
}
