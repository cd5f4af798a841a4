package game

import (
	"context"

	"golang.org/x/time/rate"
)

// Run ticks the game at its current speed until the player quits or ctx is
// cancelled. Both are clean exits and return nil.
func Run(ctx context.Context, g *Game) error {
	limiter := rate.NewLimiter(rate.Limit(g.Speed), 1)
	speed := g.Speed
	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				g.sessionLogger().Info("game interrupted")
				return nil
			}
			return err
		}
		if !g.Update() {
			return nil
		}
		if g.Speed != speed {
			speed = g.Speed
			limiter.SetLimit(rate.Limit(speed))
		}
	}
}
