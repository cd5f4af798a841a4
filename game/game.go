package game

import (
	"fmt"
	"time"

	"the-snake/config"
	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"
	"the-snake/input"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Canvas is the drawing surface the game renders to
type Canvas = entity.Canvas

// StatusDisplay is implemented by canvases that can show a one line status
// such as the window title.
type StatusDisplay interface {
	SetStatus(text string)
}

// SoundPlayer plays feedback for game events
type SoundPlayer interface {
	PlayEat()
	PlayReset()
}

// Game holds one play session: the board, the snake, the food and the score
type Game struct {
	UUID      string
	Grid      types.Grid
	Speed     int
	Steps     int
	StartTime time.Time

	maxSpeed     int
	title        string
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	canvas       Canvas
	source       input.Source
	sound        SoundPlayer
	logger       *log.Entry
}

// NewGame builds a game from a validated configuration
func NewGame(cfg config.Config, canvas Canvas, source input.Source, logger log.FieldLogger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	grid := types.NewGrid(cfg.ScreenWidth, cfg.ScreenHeight, cfg.CellSize)
	gameUUID := uuid.New().String()
	entry := logger.WithField("game", gameUUID)

	snake := entity.NewSnake(grid, rng)
	collisionMgr := manager.NewCollisionManager(grid)
	foodMgr, err := manager.NewFoodManager(grid, rng, collisionMgr, snake, entry)
	if err != nil {
		return nil, errors.Wrap(err, "creating game")
	}

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		Speed:        cfg.Speed,
		StartTime:    time.Now(),
		maxSpeed:     cfg.MaxSpeed,
		title:        cfg.Title,
		snake:        snake,
		collisionMgr: collisionMgr,
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(),
		canvas:       canvas,
		source:       source,
		logger:       entry,
	}
	g.logger.WithFields(log.Fields{
		"cols":      grid.Cols(),
		"rows":      grid.Rows(),
		"seed":      seed,
		"speed":     g.Speed,
		"direction": snake.Direction,
	}).Info("game started")
	g.canvas.Clear()
	g.updateStatus()
	return g, nil
}

// SetSound attaches a sound player. Without one the game is silent.
func (g *Game) SetSound(s SoundPlayer) {
	g.sound = s
}

// GetSnake returns the player's snake
func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the food item on the board
func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.Food()
}

// GetState returns the session score keeper
func (g *Game) GetState() *manager.StateManager {
	return g.stateMgr
}

// ElapsedTime returns the duration of the session in seconds
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

// Update runs one tick: input, direction, drawing, movement, eating and
// self collision, then presents the frame. It reports false once the player
// asked to quit; nothing is moved on that tick.
func (g *Game) Update() bool {
	action := input.Handle(g.source.Poll(), g.snake)
	if action.Quit {
		g.sessionLogger().Info("quit requested")
		return false
	}
	if action.SpeedDelta != 0 {
		g.ChangeSpeed(action.SpeedDelta)
	}

	g.Steps++
	g.snake.UpdateDirection()

	g.snake.Draw(g.canvas)
	g.GetFood().Draw(g.canvas)

	g.snake.Move()

	// The new head is compared with the body as it was before growing, so
	// both cannot be caused by the same growth step.
	for _, c := range g.collisionMgr.CheckCollisions(g.snake, g.GetFood()) {
		switch c {
		case manager.FoodCollision:
			g.eat()
		case manager.SelfCollision:
			g.reset()
		}
	}

	g.canvas.Present()
	return true
}

func (g *Game) eat() {
	g.snake.Grow()
	g.stateMgr.AddPoint()
	g.foodMgr.Relocate(g.snake)
	g.GetFood().Draw(g.canvas)
	if g.sound != nil {
		g.sound.PlayEat()
	}
	g.logger.WithFields(log.Fields{
		"tick":   g.Steps,
		"length": g.snake.Length,
		"score":  g.stateMgr.GetScore(),
		"food":   g.GetFood().Position,
	}).Debug("food eaten")
	g.updateStatus()
}

func (g *Game) reset() {
	round := g.stateMgr.EndRound()
	g.logger.WithFields(log.Fields{
		"tick":     g.Steps,
		"length":   g.snake.Length,
		"score":    round.Score,
		"best":     g.stateMgr.GetHighScore(),
		"duration": round.EndTime.Sub(round.StartTime).Round(time.Millisecond),
	}).Info("self collision, snake reset")

	g.canvas.Clear()
	g.snake.Reset()
	g.foodMgr.Relocate(g.snake)
	g.snake.Draw(g.canvas)
	g.GetFood().Draw(g.canvas)
	if g.sound != nil {
		g.sound.PlayReset()
	}
	g.updateStatus()
}

// ChangeSpeed adjusts the tick rate by delta, clamped to [1, max speed]
func (g *Game) ChangeSpeed(delta int) {
	speed := g.Speed + delta
	if speed < 1 {
		speed = 1
	}
	if speed > g.maxSpeed {
		speed = g.maxSpeed
	}
	if speed == g.Speed {
		return
	}
	g.logger.WithFields(log.Fields{"from": g.Speed, "to": speed}).Info("speed changed")
	g.Speed = speed
	g.updateStatus()
}

// sessionLogger carries the session totals logged when play stops
func (g *Game) sessionLogger() *log.Entry {
	return g.logger.WithFields(log.Fields{
		"tick":          g.Steps,
		"rounds":        g.stateMgr.GetRoundsPlayed(),
		"average_score": g.stateMgr.GetAverageScore(),
		"best":          g.stateMgr.GetHighScore(),
		"elapsed":       g.ElapsedTime(),
	})
}

func (g *Game) updateStatus() {
	sd, ok := g.canvas.(StatusDisplay)
	if !ok {
		return
	}
	sd.SetStatus(fmt.Sprintf("%s | score %d | best %d | speed %d",
		g.title, g.stateMgr.GetScore(), g.stateMgr.GetHighScore(), g.Speed))
}
