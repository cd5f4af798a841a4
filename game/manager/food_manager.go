package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	food         *entity.Food
	collisionMgr *CollisionManager
	logger       log.FieldLogger
}

// NewFoodManager places the first food item off the snake
func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager, snake *entity.Snake, logger log.FieldLogger) (*FoodManager, error) {
	food, err := entity.NewFood(grid, rng, snake.Body)
	if err != nil {
		return nil, errors.Wrap(err, "placing food")
	}
	return &FoodManager{
		grid:         grid,
		food:         food,
		collisionMgr: collisionMgr,
		logger:       logger,
	}, nil
}

// Food returns the current food item
func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// Relocate moves the food to a cell the snake does not occupy. A full board
// leaves the food where it is.
func (fm *FoodManager) Relocate(snake *entity.Snake) {
	if err := fm.food.RandomizePosition(snake.Body); err != nil {
		fm.logger.WithError(err).Warn("food not relocated")
		return
	}
	if !fm.collisionMgr.ValidateSpawnPosition(fm.food.Position, snake) {
		// RandomizePosition never picks an occupied cell
		fm.logger.WithField("food", fm.food.Position).Error("food placed on the snake")
	}
}
