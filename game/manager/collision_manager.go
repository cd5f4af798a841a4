package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

// CollisionType represents the type of collision found after a move
type CollisionType int

const (
	NoCollision CollisionType = iota
	FoodCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case FoodCollision:
		return "food"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// CollisionManager answers the per-tick collision questions
type CollisionManager struct {
	grid types.Grid
}

// NewCollisionManager creates a manager for the given board
func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if the snake head sits on the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return snake.GetHead() == food.Position
}

// IsSelfCollision checks if the snake head overlaps its own body.
// Walls never kill: positions wrap, so there is no wall check.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.SelfCollision()
}

// CheckCollisions reports every collision for the current head, in the
// order the loop handles them: food first, then self.
func (cm *CollisionManager) CheckCollisions(snake *entity.Snake, food *entity.Food) []CollisionType {
	var found []CollisionType
	if cm.IsFoodCollision(snake, food) {
		found = append(found, FoodCollision)
	}
	if cm.IsSelfCollision(snake) {
		found = append(found, SelfCollision)
	}
	return found
}

// ValidateSpawnPosition checks if a position is a valid, unoccupied cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) || pos.X%cm.grid.CellSize != 0 || pos.Y%cm.grid.CellSize != 0 {
		return false
	}
	return !snake.Occupies(pos)
}
