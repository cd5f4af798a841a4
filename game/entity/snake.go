package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// Snake is the player. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Length    int
	Direction types.Direction
	Color     types.Color

	next    types.Direction // buffered by input, applied on the next tick
	last    types.Point     // cell vacated by the last move
	hasLast bool

	grid types.Grid
	rng  *rand.Rand
}

// NewSnake creates a snake of length 1 in the middle of the grid, heading
// in a random direction.
func NewSnake(grid types.Grid, rng *rand.Rand) *Snake {
	s := &Snake{
		Color: types.SnakeColor,
		grid:  grid,
		rng:   rng,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to its initial state
func (s *Snake) Reset() {
	s.Body = []types.Point{s.grid.Center()}
	s.Length = 1
	s.Direction = types.Directions[s.rng.Intn(len(types.Directions))]
	s.next = types.NONE
	s.last = types.Point{}
	s.hasLast = false
}

// GetHead returns the head cell
func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// LastVacated returns the cell freed by the most recent move, if any
func (s *Snake) LastVacated() (types.Point, bool) {
	return s.last, s.hasLast
}

// Pending returns the buffered direction, NONE when there is none
func (s *Snake) Pending() types.Direction {
	return s.next
}

// SetNextDirection buffers d for the next tick. A 180 degree turn would put
// the head on the neck, so the reverse of the current direction is refused.
func (s *Snake) SetNextDirection(d types.Direction) bool {
	if d == types.NONE || d == s.Direction.Opposite() {
		return false
	}
	s.next = d
	return true
}

// UpdateDirection applies the buffered direction, if any
func (s *Snake) UpdateDirection() {
	if s.next != types.NONE {
		s.Direction = s.next
		s.next = types.NONE
	}
}

// Move advances the head by one cell, wrapping around the board edges, and
// drops the tail unless the snake is still growing.
func (s *Snake) Move() {
	newHead := s.grid.Step(s.GetHead(), s.Direction)
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	s.hasLast = false
	if len(s.Body) > s.Length {
		s.last = s.Body[len(s.Body)-1]
		s.hasLast = true
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow raises the target length by one. The body catches up on the next move.
func (s *Snake) Grow() {
	s.Length++
}

// SelfCollision reports whether the head overlaps any other body cell
func (s *Snake) SelfCollision() bool {
	head := s.GetHead()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether p is part of the body
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Draw erases the vacated cell, then paints the body and the head
func (s *Snake) Draw(c Canvas) {
	if s.hasLast {
		c.EraseCell(s.last)
	}
	for _, p := range s.Body[1:] {
		c.DrawCell(p, s.Color)
	}
	c.DrawCell(s.GetHead(), s.Color)
}
