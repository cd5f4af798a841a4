package entity

import (
	"the-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no free cell is left for the food
var ErrBoardFull = errors.New("entity: no free cell left on the board")

// maxSamplesPerCell bounds rejection sampling before falling back to a scan
// of the free cells.
const maxSamplesPerCell = 4

// Food occupies a single cell
type Food struct {
	Position types.Point
	Color    types.Color

	grid types.Grid
	rng  *rand.Rand
}

// NewFood places a food item on a random cell not covered by occupied
func NewFood(grid types.Grid, rng *rand.Rand, occupied []types.Point) (*Food, error) {
	f := &Food{
		Position: types.Point{X: -1, Y: -1},
		Color:    types.FoodColor,
		grid:     grid,
		rng:      rng,
	}
	if err := f.RandomizePosition(occupied); err != nil {
		return nil, err
	}
	return f, nil
}

// RandomizePosition moves the food to a uniformly random cell that is
// neither in occupied nor the current position. When the current position
// is the only free cell it is kept. On ErrBoardFull the position is left
// untouched.
func (f *Food) RandomizePosition(occupied []types.Point) error {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for i := 0; i < maxSamplesPerCell*f.grid.Cells(); i++ {
		p := f.randomCell()
		if _, ok := taken[p]; ok || p == f.Position {
			continue
		}
		f.Position = p
		return nil
	}

	// Crowded board: pick among the cells that are actually free
	free := f.freeCells(taken)
	if len(free) == 0 {
		return errors.Wrapf(ErrBoardFull, "%d cells occupied", len(taken))
	}
	candidates := make([]types.Point, 0, len(free))
	for _, p := range free {
		if p != f.Position {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = free
	}
	f.Position = candidates[f.rng.Intn(len(candidates))]
	return nil
}

func (f *Food) randomCell() types.Point {
	return f.grid.CellAt(f.rng.Intn(f.grid.Cols()), f.rng.Intn(f.grid.Rows()))
}

func (f *Food) freeCells(taken map[types.Point]struct{}) []types.Point {
	free := make([]types.Point, 0, f.grid.Cells())
	for row := 0; row < f.grid.Rows(); row++ {
		for col := 0; col < f.grid.Cols(); col++ {
			p := f.grid.CellAt(col, row)
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

// Draw paints the food cell
func (f *Food) Draw(c Canvas) {
	c.DrawCell(f.Position, f.Color)
}
