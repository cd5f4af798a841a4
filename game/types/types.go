package types

// Point is a cell position in pixels. Every point handed out by a Grid is
// a multiple of the cell size and lies inside the board.
type Point struct {
	X, Y int
}

// Add returns p moved by d cells of the given size
func (p Point) Add(d Direction, cellSize int) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X*cellSize, Y: p.Y + v.Y*cellSize}
}

// Color is an opaque RGB color
type Color struct {
	R, G, B uint8
}

// Palette
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	FoodColor       = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)

// Grid represents the board: its size in pixels and the side of one cell.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid builds a grid. Width and Height are expected to be multiples of
// cellSize; config.Validate enforces this before a Grid is created.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Cols returns the number of cells on a row
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells on a column
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells on the board
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Center returns the cell in the middle of the board, snapped to the grid
func (g Grid) Center() Point {
	return g.CellAt(g.Cols()/2, g.Rows()/2)
}

// CellAt converts a column/row pair to the pixel position of that cell
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// ToCell converts a pixel position to its column/row pair
func (g Grid) ToCell(p Point) (col, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

// Wrap folds a point back onto the board, each axis independently.
// Leaving one edge re-enters from the opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Contains reports whether p lies inside the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Step moves p one cell towards d and wraps the result
func (g Grid) Step(p Point, d Direction) Point {
	return g.Wrap(p.Add(d, g.CellSize))
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
