package entity

import "the-snake/game/types"

// Canvas is what entities draw on. Implementations live in the ui package.
type Canvas interface {
	// DrawCell fills the cell at p with c and outlines it with the border color
	DrawCell(p types.Point, c types.Color)
	// EraseCell paints the cell at p with the background color
	EraseCell(p types.Point)
	// Clear paints the whole board with the background color
	Clear()
	// Present shows the frame drawn so far
	Present()
}

// Drawable is implemented by everything that appears on the board
type Drawable interface {
	Draw(c Canvas)
}
