package entity

import "fmt"

// Position is a grid coordinate. Rows grow downwards, columns to the right.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies inside a gridSize x gridSize grid.
func (that Position) InBounds(gridSize int) bool {
	return that.Row >= 0 && that.Row < gridSize && that.Col >= 0 && that.Col < gridSize
}

// Offset returns the position shifted by the given number of rows and columns.
func (that Position) Offset(rows, cols int) Position {
	return Position{Row: that.Row + rows, Col: that.Col + cols}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
