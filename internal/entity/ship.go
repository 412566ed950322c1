package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

// ShipSpec describes one ship type of a fleet.
type ShipSpec struct {
	Type   string `json:"type"`
	Length int    `json:"length"`
}

type Ship struct {
	Type       string   `json:"type"`
	Length     int      `json:"length"`
	Origin     Position `json:"origin"`
	IsVertical bool     `json:"is_vertical"`
	Health     int      `json:"health"`
	IsDeployed bool     `json:"is_deployed"`
}

func NewShip(spec ShipSpec) *Ship {
	return &Ship{
		Type:   spec.Type,
		Length: spec.Length,
		Health: spec.Length,
	}
}

// Footprint returns the covered cells starting at the origin.
func (that *Ship) Footprint() []Position {
	cells := make([]Position, 0, that.Length)
	for i := 0; i < that.Length; i++ {
		if that.IsVertical {
			cells = append(cells, that.Origin.Offset(i, 0))
		} else {
			cells = append(cells, that.Origin.Offset(0, i))
		}
	}

	return cells
}

// End returns the last cell of the footprint.
func (that *Ship) End() Position {
	if that.IsVertical {
		return that.Origin.Offset(that.Length-1, 0)
	}
	return that.Origin.Offset(0, that.Length-1)
}

// Occupies reports whether pos is one of the footprint cells.
func (that *Ship) Occupies(pos Position) bool {
	end := that.End()

	return that.Origin.Row <= pos.Row && pos.Row <= end.Row &&
		that.Origin.Col <= pos.Col && pos.Col <= end.Col
}

// Overlaps reports whether both footprints share a cell.
func (that *Ship) Overlaps(other *Ship) bool {
	a, b := that.End(), other.End()

	return that.Origin.Row <= b.Row && a.Row >= other.Origin.Row &&
		that.Origin.Col <= b.Col && a.Col >= other.Origin.Col
}

func (that *Ship) IsWithinBounds(gridSize int) bool {
	return that.Origin.InBounds(gridSize) && that.End().InBounds(gridSize)
}

// ApplyHit takes one point of health and reports whether the ship went down with it.
func (that *Ship) ApplyHit() (bool, error) {
	if that.IsSunk() {
		return false, fmt.Errorf("%w: %s is already sunk", apperror.ErrInvalidState, that.Type)
	}

	that.Health--

	return that.IsSunk(), nil
}

func (that *Ship) IsSunk() bool {
	return that.Health == 0
}

// Reset returns an undeployed ship to the top-left corner, horizontal.
func (that *Ship) Reset() {
	if that.IsDeployed {
		return
	}

	that.Origin = Position{}
	that.IsVertical = false
}
