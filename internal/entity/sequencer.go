package entity

import (
	"math/rand"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

// ShotSequencer hands out every cell of the grid exactly once, in random order.
type ShotSequencer struct {
	positions []Position
	next      int
}

func NewShotSequencer(gridSize int, rng *rand.Rand) *ShotSequencer {
	positions := make([]Position, 0, gridSize*gridSize)
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}

	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	return &ShotSequencer{positions: positions}
}

func (that *ShotSequencer) Next() (Position, error) {
	if that.next >= len(that.positions) {
		return Position{}, apperror.ErrSequencerExhausted
	}

	pos := that.positions[that.next]
	that.next++

	return pos, nil
}

func (that *ShotSequencer) Remaining() int {
	return len(that.positions) - that.next
}
