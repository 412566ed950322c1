package service

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// OpponentService plays the opponent's side of a match.
type OpponentService interface {
	MakeTurn(match *entity.Match) (entity.ShotResult, error)
}

type opponentService struct{}

func NewOpponentService() OpponentService {
	return &opponentService{}
}

// MakeTurn fires the next target of the opponent's shot sequence.
func (that *opponentService) MakeTurn(match *entity.Match) (entity.ShotResult, error) {
	target, err := match.NextOpponentShot()
	if err != nil {
		return entity.ShotResult{}, fmt.Errorf("opponent failed to pick a target: %w", err)
	}

	result, err := match.Fire(entity.SideOpponent, target)
	if err != nil {
		return entity.ShotResult{}, fmt.Errorf("opponent failed to fire at %s: %w", target, err)
	}

	return result, nil
}
