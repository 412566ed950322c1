package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

type Side string

const (
	SideNone     Side = ""
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

var ErrUnknownPhase = errors.New("unknown match phase")

func (that Side) Opposite() Side {
	switch that {
	case SidePlayer:
		return SideOpponent
	case SideOpponent:
		return SidePlayer
	default:
		return SideNone
	}
}

// Rules are the startup constants of a match.
type Rules struct {
	GridSize   int
	Fleet      []ShipSpec
	AutoDeploy bool
}

// DefaultRules is a 5x5 grid with a battleship and a patrol boat.
func DefaultRules() Rules {
	return Rules{
		GridSize: 5,
		Fleet: []ShipSpec{
			{Type: "battleship", Length: 3},
			{Type: "patrolBoat", Length: 2},
		},
	}
}

// Match is the turn controller. It owns both boards and the opponent's shot sequence.
type Match struct {
	ID            string `json:"id"`
	Phase         Phase  `json:"phase"`
	ActiveTurn    Side   `json:"active_turn,omitempty"`
	Winner        Side   `json:"winner,omitempty"`
	PlayerBoard   *Board `json:"player_board"`
	OpponentBoard *Board `json:"opponent_board"`

	opponentShots *ShotSequencer
}

// NewMatch builds both boards. The opponent fleet is placed at random, or every fleet is
// placed on its default rows when rules.AutoDeploy is set.
func NewMatch(id string, rules Rules, rng *rand.Rand) (*Match, error) {
	playerBoard, err := NewBoard(SidePlayer, rules.GridSize, rules.Fleet, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create player board: %w", err)
	}

	opponentBoard, err := NewBoard(SideOpponent, rules.GridSize, rules.Fleet, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create opponent board: %w", err)
	}

	if rules.AutoDeploy {
		if err = playerBoard.AutoDeployDefault(); err != nil {
			return nil, fmt.Errorf("failed to deploy player fleet: %w", err)
		}

		if err = opponentBoard.AutoDeployDefault(); err != nil {
			return nil, fmt.Errorf("failed to deploy opponent fleet: %w", err)
		}
	} else if err = opponentBoard.RandomDeploy(); err != nil {
		return nil, fmt.Errorf("failed to deploy opponent fleet: %w", err)
	}

	return &Match{
		ID:            id,
		Phase:         PhaseSetup,
		PlayerBoard:   playerBoard,
		OpponentBoard: opponentBoard,
		opponentShots: NewShotSequencer(rules.GridSize, rng),
	}, nil
}

func (that *Match) Board(side Side) (*Board, error) {
	switch side {
	case SidePlayer:
		return that.PlayerBoard, nil
	case SideOpponent:
		return that.OpponentBoard, nil
	default:
		return nil, fmt.Errorf("%w: unknown side %q", apperror.ErrIllegalTransition, side)
	}
}

func (that *Match) IsSetup() bool {
	return that.Phase == PhaseSetup
}

func (that *Match) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that *Match) IsFinished() bool {
	return that.Phase == PhaseEnded
}

func (that *Match) IsPlayerTurn() bool {
	return that.IsPlaying() && that.ActiveTurn == SidePlayer
}

func (that *Match) IsOpponentTurn() bool {
	return that.IsPlaying() && that.ActiveTurn == SideOpponent
}

// IsWaitingForPlayer reports whether the engine expects the player's shot.
func (that *Match) IsWaitingForPlayer() bool {
	return that.IsPlayerTurn()
}

func (that *Match) ConfirmPlaying() error {
	switch that.Phase {
	case PhasePlaying:
		return nil
	case PhaseSetup:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalTransition, apperror.ErrMatchNotStarted)
	case PhaseEnded:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalTransition, apperror.ErrMatchFinished)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPhase, that.Phase)
	}
}

func (that *Match) ConfirmSetup() error {
	switch that.Phase {
	case PhaseSetup:
		return nil
	case PhasePlaying:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalTransition, apperror.ErrMatchAlreadyStarted)
	case PhaseEnded:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalTransition, apperror.ErrMatchFinished)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPhase, that.Phase)
	}
}

// Deploy places one of side's ships. Only legal during setup.
func (that *Match) Deploy(side Side, shipType string, origin Position, isVertical bool) (*Ship, error) {
	if err := that.ConfirmSetup(); err != nil {
		return nil, err
	}

	board, err := that.Board(side)
	if err != nil {
		return nil, err
	}

	return board.DeployByType(shipType, origin, isVertical)
}

// StartGame freezes both fleets and hands the first turn to the player.
func (that *Match) StartGame() error {
	if err := that.ConfirmSetup(); err != nil {
		return err
	}

	for _, board := range []*Board{that.PlayerBoard, that.OpponentBoard} {
		if !board.AllDeployed() {
			return fmt.Errorf("%w: %w: %s board", apperror.ErrIllegalTransition, apperror.ErrFleetNotDeployed, board.Owner)
		}
	}

	that.PlayerBoard.Lock()
	that.OpponentBoard.Lock()

	that.Phase = PhasePlaying
	that.ActiveTurn = SidePlayer

	return nil
}

// Fire resolves attacker's shot against the other side's board. A duplicate target leaves
// the turn where it is; sinking the last ship ends the match.
func (that *Match) Fire(attacker Side, target Position) (ShotResult, error) {
	if err := that.ConfirmPlaying(); err != nil {
		return ShotResult{}, err
	}

	if attacker != that.ActiveTurn {
		return ShotResult{}, fmt.Errorf("%w: %w", apperror.ErrIllegalTransition, apperror.ErrNotYourTurn)
	}

	defender, err := that.Board(attacker.Opposite())
	if err != nil {
		return ShotResult{}, err
	}

	result, err := defender.ReceiveShot(target)
	if err != nil {
		return ShotResult{}, fmt.Errorf("failed to resolve shot: %w", err)
	}

	if result.IsGameOver {
		that.endGame(attacker)
		return result, nil
	}

	if err = that.AdvanceTurn(); err != nil {
		return result, err
	}

	return result, nil
}

// AdvanceTurn hands the turn to the other side.
func (that *Match) AdvanceTurn() error {
	if err := that.ConfirmPlaying(); err != nil {
		return err
	}

	that.ActiveTurn = that.ActiveTurn.Opposite()

	return nil
}

// NextOpponentShot pulls the next target for the opponent. Only legal on the opponent's turn.
func (that *Match) NextOpponentShot() (Position, error) {
	if err := that.ConfirmPlaying(); err != nil {
		return Position{}, err
	}

	if that.ActiveTurn != SideOpponent {
		return Position{}, fmt.Errorf("%w: %w", apperror.ErrIllegalTransition, apperror.ErrNotYourTurn)
	}

	pos, err := that.opponentShots.Next()
	if err != nil {
		return Position{}, fmt.Errorf("failed to get opponent shot: %w", err)
	}

	return pos, nil
}

func (that *Match) OpponentShotsLeft() int {
	return that.opponentShots.Remaining()
}

func (that *Match) endGame(winner Side) {
	that.Phase = PhaseEnded
	that.Winner = winner
	that.ActiveTurn = SideNone
}
