package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/pkg"
)

var (
	ErrNoActiveMatch   = errors.New("no active match")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidMove     = errors.New("invalid move")
	ErrShipNotDeployed = errors.New("ship is not deployed")
)

type opponentService interface {
	MakeTurn(match *entity.Match) (entity.ShotResult, error)
}

// Session drives one local match at a time on behalf of the player.
type Session struct {
	logger *slog.Logger

	rules    entity.Rules
	rng      *rand.Rand
	opponent opponentService
	newID    func() string

	match *entity.Match
}

func NewSession(logger *slog.Logger, rules entity.Rules, rng *rand.Rand, opponent opponentService) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		rules:    rules,
		rng:      rng,
		opponent: opponent,
		newID:    pkg.GenerateMatchID,
	}
}

// Execute dispatches a normalized command to the matching session method.
func (that *Session) Execute(cmd Command) (Outcome, error) {
	var (
		ship   *entity.Ship
		result *entity.ShotResult
		err    error
	)

	switch cmd.Kind {
	case CommandNew:
		err = that.NewMatch()
	case CommandStart:
		err = that.StartGame()
	case CommandDeploy:
		ship, err = that.DeployShip(cmd.ShipType, cmd.Origin, cmd.Vertical)
	case CommandPlace:
		ship, err = that.PlaceShip(cmd.ShipType)
	case CommandMove:
		ship, err = that.MoveShip(cmd.ShipType, cmd.Direction, cmd.Spaces)
	case CommandRotate:
		ship, err = that.RotateShip(cmd.ShipType)
	case CommandRandom:
		err = that.RandomDeploy()
	case CommandReset:
		err = that.ResetBoard()
	case CommandFire:
		result, err = that.fire(cmd.Target)
	case CommandOpponent:
		result, err = that.opponentTurn()
	case CommandStatus:
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}

	if err != nil {
		return Outcome{}, err
	}

	match, err := that.Match()
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Match: match.Snapshot(), Ship: detach(ship), Result: result}, nil
}

// detach copies a live ship so callers cannot reach into the board.
func detach(ship *entity.Ship) *entity.Ship {
	if ship == nil {
		return nil
	}

	copied := *ship

	return &copied
}

// NewMatch discards the current match and starts a fresh setup.
func (that *Session) NewMatch() error {
	log := that.logger.With("method", "NewMatch")

	match, err := entity.NewMatch(that.newID(), that.rules, that.rng)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	that.match = match
	log.Info("match created", "match", match.ID, "auto_deploy", that.rules.AutoDeploy)

	return nil
}

func (that *Session) Match() (*entity.Match, error) {
	if that.match == nil {
		return nil, ErrNoActiveMatch
	}

	return that.match, nil
}

func (that *Session) StartGame() error {
	match, err := that.Match()
	if err != nil {
		return err
	}

	if err = match.StartGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.logger.Info("game started", "match", match.ID)

	return nil
}

func (that *Session) DeployShip(shipType string, origin entity.Position, isVertical bool) (*entity.Ship, error) {
	log := that.logger.With("method", "DeployShip")

	match, err := that.Match()
	if err != nil {
		return nil, err
	}

	ship, err := match.Deploy(entity.SidePlayer, shipType, origin, isVertical)
	if err != nil {
		log.Debug("placement rejected", "ship", shipType, "origin", origin.String(), "vertical", isVertical, "error", err)
		return nil, fmt.Errorf("failed to deploy %s: %w", shipType, err)
	}

	log.Debug("ship deployed", "ship", shipType, "origin", origin.String(), "vertical", isVertical)

	return ship, nil
}

// PlaceShip drops a ship horizontally near the middle of the grid.
func (that *Session) PlaceShip(shipType string) (*entity.Ship, error) {
	match, err := that.Match()
	if err != nil {
		return nil, err
	}

	ship, err := match.PlayerBoard.Ship(shipType)
	if err != nil {
		return nil, err
	}

	size := match.PlayerBoard.GridSize
	col := min(size/2-((ship.Length+1)/2-1), size-ship.Length)

	return that.DeployShip(shipType, entity.NewPosition(size/2, max(col, 0)), false)
}

// MoveShip shifts an already deployed ship by spaces cells.
func (that *Session) MoveShip(shipType string, direction Direction, spaces int) (*entity.Ship, error) {
	ship, err := that.deployedShip(shipType)
	if err != nil {
		return nil, err
	}

	if spaces < 1 {
		return nil, fmt.Errorf("%w: %d spaces", ErrInvalidMove, spaces)
	}

	rows, cols, ok := direction.offset(spaces)
	if !ok {
		return nil, fmt.Errorf("%w: direction %q", ErrInvalidMove, direction)
	}

	return that.DeployShip(shipType, ship.Origin.Offset(rows, cols), ship.IsVertical)
}

// RotateShip flips a deployed ship's orientation around its origin.
func (that *Session) RotateShip(shipType string) (*entity.Ship, error) {
	ship, err := that.deployedShip(shipType)
	if err != nil {
		return nil, err
	}

	return that.DeployShip(shipType, ship.Origin, !ship.IsVertical)
}

func (that *Session) deployedShip(shipType string) (*entity.Ship, error) {
	match, err := that.Match()
	if err != nil {
		return nil, err
	}

	ship, err := match.PlayerBoard.Ship(shipType)
	if err != nil {
		return nil, err
	}

	if !ship.IsDeployed {
		return nil, fmt.Errorf("%w: %s", ErrShipNotDeployed, shipType)
	}

	return ship, nil
}

// RandomDeploy places every remaining player ship at random.
func (that *Session) RandomDeploy() error {
	match, err := that.Match()
	if err != nil {
		return err
	}

	if err = match.ConfirmSetup(); err != nil {
		return err
	}

	if err = match.PlayerBoard.RandomDeploy(); err != nil {
		return fmt.Errorf("failed to deploy fleet: %w", err)
	}

	return nil
}

// ResetBoard takes every player ship back off the board.
func (that *Session) ResetBoard() error {
	match, err := that.Match()
	if err != nil {
		return err
	}

	if err = match.ConfirmSetup(); err != nil {
		return err
	}

	if err = match.PlayerBoard.Reset(); err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}

	return nil
}

// Fire resolves the player's shot at the opponent's board.
func (that *Session) Fire(target entity.Position) (entity.ShotResult, error) {
	result, err := that.fire(target)
	if err != nil {
		return entity.ShotResult{}, err
	}

	return *result, nil
}

func (that *Session) fire(target entity.Position) (*entity.ShotResult, error) {
	log := that.logger.With("method", "Fire")

	match, err := that.Match()
	if err != nil {
		return nil, err
	}

	result, err := match.Fire(entity.SidePlayer, target)
	if err != nil {
		return nil, fmt.Errorf("failed to fire: %w", err)
	}

	that.logResult(log, match, entity.SidePlayer, result)
	result.SunkShip = detach(result.SunkShip)

	return &result, nil
}

// OpponentTurn lets the opponent fire its next shot.
func (that *Session) OpponentTurn() (entity.ShotResult, error) {
	result, err := that.opponentTurn()
	if err != nil {
		return entity.ShotResult{}, err
	}

	return *result, nil
}

func (that *Session) opponentTurn() (*entity.ShotResult, error) {
	log := that.logger.With("method", "OpponentTurn")

	match, err := that.Match()
	if err != nil {
		return nil, err
	}

	result, err := that.opponent.MakeTurn(match)
	if err != nil {
		return nil, fmt.Errorf("failed to make opponent turn: %w", err)
	}

	that.logResult(log, match, entity.SideOpponent, result)
	result.SunkShip = detach(result.SunkShip)

	return &result, nil
}

func (that *Session) logResult(log *slog.Logger, match *entity.Match, attacker entity.Side, result entity.ShotResult) {
	attrs := []any{"match", match.ID, "attacker", attacker, "target", result.Shot.Target.String(), "hit", result.Shot.IsHit}
	if result.SunkShip != nil {
		attrs = append(attrs, "sunk", result.SunkShip.Type)
	}

	log.Info("shot resolved", attrs...)

	if result.IsGameOver {
		log.Info("match ended", "match", match.ID, "winner", match.Winner)
	}
}
