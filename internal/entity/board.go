package entity

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

const (
	// randomDeployAttemptsPerCell bounds rejection sampling for one ship to attempts * gridSize^2
	// before falling back to picking among every legal placement.
	randomDeployAttemptsPerCell = 4
	randomDeployMaxRestarts     = 16
)

// Board holds one side's fleet and the shots that side has received.
type Board struct {
	Owner    Side    `json:"owner"`
	GridSize int     `json:"grid_size"`
	Ships    []*Ship `json:"ships"`
	Shots    []Shot  `json:"shots"`

	fleet  []ShipSpec
	locked bool
	rng    *rand.Rand
}

type placement struct {
	origin     Position
	isVertical bool
}

func NewBoard(owner Side, gridSize int, fleet []ShipSpec, rng *rand.Rand) (*Board, error) {
	if err := ValidateFleet(gridSize, fleet); err != nil {
		return nil, err
	}

	board := &Board{
		Owner:    owner,
		GridSize: gridSize,
		fleet:    append([]ShipSpec(nil), fleet...),
		rng:      rng,
	}
	board.initShips()

	return board, nil
}

// ValidateFleet checks that every ship type is unique, named and fits on the grid.
func ValidateFleet(gridSize int, fleet []ShipSpec) error {
	if gridSize < 1 {
		return fmt.Errorf("%w: grid size %d", apperror.ErrInvalidFleet, gridSize)
	}

	if len(fleet) == 0 {
		return fmt.Errorf("%w: no ships", apperror.ErrInvalidFleet)
	}

	seen := make(map[string]struct{}, len(fleet))
	for _, spec := range fleet {
		if spec.Type == "" {
			return fmt.Errorf("%w: ship without type", apperror.ErrInvalidFleet)
		}

		if spec.Length < 1 || spec.Length > gridSize {
			return fmt.Errorf("%w: %s has length %d on a %dx%d grid", apperror.ErrInvalidFleet, spec.Type, spec.Length, gridSize, gridSize)
		}

		if _, ok := seen[spec.Type]; ok {
			return fmt.Errorf("%w: duplicate ship type %s", apperror.ErrInvalidFleet, spec.Type)
		}
		seen[spec.Type] = struct{}{}
	}

	return nil
}

func (that *Board) initShips() {
	that.Ships = make([]*Ship, 0, len(that.fleet))
	for _, spec := range that.fleet {
		that.Ships = append(that.Ships, NewShip(spec))
	}
	that.Shots = nil
}

// Reset rebuilds the fleet from scratch and forgets every shot.
func (that *Board) Reset() error {
	if that.locked {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalPlacement, apperror.ErrBoardLocked)
	}

	that.initShips()

	return nil
}

// Lock freezes the fleet. Called when the match leaves setup.
func (that *Board) Lock() {
	that.locked = true
}

func (that *Board) IsLocked() bool {
	return that.locked
}

func (that *Board) Ship(shipType string) (*Ship, error) {
	for _, ship := range that.Ships {
		if ship.Type == shipType {
			return ship, nil
		}
	}

	return nil, fmt.Errorf("%w: %w: %q", apperror.ErrIllegalPlacement, apperror.ErrUnknownShip, shipType)
}

func (that *Board) AllDeployed() bool {
	for _, ship := range that.Ships {
		if !ship.IsDeployed {
			return false
		}
	}

	return true
}

func (that *Board) AllSunk() bool {
	for _, ship := range that.Ships {
		if !ship.IsSunk() {
			return false
		}
	}

	return true
}

// Deploy places the ship at origin. On failure the ship keeps its previous placement and
// deployment flag, so the caller can retry with another origin or orientation.
func (that *Board) Deploy(ship *Ship, origin Position, isVertical bool) error {
	if that.locked {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalPlacement, apperror.ErrBoardLocked)
	}

	if !that.owns(ship) {
		return fmt.Errorf("%w: %w: %q", apperror.ErrIllegalPlacement, apperror.ErrUnknownShip, ship.Type)
	}

	if err := that.checkPlacement(ship, origin, isVertical); err != nil {
		return err
	}

	ship.Origin = origin
	ship.IsVertical = isVertical
	ship.IsDeployed = true

	return nil
}

func (that *Board) DeployByType(shipType string, origin Position, isVertical bool) (*Ship, error) {
	ship, err := that.Ship(shipType)
	if err != nil {
		return nil, err
	}

	if err = that.Deploy(ship, origin, isVertical); err != nil {
		return nil, err
	}

	return ship, nil
}

func (that *Board) owns(ship *Ship) bool {
	for _, own := range that.Ships {
		if own == ship {
			return true
		}
	}

	return false
}

// checkPlacement validates ship at a candidate placement against the grid and every other
// deployed ship. Undeployed ships never block.
func (that *Board) checkPlacement(ship *Ship, origin Position, isVertical bool) error {
	candidate := *ship
	candidate.Origin = origin
	candidate.IsVertical = isVertical

	if !candidate.IsWithinBounds(that.GridSize) {
		return fmt.Errorf("%w: %w: %s at %s", apperror.ErrIllegalPlacement, apperror.ErrShipOutOfBounds, ship.Type, origin)
	}

	for _, other := range that.Ships {
		if other == ship || !other.IsDeployed {
			continue
		}

		if candidate.Overlaps(other) {
			return fmt.Errorf("%w: %w: %s at %s hits %s", apperror.ErrIllegalPlacement, apperror.ErrShipsOverlap, ship.Type, origin, other.Type)
		}
	}

	return nil
}

func (that *Board) legalPlacements(ship *Ship) []placement {
	var placements []placement
	for row := 0; row < that.GridSize; row++ {
		for col := 0; col < that.GridSize; col++ {
			for _, isVertical := range []bool{false, true} {
				origin := Position{Row: row, Col: col}
				if that.checkPlacement(ship, origin, isVertical) == nil {
					placements = append(placements, placement{origin: origin, isVertical: isVertical})
				}
			}
		}
	}

	return placements
}

// AutoDeployDefault puts every undeployed ship on its own row (2*i, shifted by one for the
// opponent), falling back to the first legal slot in row-major order.
func (that *Board) AutoDeployDefault() error {
	if that.locked {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalPlacement, apperror.ErrBoardLocked)
	}

	offset := 0
	if that.Owner == SideOpponent {
		offset = 1
	}

	for i, ship := range that.Ships {
		if ship.IsDeployed {
			continue
		}

		if err := that.Deploy(ship, Position{Row: 2*i + offset}, false); err == nil {
			continue
		}

		placements := that.legalPlacements(ship)
		if len(placements) == 0 {
			return fmt.Errorf("%w: no room for %s", apperror.ErrFleetDoesNotFit, ship.Type)
		}

		if err := that.Deploy(ship, placements[0].origin, placements[0].isVertical); err != nil {
			return fmt.Errorf("failed to deploy %s: %w", ship.Type, err)
		}
	}

	return nil
}

// RandomDeploy places every undeployed ship at a uniformly random legal position.
// Ships deployed before the call stay where they are.
func (that *Board) RandomDeploy() error {
	if that.locked {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalPlacement, apperror.ErrBoardLocked)
	}

	for restart := 0; restart <= randomDeployMaxRestarts; restart++ {
		placed := make([]*Ship, 0, len(that.Ships))
		complete := true

		for _, ship := range that.Ships {
			if ship.IsDeployed {
				continue
			}

			if !that.randomDeployShip(ship) {
				complete = false
				break
			}
			placed = append(placed, ship)
		}

		if complete {
			return nil
		}

		for _, ship := range placed {
			ship.IsDeployed = false
			ship.Reset()
		}
	}

	return fmt.Errorf("%w: gave up after %d restarts", apperror.ErrFleetDoesNotFit, randomDeployMaxRestarts)
}

func (that *Board) randomDeployShip(ship *Ship) bool {
	// last origin index on an axis that still keeps the ship inside the grid
	span := that.GridSize - ship.Length

	attempts := randomDeployAttemptsPerCell * that.GridSize * that.GridSize
	for i := 0; i < attempts; i++ {
		row := that.rng.Intn(that.GridSize)
		col := that.rng.Intn(that.GridSize)

		var isVertical bool
		switch fitsVertical, fitsHorizontal := row <= span, col <= span; {
		case fitsVertical && fitsHorizontal:
			isVertical = that.rng.Intn(2) == 1
		case fitsVertical:
			isVertical = true
		case fitsHorizontal:
			isVertical = false
		default:
			continue
		}

		if that.Deploy(ship, Position{Row: row, Col: col}, isVertical) == nil {
			return true
		}
	}

	placements := that.legalPlacements(ship)
	if len(placements) == 0 {
		return false
	}

	choice := placements[that.rng.Intn(len(placements))]

	return that.Deploy(ship, choice.origin, choice.isVertical) == nil
}

func (that *Board) HasShotAt(target Position) bool {
	for _, shot := range that.Shots {
		if shot.Target == target {
			return true
		}
	}

	return false
}

// ReceiveShot resolves an incoming shot. A repeated target is rejected with ErrDuplicateShot
// and leaves the board untouched.
func (that *Board) ReceiveShot(target Position) (ShotResult, error) {
	if !target.InBounds(that.GridSize) {
		return ShotResult{}, fmt.Errorf("%w: %s", apperror.ErrPositionOutOfBounds, target)
	}

	if that.HasShotAt(target) {
		return ShotResult{}, fmt.Errorf("%w: %s", apperror.ErrDuplicateShot, target)
	}

	shot := Shot{Target: target}

	var sunkShip *Ship
	for _, ship := range that.Ships {
		if !ship.IsDeployed || !ship.Occupies(target) {
			continue
		}

		isSunk, err := ship.ApplyHit()
		if err != nil {
			return ShotResult{}, fmt.Errorf("failed to hit %s: %w", ship.Type, err)
		}

		shot.IsHit = true
		if isSunk {
			sunkShip = ship
		}
	}

	that.Shots = append(that.Shots, shot)

	return ShotResult{
		Shot:       shot,
		SunkShip:   sunkShip,
		IsGameOver: that.AllSunk(),
	}, nil
}
