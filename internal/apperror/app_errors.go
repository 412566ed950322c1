package apperror

import "errors"

var (
	ErrIllegalTransition   = errors.New("illegal transition")
	ErrMatchNotStarted     = errors.New("match is not started")
	ErrMatchAlreadyStarted = errors.New("match is already started")
	ErrMatchFinished       = errors.New("match is already finished")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrFleetNotDeployed    = errors.New("not every ship is deployed")

	ErrIllegalPlacement = errors.New("illegal placement")
	ErrShipOutOfBounds  = errors.New("ship is out of bounds")
	ErrShipsOverlap     = errors.New("ships overlap")
	ErrBoardLocked      = errors.New("board is locked")
	ErrUnknownShip      = errors.New("unknown ship")

	ErrDuplicateShot       = errors.New("position was already fired at")
	ErrPositionOutOfBounds = errors.New("position is out of bounds")

	ErrInvalidState       = errors.New("invalid state")
	ErrSequencerExhausted = errors.New("shot sequencer is exhausted")

	ErrInvalidFleet    = errors.New("invalid fleet")
	ErrFleetDoesNotFit = errors.New("fleet does not fit on the board")
)
