package usecase

import "github.com/rocketscienceinc/battleship-backend/internal/entity"

// CommandKind is a normalized input signal coming from the UI layer.
type CommandKind string

const (
	CommandNew      CommandKind = "new"
	CommandStart    CommandKind = "start"
	CommandDeploy   CommandKind = "deploy"
	CommandPlace    CommandKind = "place"
	CommandMove     CommandKind = "move"
	CommandRotate   CommandKind = "rotate"
	CommandRandom   CommandKind = "random"
	CommandReset    CommandKind = "reset"
	CommandFire     CommandKind = "fire"
	CommandOpponent CommandKind = "opponent"
	CommandStatus   CommandKind = "status"
)

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

type Command struct {
	Kind      CommandKind     `json:"kind"`
	ShipType  string          `json:"ship,omitempty"`
	Origin    entity.Position `json:"origin"`
	Vertical  bool            `json:"vertical,omitempty"`
	Direction Direction       `json:"direction,omitempty"`
	Spaces    int             `json:"spaces,omitempty"`
	Target    entity.Position `json:"target"`
}

// Outcome is what a command produced, plus the match state after it.
type Outcome struct {
	Match  entity.MatchSnapshot `json:"match"`
	Ship   *entity.Ship         `json:"ship,omitempty"`
	Result *entity.ShotResult   `json:"result,omitempty"`
}

func (that Direction) offset(spaces int) (int, int, bool) {
	switch that {
	case DirectionUp:
		return -spaces, 0, true
	case DirectionDown:
		return spaces, 0, true
	case DirectionLeft:
		return 0, -spaces, true
	case DirectionRight:
		return 0, spaces, true
	default:
		return 0, 0, false
	}
}
