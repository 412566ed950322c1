package console

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

const actionError = "error"

// Message is one line of the protocol: an action and its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the arguments of every request action.
type Payload struct {
	Ship      string `json:"ship,omitempty"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Vertical  bool   `json:"vertical,omitempty"`
	Direction string `json:"direction,omitempty"`
	Spaces    int    `json:"spaces,omitempty"`
}

func (that Payload) Position() entity.Position {
	return entity.NewPosition(that.Row, that.Col)
}

type ResponsePayload struct {
	Match   *entity.MatchSnapshot `json:"match,omitempty"`
	Ship    *entity.Ship          `json:"ship,omitempty"`
	Result  *entity.ShotResult    `json:"result,omitempty"`
	Request string                `json:"request,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func (that *Server) sendMessage(writer *bufio.Writer, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if _, err = writer.Write(append(responseBytes, '\n')); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(writer *bufio.Writer, action string, cause error) error {
	return that.sendMessage(writer, actionError, ResponsePayload{Request: action, Error: cause.Error()})
}

// maskMatchDetails hides the opponent's afloat ships while the match is still running.
func maskMatchDetails(snapshot entity.MatchSnapshot) *entity.MatchSnapshot {
	if snapshot.Phase == entity.PhaseEnded {
		return &snapshot
	}

	visible := make([]entity.Ship, 0, len(snapshot.OpponentBoard.Ships))
	for _, ship := range snapshot.OpponentBoard.Ships {
		if ship.IsSunk() {
			visible = append(visible, ship)
		}
	}

	snapshot.OpponentBoard.Ships = visible

	return &snapshot
}
