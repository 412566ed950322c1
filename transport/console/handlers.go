package console

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
)

const actionOpponent = "game:opponent"

func (that *Server) handleNewGame(msg *Message, writer *bufio.Writer) error {
	return that.execute(writer, msg.Action, usecase.Command{Kind: usecase.CommandNew})
}

func (that *Server) handleStartGame(msg *Message, writer *bufio.Writer) error {
	return that.execute(writer, msg.Action, usecase.Command{Kind: usecase.CommandStart})
}

func (that *Server) handleGameStatus(msg *Message, writer *bufio.Writer) error {
	return that.execute(writer, msg.Action, usecase.Command{Kind: usecase.CommandStatus})
}

func (that *Server) handleShipRandom(msg *Message, writer *bufio.Writer) error {
	return that.execute(writer, msg.Action, usecase.Command{Kind: usecase.CommandRandom})
}

func (that *Server) handleShipReset(msg *Message, writer *bufio.Writer) error {
	return that.execute(writer, msg.Action, usecase.Command{Kind: usecase.CommandReset})
}

func (that *Server) handleShipDeploy(msg *Message, writer *bufio.Writer) error {
	payload, err := that.decodeShipPayload(msg, writer)
	if err != nil || payload == nil {
		return err
	}

	return that.execute(writer, msg.Action, usecase.Command{
		Kind:     usecase.CommandDeploy,
		ShipType: payload.Ship,
		Origin:   payload.Position(),
		Vertical: payload.Vertical,
	})
}

func (that *Server) handleShipPlace(msg *Message, writer *bufio.Writer) error {
	payload, err := that.decodeShipPayload(msg, writer)
	if err != nil || payload == nil {
		return err
	}

	return that.execute(writer, msg.Action, usecase.Command{Kind: usecase.CommandPlace, ShipType: payload.Ship})
}

func (that *Server) handleShipMove(msg *Message, writer *bufio.Writer) error {
	payload, err := that.decodeShipPayload(msg, writer)
	if err != nil || payload == nil {
		return err
	}

	return that.execute(writer, msg.Action, usecase.Command{
		Kind:      usecase.CommandMove,
		ShipType:  payload.Ship,
		Direction: usecase.Direction(payload.Direction),
		Spaces:    payload.Spaces,
	})
}

func (that *Server) handleShipRotate(msg *Message, writer *bufio.Writer) error {
	payload, err := that.decodeShipPayload(msg, writer)
	if err != nil || payload == nil {
		return err
	}

	return that.execute(writer, msg.Action, usecase.Command{Kind: usecase.CommandRotate, ShipType: payload.Ship})
}

// handleGameFire resolves the player's shot and, when the opponent is to move, its answer.
func (that *Server) handleGameFire(msg *Message, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleGameFire")

	payload, err := that.decodePayload(msg, writer)
	if err != nil || payload == nil {
		return err
	}

	outcome, err := that.uSession.Execute(usecase.Command{Kind: usecase.CommandFire, Target: payload.Position()})
	if err != nil {
		return that.sendErrorResponse(writer, msg.Action, err)
	}

	if err = that.sendOutcome(writer, msg.Action, outcome); err != nil {
		return err
	}

	if outcome.Match.Phase != entity.PhasePlaying || outcome.Match.ActiveTurn != entity.SideOpponent {
		return nil
	}

	outcome, err = that.uSession.Execute(usecase.Command{Kind: usecase.CommandOpponent})
	if err != nil {
		if sendErr := that.sendErrorResponse(writer, actionOpponent, err); sendErr != nil {
			log.Error("failed to send error response", "error", sendErr)
		}

		return fmt.Errorf("opponent turn failed: %w", err)
	}

	return that.sendOutcome(writer, actionOpponent, outcome)
}

func (that *Server) execute(writer *bufio.Writer, action string, cmd usecase.Command) error {
	outcome, err := that.uSession.Execute(cmd)
	if err != nil {
		return that.sendErrorResponse(writer, action, err)
	}

	return that.sendOutcome(writer, action, outcome)
}

func (that *Server) sendOutcome(writer *bufio.Writer, action string, outcome usecase.Outcome) error {
	payload := ResponsePayload{
		Match:  maskMatchDetails(outcome.Match),
		Ship:   outcome.Ship,
		Result: outcome.Result,
	}

	if err := that.sendMessage(writer, action, payload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// decodePayload returns nil without an error when the client was already told the payload is bad.
func (that *Server) decodePayload(msg *Message, writer *bufio.Writer) (*Payload, error) {
	if len(msg.Payload) == 0 {
		return nil, that.sendErrorResponse(writer, msg.Action, ErrPayloadRequired)
	}

	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, that.sendErrorResponse(writer, msg.Action, fmt.Errorf("failed to unmarshal payload: %w", err))
	}

	return &payload, nil
}

func (that *Server) decodeShipPayload(msg *Message, writer *bufio.Writer) (*Payload, error) {
	payload, err := that.decodePayload(msg, writer)
	if err != nil || payload == nil {
		return nil, err
	}

	if payload.Ship == "" {
		return nil, that.sendErrorResponse(writer, msg.Action, fmt.Errorf("%w: ship", ErrPayloadRequired))
	}

	return payload, nil
}
