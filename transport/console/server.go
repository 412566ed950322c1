package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrPayloadRequired = errors.New("payload is required")
)

type uSession interface {
	Execute(cmd usecase.Command) (usecase.Outcome, error)
}

type Server struct {
	logger   *slog.Logger
	uSession uSession

	handlers map[string]func(message *Message, writer *bufio.Writer) error
}

func New(logger *slog.Logger, uSession uSession) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		uSession: uSession,

		handlers: make(map[string]func(*Message, *bufio.Writer) error),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:start"] = server.handleStartGame
	server.handlers["game:status"] = server.handleGameStatus
	server.handlers["game:fire"] = server.handleGameFire
	server.handlers["ship:deploy"] = server.handleShipDeploy
	server.handlers["ship:place"] = server.handleShipPlace
	server.handlers["ship:move"] = server.handleShipMove
	server.handlers["ship:rotate"] = server.handleShipRotate
	server.handlers["ship:random"] = server.handleShipRandom
	server.handlers["ship:reset"] = server.handleShipReset

	return server
}

// Start reads one JSON message per line from reader and answers on writer until the input
// ends, the context is canceled or the opponent runs out of shots.
func (that *Server) Start(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	bufw := bufio.NewWriter(writer)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("input closed, stopping console")

				return nil
			}

			if err := that.handleLine(line, bufw); err != nil {
				return err
			}
		}
	}
}

// handleLine processes a single request. Only errors that end the session are returned.
func (that *Server) handleLine(line string, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleLine")

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var message Message
	if err := json.Unmarshal([]byte(line), &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		return that.sendErrorResponse(writer, "", fmt.Errorf("malformed message: %w", err))
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action", "action", message.Action)
		return that.sendErrorResponse(writer, message.Action, fmt.Errorf("%w: %q", ErrUnknownAction, message.Action))
	}

	err := handler(&message, writer)
	if errors.Is(err, apperror.ErrSequencerExhausted) {
		log.Error("opponent ran out of shots", "error", err)
		return fmt.Errorf("failed to process %s: %w", message.Action, err)
	}

	if err != nil {
		log.Error("error processing message", "action", message.Action, "error", err)
	}

	return nil
}
