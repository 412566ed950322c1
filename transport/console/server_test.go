package console_test

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/service"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
	mocks "github.com/rocketscienceinc/battleship-backend/mocks/console"
	"github.com/rocketscienceinc/battleship-backend/testing/suite"
	"github.com/rocketscienceinc/battleship-backend/transport/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Action  string                  `json:"action"`
	Payload console.ResponsePayload `json:"payload"`
}

func readResponses(t *testing.T, out string) []response {
	t.Helper()

	var responses []response

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var resp response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}

	require.NoError(t, scanner.Err())

	return responses
}

func input(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func playingOutcome(turn entity.Side) usecase.Outcome {
	return usecase.Outcome{
		Match: entity.MatchSnapshot{
			ID:         "match-1",
			Phase:      entity.PhasePlaying,
			ActiveTurn: turn,
			OpponentBoard: entity.BoardView{
				Owner:    entity.SideOpponent,
				GridSize: 5,
				Ships: []entity.Ship{
					{Type: "battleship", Length: 3, Health: 3, IsDeployed: true},
					{Type: "patrolBoat", Length: 2, Health: 0, IsDeployed: true},
				},
			},
		},
	}
}

func TestServer_Start(t *testing.T) {
	ctx, st := suite.New(t)

	t.Run("Fire is answered by the opponent turn", func(t *testing.T) {
		// Given: a session where the player's shot hands the turn to the opponent
		session := mocks.NewMockuSession(t)

		fired := playingOutcome(entity.SideOpponent)
		fired.Result = &entity.ShotResult{Shot: entity.Shot{Target: entity.NewPosition(1, 2)}}
		session.EXPECT().Execute(usecase.Command{Kind: usecase.CommandFire, Target: entity.NewPosition(1, 2)}).
			Return(fired, nil).Once()

		answered := playingOutcome(entity.SidePlayer)
		answered.Result = &entity.ShotResult{Shot: entity.Shot{Target: entity.NewPosition(0, 0), IsHit: true}}
		session.EXPECT().Execute(usecase.Command{Kind: usecase.CommandOpponent}).Return(answered, nil).Once()

		var out strings.Builder

		// When: the player fires
		err := console.New(st.Logger, session).Start(ctx, input(`{"action":"game:fire","payload":{"row":1,"col":2}}`), &out)

		// Then: both shots are reported in order
		require.NoError(t, err)

		responses := readResponses(t, out.String())
		require.Len(t, responses, 2)
		assert.Equal(t, "game:fire", responses[0].Action)
		assert.Equal(t, entity.NewPosition(1, 2), responses[0].Payload.Result.Shot.Target)
		assert.Equal(t, "game:opponent", responses[1].Action)
		assert.True(t, responses[1].Payload.Result.Shot.IsHit)
	})

	t.Run("Opponent ships afloat are hidden", func(t *testing.T) {
		session := mocks.NewMockuSession(t)
		session.EXPECT().Execute(usecase.Command{Kind: usecase.CommandStatus}).Return(playingOutcome(entity.SidePlayer), nil).Once()

		var out strings.Builder

		err := console.New(st.Logger, session).Start(ctx, input(`{"action":"game:status"}`), &out)
		require.NoError(t, err)

		responses := readResponses(t, out.String())
		require.Len(t, responses, 1)
		require.NotNil(t, responses[0].Payload.Match)

		ships := responses[0].Payload.Match.OpponentBoard.Ships
		require.Len(t, ships, 1)
		assert.Equal(t, "patrolBoat", ships[0].Type)
	})

	t.Run("Bad requests are reported and the loop goes on", func(t *testing.T) {
		// Given: a session that rejects a placement
		session := mocks.NewMockuSession(t)
		session.EXPECT().Execute(usecase.Command{
			Kind:     usecase.CommandDeploy,
			ShipType: "battleship",
			Origin:   entity.NewPosition(4, 4),
		}).Return(usecase.Outcome{}, apperror.ErrShipOutOfBounds).Once()

		var out strings.Builder

		// When: sending garbage, an unknown action, a missing payload and an illegal placement
		err := console.New(st.Logger, session).Start(ctx, input(
			`not json`,
			``,
			`{"action":"game:surrender"}`,
			`{"action":"ship:rotate","payload":{}}`,
			`{"action":"game:fire"}`,
			`{"action":"ship:deploy","payload":{"ship":"battleship","row":4,"col":4}}`,
		), &out)

		// Then: every one of them got an error line
		require.NoError(t, err)

		responses := readResponses(t, out.String())
		require.Len(t, responses, 5)

		for _, resp := range responses {
			assert.Equal(t, "error", resp.Action)
			assert.NotEmpty(t, resp.Payload.Error)
		}

		assert.Contains(t, responses[1].Payload.Error, console.ErrUnknownAction.Error())
		assert.Equal(t, "ship:rotate", responses[2].Payload.Request)
		assert.Equal(t, "game:fire", responses[3].Payload.Request)
		assert.Equal(t, apperror.ErrShipOutOfBounds.Error(), responses[4].Payload.Error)
	})

	t.Run("Exhausted opponent stops the loop", func(t *testing.T) {
		session := mocks.NewMockuSession(t)
		session.EXPECT().Execute(usecase.Command{Kind: usecase.CommandFire, Target: entity.NewPosition(0, 0)}).
			Return(playingOutcome(entity.SideOpponent), nil).Once()
		session.EXPECT().Execute(usecase.Command{Kind: usecase.CommandOpponent}).
			Return(usecase.Outcome{}, fmt.Errorf("failed to make opponent turn: %w", apperror.ErrSequencerExhausted)).Once()

		var out strings.Builder

		err := console.New(st.Logger, session).Start(ctx, input(
			`{"action":"game:fire","payload":{"row":0,"col":0}}`,
			`{"action":"game:status"}`,
		), &out)

		require.ErrorIs(t, err, apperror.ErrSequencerExhausted)

		responses := readResponses(t, out.String())
		require.Len(t, responses, 2)
		assert.Equal(t, "error", responses[1].Action)
		assert.Equal(t, "game:opponent", responses[1].Payload.Request)
	})

	t.Run("Canceled context stops the loop", func(t *testing.T) {
		session := mocks.NewMockuSession(t)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		reader, writer := io.Pipe()
		t.Cleanup(func() {
			_ = writer.Close()
		})

		err := console.New(st.Logger, session).Start(canceled, reader, io.Discard)

		require.NoError(t, err)
	})
}

func TestServer_FullGame(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a quick-start session, opponent ships on rows 1 and 3
	session := usecase.NewSession(st.Logger, st.Rules, st.Rand(), service.NewOpponentService())

	var out strings.Builder

	// When: playing the whole match over the console
	err := console.New(st.Logger, session).Start(ctx, input(
		`{"action":"game:new"}`,
		`{"action":"ship:rotate","payload":{"ship":"patrolBoat"}}`,
		`{"action":"game:start"}`,
		`{"action":"game:fire","payload":{"row":1,"col":0}}`,
		`{"action":"game:fire","payload":{"row":1,"col":1}}`,
		`{"action":"game:fire","payload":{"row":1,"col":2}}`,
		`{"action":"game:fire","payload":{"row":3,"col":0}}`,
		`{"action":"game:fire","payload":{"row":3,"col":1}}`,
		`{"action":"game:status"}`,
	), &out)

	// Then: the player won and the opponent answered every shot but the last
	require.NoError(t, err)

	responses := readResponses(t, out.String())
	require.Len(t, responses, 3+5+4+1)

	opponentTurns := 0
	for _, resp := range responses {
		require.NotEqual(t, "error", resp.Action, resp.Payload.Error)

		if resp.Action == "game:opponent" {
			opponentTurns++
		}
	}

	assert.Equal(t, 4, opponentTurns)

	last := responses[len(responses)-1]
	require.NotNil(t, last.Payload.Match)
	assert.Equal(t, entity.PhaseEnded, last.Payload.Match.Phase)
	assert.Equal(t, entity.SidePlayer, last.Payload.Match.Winner)
	assert.Len(t, last.Payload.Match.OpponentBoard.Ships, 2)
}
