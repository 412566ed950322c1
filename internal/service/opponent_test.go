package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedMatch(t *testing.T) *entity.Match {
	t.Helper()

	rules := entity.DefaultRules()
	rules.AutoDeploy = true

	match, err := entity.NewMatch("m", rules, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	require.NoError(t, match.StartGame())

	return match
}

func TestOpponentService_MakeTurn(t *testing.T) {
	t.Run("Fires the next sequenced shot at the player", func(t *testing.T) {
		// Given: a running match where the player has just fired
		match := newStartedMatch(t)
		_, err := match.Fire(entity.SidePlayer, entity.NewPosition(4, 4))
		require.NoError(t, err)

		// When: the opponent takes its turn
		result, err := NewOpponentService().MakeTurn(match)

		// Then: one shot landed on the player board and the turn came back
		require.NoError(t, err)
		require.Len(t, match.PlayerBoard.Shots, 1)
		assert.Equal(t, result.Shot, match.PlayerBoard.Shots[0])
		assert.Equal(t, entity.SidePlayer, match.ActiveTurn)
		assert.Equal(t, 24, match.OpponentShotsLeft())
	})

	t.Run("Refuses to play on the player's turn", func(t *testing.T) {
		match := newStartedMatch(t)

		_, err := NewOpponentService().MakeTurn(match)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, match.PlayerBoard.Shots)
	})
}
