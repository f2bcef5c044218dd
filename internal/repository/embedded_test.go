package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/engine"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_Embedded(t *testing.T) {
	t.Run("Stores a copy of the game", func(t *testing.T) {
		ctx, st := suite.NewEmbedded(t)
		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := entity.NewGame("123", entity.ModePvP)
		game.Start()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps playing on its own pointer
		require.NoError(t, game.MakeTurn(engine.PlayerX, 0))

		// Then: the stored game is unchanged until saved again
		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, engine.Board{}, stored.Board)

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
		stored, err = gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Missing and deleted games", func(t *testing.T) {
		ctx, st := suite.NewEmbedded(t)
		gameRepo := NewGameRepository(st.Storage, 0)

		_, err := gameRepo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, ErrGameNotFound)

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123", entity.ModeBot)))
		require.NoError(t, gameRepo.DeleteByID(ctx, "123"))
		require.ErrorIs(t, gameRepo.DeleteByID(ctx, "123"), ErrGameNotFound)
	})

	t.Run("Expired games are gone", func(t *testing.T) {
		// Given: a game stored with the session ttl
		ctx, st := suite.NewEmbedded(t)
		gameRepo := NewGameRepository(st.Storage, time.Minute)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123", entity.ModeBot)))
		assert.Equal(t, time.Minute, st.Embedded.TTL("game:123"))

		// When: the ttl passes
		st.Embedded.FastForward(time.Minute)

		// Then: the game is not found
		_, err := gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestPlayerRepository_Embedded(t *testing.T) {
	ctx, st := suite.NewEmbedded(t)
	playerRepo := NewPlayerRepository(st.Storage, 0)

	// Given: a stored player
	player := &entity.Player{ID: "p1", Name: "alice", Mark: engine.PlayerX, GameID: "g1"}
	require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

	// When: reading it back
	stored, err := playerRepo.GetByID(ctx, "p1")

	// Then: it matches and deleting removes it
	require.NoError(t, err)
	assert.Equal(t, player, stored)

	require.NoError(t, playerRepo.DeleteByID(ctx, "p1"))
	_, err = playerRepo.GetByID(ctx, "p1")
	require.ErrorIs(t, err, ErrPlayerNotFound)
}
