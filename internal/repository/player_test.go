package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/ntictactoe-backend/internal/entity"
	"github.com/gridforge/ntictactoe-backend/testing/suite"
)

func TestPlayerRepository_CreateOrUpdate(t *testing.T) {
	t.Run("Stores a player", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)

		// Given: a player with ID
		player := entity.NewPlayer("123")

		// When: CreateOrUpdate is called
		err := playerRepo.CreateOrUpdate(ctx, player)

		// Then: no error should be returned, and player is stored
		require.NoError(t, err)
	})

	t.Run("Stored players expire with the session", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)

		// Given: a stored player
		player := entity.NewPlayer("ttl-player")
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

		// When: asking redis for the key TTL
		ttl, err := st.Storage.TTL(ctx, "player:ttl-player").Result()

		// Then: the key carries the session TTL
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, playerTTL)
	})
}

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Run("Returns the stored player", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)

		// Given: a player seated in a game as X
		player := entity.NewPlayer("123")
		player.GameID = "G1"
		player.Mark = entity.PlayerX

		err := playerRepo.CreateOrUpdate(ctx, player)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, player.ID)

		// Then: the retrieved player should match the saved player
		require.NoError(t, err)
		assert.Equal(t, player.ID, retrievedPlayer.ID)
		assert.Equal(t, "G1", retrievedPlayer.GameID)
		assert.Equal(t, entity.PlayerX, retrievedPlayer.Mark)
	})

	t.Run("Reports a missing player", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, "9999999")

		// Then: an ErrPlayerNotFound error should be returned
		require.ErrorIs(t, err, ErrPlayerNotFound)
		assert.Empty(t, retrievedPlayer.ID)
	})
}
