package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/ntictactoe-backend/internal/entity"
	"github.com/gridforge/ntictactoe-backend/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a fresh private game on a 3x3 board
	game := entity.NewGame("123", entity.PrivateType, 3)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("Returns the stored game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game on a 4x4 board with one mark placed
		game := entity.NewGame("123", entity.PrivateType, 4)
		game.Board[5] = entity.PlayerX
		game.Turn = entity.PlayerO

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, game.Status, retrievedGame.Status)
		assert.Equal(t, game.Size, retrievedGame.Size)
		assert.Equal(t, game.Board, retrievedGame.Board)
		assert.Equal(t, entity.PlayerO, retrievedGame.Turn)
	})

	t.Run("Reports a missing game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})
}

func TestGameRepository_GetWaitingPublicGame(t *testing.T) {
	t.Run("Finds the public game that is still waiting", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a private waiting game, a running public game and a waiting public game
		privateGame := entity.NewGame("PRIV1", entity.PrivateType, 3)

		runningGame := entity.NewGame("PUB1", entity.PublicType, 3)
		runningGame.Status = entity.StatusOngoing

		waitingGame := entity.NewGame("PUB2", entity.PublicType, 3)

		for _, game := range []*entity.Game{privateGame, runningGame, waitingGame} {
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
		}

		// When: GetWaitingPublicGame is called
		foundGame, err := gameRepo.GetWaitingPublicGame(ctx)

		// Then: only the waiting public game qualifies
		require.NoError(t, err)
		assert.Equal(t, waitingGame.ID, foundGame.ID)
	})

	t.Run("Reports when nobody is waiting", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: only a private game is stored
		privateGame := entity.NewGame("PRIV1", entity.PrivateType, 3)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, privateGame))

		// When: GetWaitingPublicGame is called
		_, err := gameRepo.GetWaitingPublicGame(ctx)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("Removes the stored game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored finished game
		game := entity.NewGame("123", entity.PrivateType, 3)
		game.Status = entity.StatusFinished

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("Deleting a missing game is a no-op", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: redis treats it as already deleted
		require.NoError(t, err)
	})
}
