package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/ntictactoe-backend/internal/apperror"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates a waiting game with an empty board", func(t *testing.T) {
		// When: creating a 3x3 private game
		game := NewGame("123", PrivateType, 3)

		// Then: the board carries nine empty cells and X opens
		require.Len(t, game.Board, 9)
		for _, cell := range game.Board {
			assert.Equal(t, EmptyCell, cell)
		}

		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, StatusWaiting, game.Status)
		assert.Equal(t, PrivateType, game.Type)
		assert.Empty(t, game.Winner)
	})

	t.Run("Board grows with the requested size", func(t *testing.T) {
		// When: creating a 4x4 public game
		game := NewGame("456", PublicType, 4)

		// Then: the board carries sixteen cells
		assert.Len(t, game.Board, 16)
		assert.Equal(t, 4, game.Size)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is waiting
		isWaiting := game.IsWaiting()

		// Then: it should return true
		assert.True(t, isWaiting)
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameIsNotStarted
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrUnknownGameStatus
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: The game state should reflect the turn and player turn should switch
		expectedGame := &Game{
			ID:      "123",
			Size:    3,
			Board:   []string{PlayerX, "", "", "", "", "", "", "", ""},
			Turn:    PlayerO,
			Winner:  "",
			Status:  StatusOngoing,
			Players: nil,
			Type:    PrivateType,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// When: Player O tries to make a move to the same cell
		err = game.MakeTurn(PlayerO, 0)

		// Then: An ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: The game state should remain unchanged
		assert.Equal(t, PlayerX, game.Board[0])
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// And: The board should remain untouched
		assert.Equal(t, EmptyCell, game.Board[1])
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Error on Invalid Cell Index (Greater than Range)", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing

		// When: An invalid cell index is passed (greater than the range)
		err := game.MakeTurn(PlayerX, 20)

		// Then: An ErrInvalidCell error should be returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Error on Invalid Cell Index (Negative)", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing

		// When: A negative cell index is passed
		err := game.MakeTurn(PlayerX, -1)

		// Then: An ErrInvalidCell error should be returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Cell Range Follows the Board Size", func(t *testing.T) {
		// Given: A 4x4 game, where cell 9 is a legal square
		game := NewGame("456", PrivateType, 4)
		game.Status = StatusOngoing

		// When: Player X plays cell 9
		err := game.MakeTurn(PlayerX, 9)

		// Then: The turn should go through
		require.NoError(t, err)
		assert.Equal(t, PlayerX, game.Board[9])
	})

	t.Run("Winning Turn Finishes the Game", func(t *testing.T) {
		// Given: An ongoing game
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing

		// When: Player X completes the top row while Player O answers elsewhere
		turns := []struct {
			mark string
			cell int
		}{
			{PlayerX, 0}, {PlayerO, 3},
			{PlayerX, 1}, {PlayerO, 4},
			{PlayerX, 2},
		}
		for _, turn := range turns {
			require.NoError(t, game.MakeTurn(turn.mark, turn.cell))
		}

		// Then: The game is finished with Player X as the winner and the line recorded
		expectedGame := &Game{
			ID:          "123",
			Size:        3,
			Board:       []string{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO, "", "", "", ""},
			Turn:        "",
			Winner:      PlayerX,
			Status:      StatusFinished,
			WinningLine: []int{0, 1, 2},
			Players:     nil,
			Type:        PrivateType,
		}

		require.Equal(t, expectedGame, game)

		// And: Nobody can move anymore
		assert.ErrorIs(t, game.MakeTurn(PlayerO, 5), apperror.ErrNotYourTurn)
	})

	t.Run("Dead Position Ends in a Tie", func(t *testing.T) {
		// Given: An ongoing game
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing

		// When: eight turns leave no line either player could still complete
		turns := []struct {
			mark string
			cell int
		}{
			{PlayerX, 0}, {PlayerO, 1},
			{PlayerX, 4}, {PlayerO, 3},
			{PlayerX, 5}, {PlayerO, 6},
			{PlayerX, 7}, {PlayerO, 8},
		}
		for _, turn := range turns {
			require.NoError(t, game.MakeTurn(turn.mark, turn.cell))
		}

		// Then: The game ties with a cell still open
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Empty(t, game.Turn)
		assert.Equal(t, EmptyCell, game.Board[2])
		assert.Empty(t, game.WinningLine)
	})

	t.Run("Full Board Ends in a Tie", func(t *testing.T) {
		// Given: An ongoing game
		game := NewGame("123", PrivateType, 3)
		game.Status = StatusOngoing

		// When: nine turns fill the board without a winner
		turns := []struct {
			mark string
			cell int
		}{
			{PlayerX, 0}, {PlayerO, 1},
			{PlayerX, 2}, {PlayerO, 4},
			{PlayerX, 3}, {PlayerO, 5},
			{PlayerX, 8}, {PlayerO, 6},
			{PlayerX, 7},
		}
		for _, turn := range turns {
			require.NoError(t, game.MakeTurn(turn.mark, turn.cell))
		}

		// Then: The game ties with every cell played
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, 9, game.MovesPlayed())
	})
}

func TestGame_State(t *testing.T) {
	t.Run("Returns the opening position for an empty board", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame("123", PrivateType, 3)

		// When: rebuilding the engine position
		state, err := game.State()

		// Then: X is to move and nothing is decided
		require.NoError(t, err)
		assert.Equal(t, PlayerX, state.Turn().Marker())
		assert.True(t, state.Outcome().IsUndecided())
	})

	t.Run("Recovers the turn from the marks", func(t *testing.T) {
		// Given: a stored board with three marks on it
		game := NewGame("123", PrivateType, 3)
		game.Board = []string{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}
		game.Turn = PlayerO

		// When: rebuilding the engine position
		state, err := game.State()

		// Then: the engine agrees that O is to move
		require.NoError(t, err)
		assert.Equal(t, PlayerO, state.Turn().Marker())
		assert.Equal(t, PlayerX, state.PieceAt(1, 1))
	})

	t.Run("Returns ErrMalformedBoard on a wrong cell count", func(t *testing.T) {
		// Given: a board with a missing cell
		game := NewGame("123", PrivateType, 3)
		game.Board = game.Board[:8]

		// When: rebuilding the engine position
		_, err := game.State()

		// Then: the board is rejected
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("Returns ErrMalformedBoard on an unknown token", func(t *testing.T) {
		// Given: a board with a stray token
		game := NewGame("123", PrivateType, 3)
		game.Board[4] = "Z"

		// When: rebuilding the engine position
		_, err := game.State()

		// Then: the board is rejected, naming the token
		require.ErrorIs(t, err, ErrMalformedBoard)
		assert.Contains(t, err.Error(), "Z")
	})

	t.Run("Returns ErrMalformedBoard on an impossible mark balance", func(t *testing.T) {
		// Given: a board where X somehow moved twice in a row
		game := NewGame("123", PrivateType, 3)
		game.Board[0] = PlayerX
		game.Board[1] = PlayerX

		// When: rebuilding the engine position
		_, err := game.State()

		// Then: the board is rejected
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("Returns ErrMalformedBoard when the stored turn contradicts the marks", func(t *testing.T) {
		// Given: one X on the board but the record claims X moves again
		game := NewGame("123", PrivateType, 3)
		game.Board[0] = PlayerX
		game.Turn = PlayerX

		// When: rebuilding the engine position
		_, err := game.State()

		// Then: the board is rejected
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("Returns ErrMalformedBoard when two completed lines cannot both be real", func(t *testing.T) {
		// Given: a board where play would have stopped after the first line
		game := NewGame("123", PrivateType, 3)
		game.Board = []string{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, PlayerO,
			EmptyCell, EmptyCell, EmptyCell,
		}
		game.Turn = ""

		// When: rebuilding the engine position
		_, err := game.State()

		// Then: the board is rejected
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("Accepts a won board whose replay passes through the win early", func(t *testing.T) {
		// Given: X won the top row with a fourth mark at (2,0); the
		// row-major replay completes the row before placing that mark
		game := NewGame("123", PrivateType, 3)
		game.Board = []string{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			PlayerX, PlayerO, EmptyCell,
		}
		game.Turn = ""

		// When: rebuilding the engine position
		state, err := game.State()

		// Then: the position is legal and decided for X
		require.NoError(t, err)
		assert.True(t, state.Outcome().IsWin())
		assert.Equal(t, PlayerX, state.Outcome().Winner.Marker())
	})

	t.Run("Returns ErrMalformedBoard when play continued past the winning line", func(t *testing.T) {
		// Given: X completed the top row yet O holds as many marks as X
		game := NewGame("123", PrivateType, 3)
		game.Board = []string{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		}
		game.Turn = ""

		// When: rebuilding the engine position
		_, err := game.State()

		// Then: the board is rejected
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("Returns ErrMalformedBoard when the winner did not move last", func(t *testing.T) {
		// Given: O completed the middle row yet X holds the extra mark
		game := NewGame("123", PrivateType, 3)
		game.Board = []string{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, PlayerO,
			PlayerX, EmptyCell, PlayerX,
		}
		game.Turn = ""

		// When: rebuilding the engine position
		_, err := game.State()

		// Then: the board is rejected
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})
}

func TestGame_MovesPlayed(t *testing.T) {
	t.Run("Counts the marks on the board", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame("123", PrivateType, 3)

		// Then: an empty board counts zero moves
		assert.Equal(t, 0, game.MovesPlayed())

		// When: two marks land on the board
		game.Board[0] = PlayerX
		game.Board[8] = PlayerO

		// Then: both are counted
		assert.Equal(t, 2, game.MovesPlayed())
	})
}

func TestGame_GetRandomMarks(t *testing.T) {
	t.Run("Assigns one mark to each side", func(t *testing.T) {
		// Given: a game against the bot
		game := NewGame("123", WithBotType, 3)

		// When: dealing the marks
		playerMark, botMark := game.GetRandomMarks()

		// Then: the sides hold different marks, both of them real
		assert.NotEqual(t, playerMark, botMark)
		assert.Contains(t, []string{PlayerX, PlayerO}, playerMark)
		assert.Contains(t, []string{PlayerX, PlayerO}, botMark)
	})
}
