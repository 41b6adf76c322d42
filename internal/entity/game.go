package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gridforge/ntictactoe-backend/internal/apperror"
	"github.com/gridforge/ntictactoe-backend/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = engine.MarkerX
	PlayerO   = engine.MarkerO
	PlayerTie = "-"

	EmptyCell = engine.MarkerEmpty
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

// MaxPlayers - a game seats exactly two marks.
const MaxPlayers = 2

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrMalformedBoard    = errors.New("malformed board")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

// Game - one stored session. The board is kept in wire form: a flat
// row-major slice of rendering tokens, cell index row*Size+col. All
// rules questions go through the engine; this type only carries state
// between storage, transports and the engine.
type Game struct {
	ID          string    `json:"id"`
	Size        int       `json:"size"`
	Board       []string  `json:"board"`
	Winner      string    `json:"winner"`
	Status      string    `json:"status"`
	Turn        string    `json:"player_turn"`
	WinningLine []int     `json:"winning_line,omitempty"`
	Players     []*Player `json:"players,omitempty"`
	Type        string    `json:"type,omitempty"`
}

// NewGame - a waiting game on an empty size by size board, X to move.
func NewGame(id, gameType string, size int) *Game {
	board := make([]string, size*size)
	for i := range board {
		board[i] = EmptyCell
	}

	return &Game{
		ID:     id,
		Size:   size,
		Board:  board,
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// State - rebuilds the engine position from the wire board. The board
// is replayed through the engine move by move, so anything the engine
// would never produce (wrong cell count, unknown tokens, impossible
// mark balance, wins no move sequence reaches, a stored turn that
// contradicts the marks) comes back as ErrMalformedBoard.
func (that *Game) State() (engine.GameState, error) {
	if that.Size < 1 || len(that.Board) != that.Size*that.Size {
		return engine.GameState{}, fmt.Errorf("%w: %d cells for size %d", ErrMalformedBoard, len(that.Board), that.Size)
	}

	var xMoves, oMoves []engine.Move
	for i, marker := range that.Board {
		move := engine.NewMove(i/that.Size, i%that.Size)
		switch marker {
		case PlayerX:
			xMoves = append(xMoves, move)
		case PlayerO:
			oMoves = append(oMoves, move)
		case EmptyCell:
		default:
			return engine.GameState{}, fmt.Errorf("%w: unknown token %q at cell %d", ErrMalformedBoard, marker, i)
		}
	}

	if len(xMoves) != len(oMoves) && len(xMoves) != len(oMoves)+1 {
		return engine.GameState{}, fmt.Errorf("%w: %d X marks against %d O marks", ErrMalformedBoard, len(xMoves), len(oMoves))
	}

	state := engine.NewGame(engine.PlayerX, that.Size)
	for i := 0; i < len(xMoves)+len(oMoves); i++ {
		move := xMoves[i/2]
		if i%2 == 1 {
			move = oMoves[i/2]
		}

		var err error
		if state, err = state.ApplyMove(move); err != nil {
			return engine.GameState{}, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
		}
	}

	var xLine, oLine bool
	for _, line := range engine.Lines(that.Size) {
		verdict := engine.CheckLine(state, line)
		if !verdict.IsWin() {
			continue
		}

		if verdict.Winner == engine.PlayerX {
			xLine = true
		} else {
			oLine = true
		}
	}

	// A win ends the game on the winner's closing move: an X win carries
	// one extra X mark, an O win carries even counts. Two winners, or a
	// winner without the closing move, cannot come out of real play.
	switch {
	case xLine && oLine:
		return engine.GameState{}, fmt.Errorf("%w: both players hold a completed line", ErrMalformedBoard)
	case xLine && len(xMoves) != len(oMoves)+1:
		return engine.GameState{}, fmt.Errorf("%w: X holds a completed line without the closing move", ErrMalformedBoard)
	case oLine && len(xMoves) != len(oMoves):
		return engine.GameState{}, fmt.Errorf("%w: O holds a completed line without the closing move", ErrMalformedBoard)
	}

	if that.Turn != EmptyCell && that.Turn != state.Turn().Marker() {
		return engine.GameState{}, fmt.Errorf("%w: stored turn %q does not match the marks", ErrMalformedBoard, that.Turn)
	}

	return state, nil
}

// MakeTurn - plays playerMark into the flat cell index. Validation
// order is range, then turn ownership, then occupancy; the engine
// performs the actual transition and delivers the verdict.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	state, err := that.State()
	if err != nil {
		return fmt.Errorf("failed to rebuild position: %w", err)
	}

	next, err := state.ApplyMove(engine.NewMove(cell/that.Size, cell%that.Size))
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.applyState(next)
	that.updateFromOutcome(next.Outcome())

	return nil
}

// applyState - copies the engine position back into wire form.
func (that *Game) applyState(state engine.GameState) {
	for row := 0; row < state.Size(); row++ {
		for col := 0; col < state.Size(); col++ {
			that.Board[row*that.Size+col] = state.PieceAt(row, col)
		}
	}

	that.Turn = state.Turn().Marker()
}

// updateFromOutcome - maps the engine verdict onto session fields. A
// draw is whatever the engine says it is, which can arrive before the
// board fills up.
func (that *Game) updateFromOutcome(outcome engine.Outcome) {
	switch {
	case outcome.IsWin():
		that.Winner = outcome.Winner.Marker()
		that.Status = StatusFinished
		that.Turn = ""
		that.WinningLine = flattenLine(outcome.Line, that.Size)
	case outcome.IsDraw():
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Status = StatusOngoing
	}
}

func flattenLine(line engine.Line, size int) []int {
	cells := make([]int, 0, len(line))
	for _, move := range line {
		cells = append(cells, move.Row*size+move.Col)
	}

	return cells
}

// MovesPlayed - how many marks are on the board.
func (that *Game) MovesPlayed() int {
	played := 0
	for _, cell := range that.Board {
		if cell != EmptyCell {
			played++
		}
	}

	return played
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // marks carry no secrets
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
