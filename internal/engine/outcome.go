package engine

import "fmt"

// Line - the coordinates of one win line, exactly size moves long.
type Line []Move

// Result - the kind of a verdict.
type Result int

const (
	ResultUndecided Result = iota
	ResultDraw
	ResultWin
)

// Outcome - the verdict for a line or for a whole position. The zero
// value is the undecided outcome. Winner and Line carry data only for
// ResultWin; a draw or an open game has nothing to report beyond its
// kind.
type Outcome struct {
	Result Result
	Winner Player
	Line   Line
}

// Undecided - play continues.
func Undecided() Outcome {
	return Outcome{}
}

// Draw - nobody can ever win.
func Draw() Outcome {
	return Outcome{Result: ResultDraw}
}

// Win - decided in winner's favor through the given completed line.
func Win(winner Player, line Line) Outcome {
	return Outcome{Result: ResultWin, Winner: winner, Line: line}
}

func (that Outcome) IsUndecided() bool {
	return that.Result == ResultUndecided
}

func (that Outcome) IsDraw() bool {
	return that.Result == ResultDraw
}

func (that Outcome) IsWin() bool {
	return that.Result == ResultWin
}

// Decided - reports whether play is over, by win or by draw.
func (that Outcome) Decided() bool {
	return that.Result != ResultUndecided
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWin:
		return fmt.Sprintf("win %s", that.Winner)
	case ResultDraw:
		return "draw"
	default:
		return "undecided"
	}
}
