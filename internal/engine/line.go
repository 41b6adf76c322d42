package engine

// Lines - all win lines of a size by size board in a fixed order:
// rows top to bottom, then columns left to right, then the main
// diagonal, then the anti-diagonal. Always 2*size+2 lines of size
// cells each. On a 1x1 board all four lines collapse onto the single
// cell, which is correct: one mark completes every line at once.
func Lines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make(Line, 0, size)
		for col := 0; col < size; col++ {
			line = append(line, NewMove(row, col))
		}
		lines = append(lines, line)
	}

	for col := 0; col < size; col++ {
		line := make(Line, 0, size)
		for row := 0; row < size; row++ {
			line = append(line, NewMove(row, col))
		}
		lines = append(lines, line)
	}

	diagonal := make(Line, 0, size)
	antidiagonal := make(Line, 0, size)
	for i := 0; i < size; i++ {
		diagonal = append(diagonal, NewMove(i, i))
		antidiagonal = append(antidiagonal, NewMove(i, size-1-i))
	}

	return append(lines, diagonal, antidiagonal)
}

// CheckLine - judges a single line: a win when one player holds every
// cell of it, a draw when both players appear in it (the line is dead
// for good), otherwise undecided. Win is ranked above draw, so a
// completed line never reads as dead.
func CheckLine(state GameState, line Line) Outcome {
	var xs, os int

	for _, move := range line {
		switch state.board.at(move.Row, move.Col) {
		case CellX:
			xs++
		case CellO:
			os++
		case CellEmpty:
		}
	}

	switch size := len(line); {
	case xs == size:
		return Win(PlayerX, line)
	case os == size:
		return Win(PlayerO, line)
	case xs > 0 && os > 0:
		return Draw()
	default:
		return Undecided()
	}
}
