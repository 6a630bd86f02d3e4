package game

// ScoreAtRow sums the values of the cards side owns in row. Rows outside the
// board score 0.
func (m *Model) ScoreAtRow(row int, side Side) int {
	if row < 0 || row >= m.board.Rows() {
		return 0
	}
	total := 0
	for _, cell := range m.board.cells[row] {
		if cell.hasCard && cell.owner == side {
			total += cell.card.Value()
		}
	}
	return total
}

// CurrentScore sums side's row scores over the rows it strictly leads. Tied
// and lost rows count for nothing.
func (m *Model) CurrentScore(side Side) int {
	total := 0
	for row := 0; row < m.board.Rows(); row++ {
		own := m.ScoreAtRow(row, side)
		if own > m.ScoreAtRow(row, side.Opponent()) {
			total += own
		}
	}
	return total
}

// DetermineWinner returns the outcome of a finished game. It does not change
// the game and returns the same result on every call.
func (m *Model) DetermineWinner() (Phase, error) {
	if !m.IsGameOver() {
		return m.phase, ErrGameNotOver
	}
	return m.outcome(), nil
}

// outcome compares the two current scores.
func (m *Model) outcome() Phase {
	red, blue := m.CurrentScore(Red), m.CurrentScore(Blue)
	switch {
	case red > blue:
		return RedWins
	case blue > red:
		return BlueWins
	default:
		return Tie
	}
}
