package game

import "fmt"

// Move is a strategy's decision: either a pass or placing a card at a cell.
type Move struct {
	pass bool
	card Card
	row  int
	col  int
}

// Pass returns a pass move.
func Pass() Move {
	return Move{pass: true, row: -1, col: -1}
}

// Place returns a move placing card at (row, col).
func Place(card Card, row, col int) Move {
	return Move{card: card, row: row, col: col}
}

func (m Move) IsPass() bool {
	return m.pass
}

func (m Move) Card() Card {
	return m.card
}

func (m Move) Row() int {
	return m.row
}

func (m Move) Col() int {
	return m.col
}

func (m Move) String() string {
	if m.pass {
		return "pass"
	}
	return fmt.Sprintf("place %s at (%d,%d)", m.card.Name(), m.row, m.col)
}
