package game

import (
	"fmt"

	"github.com/google/uuid"
)

// View is the read-only projection of a game, safe to hand to strategies and
// renderers. No method of View changes the game, and repeated calls on an
// unchanged game return the same results.
type View interface {
	ID() uuid.UUID
	Rows() int
	Cols() int
	CellAt(row, col int) (Cell, error)
	CardAt(row, col int) (Card, error)
	BoardCopy() *Board
	RedPlayer() *Player
	BluePlayer() *Player
	Player(side Side) *Player
	PlayerHand(p *Player) []Card
	ScoreAtRow(row int, side Side) int
	CurrentScore(side Side) int
	GameState() Phase
	IsRedTurn() bool
	CurrentSide() Side
	IsGameOver() bool
	DetermineWinner() (Phase, error)
	IsMoveLegal(row, col int, card Card, side Side) bool
	CheckMove(row, col int, card Card, side Side) error
	OutOfBounds(row, col int) bool
	HasLegalMove(side Side) bool
	Turns() int
}

// readOnly exposes only the View methods of a Model.
type readOnly struct {
	View
}

func (m *Model) ID() uuid.UUID {
	return m.id
}

func (m *Model) Rows() int {
	return m.board.Rows()
}

func (m *Model) Cols() int {
	return m.board.Cols()
}

// CellAt returns a copy of the cell at (row, col).
func (m *Model) CellAt(row, col int) (Cell, error) {
	cell, err := m.board.Cell(row, col)
	if err != nil {
		return Cell{}, err
	}
	return *cell, nil
}

// CardAt returns the card placed at (row, col).
func (m *Model) CardAt(row, col int) (Card, error) {
	cell, err := m.board.Cell(row, col)
	if err != nil {
		return Card{}, err
	}
	card, ok := cell.Card()
	if !ok {
		return Card{}, fmt.Errorf("%w: (%d,%d)", ErrNoCard, row, col)
	}
	return card, nil
}

// Board returns the live board. Only the engine and its tests should use it;
// hand out BoardCopy to anyone else.
func (m *Model) Board() *Board {
	return m.board
}

func (m *Model) BoardCopy() *Board {
	return m.board.Copy()
}

func (m *Model) RedPlayer() *Player {
	return m.red
}

func (m *Model) BluePlayer() *Player {
	return m.blue
}

func (m *Model) Player(side Side) *Player {
	if side == Red {
		return m.red
	}
	return m.blue
}

// PlayerHand returns a copy of p's hand.
func (m *Model) PlayerHand(p *Player) []Card {
	return p.Hand()
}

func (m *Model) GameState() Phase {
	return m.phase
}

func (m *Model) IsRedTurn() bool {
	return m.turn == Red
}

// CurrentSide is the side to move.
func (m *Model) CurrentSide() Side {
	return m.turn
}

func (m *Model) IsGameOver() bool {
	return m.phase.IsTerminal()
}

// Turns is the number of moves committed so far.
func (m *Model) Turns() int {
	return m.moves
}
