package game

import "fmt"

// CheckMove returns nil if side may place card at (row, col), or the reason
// it may not. It does not check the hand; PlaceCard does.
func (m *Model) CheckMove(row, col int, card Card, side Side) error {
	cell, err := m.board.Cell(row, col)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalPlacement, err)
	}
	switch {
	case cell.HasCard():
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	case !cell.HasPawns():
		return fmt.Errorf("%w: (%d,%d)", ErrNoPawns, row, col)
	case !cell.OwnedBy(side):
		return fmt.Errorf("%w: (%d,%d)", ErrNotOwner, row, col)
	case cell.PawnCount() < card.Cost():
		return fmt.Errorf("%w: (%d,%d) has %d, %s costs %d", ErrInsufficientPawns, row, col, cell.PawnCount(), card.Name(), card.Cost())
	}
	return nil
}

// IsMoveLegal reports whether side may place card at (row, col): the cell
// must hold at least card.Cost() pawns of side and no card.
func (m *Model) IsMoveLegal(row, col int, card Card, side Side) bool {
	return m.CheckMove(row, col, card, side) == nil
}

func (m *Model) OutOfBounds(row, col int) bool {
	return m.board.OutOfBounds(row, col)
}

// HasLegalMove reports whether any card in side's hand can be placed
// anywhere. The game does not end on its own when this is false; a side with
// no legal move has to pass.
func (m *Model) HasLegalMove(side Side) bool {
	for _, card := range m.Player(side).hand {
		for row := 0; row < m.board.Rows(); row++ {
			for col := 0; col < m.board.Cols(); col++ {
				if m.IsMoveLegal(row, col, card, side) {
					return true
				}
			}
		}
	}
	return false
}
