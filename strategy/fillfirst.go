package strategy

import "pawnsboard/game"

// FillFirst plays the first legal placement it finds, taking cards in hand
// order and cells in row-major order.
type FillFirst struct{}

func (FillFirst) ChooseMove(view game.View, p *game.Player) game.Move {
	side := p.Side()
	for _, card := range view.PlayerHand(p) {
		for row := 0; row < view.Rows(); row++ {
			for col := 0; col < view.Cols(); col++ {
				if view.IsMoveLegal(row, col, card, side) {
					return game.Place(card, row, col)
				}
			}
		}
	}
	return game.Pass()
}

func (FillFirst) String() string {
	return FILL_FIRST
}
