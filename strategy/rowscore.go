package strategy

import "pawnsboard/game"

// MaximizeRowScore works down the board looking for a row it does not lead
// yet and plays the first legal card that would take the lead there. Rows it
// already leads are not probed at all.
type MaximizeRowScore struct{}

func (MaximizeRowScore) ChooseMove(view game.View, p *game.Player) game.Move {
	side := p.Side()
	hand := view.PlayerHand(p)
	for row := 0; row < view.Rows(); row++ {
		own := view.ScoreAtRow(row, side)
		opponent := view.ScoreAtRow(row, side.Opponent())
		if own > opponent {
			continue
		}
		for _, card := range hand {
			for col := 0; col < view.Cols(); col++ {
				if view.IsMoveLegal(row, col, card, side) && own+card.Value() > opponent {
					return game.Place(card, row, col)
				}
			}
		}
	}
	return game.Pass()
}

func (MaximizeRowScore) String() string {
	return ROW_SCORE
}
