// Package strategy holds the deterministic move choosers used by machine
// players. A strategy only reads the game through a game.View and never
// changes it.
package strategy

import (
	"fmt"
	"strings"

	"pawnsboard/game"
)

type Strategy interface {
	// ChooseMove returns the move p should play next. It returns game.Pass()
	// when no acceptable placement exists.
	ChooseMove(view game.View, p *game.Player) game.Move
}

// Func adapts a plain function to a Strategy.
type Func func(view game.View, p *game.Player) game.Move

func (f Func) ChooseMove(view game.View, p *game.Player) game.Move {
	return f(view, p)
}

const (
	FILL_FIRST = "fill-first"
	ROW_SCORE  = "row-score"
)

// ByName resolves a strategy from its configured name. The legacy names
// "strategy1" and "strategy2" are accepted as well.
func ByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FILL_FIRST, "strategy1":
		return FillFirst{}, nil
	case ROW_SCORE, "strategy2":
		return MaximizeRowScore{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
