// Package player connects the people and strategies playing a game to the
// game engine. A controller listens for its turn and answers with a move.
package player

import (
	"errors"

	"pawnsboard/game"
)

var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrNoSelection = errors.New("must select card and cell before confirming")
)

// Engine is the mutation surface a controller drives. *game.Model satisfies
// it.
type Engine interface {
	View() game.View
	PlaceCard(row, col int, card game.Card) error
	PassTurn() error
	AddListener(l game.Listener)
}

type Controller interface {
	game.Listener
	Player() *game.Player
	// IsMachine reports whether moves are chosen without human input.
	IsMachine() bool
	// Result is the game-over message, or "" while the game is running.
	Result() string
}

var (
	_ Engine     = (*game.Model)(nil)
	_ Controller = (*MachineController)(nil)
	_ Controller = (*HumanController)(nil)
)
