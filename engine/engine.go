package engine

import (
	"errors"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
)

// ErrUnfinished is returned by Run when the game is still waiting for a
// human player after it has started.
var ErrUnfinished = errors.New("game is waiting for input")

type Engine interface {
	// Run plays a game to the end and reports how it went
	Run() (Result, error)
}

type Result struct {
	metrics.GameMetric
	Phase game.Phase
	Seed  uint64 // Shuffle seed, 0 if the decks were not shuffled
	Moves []metrics.MoveMetric
}

// Winner names the winning side, or "tie".
func Winner(phase game.Phase) string {
	switch phase {
	case game.RedWins:
		return game.Red.String()
	case game.BlueWins:
		return game.Blue.String()
	case game.Tie, game.Done:
		return "tie"
	default:
		return ""
	}
}
