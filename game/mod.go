package game

// Side identifies one of the two players. Ownership of pawns and cards on the
// board is always expressed as a Side, never by comparing player names.
type Side int

const (
	Red Side = iota
	Blue
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Red {
		return Blue
	}
	return Red
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Listener receives turn and game-over notifications from a Model.
//
// Notifications are delivered synchronously from inside StartGame, PlaceCard
// and PassTurn, after the model has committed the new state. OnMyTurn may call
// PlaceCard or PassTurn on the same model; that nested call runs to completion,
// including every notification it triggers, before the outer call returns. A
// fully automated game therefore plays out inside the call that starts it.
// Listeners must not assume the outer mutation has returned when they are
// notified, and must not cache state across a call they make into the model.
type Listener interface {
	// Side is the side this listener plays. OnMyTurn is only delivered to
	// listeners of the side whose turn has just begun.
	Side() Side
	OnMyTurn()
	// OnGameOver is delivered once to every listener with a human-readable
	// outcome.
	OnGameOver(message string)
}

// MoveEvent describes a committed move. It is passed to the hook installed
// with WithMoveHook before any listener is notified of the next turn.
type MoveEvent struct {
	Turn      int // 1-based count of moves played in the game
	Side      Side
	Move      Move
	RedScore  int
	BlueScore int
}
