package game

import (
	"errors"
	"fmt"
)

// Phase violations: the operation is not allowed in the current phase.
var (
	ErrPhase          = errors.New("phase violation")
	ErrNotStarted     = fmt.Errorf("%w: game has not started", ErrPhase)
	ErrAlreadyStarted = fmt.Errorf("%w: game has already started", ErrPhase)
	ErrGameOver       = fmt.Errorf("%w: game has ended", ErrPhase)
	ErrGameNotOver    = fmt.Errorf("%w: game is not over", ErrPhase)
)

// Illegal placements. Every reason wraps ErrIllegalPlacement.
var (
	ErrIllegalPlacement  = errors.New("illegal placement")
	ErrCardNotInHand     = fmt.Errorf("%w: card is not in the current player's hand", ErrIllegalPlacement)
	ErrCellOccupied      = fmt.Errorf("%w: cell already holds a card", ErrIllegalPlacement)
	ErrNoPawns           = fmt.Errorf("%w: cell has no pawns", ErrIllegalPlacement)
	ErrNotOwner          = fmt.Errorf("%w: pawns are owned by the other side", ErrIllegalPlacement)
	ErrInsufficientPawns = fmt.Errorf("%w: not enough pawns to cover the cost", ErrIllegalPlacement)
)

var (
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrNoCard       = errors.New("cell has no card")
	ErrInvalidGrid  = errors.New("invalid influence grid")
	ErrInvalidCard  = errors.New("invalid card")
	ErrInvalidBoard = errors.New("invalid board")
	ErrHandSize     = errors.New("invalid hand size")
	ErrSideMismatch = errors.New("player side mismatch")
)
