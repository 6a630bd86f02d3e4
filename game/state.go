package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Phase is the lifecycle stage of a game.
type Phase int

const (
	NotStarted Phase = iota
	Ongoing
	Done
	RedWins
	BlueWins
	Tie
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NOT_STARTED"
	case Ongoing:
		return "ONGOING"
	case Done:
		return "DONE"
	case RedWins:
		return "RED_WINS"
	case BlueWins:
		return "BLUE_WINS"
	case Tie:
		return "TIE"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// IsTerminal reports whether no further moves can be played.
func (p Phase) IsTerminal() bool {
	return p == Done || p == RedWins || p == BlueWins || p == Tie
}

// Message is the outcome text sent to listeners when the game ends.
func (p Phase) Message() string {
	switch p {
	case RedWins:
		return "Red wins!"
	case BlueWins:
		return "Blue wins!"
	case Tie:
		return "Tie!"
	case Done:
		return "Game over: no moves left."
	default:
		return ""
	}
}

type Option func(m *Model)

// WithLogger replaces the logger the model derives its game logger from.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.log = logger
	}
}

// WithMoveHook installs a function called after every committed move and
// before the next turn is announced.
func WithMoveHook(hook func(MoveEvent)) Option {
	return func(m *Model) {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
	}
}

// Model is the mutable game engine. It owns the board and both players for
// the duration of one game. All turn and phase state belongs to the instance,
// so any number of models can run side by side in one process.
//
// Model also satisfies View; use View() to hand out a handle that cannot
// mutate the game.
type Model struct {
	id        uuid.UUID
	board     *Board
	red       *Player
	blue      *Player
	handSize  int
	turn      Side
	phase     Phase
	passed    [2]bool // Indexed by Side
	moves     int     // Moves committed so far
	listeners []Listener
	hooks     []func(MoveEvent)
	log       zerolog.Logger
}

// NewModel returns a game that has not started yet. Both players must have
// been built with the same hand size, red with side Red and blue with Blue.
func NewModel(board *Board, red, blue *Player, options ...Option) (*Model, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: nil board", ErrInvalidBoard)
	}
	if red == nil || blue == nil {
		return nil, fmt.Errorf("%w: both players are required", ErrSideMismatch)
	}
	if red.Side() != Red || blue.Side() != Blue {
		return nil, fmt.Errorf("%w: got red=%s blue=%s", ErrSideMismatch, red.Side(), blue.Side())
	}
	if red.HandSize() != blue.HandSize() {
		return nil, fmt.Errorf("%w: red holds %d cards, blue holds %d", ErrHandSize, red.HandSize(), blue.HandSize())
	}

	m := &Model{
		id:       uuid.New(),
		board:    board,
		red:      red,
		blue:     blue,
		handSize: red.HandSize(),
		turn:     Red,
		phase:    NotStarted,
		log:      log.Logger,
	}
	for _, option := range options {
		option(m)
	}
	m.log = m.log.With().Str("game", m.id.String()).Logger()
	return m, nil
}

// View returns a read-only handle over this game.
func (m *Model) View() View {
	return readOnly{m}
}

// AddListener registers a listener for turn and game-over notifications.
func (m *Model) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// StartGame deals the opening hands, seeds one pawn per row on each edge, and
// gives the first turn to red.
func (m *Model) StartGame() error {
	if m.phase != NotStarted {
		return ErrAlreadyStarted
	}

	// Deal alternately, red first
	for i := 0; i < m.handSize; i++ {
		m.red.draw()
		m.blue.draw()
	}

	// Seed the edge columns
	last := m.board.Cols() - 1
	for row := 0; row < m.board.Rows(); row++ {
		m.board.cells[row][0] = Cell{pawns: 1, owner: Red}
		m.board.cells[row][last] = Cell{pawns: 1, owner: Blue}
	}

	m.phase = Ongoing
	m.turn = Red
	m.log.Info().Msgf("game started on a %dx%d board with hands of %d", m.board.Rows(), m.board.Cols(), m.handSize)

	m.notify()
	return nil
}

// PlaceCard plays card from the current player's hand at (row, col). A
// rejected placement returns an error and leaves the game unchanged.
func (m *Model) PlaceCard(row, col int, card Card) error {
	if err := m.requireOngoing(); err != nil {
		return err
	}

	current := m.Player(m.turn)
	if !current.HasCard(card) {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, card.Name())
	}
	if err := m.CheckMove(row, col, card, m.turn); err != nil {
		return err
	}
	if err := m.board.PlaceCard(row, col, card, m.turn); err != nil {
		return err
	}

	m.applyInfluence(row, col, card)
	current.remove(card)
	current.draw()

	// A placement breaks any run of passes
	m.passed = [2]bool{}

	m.commit(Place(card, row, col))
	return nil
}

// PassTurn ends the current player's turn without placing a card. The second
// consecutive pass ends the game and resolves the winner.
func (m *Model) PassTurn() error {
	if err := m.requireOngoing(); err != nil {
		return err
	}

	m.passed[m.turn] = true
	if m.passed[Red] && m.passed[Blue] {
		m.phase = Done
		m.phase = m.outcome()
	}

	m.commit(Pass())
	return nil
}

func (m *Model) requireOngoing() error {
	switch {
	case m.phase == NotStarted:
		return ErrNotStarted
	case m.phase.IsTerminal():
		return ErrGameOver
	default:
		return nil
	}
}

// commit records a move, hands the turn over and notifies listeners.
func (m *Model) commit(move Move) {
	mover := m.turn
	m.moves++
	m.turn = mover.Opponent()

	event := MoveEvent{
		Turn:      m.moves,
		Side:      mover,
		Move:      move,
		RedScore:  m.CurrentScore(Red),
		BlueScore: m.CurrentScore(Blue),
	}
	m.log.Debug().Str("side", mover.String()).Int("turn", m.moves).Msgf("%s", move)
	for _, hook := range m.hooks {
		hook(event)
	}

	if m.phase.IsTerminal() {
		m.log.Info().Int("red", event.RedScore).Int("blue", event.BlueScore).Msgf("game over after %d moves: %s", m.moves, m.phase)
	}
	m.notify()
}

// notify announces the new turn, or the end of the game to every listener.
// If a listener plays a move from OnMyTurn, the remaining listeners of the
// stale turn are skipped.
func (m *Model) notify() {
	if m.phase.IsTerminal() {
		message := m.phase.Message()
		for _, l := range m.listeners {
			l.OnGameOver(message)
		}
		return
	}

	turn, moves := m.turn, m.moves
	for _, l := range m.listeners {
		if m.moves != moves || m.phase != Ongoing {
			return
		}
		if l.Side() == turn {
			l.OnMyTurn()
		}
	}
}

// applyInfluence spreads the influence of a card just placed at (row, col).
// Offsets are fixed relative to the card; each target is visited once and
// changes do not propagate further.
func (m *Model) applyInfluence(row, col int, card Card) {
	grid := card.Grid()
	side := m.turn
	for dy := -gridCenter; dy <= gridCenter; dy++ {
		for dx := -gridCenter; dx <= gridCenter; dx++ {
			if !grid.IsInfluenced(dy+gridCenter, dx+gridCenter) {
				continue
			}
			target, err := m.board.Cell(row+dy, col+dx)
			if err != nil {
				continue
			}

			switch {
			case target.HasCard():
				// Cards are never converted
			case target.IsEmpty():
				target.AddPawns(1, side)
			case target.OwnedBy(side):
				target.AddPawns(1, side)
			default:
				target.SwitchOwnership()
			}
		}
	}
}
