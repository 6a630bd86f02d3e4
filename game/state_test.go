package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	side     Side
	turns    int
	messages []string
	onTurn   func()
}

func (l *recordingListener) Side() Side { return l.side }

func (l *recordingListener) OnMyTurn() {
	l.turns++
	if l.onTurn != nil {
		l.onTurn()
	}
}

func (l *recordingListener) OnGameOver(message string) {
	l.messages = append(l.messages, message)
}

func newModelWithCards(t *testing.T, rows, cols, handSize int, redCards, blueCards []Card, options ...Option) *Model {
	t.Helper()
	board, err := NewBoard(rows, cols)
	require.NoError(t, err)
	red, err := NewPlayer("red", Red, NewDeck(redCards), handSize)
	require.NoError(t, err)
	blue, err := NewPlayer("blue", Blue, NewDeck(blueCards), handSize)
	require.NoError(t, err)
	options = append([]Option{WithLogger(zerolog.Nop())}, options...)
	m, err := NewModel(board, red, blue, options...)
	require.NoError(t, err)
	return m
}

// newTestModel returns an unstarted rows x cols game where each side holds
// two cards from a deck of six cross-pattern cards (r0..r5, b0..b5).
func newTestModel(t *testing.T, rows, cols int, options ...Option) *Model {
	t.Helper()
	return newModelWithCards(t, rows, cols, 2, testCards(t, "r", 6), testCards(t, "b", 6), options...)
}

type snapshot struct {
	board *Board
	red   []Card
	blue  []Card
	turn  Side
	phase Phase
	moves int
}

func takeSnapshot(m *Model) snapshot {
	return snapshot{
		board: m.BoardCopy(),
		red:   m.RedPlayer().Hand(),
		blue:  m.BluePlayer().Hand(),
		turn:  m.CurrentSide(),
		phase: m.GameState(),
		moves: m.Turns(),
	}
}

func TestNewModel(t *testing.T) {
	board, _ := NewBoard(3, 5)
	deck := func() *Deck { return NewDeck(testCards(t, "c", 6)) }

	t.Run("rejects swapped sides", func(t *testing.T) {
		red, _ := NewPlayer("red", Red, deck(), 2)
		blue, _ := NewPlayer("blue", Blue, deck(), 2)
		_, err := NewModel(board, blue, red)
		require.ErrorIs(t, err, ErrSideMismatch)
	})

	t.Run("rejects different hand sizes", func(t *testing.T) {
		red, _ := NewPlayer("red", Red, deck(), 2)
		blue, _ := NewPlayer("blue", Blue, deck(), 1)
		_, err := NewModel(board, red, blue)
		require.ErrorIs(t, err, ErrHandSize)
	})

	t.Run("starts not started with red to move", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.Equal(t, NotStarted, m.GameState())
		require.True(t, m.IsRedTurn())
		require.False(t, m.IsGameOver())
	})
}

func TestStartGame(t *testing.T) {
	t.Run("deals hands and seeds the edges", func(t *testing.T) {
		m := newTestModel(t, 3, 5)

		require.NoError(t, m.StartGame())

		for row := 0; row < 3; row++ {
			left, err := m.CellAt(row, 0)
			require.NoError(t, err)
			require.True(t, left.OwnedBy(Red))
			require.Equal(t, 1, left.PawnCount())

			right, err := m.CellAt(row, 4)
			require.NoError(t, err)
			require.True(t, right.OwnedBy(Blue))
			require.Equal(t, 1, right.PawnCount())

			for col := 1; col < 4; col++ {
				cell, _ := m.CellAt(row, col)
				require.True(t, cell.IsEmpty())
			}
		}
		require.Equal(t, testCards(t, "r", 2), m.PlayerHand(m.RedPlayer()))
		require.Equal(t, testCards(t, "b", 2), m.PlayerHand(m.BluePlayer()))
		require.Equal(t, 4, m.RedPlayer().DeckSize())
		require.True(t, m.IsRedTurn())
		require.Equal(t, Ongoing, m.GameState())
	})

	t.Run("cannot start twice", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())
		before := takeSnapshot(m)

		err := m.StartGame()

		require.ErrorIs(t, err, ErrAlreadyStarted)
		require.ErrorIs(t, err, ErrPhase)
		require.Equal(t, before, takeSnapshot(m))
	})

	t.Run("notifies red", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		red := &recordingListener{side: Red}
		blue := &recordingListener{side: Blue}
		m.AddListener(red)
		m.AddListener(blue)

		require.NoError(t, m.StartGame())

		require.Equal(t, 1, red.turns)
		require.Equal(t, 0, blue.turns)
	})
}

func TestPhaseViolations(t *testing.T) {
	t.Run("moves before the game starts", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		card := testCards(t, "r", 1)[0]

		require.ErrorIs(t, m.PlaceCard(0, 0, card), ErrNotStarted)
		require.ErrorIs(t, m.PassTurn(), ErrNotStarted)
		_, err := m.DetermineWinner()
		require.ErrorIs(t, err, ErrGameNotOver)
		require.Equal(t, NotStarted, m.GameState())
	})

	t.Run("moves after the game ends", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())
		require.NoError(t, m.PassTurn())
		require.NoError(t, m.PassTurn())
		before := takeSnapshot(m)

		require.ErrorIs(t, m.PassTurn(), ErrGameOver)
		require.ErrorIs(t, m.PlaceCard(0, 0, m.RedPlayer().Hand()[0]), ErrGameOver)
		require.Equal(t, before, takeSnapshot(m))
	})
}

func TestPlaceCard(t *testing.T) {
	t.Run("legal placement with a non-empty deck", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())
		r := testCards(t, "r", 3)

		require.NoError(t, m.PlaceCard(0, 0, r[0]))

		card, err := m.CardAt(0, 0)
		require.NoError(t, err)
		require.Equal(t, r[0], card)
		cell, _ := m.CellAt(0, 0)
		require.True(t, cell.OwnedBy(Red))
		require.False(t, cell.HasPawns())
		require.Equal(t, []Card{r[1], r[2]}, m.RedPlayer().Hand(), "played card replaced by a draw")
		require.False(t, m.IsRedTurn())
		require.Equal(t, 1, m.Turns())
	})

	t.Run("hand shrinks once the deck is empty", func(t *testing.T) {
		m := newModelWithCards(t, 3, 5, 1, testCards(t, "r", 3), testCards(t, "b", 3))
		require.NoError(t, m.StartGame())
		r := testCards(t, "r", 3)

		require.NoError(t, m.PlaceCard(0, 0, r[0]))
		require.NoError(t, m.PassTurn())
		require.NoError(t, m.PlaceCard(1, 0, r[1]))
		require.NoError(t, m.PassTurn())
		require.Equal(t, []Card{r[2]}, m.RedPlayer().Hand())
		require.Equal(t, 0, m.RedPlayer().DeckSize())

		require.NoError(t, m.PlaceCard(2, 0, r[2]))
		require.Empty(t, m.RedPlayer().Hand())
	})

	t.Run("blue places on its own edge", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())
		require.NoError(t, m.PassTurn())
		b := testCards(t, "b", 1)

		require.NoError(t, m.PlaceCard(0, 4, b[0]))

		cell, _ := m.CellAt(0, 4)
		require.True(t, cell.OwnedBy(Blue))
		require.True(t, cell.HasCard())
		require.True(t, m.IsRedTurn())
	})
}

func TestIllegalPlacements(t *testing.T) {
	m := newTestModel(t, 3, 5)
	require.NoError(t, m.StartGame())
	r := testCards(t, "r", 2)
	b := testCards(t, "b", 1)

	cases := []struct {
		name     string
		row, col int
		card     Card
		want     error
	}{
		{"card not in hand", 0, 0, b[0], ErrCardNotInHand},
		{"out of bounds", 5, 0, r[0], ErrOutOfBounds},
		{"negative column", 0, -1, r[0], ErrOutOfBounds},
		{"no pawns", 0, 2, r[0], ErrNoPawns},
		{"opponent pawns", 0, 4, r[0], ErrNotOwner},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := takeSnapshot(m)

			err := m.PlaceCard(tc.row, tc.col, tc.card)

			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ErrIllegalPlacement)
			require.Equal(t, before, takeSnapshot(m), "rejected placement must not change the game")
		})
	}

	t.Run("cell already holds a card", func(t *testing.T) {
		require.NoError(t, m.PlaceCard(0, 0, r[0]))
		require.NoError(t, m.PassTurn())
		before := takeSnapshot(m)

		err := m.PlaceCard(0, 0, r[1])

		require.ErrorIs(t, err, ErrCellOccupied)
		require.Equal(t, before, takeSnapshot(m))
	})

	t.Run("not enough pawns", func(t *testing.T) {
		expensive := make([]Card, 3)
		for i := range expensive {
			expensive[i] = mustCard(t, "big", 2, 5, crossGrid)
		}
		m := newModelWithCards(t, 3, 5, 1, expensive, testCards(t, "b", 3))
		require.NoError(t, m.StartGame())
		before := takeSnapshot(m)

		err := m.PlaceCard(0, 0, expensive[0])

		require.ErrorIs(t, err, ErrInsufficientPawns)
		require.False(t, m.IsMoveLegal(0, 0, expensive[0], Red))
		require.Equal(t, before, takeSnapshot(m))
	})
}

func TestInfluence(t *testing.T) {
	t.Run("claims empty cells and reinforces own pawns", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())

		require.NoError(t, m.PlaceCard(0, 0, testCards(t, "r", 1)[0]))

		below, _ := m.CellAt(1, 0)
		require.True(t, below.OwnedBy(Red))
		require.Equal(t, 2, below.PawnCount())
		right, _ := m.CellAt(0, 1)
		require.True(t, right.OwnedBy(Red))
		require.Equal(t, 1, right.PawnCount())
		untouched, _ := m.CellAt(1, 1)
		require.True(t, untouched.IsEmpty())
	})

	t.Run("converts opponent pawns without changing the count", func(t *testing.T) {
		reach := MustInfluenceGrid(
			"XXXXX",
			"XXXXX",
			"XXCXI",
			"XXXXX",
			"XXXXX",
		)
		cards := make([]Card, 3)
		for i := range cards {
			cards[i] = mustCard(t, "reach", 1, 1, reach)
		}
		m := newModelWithCards(t, 1, 3, 1, cards, testCards(t, "b", 3))
		require.NoError(t, m.StartGame())
		m.board.cells[0][2].pawns = 2

		require.NoError(t, m.PlaceCard(0, 0, cards[0]))

		target, _ := m.CellAt(0, 2)
		require.True(t, target.OwnedBy(Red))
		require.Equal(t, 2, target.PawnCount())
	})

	t.Run("saturates at the cap and never touches cards", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())
		m.board.cells[0][0].pawns = MaxPawns
		blueCard := testCards(t, "b", 6)[5]
		require.NoError(t, m.board.PlaceCard(1, 1, blueCard, Blue))

		require.NoError(t, m.PlaceCard(1, 0, testCards(t, "r", 1)[0]))

		above, _ := m.CellAt(0, 0)
		require.Equal(t, MaxPawns, above.PawnCount())
		below, _ := m.CellAt(2, 0)
		require.Equal(t, 2, below.PawnCount())
		card, _ := m.CellAt(1, 1)
		require.True(t, card.OwnedBy(Blue))
		require.True(t, card.HasCard())
		require.False(t, card.HasPawns())
	})
}

func TestPassTurn(t *testing.T) {
	t.Run("two passes end the game in a tie", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())

		require.NoError(t, m.PassTurn())
		require.False(t, m.IsGameOver())
		require.False(t, m.IsRedTurn())
		require.NoError(t, m.PassTurn())

		require.True(t, m.IsGameOver())
		require.Equal(t, Tie, m.GameState())
		require.Equal(t, 0, m.CurrentScore(Red))
		require.Equal(t, 0, m.CurrentScore(Blue))
		winner, err := m.DetermineWinner()
		require.NoError(t, err)
		require.Equal(t, Tie, winner)
	})

	t.Run("a placement breaks a run of passes", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())

		require.NoError(t, m.PassTurn())
		require.NoError(t, m.PlaceCard(0, 4, testCards(t, "b", 1)[0]))
		require.NoError(t, m.PassTurn())
		require.False(t, m.IsGameOver())

		require.NoError(t, m.PassTurn())
		require.True(t, m.IsGameOver())
		require.Equal(t, BlueWins, m.GameState())
	})

	t.Run("winner is resolved immediately and idempotently", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		require.NoError(t, m.StartGame())
		require.NoError(t, m.PlaceCard(0, 0, testCards(t, "r", 1)[0]))
		require.NoError(t, m.PassTurn())
		require.NoError(t, m.PassTurn())

		require.Equal(t, RedWins, m.GameState())
		for i := 0; i < 2; i++ {
			winner, err := m.DetermineWinner()
			require.NoError(t, err)
			require.Equal(t, RedWins, winner)
		}
	})
}

func TestListeners(t *testing.T) {
	t.Run("turns and game over", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		red := &recordingListener{side: Red}
		blue := &recordingListener{side: Blue}
		m.AddListener(red)
		m.AddListener(blue)

		require.NoError(t, m.StartGame())
		require.NoError(t, m.PassTurn())
		require.Equal(t, 1, blue.turns)
		require.NoError(t, m.PassTurn())

		require.Equal(t, 1, red.turns)
		require.Equal(t, 1, blue.turns)
		require.Equal(t, []string{"Tie!"}, red.messages)
		require.Equal(t, []string{"Tie!"}, blue.messages)
	})

	t.Run("automated players finish inside StartGame", func(t *testing.T) {
		m := newModelWithCards(t, 3, 5, 3, testCards(t, "r", 12), testCards(t, "b", 12))
		red := &recordingListener{side: Red}
		blue := &recordingListener{side: Blue}
		red.onTurn = func() { playFirstLegal(t, m, Red) }
		blue.onTurn = func() { playFirstLegal(t, m, Blue) }
		m.AddListener(red)
		m.AddListener(blue)

		require.NoError(t, m.StartGame())

		require.True(t, m.IsGameOver())
		require.Len(t, red.messages, 1)
		require.Len(t, blue.messages, 1)
		require.Greater(t, m.Turns(), 2)
		require.LessOrEqual(t, m.CurrentScore(Red)+m.CurrentScore(Blue), boardValue(m))
	})

	t.Run("stale turn notifications are skipped", func(t *testing.T) {
		m := newTestModel(t, 3, 5)
		passer := &recordingListener{side: Red}
		passer.onTurn = func() { require.NoError(t, m.PassTurn()) }
		late := &recordingListener{side: Red}
		bluePasser := &recordingListener{side: Blue}
		bluePasser.onTurn = func() { require.NoError(t, m.PassTurn()) }
		m.AddListener(passer)
		m.AddListener(late)
		m.AddListener(bluePasser)

		require.NoError(t, m.StartGame())

		require.True(t, m.IsGameOver())
		require.Equal(t, 0, late.turns)
		require.Equal(t, []string{"Tie!"}, late.messages)
	})
}

func TestMoveHook(t *testing.T) {
	var events []MoveEvent
	m := newTestModel(t, 3, 5, WithMoveHook(func(e MoveEvent) { events = append(events, e) }))
	require.NoError(t, m.StartGame())
	r := testCards(t, "r", 1)

	require.NoError(t, m.PlaceCard(0, 0, r[0]))
	require.NoError(t, m.PassTurn())

	require.Equal(t, []MoveEvent{
		{Turn: 1, Side: Red, Move: Place(r[0], 0, 0), RedScore: 1},
		{Turn: 2, Side: Blue, Move: Pass(), RedScore: 1},
	}, events)
}

func TestInstancesAreIndependent(t *testing.T) {
	m1 := newTestModel(t, 3, 5)
	m2 := newTestModel(t, 3, 5)
	require.NotEqual(t, m1.ID(), m2.ID())
	require.NoError(t, m1.StartGame())
	require.NoError(t, m2.StartGame())

	require.NoError(t, m1.PassTurn())
	require.False(t, m1.IsRedTurn())
	require.True(t, m2.IsRedTurn())

	require.NoError(t, m1.PassTurn())
	require.True(t, m1.IsGameOver())
	require.Equal(t, Ongoing, m2.GameState())
	require.NoError(t, m2.PlaceCard(0, 0, testCards(t, "r", 1)[0]))
}

func TestView(t *testing.T) {
	m := newTestModel(t, 3, 5)
	require.NoError(t, m.StartGame())
	v := m.View()

	_, mutable := v.(interface{ PassTurn() error })
	require.False(t, mutable, "view must not expose mutation")
	_, isModel := v.(*Model)
	require.False(t, isModel)

	require.Equal(t, m.ID(), v.ID())
	require.Equal(t, Ongoing, v.GameState())
	require.True(t, v.IsRedTurn())

	before := takeSnapshot(m)
	card := m.RedPlayer().Hand()[0]
	for i := 0; i < 2; i++ {
		require.True(t, v.IsMoveLegal(0, 0, card, Red))
		require.False(t, v.IsMoveLegal(0, 4, card, Red))
		require.Equal(t, 0, v.ScoreAtRow(0, Red))
		require.Equal(t, 0, v.CurrentScore(Blue))
		require.True(t, v.HasLegalMove(Red))
	}
	require.Equal(t, before, takeSnapshot(m), "queries must not change the game")

	_, err := v.CardAt(0, 0)
	require.ErrorIs(t, err, ErrNoCard)
	_, err = v.CellAt(9, 9)
	require.ErrorIs(t, err, ErrOutOfBounds)

	require.NoError(t, m.PassTurn())
	require.False(t, v.IsRedTurn(), "view follows the live game")
}

// playFirstLegal places the first legal card in hand order, scanning rows
// then columns, or passes.
func playFirstLegal(t *testing.T, m *Model, side Side) {
	for _, card := range m.Player(side).Hand() {
		for row := 0; row < m.Rows(); row++ {
			for col := 0; col < m.Cols(); col++ {
				if m.IsMoveLegal(row, col, card, side) {
					require.NoError(t, m.PlaceCard(row, col, card))
					return
				}
			}
		}
	}
	require.NoError(t, m.PassTurn())
}

func boardValue(m *Model) int {
	total := 0
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if card, err := m.CardAt(row, col); err == nil {
				total += card.Value()
			}
		}
	}
	return total
}
