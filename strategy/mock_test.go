package strategy

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"pawnsboard/game"
)

// mockView serves configured legal moves and row scores and logs every probe
// a strategy makes.
type mockView struct {
	rows, cols int
	red, blue  *game.Player
	hands      map[game.Side][]game.Card
	legal      map[string]bool
	scores     map[string]int
	log        []string
}

func newMockView(rows, cols int, red, blue *game.Player) *mockView {
	return &mockView{
		rows:   rows,
		cols:   cols,
		red:    red,
		blue:   blue,
		hands:  map[game.Side][]game.Card{},
		legal:  map[string]bool{},
		scores: map[string]int{},
	}
}

func moveKey(card game.Card, row, col int, side game.Side) string {
	return fmt.Sprintf("%s:%d:%d:%s", card.Name(), row, col, side)
}

func scoreKey(side game.Side, row int) string {
	return fmt.Sprintf("%s:%d", side, row)
}

func (v *mockView) allowMove(card game.Card, row, col int, side game.Side) {
	v.legal[moveKey(card, row, col, side)] = true
}

func (v *mockView) setRowScore(side game.Side, row, score int) {
	v.scores[scoreKey(side, row)] = score
}

func (v *mockView) probed(entry string) bool {
	return slices.Contains(v.log, entry)
}

func (v *mockView) IsMoveLegal(row, col int, card game.Card, side game.Side) bool {
	v.log = append(v.log, fmt.Sprintf("checked isMoveLegal at %d,%d for card %s for player %s", row, col, card.Name(), side))
	return v.legal[moveKey(card, row, col, side)]
}

func (v *mockView) ScoreAtRow(row int, side game.Side) int {
	v.log = append(v.log, fmt.Sprintf("checked scoreAtRow for %s at row %d", side, row))
	return v.scores[scoreKey(side, row)]
}

func (v *mockView) PlayerHand(p *game.Player) []game.Card {
	v.log = append(v.log, fmt.Sprintf("getPlayerHand for %s", p.Side()))
	return append([]game.Card(nil), v.hands[p.Side()]...)
}

func (v *mockView) ID() uuid.UUID                        { return uuid.Nil }
func (v *mockView) Rows() int                            { return v.rows }
func (v *mockView) Cols() int                            { return v.cols }
func (v *mockView) CellAt(int, int) (game.Cell, error)   { return game.Cell{}, nil }
func (v *mockView) CardAt(int, int) (game.Card, error)   { return game.Card{}, game.ErrNoCard }
func (v *mockView) BoardCopy() *game.Board               { return nil }
func (v *mockView) RedPlayer() *game.Player              { return v.red }
func (v *mockView) BluePlayer() *game.Player             { return v.blue }
func (v *mockView) CurrentScore(game.Side) int           { return 0 }
func (v *mockView) GameState() game.Phase                { return game.Ongoing }
func (v *mockView) IsRedTurn() bool                      { return true }
func (v *mockView) CurrentSide() game.Side               { return game.Red }
func (v *mockView) IsGameOver() bool                     { return false }
func (v *mockView) DetermineWinner() (game.Phase, error) { return game.Ongoing, game.ErrGameNotOver }
func (v *mockView) OutOfBounds(row, col int) bool        { return row < 0 || row >= v.rows || col < 0 || col >= v.cols }
func (v *mockView) HasLegalMove(game.Side) bool          { return len(v.legal) > 0 }
func (v *mockView) Turns() int                           { return 0 }

func (v *mockView) Player(side game.Side) *game.Player {
	if side == game.Red {
		return v.red
	}
	return v.blue
}

func (v *mockView) CheckMove(row, col int, card game.Card, side game.Side) error {
	if v.IsMoveLegal(row, col, card, side) {
		return nil
	}
	return game.ErrIllegalPlacement
}
