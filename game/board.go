package game

import (
	"fmt"
	"strings"
)

// MaxPawns is the most pawns a cell can hold. Card costs never exceed it.
const MaxPawns = 3

// Cell is one square of the board. It is empty, holds 1 to MaxPawns pawns of
// one side, or holds a single card of one side. A card cell has no pawns.
type Cell struct {
	pawns   int
	owner   Side
	card    Card
	hasCard bool
}

func (c Cell) IsEmpty() bool {
	return c.pawns == 0 && !c.hasCard
}

func (c Cell) HasPawns() bool {
	return c.pawns > 0
}

func (c Cell) HasCard() bool {
	return c.hasCard
}

func (c Cell) PawnCount() int {
	return c.pawns
}

// Owner returns the side owning the pawns or card in the cell. The second
// result is false for an empty cell.
func (c Cell) Owner() (Side, bool) {
	if c.IsEmpty() {
		return Red, false
	}
	return c.owner, true
}

// OwnedBy reports whether the cell holds pawns or a card of the given side.
func (c Cell) OwnedBy(side Side) bool {
	owner, ok := c.Owner()
	return ok && owner == side
}

// Card returns the card in the cell, if any.
func (c Cell) Card() (Card, bool) {
	return c.card, c.hasCard
}

// AddPawns adds n pawns of the given side. The count saturates at MaxPawns:
// pawns beyond the cap are dropped. Adding to a card cell or to pawns of the
// other side fails and leaves the cell unchanged.
func (c *Cell) AddPawns(n int, side Side) error {
	if c.hasCard {
		return ErrCellOccupied
	}
	if c.pawns > 0 && c.owner != side {
		return ErrNotOwner
	}
	if n <= 0 {
		return nil
	}
	c.owner = side
	c.pawns = min(c.pawns+n, MaxPawns)
	return nil
}

// SwitchOwnership flips the owner of the pawns in the cell, keeping the
// count. It has no effect on empty or card cells.
func (c *Cell) SwitchOwnership() {
	if c.pawns == 0 || c.hasCard {
		return
	}
	c.owner = c.owner.Opponent()
}

func (c Cell) String() string {
	switch {
	case c.hasCard:
		return fmt.Sprintf("%s:%s", c.owner, c.card.Name())
	case c.pawns > 0:
		return fmt.Sprintf("%s:%d", c.owner, c.pawns)
	default:
		return "_"
	}
}

// Board is a rows x cols grid of cells. Rows run along the y axis and columns
// along the x axis, with the origin at the top left. The board knows nothing
// about turn order or placement cost; the Model enforces those.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewBoard returns an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoard, rows, cols)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

// OutOfBounds reports whether (row, col) lies outside the board.
func (b *Board) OutOfBounds(row, col int) bool {
	return row < 0 || row >= b.rows || col < 0 || col >= b.cols
}

// Cell returns the cell at (row, col) for mutation.
func (b *Board) Cell(row, col int) (*Cell, error) {
	if b.OutOfBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	return &b.cells[row][col], nil
}

// PlaceCard writes a card owned by side into the cell, discarding any pawns
// that were there. The cell must not already hold a card.
func (b *Board) PlaceCard(row, col int, card Card, side Side) error {
	cell, err := b.Cell(row, col)
	if err != nil {
		return err
	}
	if cell.hasCard {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	*cell = Cell{owner: side, card: card, hasCard: true}
	return nil
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([][]Cell, b.rows)
	for r := range cells {
		cells[r] = make([]Cell, b.cols)
		copy(cells[r], b.cells[r])
	}
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// String renders one line per row, cells separated by spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
