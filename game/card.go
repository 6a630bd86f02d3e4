package game

import (
	"fmt"
	"strings"
)

// Symbol is one square of an influence grid.
type Symbol byte

const (
	Plain      Symbol = 'X'
	Influenced Symbol = 'I'
	Origin     Symbol = 'C'
)

// GridSize is the width and height of every influence grid.
const GridSize = 5

const gridCenter = GridSize / 2

// InfluenceGrid is the 5x5 effect pattern of a card, centered on the cell the
// card is placed on. It is a value type and never changes after construction.
type InfluenceGrid struct {
	cells [GridSize][GridSize]Symbol
}

// NewInfluenceGrid parses a grid from five rows of five symbols each. The
// origin must appear exactly once, in the center.
func NewInfluenceGrid(rows []string) (InfluenceGrid, error) {
	var g InfluenceGrid
	if len(rows) != GridSize {
		return g, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidGrid, GridSize, len(rows))
	}
	for r, row := range rows {
		if len(row) != GridSize {
			return g, fmt.Errorf("%w: row %d has %d symbols, want %d", ErrInvalidGrid, r, len(row), GridSize)
		}
		for c := 0; c < GridSize; c++ {
			s := Symbol(row[c])
			switch s {
			case Plain, Influenced:
			case Origin:
				if r != gridCenter || c != gridCenter {
					return g, fmt.Errorf("%w: origin at (%d,%d), want (%d,%d)", ErrInvalidGrid, r, c, gridCenter, gridCenter)
				}
			default:
				return g, fmt.Errorf("%w: unknown symbol %q at (%d,%d)", ErrInvalidGrid, row[c], r, c)
			}
			g.cells[r][c] = s
		}
	}
	if g.cells[gridCenter][gridCenter] != Origin {
		return g, fmt.Errorf("%w: missing origin", ErrInvalidGrid)
	}
	return g, nil
}

// MustInfluenceGrid is like NewInfluenceGrid but panics on a malformed grid.
// Intended for fixed grids known at compile time.
func MustInfluenceGrid(rows ...string) InfluenceGrid {
	g, err := NewInfluenceGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// IsInfluenced reports whether the square at (row, col) of the grid spreads
// influence. It is false outside the grid and at the origin.
func (g InfluenceGrid) IsInfluenced(row, col int) bool {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return false
	}
	return g.cells[row][col] == Influenced
}

// Symbol returns the symbol at (row, col), or Plain outside the grid.
func (g InfluenceGrid) Symbol(row, col int) Symbol {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return Plain
	}
	return g.cells[row][col]
}

// Mirror returns the grid with every row reversed. Blue plays the mirror image
// of the cards red reads from the same deck file.
func (g InfluenceGrid) Mirror() InfluenceGrid {
	var m InfluenceGrid
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			m.cells[r][GridSize-1-c] = g.cells[r][c]
		}
	}
	return m
}

// Rows renders the grid back into its textual form.
func (g InfluenceGrid) Rows() []string {
	rows := make([]string, GridSize)
	for r := 0; r < GridSize; r++ {
		var sb strings.Builder
		for c := 0; c < GridSize; c++ {
			sb.WriteByte(byte(g.cells[r][c]))
		}
		rows[r] = sb.String()
	}
	return rows
}

// Card is an immutable card definition. Cards compare structurally with ==,
// and carry no owner: ownership belongs to the cell a card is placed on.
type Card struct {
	name  string
	cost  int
	value int
	grid  InfluenceGrid
}

// NewCard validates and returns a card. Cost must be in [1, MaxPawns] and the
// value must be positive.
func NewCard(name string, cost, value int, grid InfluenceGrid) (Card, error) {
	if cost < 1 || cost > MaxPawns {
		return Card{}, fmt.Errorf("%w: cost %d must be between 1 and %d", ErrInvalidCard, cost, MaxPawns)
	}
	if value <= 0 {
		return Card{}, fmt.Errorf("%w: value %d must be positive", ErrInvalidCard, value)
	}
	return Card{name: name, cost: cost, value: value, grid: grid}, nil
}

func (c Card) Name() string { return c.name }

func (c Card) Cost() int { return c.cost }

func (c Card) Value() int { return c.value }

func (c Card) Grid() InfluenceGrid { return c.grid }

func (c Card) String() string {
	return fmt.Sprintf("%s(cost=%d, value=%d)", c.name, c.cost, c.value)
}
