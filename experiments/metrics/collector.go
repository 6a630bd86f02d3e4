package metrics

import (
	"time"

	"pawnsboard/game"
)

type MoveMetric struct {
	Step      int
	Side      string
	Pass      bool
	Card      string // Empty for a pass
	Row       int
	Col       int
	RedScore  int
	BlueScore int
	Elapsed   time.Duration // Since the previous move, or the start of the game
}

type GameMetric struct {
	GameID     string
	Winner     string // red, blue or tie
	RedScore   int
	BlueScore  int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

// Collector observes the moves of one game.
type Collector interface {
	Start()
	Record(event game.MoveEvent)
	Complete() []MoveMetric
}

type collector struct {
	last  time.Time
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.last = time.Now()
	c.moves = nil
}

func (c *collector) Record(event game.MoveEvent) {
	now := time.Now()
	m := MoveMetric{
		Step:      event.Turn,
		Side:      event.Side.String(),
		Pass:      event.Move.IsPass(),
		Row:       event.Move.Row(),
		Col:       event.Move.Col(),
		RedScore:  event.RedScore,
		BlueScore: event.BlueScore,
		Elapsed:   now.Sub(c.last),
	}
	if !m.Pass {
		m.Card = event.Move.Card().Name()
	}
	c.moves = append(c.moves, m)
	c.last = now
}

// Complete returns the moves recorded since Start.
func (c *collector) Complete() []MoveMetric {
	return append([]MoveMetric(nil), c.moves...)
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                 {}
func (c *dummyCollector) Record(game.MoveEvent)  {}
func (c *dummyCollector) Complete() []MoveMetric { return nil }
