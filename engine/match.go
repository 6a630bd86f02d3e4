package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pawnsboard/config"
	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
	"pawnsboard/player"
	"pawnsboard/strategy"
)

type Option func(m *Match)

// WithMetrics records every move of the match into c.
func WithMetrics(c metrics.Collector) Option {
	return func(m *Match) {
		if c != nil {
			m.metrics = c
		}
	}
}

// WithMoveHook calls hook after every committed move.
func WithMoveHook(hook func(game.MoveEvent)) Option {
	return func(m *Match) {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Match) {
		m.log = logger
	}
}

// WithNotifier routes messages for human players to n.
func WithNotifier(n player.Notifier) Option {
	return func(m *Match) {
		m.notifier = n
	}
}

// Match is one game between two configured controllers. Every match owns its
// model, players and controllers; matches never share state.
type Match struct {
	model    *game.Model
	red      player.Controller
	blue     player.Controller
	seed     uint64
	metrics  metrics.Collector
	hooks    []func(game.MoveEvent)
	notifier player.Notifier
	log      zerolog.Logger
	start    time.Time
	passes   int
}

// NewMatch builds a game from cfg over the given cards. Blue's cards are
// expected to be mirrored already, as deckfile produces them.
func NewMatch(cfg config.Match, redCards, blueCards []game.Card, options ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		metrics: metrics.NewDummyCollector(),
		log:     log.Logger,
	}
	for _, option := range options {
		option(m)
	}

	redCards = append([]game.Card(nil), redCards...)
	blueCards = append([]game.Card(nil), blueCards...)
	if cfg.Shuffle {
		m.seed = cfg.Seed
		if m.seed == 0 {
			m.seed = uint64(time.Now().UnixNano())
		}
		r := rand.New(rand.NewSource(m.seed))
		r.Shuffle(len(redCards), func(i, j int) { redCards[i], redCards[j] = redCards[j], redCards[i] })
		r.Shuffle(len(blueCards), func(i, j int) { blueCards[i], blueCards[j] = blueCards[j], blueCards[i] })
	}

	board, err := game.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	red, err := game.NewPlayer(cfg.Red.Name, game.Red, game.NewDeck(redCards), cfg.HandSize)
	if err != nil {
		return nil, fmt.Errorf("red player: %w", err)
	}
	blue, err := game.NewPlayer(cfg.Blue.Name, game.Blue, game.NewDeck(blueCards), cfg.HandSize)
	if err != nil {
		return nil, fmt.Errorf("blue player: %w", err)
	}

	modelOptions := []game.Option{
		game.WithLogger(m.log),
		game.WithMoveHook(m.countPasses),
		game.WithMoveHook(m.metrics.Record),
	}
	for _, hook := range m.hooks {
		modelOptions = append(modelOptions, game.WithMoveHook(hook))
	}
	m.model, err = game.NewModel(board, red, blue, modelOptions...)
	if err != nil {
		return nil, err
	}
	m.log = m.log.With().Str("game", m.model.ID().String()).Logger()

	if m.red, err = m.controller(cfg.Red, red); err != nil {
		return nil, err
	}
	if m.blue, err = m.controller(cfg.Blue, blue); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) controller(cfg config.Player, p *game.Player) (player.Controller, error) {
	if cfg.IsHuman() {
		return player.NewHumanController(m.model, p, player.WithNotifier(m.notifier)), nil
	}
	s, err := strategy.ByName(cfg.Controller)
	if err != nil {
		return nil, err
	}
	return player.NewMachineController(m.model, p, s), nil
}

func (m *Match) countPasses(event game.MoveEvent) {
	if event.Move.IsPass() {
		m.passes++
	}
}

// View is the read-only state of the match's game.
func (m *Match) View() game.View {
	return m.model.View()
}

func (m *Match) Red() player.Controller {
	return m.red
}

func (m *Match) Blue() player.Controller {
	return m.blue
}

// Start deals and hands red its first turn. A match between two machines is
// over by the time Start returns.
func (m *Match) Start() error {
	m.start = time.Now()
	m.metrics.Start()
	return m.model.StartGame()
}

// Run starts the match and returns its result. It fails with ErrUnfinished
// if a human player still has to move.
func (m *Match) Run() (Result, error) {
	if err := m.Start(); err != nil {
		return Result{}, err
	}
	if !m.model.IsGameOver() {
		return m.Result(), ErrUnfinished
	}
	result := m.Result()
	m.log.Info().Msgf("winner %s (%d-%d) after %d moves", result.Winner, result.RedScore, result.BlueScore, result.TotalMoves)
	return result, nil
}

// Result reports the match as it stands.
func (m *Match) Result() Result {
	end := time.Now()
	phase := m.model.GameState()
	return Result{
		GameMetric: metrics.GameMetric{
			GameID:     m.model.ID().String(),
			Winner:     Winner(phase),
			RedScore:   m.model.CurrentScore(game.Red),
			BlueScore:  m.model.CurrentScore(game.Blue),
			StartTime:  m.start,
			EndTime:    end,
			Duration:   end.Sub(m.start),
			TotalMoves: m.model.Turns(),
			Passes:     m.passes,
		},
		Phase: phase,
		Seed:  m.seed,
		Moves: m.metrics.Complete(),
	}
}
