package player

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pawnsboard/game"
	"pawnsboard/strategy"
)

// MachineController plays every turn with a strategy. The strategy only sees
// the read-only view of the game.
type MachineController struct {
	engine   Engine
	player   *game.Player
	strategy strategy.Strategy
	result   string
	log      zerolog.Logger
}

// NewMachineController registers a controller for p with engine.
func NewMachineController(engine Engine, p *game.Player, s strategy.Strategy) *MachineController {
	c := &MachineController{
		engine:   engine,
		player:   p,
		strategy: s,
		log:      log.Logger.With().Str("side", p.Side().String()).Logger(),
	}
	engine.AddListener(c)
	return c
}

func (c *MachineController) Side() game.Side {
	return c.player.Side()
}

func (c *MachineController) Player() *game.Player {
	return c.player
}

func (c *MachineController) IsMachine() bool {
	return true
}

func (c *MachineController) Result() string {
	return c.result
}

// OnMyTurn asks the strategy for a move and plays it. A placement the engine
// rejects is replaced by a pass so the game keeps moving.
func (c *MachineController) OnMyTurn() {
	move := c.strategy.ChooseMove(c.engine.View(), c.player)
	if move.IsPass() {
		c.pass()
		return
	}
	if err := c.engine.PlaceCard(move.Row(), move.Col(), move.Card()); err != nil {
		c.log.Warn().Err(err).Msgf("strategy chose %s, passing instead", move)
		c.pass()
	}
}

func (c *MachineController) pass() {
	if err := c.engine.PassTurn(); err != nil {
		c.log.Error().Err(err).Msg("failed to pass")
	}
}

func (c *MachineController) OnGameOver(message string) {
	c.result = message
	c.log.Debug().Msg(message)
}
