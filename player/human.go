package player

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pawnsboard/game"
)

// Notifier shows messages to the person at the keyboard.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}

type logNotifier struct {
	log zerolog.Logger
}

func (n logNotifier) Notify(message string) {
	n.log.Info().Msg(message)
}

type Option func(c *HumanController)

// WithNotifier sends messages to n instead of the log.
func WithNotifier(n Notifier) Option {
	return func(c *HumanController) {
		if n != nil {
			c.notifier = n
		}
	}
}

// HumanController turns a person's selections into moves. A move is built by
// selecting a card from the hand and a cell, then confirming. Input arriving
// outside the player's turn is ignored.
type HumanController struct {
	engine   Engine
	player   *game.Player
	notifier Notifier
	myTurn   bool
	card     int // Index into the hand, -1 when unset
	row, col int
	hasCell  bool
	result   string
}

// NewHumanController registers a controller for p with engine.
func NewHumanController(engine Engine, p *game.Player, options ...Option) *HumanController {
	c := &HumanController{
		engine:   engine,
		player:   p,
		notifier: logNotifier{log: log.Logger.With().Str("side", p.Side().String()).Logger()},
		card:     -1,
	}
	for _, option := range options {
		option(c)
	}
	engine.AddListener(c)
	return c
}

func (c *HumanController) Side() game.Side {
	return c.player.Side()
}

func (c *HumanController) Player() *game.Player {
	return c.player
}

func (c *HumanController) IsMachine() bool {
	return false
}

func (c *HumanController) Result() string {
	return c.result
}

// MyTurn reports whether the controller is waiting for input.
func (c *HumanController) MyTurn() bool {
	return c.myTurn
}

func (c *HumanController) SelectCard(index int) {
	if !c.myTurn {
		return
	}
	c.card = index
}

func (c *HumanController) SelectCell(row, col int) {
	if !c.myTurn {
		return
	}
	c.row, c.col, c.hasCell = row, col, true
}

// Confirm plays the selected card at the selected cell. On failure the
// selections are kept so the player can correct them.
func (c *HumanController) Confirm() error {
	if !c.myTurn {
		return ErrNotYourTurn
	}
	hand := c.engine.View().PlayerHand(c.player)
	if c.card < 0 || !c.hasCell {
		c.notifier.Notify("Must select card and cell before confirming.")
		return ErrNoSelection
	}
	if c.card >= len(hand) {
		c.notifier.Notify(fmt.Sprintf("Invalid move: no card %d in hand.", c.card))
		return fmt.Errorf("%w: card %d of %d", ErrNoSelection, c.card, len(hand))
	}

	card, row, col := hand[c.card], c.row, c.col
	// The engine may hand the turn back to us before PlaceCard returns
	saved := *c
	c.endTurn()
	if err := c.engine.PlaceCard(row, col, card); err != nil {
		c.restore(saved)
		c.notifier.Notify("Invalid move: " + err.Error())
		return err
	}
	return nil
}

// Pass ends the turn without placing a card.
func (c *HumanController) Pass() error {
	if !c.myTurn {
		return ErrNotYourTurn
	}
	saved := *c
	c.endTurn()
	if err := c.engine.PassTurn(); err != nil {
		c.restore(saved)
		c.notifier.Notify("Cannot pass: " + err.Error())
		return err
	}
	return nil
}

func (c *HumanController) OnMyTurn() {
	c.myTurn = true
	c.notifier.Notify(c.player.Name() + ": your turn")
}

func (c *HumanController) OnGameOver(message string) {
	c.endTurn()
	c.result = message
	c.notifier.Notify(message)
}

func (c *HumanController) endTurn() {
	c.myTurn = false
	c.card = -1
	c.hasCell = false
}

func (c *HumanController) restore(saved HumanController) {
	c.myTurn = saved.myTurn
	c.card = saved.card
	c.row, c.col, c.hasCell = saved.row, saved.col, saved.hasCell
}
