package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Player is one side of a game: a name, a deck and a hand of cards in draw
// order. Cards in the hand are addressed by index by controllers. Only the
// Model draws and removes cards.
type Player struct {
	name     string
	side     Side
	deck     *Deck
	hand     []Card
	handSize int
}

// NewPlayer returns a player with an empty hand. The hand size may be at most
// a third of the deck.
func NewPlayer(name string, side Side, deck *Deck, handSize int) (*Player, error) {
	if deck == nil {
		deck = NewDeck(nil)
	}
	if handSize < 0 || handSize > deck.Len()/3 {
		return nil, fmt.Errorf("%w: hand size %d with a deck of %d cards", ErrHandSize, handSize, deck.Len())
	}
	return &Player{
		name:     name,
		side:     side,
		deck:     deck,
		hand:     make([]Card, 0, handSize),
		handSize: handSize,
	}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Side() Side {
	return p.side
}

// HandSize is the number of cards dealt at the start of the game.
func (p *Player) HandSize() int {
	return p.handSize
}

// Hand returns a copy of the hand in draw order.
func (p *Player) Hand() []Card {
	hand := make([]Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

// DeckSize is the number of cards left to draw.
func (p *Player) DeckSize() int {
	return p.deck.Len()
}

// HasCard reports whether the hand holds a card structurally equal to card.
func (p *Player) HasCard(card Card) bool {
	return slices.Contains(p.hand, card)
}

// IndexOf returns the hand index of the first card equal to card, or -1.
func (p *Player) IndexOf(card Card) int {
	return slices.Index(p.hand, card)
}

func (p *Player) String() string {
	return fmt.Sprintf("%s(%s)", p.name, p.side)
}

// draw moves the top card of the deck to the end of the hand.
func (p *Player) draw() bool {
	card, ok := p.deck.Draw()
	if ok {
		p.hand = append(p.hand, card)
	}
	return ok
}

// remove drops the first card in the hand equal to card.
func (p *Player) remove(card Card) bool {
	i := slices.Index(p.hand, card)
	if i < 0 {
		return false
	}
	p.hand = slices.Delete(p.hand, i, i+1)
	return true
}
