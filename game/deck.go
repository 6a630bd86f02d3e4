package game

// Deck is an ordered pile of cards drawn from the front.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding a copy of cards, first card on top.
func NewDeck(cards []Card) *Deck {
	cardsCopy := make([]Card, len(cards))
	copy(cardsCopy, cards)
	return &Deck{cards: cardsCopy}
}

// Draw removes and returns the top card. It returns false on an empty deck.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

func (d *Deck) Len() int {
	return len(d.cards)
}
