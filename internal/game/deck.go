package game

import (
	"errors"

	"blackjackround/internal/rng"
)

// ErrEndOfDeck is the panic value of Deal when there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is an ordered pile of cards. Cards are drawn from the end.
type Deck struct {
	cards []Card
}

// NewDeck returns the 52 cards in build order: for each suit, Ace through King.
// The deck is unshuffled; call Shuffle before dealing.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, len(suits)*len(ranks)),
	}

	for _, suit := range suits {
		for _, rank := range ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	return d
}

// Shuffle permutes the cards in place (Fisher-Yates)
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card.
// If the deck is empty, ok is false.
func (d *Deck) Draw() (card Card, ok bool) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, false
	}

	card = d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, true
}

// Deal draws the top card into the hand.
// Dealing from an empty deck is a bug in the caller and panics with ErrEndOfDeck.
func (d *Deck) Deal(h *Hand) {
	card, ok := d.Draw()
	if !ok {
		panic(ErrEndOfDeck)
	}

	h.AddCard(card)
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the cards left, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
