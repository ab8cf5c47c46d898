package game

import "fmt"

// Hand is the cards held by the player or the dealer
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, 10),
	}
}

// AddCard appends the card to the hand.
// An absent card means the deck ran out while dealing, which is a bug, so it panics.
func (h *Hand) AddCard(card Card) {
	if !card.Valid() {
		panic(fmt.Sprintf("cannot add invalid card %#v to hand", card))
	}

	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in the order they were dealt
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the blackjack value of the hand
func (h *Hand) Value() int {
	return CalculateScore(h.cards)
}

// IsBust returns true if the hand is over 21
func (h *Hand) IsBust() bool {
	return IsBust(h.cards)
}

// IsBlackjack returns true for a natural
func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.cards)
}
