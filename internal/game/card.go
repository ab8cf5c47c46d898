package game

// Rank is the rank of a playing card
type Rank int

// ranks, in deck build order
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = map[Rank]string{
	Ace: "ACE", Two: "TWO", Three: "THREE", Four: "FOUR", Five: "FIVE", Six: "SIX", Seven: "SEVEN",
	Eight: "EIGHT", Nine: "NINE", Ten: "TEN", Jack: "JACK", Queen: "QUEEN", King: "KING",
}

// Ranks returns every rank from Ace to King
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks)
	return out
}

// Valid returns true if r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Number returns the face number of the rank. Ace is 1, King is 13.
// It is not the blackjack value, see Points.
func (r Rank) Number() int {
	return int(r)
}

// Points returns the value the rank scores in a hand before any ace is softened
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// Name returns the rank spelled out, e.g. "QUEEN"
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}

	return "UNKNOWN"
}

// Glyph returns a single character for the rank. Ten is '0' so every glyph is one wide.
func (r Rank) Glyph() rune {
	switch r {
	case Ace:
		return 'A'
	case Ten:
		return '0'
	case Jack:
		return 'J'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}

	if r.Valid() {
		return rune('0' + int(r))
	}

	return '?'
}

func (r Rank) String() string {
	return r.Name()
}

// Suit is the suit of a playing card
type Suit int

// suits, in deck build order
const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Suits returns every suit from Hearts to Spades
func Suits() []Suit {
	out := make([]Suit, len(suits))
	copy(out, suits)
	return out
}

// Valid returns true if s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// Name returns the suit spelled out, e.g. "HEARTS"
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "HEARTS"
	case Diamonds:
		return "DIAMONDS"
	case Clubs:
		return "CLUBS"
	case Spades:
		return "SPADES"
	}

	return "UNKNOWN"
}

// Glyph returns the suit symbol
func (s Suit) Glyph() rune {
	switch s {
	case Hearts:
		return '♥'
	case Diamonds:
		return '♦'
	case Clubs:
		return '♣'
	case Spades:
		return '♠'
	}

	return '?'
}

func (s Suit) String() string {
	return s.Name()
}

// Card is an individual playing card.
// The zero value is not a card and is used to mean "no card".
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid returns true if both the rank and the suit are known
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns the compact form, e.g. "A♥" or "0♠"
func (c Card) String() string {
	return string([]rune{c.Rank.Glyph(), c.Suit.Glyph()})
}

// Name returns the long form, e.g. "ACE of HEARTS"
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}
