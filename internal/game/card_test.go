package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardCreation(t *testing.T) {
	card := NewCard(Ace, Diamonds)
	assert.Equal(t, "DIAMONDS", card.Suit.Name())
	assert.Equal(t, "ACE", card.Rank.Name())
	assert.True(t, card.Valid())
	assert.False(t, Card{}.Valid())
}

func TestRank_Number(t *testing.T) {
	for i, rank := range Ranks() {
		assert.Equal(t, i+1, rank.Number())
	}

	assert.Equal(t, 13, len(Ranks()))
	assert.Equal(t, Ace, Ranks()[0])
	assert.Equal(t, King, Ranks()[12])
}

func TestRank_Points(t *testing.T) {
	a := assert.New(t)
	a.Equal(11, Ace.Points())
	a.Equal(2, Two.Points())
	a.Equal(9, Nine.Points())
	a.Equal(10, Ten.Points())
	a.Equal(10, Jack.Points())
	a.Equal(10, Queen.Points())
	a.Equal(10, King.Points())
}

func TestRank_Glyph(t *testing.T) {
	var glyphs string
	for _, rank := range Ranks() {
		glyphs += string(rank.Glyph())
	}

	assert.Equal(t, "A234567890JQK", glyphs)
	assert.Equal(t, '?', Rank(0).Glyph())
	assert.Equal(t, "UNKNOWN", Rank(14).Name())
}

func TestSuit(t *testing.T) {
	a := assert.New(t)
	a.Equal([]Suit{Hearts, Diamonds, Clubs, Spades}, Suits())

	var names, glyphs []string
	for _, suit := range Suits() {
		names = append(names, suit.Name())
		glyphs = append(glyphs, string(suit.Glyph()))
	}

	a.Equal([]string{"HEARTS", "DIAMONDS", "CLUBS", "SPADES"}, names)
	a.Equal([]string{"♥", "♦", "♣", "♠"}, glyphs)
	a.False(Suit(0).Valid())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♥", NewCard(Ace, Hearts).String())
	assert.Equal(t, "0♠", NewCard(Ten, Spades).String())
	assert.Equal(t, "7♦", NewCard(Seven, Diamonds).String())
	assert.Equal(t, "K♣", NewCard(King, Clubs).String())
	assert.Equal(t, "QUEEN of CLUBS", NewCard(Queen, Clubs).Name())
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, NewCard(Ace, Hearts) == NewCard(Ace, Hearts))
	assert.False(t, NewCard(Ace, Hearts) == NewCard(Ace, Spades))
	assert.False(t, NewCard(Ace, Hearts) == NewCard(Two, Hearts))
}
