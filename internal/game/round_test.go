package game

import (
	"testing"

	"blackjackround/internal/rng"

	"github.com/stretchr/testify/assert"
)

// deckOf returns a deck whose top card is the first card given
func deckOf(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}

	return d
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name           string
		player, dealer int
		tie            TiePolicy
		want           Result
	}{
		{"player higher", 20, 18, TieToPlayer, ResultPlayerWin},
		{"dealer higher", 17, 21, TieToPlayer, ResultDealerWin},
		{"tie to player", 19, 19, TieToPlayer, ResultPlayerWin},
		{"tie to dealer", 19, 19, TieToDealer, ResultDealerWin},
		{"tie is a push", 19, 19, TiePush, ResultPush},
		{"both bust tie", 24, 24, TieToPlayer, ResultPlayerWin},
		{"both bust push", 24, 24, TiePush, ResultPush},
		// a bust is not special cased, the higher value still wins
		{"player bust is higher", 22, 20, TieToPlayer, ResultPlayerWin},
		{"dealer bust is higher", 12, 23, TiePush, ResultDealerWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.player, tt.dealer, tt.tie))
			// same inputs, same result
			assert.Equal(t, Decide(tt.player, tt.dealer, tt.tie), Decide(tt.player, tt.dealer, tt.tie))
		})
	}
}

func TestParseTiePolicy(t *testing.T) {
	a := assert.New(t)

	for in, want := range map[string]TiePolicy{
		"":         TieToPlayer,
		"player":   TieToPlayer,
		" Dealer ": TieToDealer,
		"PUSH":     TiePush,
	} {
		got, err := ParseTiePolicy(in)
		a.NoError(err)
		a.Equal(want, got)
	}

	_, err := ParseTiePolicy("house")
	a.ErrorIs(err, ErrUnknownTiePolicy)

	a.Equal("dealer", TieToDealer.String())
	a.Equal("push", TiePush.String())
	a.Equal("player", TieToPlayer.String())
}

func TestPlay_DealOrder(t *testing.T) {
	d := deckOf(
		NewCard(Ace, Spades),
		NewCard(King, Spades),
		NewCard(Nine, Hearts),
		NewCard(Nine, Clubs),
		NewCard(Two, Diamonds),
	)

	r := Play(d, TieToPlayer)

	assert.Equal(t, []Card{NewCard(Ace, Spades), NewCard(King, Spades)}, r.Player.Cards())
	assert.Equal(t, []Card{NewCard(Nine, Hearts), NewCard(Nine, Clubs)}, r.Dealer.Cards())
	assert.Equal(t, 21, r.Player.Value())
	assert.Equal(t, 18, r.Dealer.Value())
	assert.Equal(t, ResultPlayerWin, r.Result)
	assert.Equal(t, []Card{NewCard(Two, Diamonds)}, r.Deck.Cards())

	p, ok := r.Winner()
	assert.True(t, ok)
	assert.Equal(t, Player, p)
	assert.Same(t, r.Dealer, r.Hand(Dealer))
	assert.Same(t, r.Player, r.Hand(Player))
}

func TestPlay_DealerMustExceed(t *testing.T) {
	d := deckOf(
		NewCard(King, Hearts), NewCard(Eight, Hearts),
		NewCard(Queen, Clubs), NewCard(Eight, Clubs),
	)

	r := Play(d, TieToPlayer)
	assert.Equal(t, ResultPlayerWin, r.Result)

	d = deckOf(
		NewCard(King, Hearts), NewCard(Eight, Hearts),
		NewCard(Queen, Clubs), NewCard(Eight, Clubs),
	)

	r = Play(d, TiePush)
	assert.Equal(t, ResultPush, r.Result)
	_, ok := r.Winner()
	assert.False(t, ok)
}

func TestPlay_DealerWins(t *testing.T) {
	d := deckOf(
		NewCard(Two, Hearts), NewCard(Three, Hearts),
		NewCard(Ace, Clubs), NewCard(Ace, Diamonds),
	)

	r := Play(d, TieToPlayer)
	assert.Equal(t, 5, r.Player.Value())
	assert.Equal(t, 12, r.Dealer.Value())
	assert.Equal(t, ResultDealerWin, r.Result)

	p, ok := r.Winner()
	assert.True(t, ok)
	assert.Equal(t, Dealer, p)
	assert.Equal(t, 0, r.Deck.Remaining())
}

func TestPlay_ShortDeckPanics(t *testing.T) {
	d := deckOf(NewCard(Two, Hearts), NewCard(Three, Hearts), NewCard(Four, Hearts))

	assert.PanicsWithValue(t, ErrEndOfDeck, func() {
		Play(d, TieToPlayer)
	})
}

func TestNewRound(t *testing.T) {
	r := NewRound(rng.NewSeeded(11), TieToDealer)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", r.ID.String())
	assert.Equal(t, 2, r.Player.Len())
	assert.Equal(t, 2, r.Dealer.Len())
	assert.Equal(t, 48, r.Deck.Remaining())
	assert.Equal(t, TieToDealer, r.Tie)
	assert.Equal(t, Decide(r.Player.Value(), r.Dealer.Value(), TieToDealer), r.Result)

	// nothing lost, nothing duplicated
	all := append(r.Deck.Cards(), r.Player.Cards()...)
	all = append(all, r.Dealer.Cards()...)
	assert.Equal(t, fullSet(), cardSet(all))

	again := NewRound(rng.NewSeeded(11), TieToDealer)
	assert.Equal(t, r.Player.Cards(), again.Player.Cards())
	assert.Equal(t, r.Dealer.Cards(), again.Dealer.Cards())
	assert.NotEqual(t, r.ID, again.ID)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "player", ResultPlayerWin.String())
	assert.Equal(t, "dealer", ResultDealerWin.String())
	assert.Equal(t, "push", ResultPush.String())
	assert.Equal(t, "none", ResultNone.String())
	assert.Equal(t, "Dealer", Dealer.String())
	assert.Equal(t, "Player", Player.String())
}
