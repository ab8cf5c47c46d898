package game

import (
	"errors"
	"fmt"
	"strings"

	"blackjackround/internal/rng"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrUnknownTiePolicy is returned by ParseTiePolicy
var ErrUnknownTiePolicy = errors.New("unknown tie policy")

// Participant is a seat at the table
type Participant int

// participants
const (
	Player Participant = iota
	Dealer
)

func (p Participant) String() string {
	if p == Dealer {
		return "Dealer"
	}

	return "Player"
}

// Result is the outcome of a round
type Result int

// results
const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultPush
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "player"
	case ResultDealerWin:
		return "dealer"
	case ResultPush:
		return "push"
	}

	return "none"
}

// TiePolicy decides the result when both hands have the same value
type TiePolicy int

// tie policies
const (
	// TieToPlayer means the dealer must beat the player to win
	TieToPlayer TiePolicy = iota
	TieToDealer
	TiePush
)

func (t TiePolicy) String() string {
	switch t {
	case TieToDealer:
		return "dealer"
	case TiePush:
		return "push"
	}

	return "player"
}

// ParseTiePolicy parses "player", "dealer" or "push".
// An empty string is TieToPlayer.
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "player":
		return TieToPlayer, nil
	case "dealer":
		return TieToDealer, nil
	case "push":
		return TiePush, nil
	}

	return TieToPlayer, fmt.Errorf("%w: %q", ErrUnknownTiePolicy, s)
}

// Decide compares the two hand values. The higher value wins and an equal value,
// including two busted hands, is settled by the tie policy.
func Decide(player, dealer int, tie TiePolicy) Result {
	switch {
	case player > dealer:
		return ResultPlayerWin
	case dealer > player:
		return ResultDealerWin
	}

	switch tie {
	case TieToDealer:
		return ResultDealerWin
	case TiePush:
		return ResultPush
	default:
		return ResultPlayerWin
	}
}

// Round is a single deal: two cards each, scored and compared
type Round struct {
	ID     uuid.UUID
	Player *Hand
	Dealer *Hand
	Deck   *Deck
	Tie    TiePolicy
	Result Result
}

// NewRound shuffles a new deck with g and plays a round from it
func NewRound(g rng.Generator, tie TiePolicy) *Round {
	d := NewDeck()
	d.Shuffle(g)
	return Play(d, tie)
}

// Play deals from d in the order player, player, dealer, dealer and decides the winner.
// d must hold at least four cards.
func Play(d *Deck, tie TiePolicy) *Round {
	r := &Round{
		ID:     uuid.New(),
		Player: NewHand(),
		Dealer: NewHand(),
		Deck:   d,
		Tie:    tie,
	}

	d.Deal(r.Player)
	d.Deal(r.Player)

	d.Deal(r.Dealer)
	d.Deal(r.Dealer)

	r.Result = Decide(r.Player.Value(), r.Dealer.Value(), tie)

	logrus.WithFields(logrus.Fields{
		"round":  r.ID,
		"player": r.Player.Value(),
		"dealer": r.Dealer.Value(),
		"result": r.Result,
	}).Debug("round dealt")

	return r
}

// Hand returns the hand of the participant
func (r *Round) Hand(p Participant) *Hand {
	if p == Dealer {
		return r.Dealer
	}

	return r.Player
}

// Winner returns the participant who won, ok is false on a push
func (r *Round) Winner() (p Participant, ok bool) {
	switch r.Result {
	case ResultPlayerWin:
		return Player, true
	case ResultDealerWin:
		return Dealer, true
	}

	return Player, false
}
