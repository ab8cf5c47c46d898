// Package report renders cards and rounds as text
package report

import (
	"fmt"
	"strings"

	"blackjackround/internal/game"
)

// Cards returns the compact form of the cards, e.g. "A♥, 0♠"
func Cards(cards []game.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.String()
	}

	return strings.Join(s, ", ")
}

// CardsVerbose returns the long form of the cards, e.g. "ACE of HEARTS, TEN of SPADES"
func CardsVerbose(cards []game.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Name()
	}

	return strings.Join(s, ", ")
}

// HandLine returns "<who> hand: <cards>, value: <n>"
func HandLine(who game.Participant, h *game.Hand) string {
	return fmt.Sprintf("%s hand: %s, value: %d", who, Cards(h.Cards()), h.Value())
}

// Outcome returns the line announcing the winner
func Outcome(r *game.Round) string {
	switch r.Result {
	case game.ResultDealerWin:
		return "Dealer wins. Boo!"
	case game.ResultPlayerWin:
		return "Player wins. Yae!"
	case game.ResultPush:
		return "Push. Nobody wins."
	}

	return "No result."
}

// DeckSummary returns the remaining deck in compact and long form
func DeckSummary(d *game.Deck) string {
	cards := d.Cards()

	var sb strings.Builder
	fmt.Fprintf(&sb, "What's left in the deck of %d cards\n", len(cards))
	sb.WriteString(Cards(cards))
	sb.WriteString("\n")
	sb.WriteString(CardsVerbose(cards))
	return sb.String()
}

// Text returns the full report of a round
func Text(r *game.Round) string {
	var sb strings.Builder
	sb.WriteString(HandLine(game.Dealer, r.Dealer))
	sb.WriteString("\n")
	sb.WriteString(HandLine(game.Player, r.Player))
	sb.WriteString("\n")
	sb.WriteString(Outcome(r))
	sb.WriteString("\n")
	sb.WriteString(DeckSummary(r.Deck))
	sb.WriteString("\n")
	return sb.String()
}
