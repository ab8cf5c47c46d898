package game

// Blackjack is the highest value a hand can have without busting
const Blackjack = 21

// CalculateScore returns the blackjack value of the cards.
// Every ace starts at 11; while the total is over 21, aces are dropped to 1 one at a time.
// The result is not capped, a hand with no aces left to soften stays over 21.
func CalculateScore(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.Rank.Points()
		if card.Rank == Ace {
			aces++
		}
	}

	for score > Blackjack && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// IsBlackjack returns true for a two card 21
func IsBlackjack(cards []Card) bool {
	return len(cards) == 2 && CalculateScore(cards) == Blackjack
}

// IsBust returns true if the cards are over 21 after softening aces
func IsBust(cards []Card) bool {
	return CalculateScore(cards) > Blackjack
}
