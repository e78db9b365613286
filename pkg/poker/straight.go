package poker

import "drawpoker-server/pkg/deck"

// isStraight expects the cards to be sorted by rank, descending
// Each card must be exactly one rank below the previous card. An ace only
// counts high, so A-5-4-3-2 is not a straight.
func isStraight(cards []deck.Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i-1].Rank-1 != cards[i].Rank {
			return false
		}
	}

	return true
}

func isFlush(cards []deck.Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Suit != cards[0].Suit {
			return false
		}
	}

	return true
}
