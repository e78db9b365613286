package poker

import (
	"sort"

	"drawpoker-server/pkg/deck"
)

// HandAnalyzer classifies five cards and builds the tie-break key used to
// order hands of the same category
type HandAnalyzer struct {
	cards []deck.Card
	flush bool
	quads []int
	trips []int
	pairs []int

	straight bool
	category Category
	key      []int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The cards are copied and sorted by rank, descending. The caller's slice is untouched.
func NewHandAnalyzer(cards []deck.Card) *HandAnalyzer {
	newCards := make([]deck.Card, len(cards))
	copy(newCards, cards)

	sort.Stable(sort.Reverse(sortByRank(newCards)))

	h := &HandAnalyzer{
		cards: newCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()
	h.calculateKey()

	return h
}

// analyzeHand groups the sorted cards by rank and checks for a flush and a straight
func (h *HandAnalyzer) analyzeHand() {
	h.flush = isFlush(h.cards)
	h.straight = isStraight(h.cards)

	nCards := len(h.cards)
	for i := 0; i < nCards; {
		j := i
		for j < nCards && h.cards[j].Rank == h.cards[i].Rank {
			j++
		}

		// groups are discovered highest rank first
		switch j - i {
		case 4:
			h.quads = append(h.quads, h.cards[i].Rank)
		case 3:
			h.trips = append(h.trips, h.cards[i].Rank)
		case 2:
			h.pairs = append(h.pairs, h.cards[i].Rank)
		}

		i = j
	}
}

func (h *HandAnalyzer) calculateCategory() {
	switch {
	case h.flush && h.straight:
		h.category = StraightFlush
	case len(h.quads) > 0:
		h.category = FourOfAKind
	case len(h.trips) > 0 && len(h.pairs) > 0:
		h.category = FullHouse
	case h.flush:
		h.category = Flush
	case h.straight:
		h.category = Straight
	case len(h.trips) > 0:
		h.category = ThreeOfAKind
	case len(h.pairs) == 2:
		h.category = TwoPair
	case len(h.pairs) == 1:
		h.category = OnePair
	default:
		h.category = HighCard
	}
}

// calculateKey builds the ordered tie-break key for the category
func (h *HandAnalyzer) calculateKey() {
	switch h.category {
	case OnePair:
		h.key = append([]int{h.pairs[0]}, h.ranks()...)
	case ThreeOfAKind:
		h.key = append([]int{h.trips[0]}, h.ranks()...)
	case FourOfAKind:
		h.key = append([]int{h.quads[0]}, h.ranks()...)
	case TwoPair:
		// high pair, low pair, then the kicker
		h.key = []int{h.pairs[0], h.pairs[1], h.kicker()}
	case FullHouse:
		h.key = []int{h.trips[0], h.pairs[0]}
	default:
		h.key = h.ranks()
	}
}

func (h *HandAnalyzer) ranks() []int {
	ranks := make([]int, len(h.cards))
	for i, card := range h.cards {
		ranks[i] = card.Rank
	}

	return ranks
}

// kicker returns the highest rank that is not part of a pair
func (h *HandAnalyzer) kicker() int {
	for _, card := range h.cards {
		paired := false
		for _, rank := range h.pairs {
			if card.Rank == rank {
				paired = true
				break
			}
		}

		if !paired {
			return card.Rank
		}
	}

	return 0
}

// GetCategory returns the category of the cards
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetKey returns the tie-break key
// Keys are only comparable between hands of the same category
func (h *HandAnalyzer) GetKey() []int {
	key := make([]int, len(h.key))
	copy(key, h.key)
	return key
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and pair ranks of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []int{h.trips[0], h.pairs[0]}, true
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the two pair ranks, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() (int, bool) {
	if len(h.cards) == 0 {
		return 0, false
	}

	return h.cards[0].Rank, true
}
