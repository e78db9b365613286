package poker

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"drawpoker-server/pkg/deck"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrHandSize is returned when a hand is built from anything but five cards
var ErrHandSize = errors.New("a hand must have exactly five cards")

// Hand is exactly five cards held by a player
type Hand struct {
	cards []deck.Card
}

// NewHand returns a hand of the five supplied cards
func NewHand(cards []deck.Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, ErrHandSize
	}

	c := make([]deck.Card, HandSize)
	copy(c, cards)

	return &Hand{cards: c}, nil
}

// HandFromString is a test helper, see deck.CardsFromString for the format
func HandFromString(s string) *Hand {
	h, err := NewHand(deck.CardsFromString(s))
	if err != nil {
		panic(err)
	}

	return h
}

// Cards returns a copy of the cards in their current order
func (h *Hand) Cards() []deck.Card {
	c := make([]deck.Card, len(h.cards))
	copy(c, h.cards)
	return c
}

// Sort orders the cards from highest to lowest rank, in place
func (h *Hand) Sort() {
	sort.Stable(sort.Reverse(sortByRank(h.cards)))
}

// Category returns the category of the hand
func (h *Hand) Category() Category {
	return NewHandAnalyzer(h.cards).GetCategory()
}

// Describe names the category and the ranks that make it, i.e., "Full house, 9s over 2s"
func (h *Hand) Describe() string {
	a := NewHandAnalyzer(h.cards)
	category := a.GetCategory()

	switch category {
	case FourOfAKind:
		rank, _ := a.GetFourOfAKind()
		return fmt.Sprintf("%s, %s", category, rankPlural(rank))
	case FullHouse:
		ranks, _ := a.GetFullHouse()
		return fmt.Sprintf("%s, %s over %s", category, rankPlural(ranks[0]), rankPlural(ranks[1]))
	case ThreeOfAKind:
		rank, _ := a.GetThreeOfAKind()
		return fmt.Sprintf("%s, %s", category, rankPlural(rank))
	case TwoPair:
		ranks, _ := a.GetTwoPair()
		return fmt.Sprintf("%s, %s and %s", category, rankPlural(ranks[0]), rankPlural(ranks[1]))
	case OnePair:
		rank, _ := a.GetPair()
		return fmt.Sprintf("%s of %s", category, rankPlural(rank))
	default:
		rank, _ := a.GetHighCard()
		return fmt.Sprintf("%s, %s high", category, deck.RankName(rank))
	}
}

func rankPlural(rank int) string {
	return deck.RankName(rank) + "s"
}

// Compare returns a positive number if h beats other, negative if other
// beats h, and 0 if the hands tie
func (h *Hand) Compare(other *Hand) int {
	return Compare(h, other)
}

func (h *Hand) String() string {
	s := make([]string, len(h.cards))
	for i, card := range h.cards {
		s[i] = card.String()
	}

	return "|| " + strings.Join(s, " | ") + " ||"
}

// Compare orders two hands: category first, then the category's tie-break key
// Suits never break a tie
func Compare(a, b *Hand) int {
	ha := NewHandAnalyzer(a.cards)
	hb := NewHandAnalyzer(b.cards)

	if ca, cb := ha.GetCategory(), hb.GetCategory(); ca != cb {
		if ca > cb {
			return 1
		}

		return -1
	}

	return compareKeys(ha.key, hb.key)
}

func compareKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}

	return 0
}

// Best returns the indexes of every hand that ties for the best hand
// Nil hands are skipped
func Best(hands []*Hand) []int {
	var best []int
	for i, hand := range hands {
		if hand == nil {
			continue
		}

		if len(best) == 0 {
			best = []int{i}
			continue
		}

		switch cmp := Compare(hand, hands[best[0]]); {
		case cmp > 0:
			best = []int{i}
		case cmp == 0:
			best = append(best, i)
		}
	}

	return best
}
