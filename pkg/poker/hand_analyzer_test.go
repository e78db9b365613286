package poker

import (
	"testing"

	"drawpoker-server/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2c,3c,3d,3h,3s"))
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 3, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)

	h = NewHandAnalyzer(deck.CardsFromString("9s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2c,14c,2d,14d,14h"))
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 2}, r)

	h = NewHandAnalyzer(deck.CardsFromString("3c,3d,3h,4c,5d"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("5c,5d,6h,6d,3h"))
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{6, 5}, r)
	assert.Equal(t, []int{6, 5, 3}, h.GetKey())

	h = NewHandAnalyzer(deck.CardsFromString("2c,2h,3h,4h,5d"))
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2c,5c,9h,5h,6d"))
	r, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, 5, r)
	assert.Equal(t, []int{5, 9, 6, 5, 5, 2}, h.GetKey())

	h = NewHandAnalyzer(deck.CardsFromString("2c,3c,4h,5h,7d"))
	r, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("14c,2c,5c,8d,3h"))
	r, ok := h.GetHighCard()
	assert.Equal(t, 14, r)
	assert.True(t, ok)
	assert.Equal(t, []int{14, 8, 5, 3, 2}, h.GetKey())
}

func TestHandAnalyzer_DoesNotModifyInput(t *testing.T) {
	cards := deck.CardsFromString("2c,14c,5c,8d,3h")
	NewHandAnalyzer(cards)
	assert.Equal(t, "2c,14c,5c,8d,3h", deck.CardsToString(cards))
}

func TestHandAnalyzer_GetCategory(t *testing.T) {
	tests := []struct {
		cards    string
		category Category
	}{
		{"2c,2d,2h,2s,3h", FourOfAKind},
		{"2c,2d,2h,3c,3h", FullHouse},
		{"2c,5c,9c,11c,13c", Flush},
		{"2c,2d,2h,3c,4h", ThreeOfAKind},
		{"2c,2d,3c,3d,4h", TwoPair},
		{"2c,2d,3c,4c,5h", OnePair},
		{"2c,4c,13c,5c,8h", HighCard},
		{"3c,4d,5h,6s,7c", Straight},
		{"10c,11d,12h,13s,14c", Straight},
		{"3c,4c,5c,6c,7c", StraightFlush},
		{"10h,11h,12h,13h,14h", StraightFlush},
		// an ace only plays high
		{"14c,2d,3h,4s,5c", HighCard},
		{"14c,2c,3c,4c,5c", Flush},
		{"13c,14d,2h,3s,4c", HighCard},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			h := NewHandAnalyzer(deck.CardsFromString(test.cards))
			assert.Equal(t, test.category, h.GetCategory(), h.GetCategory().String())
		})
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.Equal(t, "Pair", OnePair.String())
	assert.PanicsWithValue(t, "unknown category: -1", func() {
		_ = Category(-1).String()
	})
}

func BenchmarkNewHandAnalyzer(b *testing.B) {
	cards := deck.CardsFromString("3s,5s,6h,7h,11c")
	for i := 0; i < b.N; i++ {
		NewHandAnalyzer(cards)
	}
}
