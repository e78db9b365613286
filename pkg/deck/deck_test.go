package deck

import (
	"testing"

	"drawpoker-server/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, 52, d.CardsLeft())

	seen := make(map[Card]bool)
	for _, card := range d.cards {
		seen[card] = true
	}

	assert.Equal(t, 52, len(seen))
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if err != nil {
			t.Fatalf("expected err to be nil, got %v", err)
		}

		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
		assert.Equal(t, 51-i, d.CardsLeft())
	}

	assert.Equal(t, 52, len(seen))

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := d.Draw()
	assert.Equal(t, Card{}, card)
	assert.ErrorIs(t, err, ErrEndOfDeck)
}

func TestDeck_DrawSeeded(t *testing.T) {
	a := assert.New(t)

	d1 := NewWithGenerator(rng.NewSeeded(42))
	d2 := NewWithGenerator(rng.NewSeeded(42))

	c1, err := d1.DrawN(5)
	a.NoError(err)
	c2, err := d2.DrawN(5)
	a.NoError(err)

	a.Equal(CardsToString(c1), CardsToString(c2))
	a.Equal(47, d1.CardsLeft())
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	d := New()

	cards, err := d.DrawN(50)
	a.NoError(err)
	a.Len(cards, 50)

	cards, err = d.DrawN(3)
	a.Nil(cards)
	a.ErrorIs(err, ErrEndOfDeck)
	a.Equal(0, d.CardsLeft())
}
