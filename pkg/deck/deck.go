package deck

import (
	"errors"

	"drawpoker-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
// Cards are kept in build order; randomness happens at draw time
type Deck struct {
	cards []Card
	rng   rng.Generator
}

// New returns a full deck of cards that draws with a crypto-backed generator
func New() *Deck {
	return NewWithGenerator(rng.Crypto{})
}

// NewWithGenerator returns a full deck of cards that uses the provided generator
// This is mostly useful for tests that need a repeatable deal
func NewWithGenerator(gen rng.Generator) *Deck {
	d := &Deck{
		rng: gen,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.cards = cards
}

// Draw removes and returns a card chosen uniformly at random from the remaining cards
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrEndOfDeck
	}

	i := d.rng.Intn(n)
	card := d.cards[i]

	// order is not meaningful, so swap the last card into the hole
	d.cards[i] = d.cards[n-1]
	d.cards = d.cards[:n-1]

	return card, nil
}

// DrawN draws n cards
// Cards drawn before an error are discarded along with the error
func (d *Deck) DrawN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}
