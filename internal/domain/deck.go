package domain

import (
	"fmt"
	"math/rand"
)

// DeckSize is the full Toco deck: 4 suits x 10 ranks.
const DeckSize = 40

// NewDeck produces an ordered 40-card deck. Each card gets a deck-unique id.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r, ID: fmt.Sprintf("%s-%s", s, r)})
		}
	}
	return deck
}

// ShuffleDeck returns a uniformly shuffled copy of deck using a
// Fisher-Yates/Durstenfeld pass. The input is not mutated.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
