package bot

import (
	"math/rand"
	"strings"

	"toco/internal/domain"
)

// botIDPrefix marks synthetic user ids so the port can tell bot seats from
// human presences.
const botIDPrefix = "bot:"

// IsBot reports whether the given user id represents a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}

var botNames = []string{"Zeca", "Tonho"}

// Agent is a reactive Toco opponent. Card play is deterministic for a given
// hand and table, which keeps its tests simple; only trump selection and the
// pacing in the match handler use randomness.
type Agent struct {
	UserID string
	Name   string
	rng    *rand.Rand
}

// NewAgent creates the bot occupying the given seat index.
func NewAgent(seat int, rng *rand.Rand) *Agent {
	name := botNames[seat%len(botNames)]
	return &Agent{
		UserID: botIDPrefix + strings.ToLower(name),
		Name:   name,
		rng:    rng,
	}
}

// ChooseTrump picks a trump suit. The choice is made before the deal, so
// there is no hand to reason about; a uniform pick is as good as any.
func (a *Agent) ChooseTrump() domain.Suit {
	return domain.Suits[a.rng.Intn(len(domain.Suits))]
}

// Play picks the card to put on the table. Leading: throw the weakest card.
// Following: win as cheaply as possible, otherwise dump the card worth the
// fewest points to the opponent.
func (a *Agent) Play(hand []domain.Card, table []domain.Play, trump domain.Suit) domain.Card {
	if len(hand) == 0 {
		return domain.Card{}
	}
	if len(table) == 0 {
		return weakestCard(hand, trump, "")
	}

	lead := table[0].Card.Suit
	toBeat := domain.CardPower(table[len(table)-1].Card, trump, lead)

	var cheapestWinner *domain.Card
	for i := range hand {
		c := hand[i]
		if domain.CardPower(c, trump, lead) <= toBeat {
			continue
		}
		if cheapestWinner == nil || domain.CardPower(c, trump, lead) < domain.CardPower(*cheapestWinner, trump, lead) {
			cheapestWinner = &hand[i]
		}
	}
	if cheapestWinner != nil {
		return *cheapestWinner
	}
	return cheapestDiscard(hand, trump, lead)
}

// weakestCard returns the card with the lowest trick power.
func weakestCard(hand []domain.Card, trump, lead domain.Suit) domain.Card {
	best := hand[0]
	for _, c := range hand[1:] {
		if domain.CardPower(c, trump, lead) < domain.CardPower(best, trump, lead) {
			best = c
		}
	}
	return best
}

// cheapestDiscard returns the card that gives away the fewest points,
// breaking ties toward lower power.
func cheapestDiscard(hand []domain.Card, trump, lead domain.Suit) domain.Card {
	best := hand[0]
	for _, c := range hand[1:] {
		cp, bp := domain.CardPoints(c, trump), domain.CardPoints(best, trump)
		if cp < bp || (cp == bp && domain.CardPower(c, trump, lead) < domain.CardPower(best, trump, lead)) {
			best = c
		}
	}
	return best
}
