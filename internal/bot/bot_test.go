package bot

import (
	"math/rand"
	"testing"

	"toco/internal/domain"
)

func TestIsBot(t *testing.T) {
	if !IsBot("bot:zeca") {
		t.Errorf("bot:zeca should be a bot")
	}
	if IsBot("user-123") || IsBot("") {
		t.Errorf("plain user ids must not look like bots")
	}
}

func TestNewAgentSeats(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a0 := NewAgent(0, rng)
	a1 := NewAgent(1, rng)

	if a0.UserID == a1.UserID {
		t.Errorf("seat agents share id %q", a0.UserID)
	}
	for _, a := range []*Agent{a0, a1} {
		if !IsBot(a.UserID) {
			t.Errorf("agent id %q not recognized as bot", a.UserID)
		}
		if a.Name == "" {
			t.Errorf("agent %q has no display name", a.UserID)
		}
	}
}

func TestChooseTrumpIsValid(t *testing.T) {
	a := NewAgent(0, rand.New(rand.NewSource(9)))
	for i := 0; i < 50; i++ {
		if suit := a.ChooseTrump(); !domain.IsValidSuit(suit) {
			t.Fatalf("picked invalid suit %q", suit)
		}
	}
}

func TestPlayLeadsWeakest(t *testing.T) {
	a := NewAgent(0, rand.New(rand.NewSource(1)))
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankA, ID: "strong-trump"},
		{Suit: domain.SuitClubs, Rank: domain.Rank6, ID: "weak"},
		{Suit: domain.SuitSpades, Rank: domain.RankK, ID: "middling"},
	}

	got := a.Play(hand, nil, domain.SuitHearts)
	if got.ID != "weak" {
		t.Errorf("lead = %s, want the weak club six", got.ID)
	}
}

func TestPlayWinsCheaply(t *testing.T) {
	a := NewAgent(0, rand.New(rand.NewSource(1)))
	table := []domain.Play{
		{PlayerID: "opp", Card: domain.Card{Suit: domain.SuitClubs, Rank: domain.RankK, ID: "ck"}},
	}
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankA, ID: "big-trump"},
		{Suit: domain.SuitClubs, Rank: domain.Rank3, ID: "cheap-winner"}, // follows lead, beats the king
		{Suit: domain.SuitSpades, Rank: domain.Rank6, ID: "junk"},
	}

	got := a.Play(hand, table, domain.SuitHearts)
	if got.ID != "cheap-winner" {
		t.Errorf("play = %s, want the cheapest winning card", got.ID)
	}
}

func TestPlayDiscardsFewestPoints(t *testing.T) {
	a := NewAgent(0, rand.New(rand.NewSource(1)))
	table := []domain.Play{
		{PlayerID: "opp", Card: domain.Card{Suit: domain.SuitClubs, Rank: domain.RankA, ID: "ca"}},
	}
	// Nothing in hand beats a led ace off-trump.
	hand := []domain.Card{
		{Suit: domain.SuitDiamonds, Rank: domain.Rank7, ID: "fat"},       // 10 points
		{Suit: domain.SuitDiamonds, Rank: domain.Rank2, ID: "worthless"}, // 0 points off-trump
		{Suit: domain.SuitSpades, Rank: domain.RankJ, ID: "some"},        // 3 points
	}

	got := a.Play(hand, table, domain.SuitHearts)
	if got.ID != "worthless" {
		t.Errorf("discard = %s, want the zero-point card", got.ID)
	}
}

func TestPlayEmptyHand(t *testing.T) {
	a := NewAgent(0, rand.New(rand.NewSource(1)))
	if got := a.Play(nil, nil, domain.SuitHearts); got.ID != "" {
		t.Errorf("empty hand should yield the zero card, got %s", got.ID)
	}
}
